package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hr-management-api/internal/database"
	"github.com/hr-management-api/internal/models"
	"github.com/lib/pq"
)

// identityRepo is the concrete implementation of IdentityRepository
type identityRepo struct {
	db *database.DB
}

// NewIdentityRepo creates a new identity repository
func NewIdentityRepo(db *database.DB) IdentityRepository {
	return &identityRepo{db: db}
}

// Create inserts a new identity and its blank profile row in one
// transaction, so every identity always has a linked profile to update
// during provisioning.
func (r *identityRepo) Create(ctx context.Context, identity *models.Identity) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO identities (id, email, password_hash, email_confirmed, full_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, identity.ID, identity.Email, identity.PasswordHash, identity.EmailConfirmed,
		identity.FullName, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateEmail
		}
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO profiles (id, full_name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, identity.ID, identity.FullName, identity.Email, now, now)
	if err != nil {
		return err
	}

	identity.CreatedAt = now
	identity.UpdatedAt = now

	return tx.Commit()
}

// Delete removes an identity; the profile row goes with it via cascade
func (r *identityRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM identities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// GetByID retrieves an identity by ID
func (r *identityRepo) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

// GetByEmail retrieves an identity by email
func (r *identityRepo) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *identityRepo) get(ctx context.Context, where string, arg any) (*models.Identity, error) {
	query := `
		SELECT id, email, password_hash, email_confirmed, full_name, created_at, updated_at
		FROM identities ` + where

	var identity models.Identity
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&identity.ID, &identity.Email, &identity.PasswordHash, &identity.EmailConfirmed,
		&identity.FullName, &identity.CreatedAt, &identity.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &identity, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
