package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hr-management-api/internal/database"
	"github.com/hr-management-api/internal/models"
)

// profileRepo is the concrete implementation of ProfileRepository
type profileRepo struct {
	db *database.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *database.DB) ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `
	id, employee_id, full_name, email, phone, id_number, department, position,
	location, to_char(start_date, 'YYYY-MM-DD'), contract_type, base_salary,
	role, status, manager_id, created_at, updated_at`

// GetByID retrieves a profile by its identity id
func (r *profileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// List retrieves all profiles ordered by creation time
func (r *profileRepo) List(ctx context.Context) ([]*models.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// Provision fills the blank profile row seeded at identity creation with
// all supplied and defaulted attributes. Returns ErrDuplicateEmployeeID
// when the generated employee identifier collides with an existing one.
func (r *profileRepo) Provision(ctx context.Context, p *models.Profile) error {
	query := `
		UPDATE profiles SET
			employee_id = $2,
			full_name = $3,
			email = $4,
			phone = $5,
			id_number = $6,
			department = $7,
			position = $8,
			location = $9,
			start_date = NULLIF($10, '')::date,
			contract_type = $11,
			base_salary = $12,
			role = $13,
			status = $14,
			manager_id = $15,
			updated_at = now()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		p.ID, p.EmployeeID, p.FullName, p.Email, p.Phone, p.IDNumber,
		p.Department, p.Position, p.Location, strOrEmpty(p.StartDate),
		p.ContractType, p.BaseSalary, p.Role, p.Status, p.ManagerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateEmployeeID
		}
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Save updates the mutable HR attributes of an existing profile.
// The generated employee_id is never rewritten.
func (r *profileRepo) Save(ctx context.Context, p *models.Profile) error {
	query := `
		UPDATE profiles SET
			full_name = $2,
			phone = $3,
			id_number = $4,
			department = $5,
			position = $6,
			location = $7,
			start_date = NULLIF($8, '')::date,
			contract_type = $9,
			base_salary = $10,
			role = $11,
			status = $12,
			manager_id = $13,
			updated_at = now()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		p.ID, p.FullName, p.Phone, p.IDNumber, p.Department, p.Position,
		p.Location, strOrEmpty(p.StartDate), p.ContractType, p.BaseSalary,
		p.Role, p.Status, p.ManagerID,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Count returns the total number of profiles
func (r *profileRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	return count, err
}

// scanner matches both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(s scanner) (*models.Profile, error) {
	var p models.Profile
	var employeeID, phone, idNumber, department, position sql.NullString
	var location, startDate, contractType, managerID sql.NullString

	err := s.Scan(
		&p.ID, &employeeID, &p.FullName, &p.Email, &phone, &idNumber,
		&department, &position, &location, &startDate, &contractType,
		&p.BaseSalary, &p.Role, &p.Status, &managerID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.EmployeeID = nullablePtr(employeeID)
	p.Phone = nullablePtr(phone)
	p.IDNumber = nullablePtr(idNumber)
	p.Department = nullablePtr(department)
	p.Position = nullablePtr(position)
	p.Location = nullablePtr(location)
	p.StartDate = nullablePtr(startDate)
	p.ContractType = nullablePtr(contractType)
	p.ManagerID = nullablePtr(managerID)

	return &p, nil
}

func nullablePtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
