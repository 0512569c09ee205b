package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hr-management-api/internal/database"
	"github.com/hr-management-api/internal/models"
)

// historyRepo is the concrete implementation of HistoryRepository
type historyRepo struct {
	db *database.DB
}

// NewHistoryRepo creates a new history repository
func NewHistoryRepo(db *database.DB) HistoryRepository {
	return &historyRepo{db: db}
}

// Append inserts one audit entry
func (r *historyRepo) Append(ctx context.Context, entry *models.HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	var performedBy any
	if entry.PerformedBy != "" {
		performedBy = entry.PerformedBy
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employee_history (id, user_id, type, description, performed_by, performed_by_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.UserID, entry.Type, entry.Description,
		performedBy, entry.PerformedByName, entry.CreatedAt)
	return err
}

// ListByUser retrieves the audit trail of one employee, newest first
func (r *historyRepo) ListByUser(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, type, description, performed_by, performed_by_name, created_at
		FROM employee_history
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		var performedBy sql.NullString
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Type, &entry.Description,
			&performedBy, &entry.PerformedByName, &entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entry.PerformedBy = performedBy.String
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
