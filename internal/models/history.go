package models

import (
	"time"
)

// History entry types
const (
	HistoryTypeCreated = "created"
	HistoryTypeUpdated = "updated"
)

// HistoryEntry is one append-only audit record of an action taken
// against a profile. Entries are never updated or deleted.
type HistoryEntry struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	Type            string    `json:"type" db:"type"`
	Description     string    `json:"description" db:"description"`
	PerformedBy     string    `json:"performed_by" db:"performed_by"`
	PerformedByName string    `json:"performed_by_name" db:"performed_by_name"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
