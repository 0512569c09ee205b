package repository

import (
	"context"

	"github.com/hr-management-api/internal/database"
	"github.com/hr-management-api/internal/models"
)

// IdentityRepository defines the interface for authentication identity
// data operations
type IdentityRepository interface {
	// Create inserts the identity and seeds its blank profile row in
	// one transaction
	Create(ctx context.Context, identity *models.Identity) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Identity, error)
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
}

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	// Provision fills the seeded blank profile row with all supplied
	// and defaulted attributes, including the generated employee id
	Provision(ctx context.Context, profile *models.Profile) error
	// Save updates the mutable HR attributes of an existing profile
	Save(ctx context.Context, profile *models.Profile) error
	Count(ctx context.Context) (int, error)
}

// HistoryRepository defines the interface for the append-only audit
// trail. There are deliberately no update or delete operations.
type HistoryRepository interface {
	Append(ctx context.Context, entry *models.HistoryEntry) error
	ListByUser(ctx context.Context, userID string) ([]models.HistoryEntry, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Identity IdentityRepository
	Profile  ProfileRepository
	History  HistoryRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Identity: NewIdentityRepo(db),
		Profile:  NewProfileRepo(db),
		History:  NewHistoryRepo(db),
	}
}
