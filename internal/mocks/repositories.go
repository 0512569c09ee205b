package mocks

import (
	"context"
	"sync"

	"github.com/hr-management-api/internal/models"
	"github.com/hr-management-api/internal/repository"
)

// MockIdentityRepository is a mock implementation of IdentityRepository.
// When Profiles is set, Create seeds the blank profile row and Delete
// cascades, mirroring the real repository's transaction.
type MockIdentityRepository struct {
	mu          sync.Mutex
	Identities  map[string]*models.Identity
	EmailIndex  map[string]*models.Identity
	Profiles    *MockProfileRepository
	CreateError error
	DeleteError error
	Deleted     []string
}

var _ repository.IdentityRepository = (*MockIdentityRepository)(nil)

func NewMockIdentityRepository() *MockIdentityRepository {
	return &MockIdentityRepository{
		Identities: make(map[string]*models.Identity),
		EmailIndex: make(map[string]*models.Identity),
	}
}

func (m *MockIdentityRepository) Create(ctx context.Context, identity *models.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}
	if _, exists := m.EmailIndex[identity.Email]; exists {
		return models.ErrDuplicateEmail
	}
	m.Identities[identity.ID] = identity
	m.EmailIndex[identity.Email] = identity

	if m.Profiles != nil {
		m.Profiles.put(&models.Profile{
			ID:       identity.ID,
			FullName: identity.FullName,
			Email:    identity.Email,
			Role:     models.DefaultRole,
			Status:   models.DefaultStatus,
		})
	}
	return nil
}

func (m *MockIdentityRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteError != nil {
		return m.DeleteError
	}
	identity, ok := m.Identities[id]
	if !ok {
		return models.ErrNotFound
	}
	delete(m.Identities, id)
	delete(m.EmailIndex, identity.Email)
	m.Deleted = append(m.Deleted, id)

	if m.Profiles != nil {
		m.Profiles.remove(id)
	}
	return nil
}

func (m *MockIdentityRepository) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	identity, ok := m.Identities[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return identity, nil
}

func (m *MockIdentityRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	identity, ok := m.EmailIndex[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return identity, nil
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mu             sync.Mutex
	Profiles       map[string]*models.Profile
	ProvisionError error
	ProvisionFunc  func(ctx context.Context, p *models.Profile) error
	SaveError      error
	ProvisionCalls int
}

var _ repository.ProfileRepository = (*MockProfileRepository)(nil)

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		Profiles: make(map[string]*models.Profile),
	}
}

func (m *MockProfileRepository) put(p *models.Profile) {
	m.Profiles[p.ID] = p
}

func (m *MockProfileRepository) remove(id string) {
	delete(m.Profiles, id)
}

// Put seeds a profile directly, bypassing provisioning
func (m *MockProfileRepository) Put(p *models.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(p)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	profile, ok := m.Profiles[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

func (m *MockProfileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	profiles := make([]*models.Profile, 0, len(m.Profiles))
	for _, p := range m.Profiles {
		copied := *p
		profiles = append(profiles, &copied)
	}
	return profiles, nil
}

func (m *MockProfileRepository) Provision(ctx context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ProvisionCalls++
	if m.ProvisionFunc != nil {
		return m.ProvisionFunc(ctx, p)
	}
	if m.ProvisionError != nil {
		return m.ProvisionError
	}

	existing, ok := m.Profiles[p.ID]
	if !ok {
		return models.ErrNotFound
	}
	for id, other := range m.Profiles {
		if id == p.ID || other.EmployeeID == nil || p.EmployeeID == nil {
			continue
		}
		if *other.EmployeeID == *p.EmployeeID {
			return models.ErrDuplicateEmployeeID
		}
	}

	*existing = *p
	return nil
}

func (m *MockProfileRepository) Save(ctx context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveError != nil {
		return m.SaveError
	}
	existing, ok := m.Profiles[p.ID]
	if !ok {
		return models.ErrNotFound
	}
	employeeID := existing.EmployeeID
	*existing = *p
	existing.EmployeeID = employeeID
	return nil
}

func (m *MockProfileRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Profiles), nil
}

// MockHistoryRepository is a mock implementation of HistoryRepository
type MockHistoryRepository struct {
	mu          sync.Mutex
	Entries     []models.HistoryEntry
	AppendError error
}

var _ repository.HistoryRepository = (*MockHistoryRepository)(nil)

func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{}
}

func (m *MockHistoryRepository) Append(ctx context.Context, entry *models.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.AppendError != nil {
		return m.AppendError
	}
	m.Entries = append(m.Entries, *entry)
	return nil
}

func (m *MockHistoryRepository) ListByUser(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var entries []models.HistoryEntry
	for _, e := range m.Entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
