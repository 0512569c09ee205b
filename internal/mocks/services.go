package mocks

import (
	"context"
	"sync"

	"github.com/hr-management-api/internal/models"
	"github.com/hr-management-api/internal/service"
)

// MockProvisioningService is a mock implementation of ProvisioningService
type MockProvisioningService struct {
	mu         sync.Mutex
	CreateFunc func(ctx context.Context, actorID string, req *models.CreateEmployeeRequest) (*models.CreateEmployeeResponse, error)
	Created    []*models.CreateEmployeeRequest
}

var _ service.ProvisioningService = (*MockProvisioningService)(nil)

func NewMockProvisioningService() *MockProvisioningService {
	return &MockProvisioningService{}
}

func (m *MockProvisioningService) CreateEmployee(ctx context.Context, actorID string, req *models.CreateEmployeeRequest) (*models.CreateEmployeeResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actorID, req)
	}

	m.mu.Lock()
	m.Created = append(m.Created, req)
	m.mu.Unlock()

	return &models.CreateEmployeeResponse{
		Success:      true,
		User:         &models.Profile{ID: "created-" + req.Email, FullName: req.FullName, Email: req.Email},
		TempPassword: "mock-password",
		Message:      "User created successfully",
	}, nil
}

// CreatedCount returns how many creations the default implementation recorded
func (m *MockProvisioningService) CreatedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Created)
}

// MockImportService is a mock implementation of ImportService
type MockImportService struct {
	Sessions          map[string]*models.ImportSession
	CreateSessionFunc func(ctx context.Context, actorID, content string) (*models.ImportSession, error)
	ConfirmFunc       func(ctx context.Context, sessionID string) (*models.ImportSession, error)
}

var _ service.ImportService = (*MockImportService)(nil)

func NewMockImportService() *MockImportService {
	return &MockImportService{
		Sessions: make(map[string]*models.ImportSession),
	}
}

func (m *MockImportService) CreateSession(ctx context.Context, actorID, content string) (*models.ImportSession, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, actorID, content)
	}
	session := &models.ImportSession{ID: "test-session-id", Status: models.SessionPreviewing, ActorID: actorID}
	m.Sessions[session.ID] = session
	return session, nil
}

func (m *MockImportService) GetSession(sessionID string) (*models.ImportSession, error) {
	session, ok := m.Sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockImportService) Confirm(ctx context.Context, sessionID string) (*models.ImportSession, error) {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, sessionID)
	}
	session, ok := m.Sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	session.Status = models.SessionCompleted
	return session, nil
}

func (m *MockImportService) Cancel(sessionID string) (*models.ImportSession, error) {
	session, ok := m.Sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	session.Status = models.SessionCancelled
	return session, nil
}

func (m *MockImportService) StartJanitor(ctx context.Context) {}

func (m *MockImportService) StopJanitor() {}

// MockEmployeeService is a mock implementation of EmployeeService
type MockEmployeeService struct {
	Profiles       map[string]*models.Profile
	HistoryEntries map[string][]models.HistoryEntry
	UpdateFunc     func(ctx context.Context, actorID, id string, req *models.UpdateEmployeeRequest) (*models.Profile, error)
}

var _ service.EmployeeService = (*MockEmployeeService)(nil)

func NewMockEmployeeService() *MockEmployeeService {
	return &MockEmployeeService{
		Profiles:       make(map[string]*models.Profile),
		HistoryEntries: make(map[string][]models.HistoryEntry),
	}
}

func (m *MockEmployeeService) List(ctx context.Context) ([]*models.Profile, error) {
	profiles := make([]*models.Profile, 0, len(m.Profiles))
	for _, p := range m.Profiles {
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (m *MockEmployeeService) Get(ctx context.Context, id string) (*models.Profile, error) {
	profile, ok := m.Profiles[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return profile, nil
}

func (m *MockEmployeeService) Update(ctx context.Context, actorID, id string, req *models.UpdateEmployeeRequest) (*models.Profile, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actorID, id, req)
	}
	profile, ok := m.Profiles[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return profile, nil
}

func (m *MockEmployeeService) History(ctx context.Context, id string) ([]models.HistoryEntry, error) {
	return m.HistoryEntries[id], nil
}

func (m *MockEmployeeService) Count(ctx context.Context) (int, error) {
	return len(m.Profiles), nil
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	LoginFunc func(ctx context.Context, email, password string) (*models.LoginResponse, error)
}

var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, models.ErrUnauthorized
}
