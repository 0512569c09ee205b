package service

import (
	"context"

	"github.com/hr-management-api/internal/auth"
	"github.com/hr-management-api/internal/config"
	"github.com/hr-management-api/internal/models"
	"github.com/hr-management-api/internal/repository"
	"github.com/rs/zerolog"
)

// ProvisioningService defines the interface for employee provisioning:
// creating an authentication identity, its linked profile, and the audit
// entry, as one server-side operation per employee.
type ProvisioningService interface {
	CreateEmployee(ctx context.Context, actorID string, req *models.CreateEmployeeRequest) (*models.CreateEmployeeResponse, error)
}

// ImportService defines the interface for CSV import sessions
type ImportService interface {
	CreateSession(ctx context.Context, actorID, content string) (*models.ImportSession, error)
	GetSession(sessionID string) (*models.ImportSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.ImportSession, error)
	Cancel(sessionID string) (*models.ImportSession, error)
	StartJanitor(ctx context.Context)
	StopJanitor()
}

// EmployeeService defines the interface for employee record operations
type EmployeeService interface {
	List(ctx context.Context) ([]*models.Profile, error)
	Get(ctx context.Context, id string) (*models.Profile, error)
	Update(ctx context.Context, actorID, id string, req *models.UpdateEmployeeRequest) (*models.Profile, error)
	History(ctx context.Context, id string) ([]models.HistoryEntry, error)
	Count(ctx context.Context) (int, error)
}

// AuthService defines the interface for credential login
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
}

// Services holds all service interfaces
type Services struct {
	Provisioning ProvisioningService
	Import       ImportService
	Employee     EmployeeService
	Auth         AuthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, tokens *auth.TokenManager, cfg *config.Config, log zerolog.Logger) *Services {
	provisioningSvc := newProvisioningService(repos, cfg, log)

	return &Services{
		Provisioning: provisioningSvc,
		Import:       newImportService(repos.Profile, provisioningSvc, cfg, log),
		Employee:     newEmployeeService(repos, log),
		Auth:         newAuthService(repos, tokens, log),
	}
}
