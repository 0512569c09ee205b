package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hr-management-api/internal/models"
	"github.com/hr-management-api/internal/repository"
	"github.com/rs/zerolog"
)

// employeeService is the concrete implementation of EmployeeService
type employeeService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newEmployeeService creates a new EmployeeService
func newEmployeeService(repos *repository.Repositories, log zerolog.Logger) *employeeService {
	return &employeeService{
		repos: repos,
		log:   log.With().Str("service", "employee").Logger(),
	}
}

// List returns all employee profiles
func (s *employeeService) List(ctx context.Context) ([]*models.Profile, error) {
	return s.repos.Profile.List(ctx)
}

// Get returns one employee profile
func (s *employeeService) Get(ctx context.Context, id string) (*models.Profile, error) {
	return s.repos.Profile.GetByID(ctx, id)
}

// Update applies the supplied attributes to an existing profile and
// appends an audit entry. Only admins may update profiles.
func (s *employeeService) Update(ctx context.Context, actorID, id string, req *models.UpdateEmployeeRequest) (*models.Profile, error) {
	actor, err := s.repos.Profile.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrForbidden
		}
		return nil, err
	}
	if actor.Role != models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	profile, err := s.repos.Profile.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(profile, req)

	if err := s.repos.Profile.Save(ctx, profile); err != nil {
		return nil, err
	}

	// Same policy as provisioning: audit append failures are logged,
	// never surfaced
	entry := &models.HistoryEntry{
		ID:              uuid.New().String(),
		UserID:          id,
		Type:            models.HistoryTypeUpdated,
		Description:     "Employee profile updated",
		PerformedBy:     actorID,
		PerformedByName: actorName(actor),
	}
	if err := s.repos.History.Append(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("Failed to append history entry")
	}

	return s.repos.Profile.GetByID(ctx, id)
}

// History returns the audit trail for one employee
func (s *employeeService) History(ctx context.Context, id string) ([]models.HistoryEntry, error) {
	if _, err := s.repos.Profile.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repos.History.ListByUser(ctx, id)
}

// Count returns the total number of employee profiles
func (s *employeeService) Count(ctx context.Context) (int, error) {
	return s.repos.Profile.Count(ctx)
}

func applyUpdate(profile *models.Profile, req *models.UpdateEmployeeRequest) {
	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.IDNumber != nil {
		profile.IDNumber = req.IDNumber
	}
	if req.Department != nil {
		profile.Department = req.Department
	}
	if req.Position != nil {
		profile.Position = req.Position
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.StartDate != nil {
		profile.StartDate = req.StartDate
	}
	if req.ContractType != nil {
		profile.ContractType = req.ContractType
	}
	if req.BaseSalary != nil {
		profile.BaseSalary = *req.BaseSalary
	}
	if req.Role != nil {
		profile.Role = *req.Role
	}
	if req.Status != nil {
		profile.Status = *req.Status
	}
	if req.ManagerID != nil {
		profile.ManagerID = req.ManagerID
	}
}
