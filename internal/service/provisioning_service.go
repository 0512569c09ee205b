package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hr-management-api/internal/config"
	"github.com/hr-management-api/internal/models"
	"github.com/hr-management-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// maxEmployeeIDAttempts bounds the retry loop when a generated employee
// identifier collides with an existing one
const maxEmployeeIDAttempts = 5

// provisioningService is the concrete implementation of ProvisioningService
type provisioningService struct {
	repos *repository.Repositories
	cfg   *config.Config
	log   zerolog.Logger
}

// newProvisioningService creates a new ProvisioningService
func newProvisioningService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *provisioningService {
	return &provisioningService{
		repos: repos,
		cfg:   cfg,
		log:   log.With().Str("service", "provisioning").Logger(),
	}
}

// CreateEmployee provisions one employee: authorization check, identity
// creation, profile update, audit entry. Each invocation is independent;
// there is no idempotency across calls with the same email beyond the
// identities table's unique constraint.
func (s *provisioningService) CreateEmployee(ctx context.Context, actorID string, req *models.CreateEmployeeRequest) (*models.CreateEmployeeResponse, error) {
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

	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, models.ErrMissingRequiredFields
	}

	// Random per-user credential; delivered in the response for now,
	// out-of-band delivery is the deployment's concern
	tempPassword, err := GenerateTempPassword(s.cfg.Auth.TempPasswordLength)
	if err != nil {
		return nil, &models.ProvisioningError{Stage: "auth_user", Err: err}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, &models.ProvisioningError{Stage: "auth_user", Err: err}
	}

	// Pre-confirmed identity: no email verification round trip
	identity := &models.Identity{
		ID:             uuid.New().String(),
		Email:          req.Email,
		PasswordHash:   string(hash),
		EmailConfirmed: true,
		FullName:       req.FullName,
	}
	if err := s.repos.Identity.Create(ctx, identity); err != nil {
		s.log.Error().Err(err).Str("email", req.Email).Msg("Failed to create auth identity")
		return nil, &models.ProvisioningError{Stage: "auth_user", Err: err}
	}

	profile := buildProfile(identity.ID, req)

	err = s.provisionWithRetry(ctx, profile)
	if err != nil {
		// Best-effort rollback of the identity; not verified, not retried
		if delErr := s.repos.Identity.Delete(ctx, identity.ID); delErr != nil {
			s.log.Error().Err(delErr).Str("user_id", identity.ID).
				Msg("Failed to clean up identity after profile failure")
		}
		s.log.Error().Err(err).Str("user_id", identity.ID).Msg("Failed to create profile")
		return nil, &models.ProvisioningError{Stage: "profile", Err: err}
	}

	created, err := s.repos.Profile.GetByID(ctx, identity.ID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", identity.ID).Msg("Failed to load created profile snapshot")
		created = profile
	}

	// Audit append is fire-and-forget: a failure here is logged but never
	// surfaced, so provisioning can succeed without an audit entry
	entry := &models.HistoryEntry{
		ID:              uuid.New().String(),
		UserID:          identity.ID,
		Type:            models.HistoryTypeCreated,
		Description:     "Employee profile created",
		PerformedBy:     actorID,
		PerformedByName: actorName(actor),
	}
	if err := s.repos.History.Append(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("user_id", identity.ID).Msg("Failed to append history entry")
	}

	s.log.Info().
		Str("user_id", identity.ID).
		Str("employee_id", strOr(created.EmployeeID, "")).
		Str("performed_by", actorID).
		Msg("Employee provisioned")

	return &models.CreateEmployeeResponse{
		Success:      true,
		User:         created,
		TempPassword: tempPassword,
		Message:      fmt.Sprintf("User created successfully. Temporary password: %s", tempPassword),
	}, nil
}

// provisionWithRetry fills the profile row, regenerating the employee
// identifier on unique-constraint collision up to maxEmployeeIDAttempts
func (s *provisioningService) provisionWithRetry(ctx context.Context, profile *models.Profile) error {
	var err error
	for attempt := 0; attempt < maxEmployeeIDAttempts; attempt++ {
		employeeID := generateEmployeeID()
		profile.EmployeeID = &employeeID

		err = s.repos.Profile.Provision(ctx, profile)
		if !errors.Is(err, models.ErrDuplicateEmployeeID) {
			return err
		}
		s.log.Warn().Str("employee_id", employeeID).Int("attempt", attempt+1).
			Msg("Employee id collision, regenerating")
	}
	return err
}

// generateEmployeeID produces a human-readable identifier of the form
// EMP-<year>-<nnn> with nnn in [100, 999]
func generateEmployeeID() string {
	return fmt.Sprintf("EMP-%d-%d", time.Now().Year(), 100+rand.Intn(900))
}

// buildProfile converts a creation request into the profile row shape,
// applying the documented defaults for omitted optional fields
func buildProfile(id string, req *models.CreateEmployeeRequest) *models.Profile {
	role := req.Role
	if role == "" {
		role = models.DefaultRole
	}
	status := req.Status
	if status == "" {
		status = models.DefaultStatus
	}

	return &models.Profile{
		ID:           id,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        optional(req.Phone),
		IDNumber:     optional(req.IDNumber),
		Department:   optional(req.Department),
		Position:     optional(req.Position),
		Location:     optional(req.Location),
		StartDate:    optional(req.StartDate),
		ContractType: optional(req.ContractType),
		BaseSalary:   req.BaseSalary,
		Role:         role,
		Status:       status,
		ManagerID:    optional(req.ManagerID),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func actorName(actor *models.Profile) string {
	if actor != nil && actor.FullName != "" {
		return actor.FullName
	}
	return "Admin"
}
