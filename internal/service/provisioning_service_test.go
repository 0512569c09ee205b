package service_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/hr-management-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func createRequest() *models.CreateEmployeeRequest {
	return &models.CreateEmployeeRequest{
		FullName:   "Jane Smith",
		Email:      "jane.smith@company.com",
		Department: "Engineering",
		Position:   "Backend Engineer",
		StartDate:  "2024-03-01",
		BaseSalary: 95000,
	}
}

func TestCreateEmployee(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()

	resp, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, createRequest())
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success response")
	}
	if resp.User == nil {
		t.Fatal("Expected created profile in response")
	}
	if resp.User.Email != "jane.smith@company.com" {
		t.Errorf("Unexpected email %q", resp.User.Email)
	}
	if resp.User.Role != models.DefaultRole {
		t.Errorf("Expected default role, got %q", resp.User.Role)
	}
	if resp.User.Status != models.DefaultStatus {
		t.Errorf("Expected default status, got %q", resp.User.Status)
	}
	if !strings.Contains(resp.Message, resp.TempPassword) {
		t.Errorf("Message %q does not carry the temp password", resp.Message)
	}

	// The identity must exist and its hash must verify the returned password
	identity, err := env.identities.GetByEmail(context.Background(), "jane.smith@company.com")
	if err != nil {
		t.Fatalf("Identity not created: %v", err)
	}
	if !identity.EmailConfirmed {
		t.Error("Expected identity to be created pre-confirmed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(resp.TempPassword)); err != nil {
		t.Errorf("Stored hash does not match returned temp password: %v", err)
	}
}

func TestCreateEmployee_EmployeeIDFormat(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()

	resp, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, createRequest())
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}

	pattern := regexp.MustCompile(`^EMP-\d{4}-\d{3}$`)
	if resp.User.EmployeeID == nil {
		t.Fatal("Expected an employee id to be assigned")
	}
	if !pattern.MatchString(*resp.User.EmployeeID) {
		t.Errorf("Employee id %q does not match EMP-<year>-<nnn>", *resp.User.EmployeeID)
	}
}

func TestCreateEmployee_NonAdminForbidden(t *testing.T) {
	env := newTestEnv()
	empID := env.seedEmployee()

	_, err := env.services.Provisioning.CreateEmployee(context.Background(), empID, createRequest())
	if !errors.Is(err, models.ErrForbidden) {
		t.Errorf("Expected ErrForbidden, got %v", err)
	}
}

func TestCreateEmployee_UnknownActorForbidden(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Provisioning.CreateEmployee(context.Background(), "ghost", createRequest())
	if !errors.Is(err, models.ErrForbidden) {
		t.Errorf("Expected ErrForbidden, got %v", err)
	}
}

func TestCreateEmployee_MissingRequiredFields(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()

	tests := []struct {
		name string
		req  *models.CreateEmployeeRequest
	}{
		{"missing email", &models.CreateEmployeeRequest{FullName: "Jane Smith"}},
		{"missing name", &models.CreateEmployeeRequest{Email: "jane@company.com"}},
		{"whitespace name", &models.CreateEmployeeRequest{FullName: "   ", Email: "jane@company.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, tt.req)
			if !errors.Is(err, models.ErrMissingRequiredFields) {
				t.Errorf("Expected ErrMissingRequiredFields, got %v", err)
			}
		})
	}
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()

	if _, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, createRequest()); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, createRequest())
	var provErr *models.ProvisioningError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProvisioningError, got %v", err)
	}
	if provErr.Stage != "auth_user" {
		t.Errorf("Expected auth_user stage, got %q", provErr.Stage)
	}
	if !strings.HasPrefix(err.Error(), "Failed to create user:") {
		t.Errorf("Unexpected error message %q", err.Error())
	}
}

func TestCreateEmployee_ProfileFailureRollsBackIdentity(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()
	env.profiles.ProvisionFunc = func(ctx context.Context, p *models.Profile) error {
		return errors.New("connection reset")
	}

	_, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, createRequest())
	var provErr *models.ProvisioningError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProvisioningError, got %v", err)
	}
	if provErr.Stage != "profile" {
		t.Errorf("Expected profile stage, got %q", provErr.Stage)
	}
	if !strings.HasPrefix(err.Error(), "Failed to create profile:") {
		t.Errorf("Unexpected error message %q", err.Error())
	}

	// The orphaned identity must have been cleaned up
	if len(env.identities.Deleted) != 1 {
		t.Fatalf("Expected 1 identity deletion, got %d", len(env.identities.Deleted))
	}
	if _, err := env.identities.GetByEmail(context.Background(), "jane.smith@company.com"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected identity to be gone, got %v", err)
	}
}

func TestCreateEmployee_EmployeeIDCollisionRetries(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()

	collisions := 2
	env.profiles.ProvisionFunc = func(ctx context.Context, p *models.Profile) error {
		if collisions > 0 {
			collisions--
			return models.ErrDuplicateEmployeeID
		}
		// The hook runs under the mock's lock, so write the row directly
		*env.profiles.Profiles[p.ID] = *p
		return nil
	}

	resp, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, createRequest())
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if resp.User.EmployeeID == nil {
		t.Error("Expected an employee id after retries")
	}
	if env.profiles.ProvisionCalls != 3 {
		t.Errorf("Expected 3 provision attempts, got %d", env.profiles.ProvisionCalls)
	}
}

func TestCreateEmployee_HistoryAppended(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()

	resp, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, createRequest())
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}

	if len(env.history.Entries) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(env.history.Entries))
	}
	entry := env.history.Entries[0]
	if entry.UserID != resp.User.ID {
		t.Errorf("History entry for wrong user: %q", entry.UserID)
	}
	if entry.Type != models.HistoryTypeCreated {
		t.Errorf("Expected created entry type, got %q", entry.Type)
	}
	if entry.PerformedBy != adminID {
		t.Errorf("Expected performed_by %q, got %q", adminID, entry.PerformedBy)
	}
	if entry.PerformedByName != "Admin User" {
		t.Errorf("Expected actor name, got %q", entry.PerformedByName)
	}
}

func TestCreateEmployee_HistoryFailureDoesNotFail(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()
	env.history.AppendError = errors.New("history table locked")

	resp, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, createRequest())
	if err != nil {
		t.Fatalf("Expected provisioning to succeed despite audit failure, got %v", err)
	}
	if !resp.Success {
		t.Error("Expected success response")
	}
}

func TestCreateEmployee_TempPasswordsDiffer(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		req := createRequest()
		req.Email = req.Email + "." + string(rune('a'+i))
		resp, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, req)
		if err != nil {
			t.Fatalf("CreateEmployee failed: %v", err)
		}
		if len(resp.TempPassword) != 12 {
			t.Errorf("Expected 12-character password, got %d", len(resp.TempPassword))
		}
		if seen[resp.TempPassword] {
			t.Errorf("Temp password %q repeated", resp.TempPassword)
		}
		seen[resp.TempPassword] = true
	}
}

func TestCreateEmployee_ExplicitRoleAndStatusKept(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()

	req := createRequest()
	req.Role = models.RoleAdmin
	req.Status = "inactive"

	resp, err := env.services.Provisioning.CreateEmployee(context.Background(), adminID, req)
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if resp.User.Role != models.RoleAdmin {
		t.Errorf("Expected admin role, got %q", resp.User.Role)
	}
	if resp.User.Status != "inactive" {
		t.Errorf("Expected inactive status, got %q", resp.User.Status)
	}
}
