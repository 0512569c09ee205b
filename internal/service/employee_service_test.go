package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hr-management-api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestUpdateEmployee(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()
	empID := env.seedEmployee()

	salary := 120000.0
	updated, err := env.services.Employee.Update(context.Background(), adminID, empID, &models.UpdateEmployeeRequest{
		Department: strPtr("Platform"),
		Position:   strPtr("Staff Engineer"),
		BaseSalary: &salary,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Department == nil || *updated.Department != "Platform" {
		t.Errorf("Department not applied: %+v", updated.Department)
	}
	if updated.BaseSalary != 120000 {
		t.Errorf("Expected salary 120000, got %v", updated.BaseSalary)
	}
	// Untouched attributes survive a partial update
	if updated.FullName != "Plain Employee" {
		t.Errorf("Full name changed unexpectedly: %q", updated.FullName)
	}

	if len(env.history.Entries) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(env.history.Entries))
	}
	if env.history.Entries[0].Type != models.HistoryTypeUpdated {
		t.Errorf("Expected updated entry type, got %q", env.history.Entries[0].Type)
	}
}

func TestUpdateEmployee_NonAdminForbidden(t *testing.T) {
	env := newTestEnv()
	empID := env.seedEmployee()

	_, err := env.services.Employee.Update(context.Background(), empID, empID, &models.UpdateEmployeeRequest{
		Position: strPtr("CEO"),
	})
	if !errors.Is(err, models.ErrForbidden) {
		t.Errorf("Expected ErrForbidden, got %v", err)
	}
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	env := newTestEnv()
	adminID := env.seedAdmin()

	_, err := env.services.Employee.Update(context.Background(), adminID, "ghost", &models.UpdateEmployeeRequest{
		Position: strPtr("Engineer"),
	})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListAndCount(t *testing.T) {
	env := newTestEnv()
	env.seedAdmin()
	env.seedEmployee()

	profiles, err := env.services.Employee.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Errorf("Expected 2 profiles, got %d", len(profiles))
	}

	count, err := env.services.Employee.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}

func TestHistory_UnknownEmployee(t *testing.T) {
	env := newTestEnv()
	env.seedAdmin()

	if _, err := env.services.Employee.History(context.Background(), "ghost"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
