package validation

import (
	"strings"
	"testing"

	"github.com/hr-management-api/internal/models"
)

func validRow() models.ImportRow {
	return models.ImportRow{
		FullName:   "Jane Doe",
		Email:      "jane@company.com",
		IDNumber:   "123456789",
		Department: "Engineering",
		Position:   "Developer",
		StartDate:  "2024-01-15",
		BaseSalary: 50000,
		Role:       "employee",
		Status:     "active",
	}
}

func TestValidateImportRow(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.ImportRow)
		wantPart string
	}{
		{
			name:   "valid row",
			mutate: func(r *models.ImportRow) {},
		},
		{
			name:     "missing full name",
			mutate:   func(r *models.ImportRow) { r.FullName = "" },
			wantPart: "Full name is required",
		},
		{
			name:     "whitespace full name",
			mutate:   func(r *models.ImportRow) { r.FullName = "   " },
			wantPart: "Full name is required",
		},
		{
			name:     "missing email",
			mutate:   func(r *models.ImportRow) { r.Email = "" },
			wantPart: "Email is required",
		},
		{
			name:     "invalid email",
			mutate:   func(r *models.ImportRow) { r.Email = "not-an-email" },
			wantPart: "Invalid email format",
		},
		{
			name:     "email without tld",
			mutate:   func(r *models.ImportRow) { r.Email = "a@b" },
			wantPart: "Invalid email format",
		},
		{
			name:     "missing id number",
			mutate:   func(r *models.ImportRow) { r.IDNumber = "" },
			wantPart: "ID Number is required",
		},
		{
			name:     "missing department",
			mutate:   func(r *models.ImportRow) { r.Department = "" },
			wantPart: "Department is required",
		},
		{
			name:     "missing position",
			mutate:   func(r *models.ImportRow) { r.Position = "" },
			wantPart: "Position is required",
		},
		{
			name:     "missing start date",
			mutate:   func(r *models.ImportRow) { r.StartDate = "" },
			wantPart: "Start date is required",
		},
		{
			name:     "malformed start date",
			mutate:   func(r *models.ImportRow) { r.StartDate = "15-01-2024x" },
			wantPart: "Start date must be in YYYY-MM-DD format",
		},
		{
			name:   "slash-separated date accepted",
			mutate: func(r *models.ImportRow) { r.StartDate = "2024/01/15" },
		},
		{
			// Day and month are not range-checked
			name:   "out of range date digits accepted",
			mutate: func(r *models.ImportRow) { r.StartDate = "2024-13-45" },
		},
		{
			name:     "zero salary",
			mutate:   func(r *models.ImportRow) { r.BaseSalary = 0 },
			wantPart: "Base salary must be greater than 0",
		},
		{
			name:     "negative salary",
			mutate:   func(r *models.ImportRow) { r.BaseSalary = -1 },
			wantPart: "Base salary must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(&row)

			msg := ValidateImportRow(&row, 7)
			if tt.wantPart == "" {
				if msg != "" {
					t.Errorf("Expected valid row, got %q", msg)
				}
				return
			}
			if msg == "" {
				t.Fatalf("Expected error containing %q, got none", tt.wantPart)
			}
			if !strings.Contains(msg, tt.wantPart) {
				t.Errorf("Expected message containing %q, got %q", tt.wantPart, msg)
			}
			if !strings.HasPrefix(msg, "Row 7: ") {
				t.Errorf("Message should be tagged with the row number, got %q", msg)
			}
		})
	}
}

// Checks run in a fixed order and short-circuit: a row failing several
// checks reports only the first one.
func TestValidateImportRow_ShortCircuit(t *testing.T) {
	row := models.ImportRow{} // fails everything

	msg := ValidateImportRow(&row, 2)
	if !strings.Contains(msg, "Full name is required") {
		t.Errorf("Expected the full-name check to win, got %q", msg)
	}

	row.FullName = "X"
	msg = ValidateImportRow(&row, 2)
	if !strings.Contains(msg, "Email is required") {
		t.Errorf("Expected the email check second, got %q", msg)
	}
}
