package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hr-management-api/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Day and month are deliberately not range-checked
	dateRegex = regexp.MustCompile(`^\d{4}[-/]\d{2}[-/]\d{2}$`)
)

// ValidateImportRow checks one parsed import row and returns the first
// failing check's message, or "" when the row is valid. Checks run in a
// fixed order and short-circuit, so each row yields at most one message.
// The function is pure: no store or network access.
func ValidateImportRow(row *models.ImportRow, rowNumber int) string {
	if strings.TrimSpace(row.FullName) == "" {
		return fmt.Sprintf("Row %d: Full name is required", rowNumber)
	}

	if strings.TrimSpace(row.Email) == "" {
		return fmt.Sprintf("Row %d: Email is required", rowNumber)
	}

	if !emailRegex.MatchString(row.Email) {
		return fmt.Sprintf("Row %d: Invalid email format", rowNumber)
	}

	if strings.TrimSpace(row.IDNumber) == "" {
		return fmt.Sprintf("Row %d: ID Number is required", rowNumber)
	}

	if strings.TrimSpace(row.Department) == "" {
		return fmt.Sprintf("Row %d: Department is required", rowNumber)
	}

	if strings.TrimSpace(row.Position) == "" {
		return fmt.Sprintf("Row %d: Position is required", rowNumber)
	}

	if strings.TrimSpace(row.StartDate) == "" {
		return fmt.Sprintf("Row %d: Start date is required", rowNumber)
	}

	if !dateRegex.MatchString(row.StartDate) {
		return fmt.Sprintf("Row %d: Start date must be in YYYY-MM-DD format", rowNumber)
	}

	if row.BaseSalary <= 0 {
		return fmt.Sprintf("Row %d: Base salary must be greater than 0", rowNumber)
	}

	return ""
}
