package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the import and provisioning flows. The messages of
// the user-facing ones are surfaced verbatim in HTTP responses.
var (
	// ErrCSVTooShort means the uploaded file had fewer than two
	// non-blank lines (header-only or empty)
	ErrCSVTooShort = errors.New("CSV file is empty or contains only headers")

	// ErrUnauthorized maps to 401
	ErrUnauthorized = errors.New("Unauthorized")

	// ErrForbidden maps to 403
	ErrForbidden = errors.New("Only admins can create employees")

	// ErrMissingRequiredFields maps to 400 on provisioning requests
	ErrMissingRequiredFields = errors.New("Email and full name are required")

	// ErrNotFound is returned by repositories when no row matches
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when the identities table rejects
	// an email on its unique constraint
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateEmployeeID is returned when a generated employee
	// identifier collides with an existing one
	ErrDuplicateEmployeeID = errors.New("employee id already taken")

	// ErrSessionNotFound means the import session id is unknown or expired
	ErrSessionNotFound = errors.New("import session not found")
)

// SessionStateError is returned when an import session operation is
// attempted from the wrong state (e.g. confirming a cancelled session)
type SessionStateError struct {
	Op     string
	Status SessionStatus
}

func (e *SessionStateError) Error() string {
	return fmt.Sprintf("cannot %s import session in state %q", e.Op, e.Status)
}

// ProvisioningError wraps a failure of the identity or profile
// persistence steps of employee provisioning. It maps to 500.
type ProvisioningError struct {
	Stage string // "auth_user" or "profile"
	Err   error
}

func (e *ProvisioningError) Error() string {
	switch e.Stage {
	case "profile":
		return fmt.Sprintf("Failed to create profile: %v", e.Err)
	default:
		return fmt.Sprintf("Failed to create user: %v", e.Err)
	}
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
