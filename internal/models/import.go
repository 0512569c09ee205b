package models

import (
	"time"
)

// ImportRow is one parsed CSV line from an employee import file.
// It is transient: produced by the parser, consumed by the validator,
// then converted into a CreateEmployeeRequest or discarded.
type ImportRow struct {
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone,omitempty"`
	IDNumber     string  `json:"idNumber"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	Location     string  `json:"location,omitempty"`
	StartDate    string  `json:"startDate"`
	ContractType string  `json:"contractType,omitempty"`
	BaseSalary   float64 `json:"baseSalary"`
	Role         string  `json:"role,omitempty"`
	Status       string  `json:"status,omitempty"`
	ManagerID    string  `json:"managerId,omitempty"`
}

// ToCreateRequest converts a validated row into the provisioning request shape
func (r ImportRow) ToCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FullName:     r.FullName,
		Email:        r.Email,
		Phone:        r.Phone,
		IDNumber:     r.IDNumber,
		Department:   r.Department,
		Position:     r.Position,
		Location:     r.Location,
		StartDate:    r.StartDate,
		ContractType: r.ContractType,
		BaseSalary:   r.BaseSalary,
		Role:         r.Role,
		Status:       r.Status,
		ManagerID:    r.ManagerID,
	}
}

// SessionStatus represents the lifecycle state of one import session
type SessionStatus string

const (
	SessionPreviewing SessionStatus = "previewing"
	SessionImporting  SessionStatus = "importing"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
)

// ImportSession is the staged batch for one upload: parsed rows that
// passed validation, the validation errors that were collected, and the
// final report once the batch is confirmed. One session has exactly one
// owner (the admin who uploaded the file) and never outlives its TTL.
type ImportSession struct {
	ID               string                  `json:"session_id"`
	Status           SessionStatus           `json:"status"`
	ActorID          string                  `json:"-"`
	Staged           []CreateEmployeeRequest `json:"valid_rows"`
	ValidationErrors []string                `json:"validation_errors"`
	Report           *ImportReport           `json:"report,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	ExpiresAt        time.Time               `json:"-"`
}

// RowResult is the outcome of one attempted employee creation,
// correlated back to its source row by email
type RowResult struct {
	Success bool     `json:"success"`
	Email   string   `json:"email"`
	Error   string   `json:"error,omitempty"`
	User    *Profile `json:"user,omitempty"`
}

// ImportReport is the merged outcome of one confirmed batch: counts plus
// the ordered list of validation-stage and creation-stage error messages
type ImportReport struct {
	Total      int      `json:"total"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
}
