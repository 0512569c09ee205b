package models

import (
	"time"
)

// Identity represents an authentication identity backing a profile
type Identity struct {
	ID             string    `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	EmailConfirmed bool      `json:"email_confirmed" db:"email_confirmed"`
	FullName       string    `json:"full_name" db:"full_name"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Profile represents the persisted HR record for one employee,
// keyed by their authentication identity
type Profile struct {
	ID           string    `json:"id" db:"id"`
	EmployeeID   *string   `json:"employee_id,omitempty" db:"employee_id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	IDNumber     *string   `json:"id_number,omitempty" db:"id_number"`
	Department   *string   `json:"department,omitempty" db:"department"`
	Position     *string   `json:"position,omitempty" db:"position"`
	Location     *string   `json:"location,omitempty" db:"location"`
	StartDate    *string   `json:"start_date,omitempty" db:"start_date"`
	ContractType *string   `json:"contract_type,omitempty" db:"contract_type"`
	BaseSalary   float64   `json:"base_salary" db:"base_salary"`
	Role         string    `json:"role" db:"role"`
	Status       string    `json:"status" db:"status"`
	ManagerID    *string   `json:"manager_id,omitempty" db:"manager_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Default values applied when a request or import row leaves them blank
const (
	DefaultRole   = "employee"
	DefaultStatus = "active"
	RoleAdmin     = "admin"
)

// ValidRoles defines allowed profile roles
var ValidRoles = map[string]bool{
	"admin":    true,
	"manager":  true,
	"employee": true,
}

// ValidStatuses defines allowed profile statuses
var ValidStatuses = map[string]bool{
	"active":   true,
	"inactive": true,
	"on_leave": true,
}

// CreateEmployeeRequest is the provisioning request body.
// JSON field names follow the import template headers.
type CreateEmployeeRequest struct {
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone,omitempty"`
	IDNumber     string  `json:"idNumber,omitempty"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	Location     string  `json:"location,omitempty"`
	StartDate    string  `json:"startDate"`
	ContractType string  `json:"contractType,omitempty"`
	BaseSalary   float64 `json:"baseSalary,omitempty"`
	Role         string  `json:"role,omitempty"`
	Status       string  `json:"status,omitempty"`
	ManagerID    string  `json:"managerId,omitempty"`
}

// CreateEmployeeResponse is the provisioning success response
type CreateEmployeeResponse struct {
	Success      bool     `json:"success"`
	User         *Profile `json:"user"`
	TempPassword string   `json:"tempPassword"`
	Message      string   `json:"message"`
}

// UpdateEmployeeRequest carries the mutable profile attributes for PATCH.
// Pointer fields distinguish "not supplied" from "set to empty".
type UpdateEmployeeRequest struct {
	FullName     *string  `json:"fullName,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	IDNumber     *string  `json:"idNumber,omitempty"`
	Department   *string  `json:"department,omitempty"`
	Position     *string  `json:"position,omitempty"`
	Location     *string  `json:"location,omitempty"`
	StartDate    *string  `json:"startDate,omitempty"`
	ContractType *string  `json:"contractType,omitempty"`
	BaseSalary   *float64 `json:"baseSalary,omitempty"`
	Role         *string  `json:"role,omitempty"`
	Status       *string  `json:"status,omitempty"`
	ManagerID    *string  `json:"managerId,omitempty"`
}

// LoginRequest is the credential payload for token issuance
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token and the caller's profile
type LoginResponse struct {
	Token string   `json:"token"`
	User  *Profile `json:"user"`
}
