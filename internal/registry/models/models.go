// Package models holds the registry domain types: health programs, clients,
// and the request shapes the HTTP layer decodes into.
package models

import "time"

// HealthProgram is a program record. Immutable after creation; there is no
// update or delete path.
type HealthProgram struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Client is a client record. EnrolledPrograms is the only field mutated after
// creation, and only by the enrollment operation. DateOfBirth is stored as
// opaque text; no date parsing happens anywhere.
type Client struct {
	ID               int       `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DateOfBirth      string    `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	ContactNumber    string    `json:"contact_number"`
	Address          string    `json:"address"`
	EnrolledPrograms []int     `json:"enrolled_programs"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateProgramRequest is the POST /programs/ body.
type CreateProgramRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateClientRequest is the POST /clients/ body.
type CreateClientRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

// EnrollmentRequest is the POST /enrollments/ body.
type EnrollmentRequest struct {
	ClientID  int `json:"client_id"`
	ProgramID int `json:"program_id"`
}

// EnrollmentResult confirms an enrollment request.
type EnrollmentResult struct {
	Message string `json:"message"`
}
