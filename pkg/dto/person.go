package dto

import "time"

// PersonCreate is a DTO for creating a new person.
type PersonCreate struct {
	Name       string
	NationalID string
	BirthDate  time.Time
}

// PersonRead is a read-optimized DTO for person queries and API responses.
type PersonRead struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	BirthDate  Date   `json:"birthDate"`
}
