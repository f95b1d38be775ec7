package person

import "github.com/amirasaad/backoffice/pkg/dto"

// NewPerson represents the request body for registering a person.
type NewPerson struct {
	Name       string    `json:"name" validate:"required,max=255" example:"A"`
	NationalID string    `json:"nationalId" validate:"required,max=32" example:"123"`
	BirthDate  *dto.Date `json:"birthDate" validate:"required" swaggertype:"string" format:"date" example:"1990-05-17"`
}

// PersonResponse wraps a single person.
type PersonResponse struct {
	Person *dto.PersonRead `json:"person"`
}

// PersonsResponse wraps a list of persons.
type PersonsResponse struct {
	Persons []*dto.PersonRead `json:"persons"`
}
