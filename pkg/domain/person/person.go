// Package person holds the identity record owned by accounts.
package person

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
)

var (
	// ErrNameRequired is returned when a person is created without a name.
	ErrNameRequired = errors.New("name is required")
	// ErrNationalIDRequired is returned when a person is created without a national ID.
	ErrNationalIDRequired = errors.New("national id is required")
	// ErrBirthDateRequired is returned when a person is created without a birth date.
	ErrBirthDateRequired = errors.New("birth date is required")
	// ErrPersonNotFound is returned when a person cannot be found.
	ErrPersonNotFound = fmt.Errorf("%w: person not found", domain.ErrNotFound)
)

// DateLayout is the wire format of a birth date.
const DateLayout = "2006-01-02"

// Person is an identity record. It has no update or delete path.
type Person struct {
	ID         uint
	Name       string
	NationalID string
	BirthDate  time.Time
}

// New validates the required fields and returns a Person ready to be persisted.
// The birth date is truncated to a UTC calendar date.
func New(name, nationalID string, birthDate time.Time) (*Person, error) {
	name = strings.TrimSpace(name)
	nationalID = strings.TrimSpace(nationalID)
	if name == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, ErrNameRequired)
	}
	if nationalID == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, ErrNationalIDRequired)
	}
	if birthDate.IsZero() {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, ErrBirthDateRequired)
	}
	return &Person{
		Name:       name,
		NationalID: nationalID,
		BirthDate:  Date(birthDate),
	}, nil
}

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected %s", domain.ErrValidation, s, DateLayout)
	}
	return t, nil
}

// Date strips the clock part of t in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
