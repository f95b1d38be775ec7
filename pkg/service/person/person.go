// Package person provides business logic for registering and looking up people.
package person

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/person"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
)

// Service provides business logic for person operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// CreatePerson parses birthDate (YYYY-MM-DD) and registers the person.
func (s *Service) CreatePerson(
	ctx context.Context,
	name, nationalID, birthDate string,
) (*dto.PersonRead, error) {
	var born time.Time
	if strings.TrimSpace(birthDate) != "" {
		parsed, err := person.ParseDate(birthDate)
		if err != nil {
			return nil, err
		}
		born = parsed
	}
	return s.RegisterPerson(ctx, name, nationalID, born)
}

// RegisterPerson validates and stores a new person.
func (s *Service) RegisterPerson(
	ctx context.Context,
	name, nationalID string,
	birthDate time.Time,
) (*dto.PersonRead, error) {
	logger := s.logger.With("handler", "RegisterPerson")

	p, err := person.New(name, nationalID, birthDate)
	if err != nil {
		logger.Debug("invalid person", "error", err)
		return nil, err
	}

	created, err := s.uow.PersonRepository().Create(ctx, dto.PersonCreate{
		Name:       p.Name,
		NationalID: p.NationalID,
		BirthDate:  p.BirthDate,
	})
	if err != nil {
		logger.Error("failed to create person", "error", err)
		return nil, err
	}
	logger.Info("person created", "person_id", created.ID)
	return created, nil
}

// ListPersons returns every person, newest first.
func (s *Service) ListPersons(ctx context.Context) ([]*dto.PersonRead, error) {
	return s.uow.PersonRepository().List(ctx)
}

// GetPerson returns the person with the given ID or person.ErrPersonNotFound.
func (s *Service) GetPerson(ctx context.Context, id uint) (*dto.PersonRead, error) {
	return s.uow.PersonRepository().Get(ctx, id)
}
