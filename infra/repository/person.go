package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/backoffice/pkg/domain/person"
	"github.com/amirasaad/backoffice/pkg/dto"
	repo "github.com/amirasaad/backoffice/pkg/repository"
	"gorm.io/gorm"
)

type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a person repository bound to db.
func NewPersonRepository(db *gorm.DB) repo.PersonRepository {
	return &personRepository{db: db}
}

// Create implements repository.PersonRepository.
func (r *personRepository) Create(ctx context.Context, create dto.PersonCreate) (*dto.PersonRead, error) {
	p := Person{
		Name:       create.Name,
		NationalID: create.NationalID,
		BirthDate:  create.BirthDate,
	}
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(&p).Error
	}); err != nil {
		return nil, err
	}
	return mapPersonToDTO(&p), nil
}

// Get implements repository.PersonRepository.
func (r *personRepository) Get(ctx context.Context, id uint) (*dto.PersonRead, error) {
	var p Person
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, person.ErrPersonNotFound
		}
		return nil, MapGormErrorToDomain(err)
	}
	return mapPersonToDTO(&p), nil
}

// List implements repository.PersonRepository.
func (r *personRepository) List(ctx context.Context) ([]*dto.PersonRead, error) {
	var people []Person
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Order("id DESC").Find(&people).Error
	}); err != nil {
		return nil, err
	}
	result := make([]*dto.PersonRead, 0, len(people))
	for i := range people {
		result = append(result, mapPersonToDTO(&people[i]))
	}
	return result, nil
}

func mapPersonToDTO(p *Person) *dto.PersonRead {
	return &dto.PersonRead{
		ID:         p.ID,
		Name:       p.Name,
		NationalID: p.NationalID,
		BirthDate:  dto.Date(person.Date(p.BirthDate)),
	}
}
