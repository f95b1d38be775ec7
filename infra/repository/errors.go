package repository

import (
	"errors"

	"github.com/amirasaad/backoffice/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors.
// Traverses the error chain to find GORM errors and maps them to appropriate domain errors.
// Unmapped errors are returned unchanged.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		switch {
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		case errors.Is(currentErr, gorm.ErrForeignKeyViolated):
			return domain.ErrNotFound
		}
		currentErr = errors.Unwrap(currentErr)
	}

	return err
}

// WrapError wraps a GORM operation and automatically maps errors.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(&p).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
