// Package repository translates domain calls into database queries.
//
// Repositories are constructed with an explicitly injected *gorm.DB whose
// lifecycle is owned by the application entrypoint. "Not found" is reported
// with ErrNotFound so that callers can distinguish an absent record from an
// infrastructure failure; repositories perform no authorization.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("the requested resource does not exist")

// asRepositoryError converts gorm's record-not-found into ErrNotFound and
// passes everything else through unchanged.
func asRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return err
}
