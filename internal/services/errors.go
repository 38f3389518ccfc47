package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an identifier does not resolve to a record
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when the store rejects a write as a duplicate
	// or as pointing at a record that is gone
	ErrConflict = errors.New("record conflicts with an existing one")
	// ErrNameTaken is reported on the name field when a unique name is reused
	ErrNameTaken = errors.New("an entry with this name already exists")
	// ErrInvalidChoice is reported on reference fields that do not resolve
	ErrInvalidChoice = errors.New("select a valid choice")
)

// translate maps gorm errors to the service sentinels, keeping the cause
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}
