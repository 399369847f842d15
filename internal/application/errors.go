package application

import (
	"errors"

	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrDuplicate           = errors.New("duplicate value")
	ErrConflict            = errors.New("conflict")
	ErrProfileIncomplete   = errors.New("profile incomplete")
	ErrStatusInUse         = errors.New("status is referenced by tickets")
	ErrHasAssignedStudents = errors.New("unit has assigned students")
	ErrNotOwner            = errors.New("ticket belongs to another student")
	ErrTicketNotClosed     = errors.New("ticket is not closed")
	ErrAlreadyRated        = errors.New("ticket already rated")
	ErrTicketFinal         = errors.New("ticket is closed")
	ErrUnknownIdentity     = errors.New("identity not registered")
	ErrInactiveAccount     = errors.New("account is inactive")
)

// FieldError is a validation failure naming the offending field by label.
// It matches ErrValidation under errors.Is.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}

func fieldError(fe *category.FieldError) *FieldError {
	return &FieldError{Field: fe.Label, Message: fe.Message}
}

func invalid(field, msg string) *FieldError {
	return &FieldError{Field: field, Message: msg}
}

// mapRepoErr turns storage errors into the service taxonomy.
func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case repository.IsNotFound(err):
		return ErrNotFound
	case repository.IsUniqueViolation(err):
		return ErrDuplicate
	}
	return err
}
