package service

import "errors"

// Sentinel errors shared by the business services. Handlers map these
// to HTTP statuses.
var (
	ErrNotFound           = errors.New("record not found")
	ErrSlugExists         = errors.New("slug already exists")
	ErrCategoryNotEmpty   = errors.New("category still has products")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrValidation         = errors.New("validation failed")
)

// FieldErrors maps form field names to their validation messages. All
// failing fields are reported together in one response.
type FieldErrors map[string]string

// Error implements the error interface.
func (e FieldErrors) Error() string {
	return ErrValidation.Error()
}

// Is makes errors.Is(err, ErrValidation) match FieldErrors values.
func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}
