package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("you are not allowed to perform this action")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrRoleNotFound       = errors.New("role not found")
	ErrStoreUnavailable   = errors.New("could not connect to the database")
)
