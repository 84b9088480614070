package domain

import "errors"

// Sentinel errors shared across repositories and services. Controllers map
// these to HTTP status codes; anything else becomes a generic 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyRegistered  = errors.New("already registered")
	ErrHasRegistrations   = errors.New("event has registrations")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
