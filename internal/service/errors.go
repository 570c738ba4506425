package service

import "errors"

var (
	ErrNoSearchTerm  = errors.New("no search term provided")
	ErrNoSpecialty   = errors.New("no specialty provided")
	ErrInvalidISSN   = errors.New("invalid ISSN provided")
	ErrNoCatalogTerm = errors.New("no catalog search term provided")

	// ErrServiceNotReady is returned while the one-time initialization
	// has not completed yet. Requests arriving during startup are
	// rejected with this error rather than served against a
	// half-initialized backend.
	ErrServiceNotReady = errors.New("service is not ready")

	// ErrInitializationFailed wraps any failure of the one-time startup
	// sequence.
	ErrInitializationFailed = errors.New("service initialization failed")
)
