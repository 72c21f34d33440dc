// Package usecase implements the business logic for the countries feature.
package usecase

import "errors"

var (
	// ErrUpstreamUnavailable is returned when an external data source is
	// unreachable or responds with a non-success status. External API clients
	// wrap this sentinel so callers can classify with errors.Is.
	ErrUpstreamUnavailable = errors.New("upstream data source unavailable")

	// ErrCountryNotFound is returned when no country matches the given name.
	ErrCountryNotFound = errors.New("country not found")
)
