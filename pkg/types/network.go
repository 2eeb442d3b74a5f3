package types

import (
	"context"
	"errors"
)

// Network is the read contract of a flight-network store. Queries that match
// nothing return an empty slice and a nil error; a non-nil error always means
// the store could not answer.
type Network interface {
	// FindAirports returns the airports located in the named city.
	FindAirports(ctx context.Context, city string) ([]Airport, error)

	// FindAirportByCode returns the airport with the given code. The result
	// normally holds zero or one airport.
	FindAirportByCode(ctx context.Context, code string) ([]Airport, error)

	// FindDepartureRoutes returns every route departing the given airport.
	FindDepartureRoutes(ctx context.Context, airportCode string) ([]Route, error)

	// FindAirportRoutes returns the direct routes from srcCode to dstCode.
	FindAirportRoutes(ctx context.Context, srcCode, dstCode string) ([]Route, error)

	// FindCitiesConnectedByRoute resolves the cities at both ends of route.
	// Returns ErrNotFound if either airport is unknown.
	FindCitiesConnectedByRoute(ctx context.Context, route Route) (CityPair, error)
}

// Store is a Network with a backend lifecycle. Callers attach to a backend,
// query it, and detach when done.
type Store interface {
	Network

	// Attach connects the store to the backend described by config and loads
	// the dataset. Returns ErrAlreadyAttached if called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach, queries
	// return ErrNetworkDetached.
	Detach() error
}

// Store lifecycle and lookup errors.
var (
	ErrNetworkDetached = errors.New("flight network is detached")
	ErrAlreadyAttached = errors.New("flight network is already attached")
	ErrNotFound        = errors.New("entity not found")
)

// Data model errors.
var (
	ErrNoAirlines     = errors.New("airport link needs at least one airline")
	ErrEmptyItinerary = errors.New("itinerary has no hops")
	ErrDiscontinuous  = errors.New("itinerary hops are not continuous")
	ErrInvalidPolicy  = errors.New("unknown reference distance policy")
)
