// Package types defines the flight-network data model, the Network and Store
// interfaces the route search reads from, and the standard error values
// shared by every backend.
//
// Airports, airlines and routes are reference data loaded once per process.
// AirportLink and ConnectedRoutes are built transiently while a search runs.
package types
