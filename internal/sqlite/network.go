package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/flights/pkg/types"
)

const (
	airportColumns = "code, COALESCE(name, ''), city, COALESCE(country, ''), latitude, longitude"
	routeColumns   = "source_code, dest_code, airline_code"
)

// FindAirports returns the airports of city in load order.
func (b *Backend) FindAirports(ctx context.Context, city string) ([]types.Airport, error) {
	return b.queryAirports(ctx,
		"SELECT "+airportColumns+" FROM airports WHERE city = ? ORDER BY rowid", city)
}

// FindAirportByCode returns the airport with code, or an empty slice.
func (b *Backend) FindAirportByCode(ctx context.Context, code string) ([]types.Airport, error) {
	return b.queryAirports(ctx,
		"SELECT "+airportColumns+" FROM airports WHERE code = ?", code)
}

// FindDepartureRoutes returns every route leaving airportCode in load order.
func (b *Backend) FindDepartureRoutes(ctx context.Context, airportCode string) ([]types.Route, error) {
	return b.queryRoutes(ctx,
		"SELECT "+routeColumns+" FROM routes WHERE source_code = ? ORDER BY rowid", airportCode)
}

// FindAirportRoutes returns the routes from srcCode to dstCode.
func (b *Backend) FindAirportRoutes(ctx context.Context, srcCode, dstCode string) ([]types.Route, error) {
	return b.queryRoutes(ctx,
		"SELECT "+routeColumns+" FROM routes WHERE source_code = ? AND dest_code = ? ORDER BY rowid",
		srcCode, dstCode)
}

// FindCitiesConnectedByRoute returns the cities of both airports of route.
// Returns ErrNotFound if either airport is missing.
func (b *Backend) FindCitiesConnectedByRoute(ctx context.Context, route types.Route) (types.CityPair, error) {
	db, unlock, err := b.acquire()
	if err != nil {
		return types.CityPair{}, err
	}
	defer unlock()

	var pair types.CityPair
	err = db.QueryRowContext(ctx,
		`SELECT s.city, d.city FROM airports s, airports d WHERE s.code = ? AND d.code = ?`,
		route.SourceCode, route.DestCode,
	).Scan(&pair.Source, &pair.Dest)
	if errors.Is(err, sql.ErrNoRows) {
		return types.CityPair{}, types.ErrNotFound
	}
	if err != nil {
		return types.CityPair{}, fmt.Errorf("resolving cities of %s->%s: %w", route.SourceCode, route.DestCode, err)
	}
	return pair, nil
}

// Airlines resolves airline codes to airlines. Unknown codes are absent from
// the result.
func (b *Backend) Airlines(ctx context.Context, codes []string) (map[string]types.Airline, error) {
	out := make(map[string]types.Airline, len(codes))
	if len(codes) == 0 {
		return out, nil
	}

	db, unlock, err := b.acquire()
	if err != nil {
		return nil, err
	}
	defer unlock()

	args := make([]any, len(codes))
	for i, c := range codes {
		args[i] = c
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(codes)), ", ")
	rows, err := db.QueryContext(ctx, "SELECT code, COALESCE(name, '') FROM airlines WHERE code IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("querying airlines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a types.Airline
		if err := rows.Scan(&a.Code, &a.Name); err != nil {
			return nil, fmt.Errorf("scanning airline: %w", err)
		}
		out[a.Code] = a
	}
	return out, rows.Err()
}

func (b *Backend) queryAirports(ctx context.Context, query string, args ...any) ([]types.Airport, error) {
	db, unlock, err := b.acquire()
	if err != nil {
		return nil, err
	}
	defer unlock()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying airports: %w", err)
	}
	defer rows.Close()

	airports := []types.Airport{}
	for rows.Next() {
		var a types.Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Latitude, &a.Longitude); err != nil {
			return nil, fmt.Errorf("scanning airport: %w", err)
		}
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating airports: %w", err)
	}
	return airports, nil
}

func (b *Backend) queryRoutes(ctx context.Context, query string, args ...any) ([]types.Route, error) {
	db, unlock, err := b.acquire()
	if err != nil {
		return nil, err
	}
	defer unlock()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying routes: %w", err)
	}
	defer rows.Close()

	routes := []types.Route{}
	for rows.Next() {
		var r types.Route
		if err := rows.Scan(&r.SourceCode, &r.DestCode, &r.AirlineCode); err != nil {
			return nil, fmt.Errorf("scanning route: %w", err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routes: %w", err)
	}
	return routes, nil
}
