package search

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/mesh-intelligence/flights/pkg/types"
)

var errStoreDown = errors.New("store down")

// memNetwork is an in-memory types.Network for engine tests. Queries listed
// in failOn return errStoreDown. It is read-only after construction.
type memNetwork struct {
	airports []types.Airport
	routes   []types.Route
	failOn   map[string]bool
	calls    atomic.Int64
}

func newMemNetwork(airports []types.Airport, routes ...types.Route) *memNetwork {
	return &memNetwork{airports: airports, routes: routes, failOn: map[string]bool{}}
}

func (n *memNetwork) check(ctx context.Context, key string) error {
	n.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.failOn[key] {
		return fmt.Errorf("%s: %w", key, errStoreDown)
	}
	return nil
}

func (n *memNetwork) FindAirports(ctx context.Context, city string) ([]types.Airport, error) {
	if err := n.check(ctx, "city:"+city); err != nil {
		return nil, err
	}
	var out []types.Airport
	for _, a := range n.airports {
		if a.City == city {
			out = append(out, a)
		}
	}
	return out, nil
}

func (n *memNetwork) FindAirportByCode(ctx context.Context, code string) ([]types.Airport, error) {
	if err := n.check(ctx, "airport:"+code); err != nil {
		return nil, err
	}
	for _, a := range n.airports {
		if a.Code == code {
			return []types.Airport{a}, nil
		}
	}
	return nil, nil
}

func (n *memNetwork) FindDepartureRoutes(ctx context.Context, airportCode string) ([]types.Route, error) {
	if err := n.check(ctx, "departures:"+airportCode); err != nil {
		return nil, err
	}
	var out []types.Route
	for _, r := range n.routes {
		if r.SourceCode == airportCode {
			out = append(out, r)
		}
	}
	return out, nil
}

func (n *memNetwork) FindAirportRoutes(ctx context.Context, srcCode, dstCode string) ([]types.Route, error) {
	if err := n.check(ctx, "pair:"+srcCode+"-"+dstCode); err != nil {
		return nil, err
	}
	var out []types.Route
	for _, r := range n.routes {
		if r.SourceCode == srcCode && r.DestCode == dstCode {
			out = append(out, r)
		}
	}
	return out, nil
}

func (n *memNetwork) FindCitiesConnectedByRoute(ctx context.Context, route types.Route) (types.CityPair, error) {
	src, err := n.FindAirportByCode(ctx, route.SourceCode)
	if err != nil {
		return types.CityPair{}, err
	}
	dst, err := n.FindAirportByCode(ctx, route.DestCode)
	if err != nil {
		return types.CityPair{}, err
	}
	if len(src) == 0 || len(dst) == 0 {
		return types.CityPair{}, types.ErrNotFound
	}
	return types.CityPair{Source: src[0].City, Dest: dst[0].City}, nil
}

func airport(code, city string, lat, lng float64) types.Airport {
	return types.Airport{Code: code, Name: code + " International", City: city, Latitude: lat, Longitude: lng}
}

func route(src, dst, airline string) types.Route {
	return types.Route{SourceCode: src, DestCode: dst, AirlineCode: airline}
}

// linePath renders an itinerary as "AAA>BBB>CCC" for compact assertions.
func linePath(r types.ConnectedRoutes) string {
	if r.Len() == 0 {
		return ""
	}
	s := r.Links[0].Source.Code
	for _, l := range r.Links {
		s += ">" + l.Dest.Code
	}
	return s
}

func linePaths(routes []types.ConnectedRoutes) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = linePath(r)
	}
	return out
}
