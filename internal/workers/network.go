package workers

import (
	"context"
	"fmt"

	"github.com/panjf2000/ants/v2"

	"github.com/mesh-intelligence/flights/pkg/types"
)

// Network runs every query of an underlying types.Network on a worker pool.
// A query never submits further work to the pool, so recursive searches
// layered on top cannot starve it.
type Network struct {
	next types.Network
	pool *ants.Pool
}

var _ types.Network = (*Network)(nil)

// NewNetwork wraps next so its queries run on pool.
func NewNetwork(next types.Network, pool *ants.Pool) *Network {
	return &Network{next: next, pool: pool}
}

// Release shuts the pool down. Queries issued afterwards fail.
func (n *Network) Release() {
	n.pool.Release()
}

// Running reports how many queries currently hold a worker.
func (n *Network) Running() int {
	return n.pool.Running()
}

type result[T any] struct {
	value T
	err   error
}

// run submits fn to the pool and waits for it or for ctx to end. When ctx
// ends first the query keeps its worker until it returns; its result is
// dropped.
func run[T any](ctx context.Context, pool *ants.Pool, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	done := make(chan result[T], 1)
	if err := pool.Submit(func() {
		v, err := fn()
		done <- result[T]{value: v, err: err}
	}); err != nil {
		return zero, fmt.Errorf("submitting query: %w", err)
	}

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (n *Network) FindAirports(ctx context.Context, city string) ([]types.Airport, error) {
	return run(ctx, n.pool, func() ([]types.Airport, error) {
		return n.next.FindAirports(ctx, city)
	})
}

func (n *Network) FindAirportByCode(ctx context.Context, code string) ([]types.Airport, error) {
	return run(ctx, n.pool, func() ([]types.Airport, error) {
		return n.next.FindAirportByCode(ctx, code)
	})
}

func (n *Network) FindDepartureRoutes(ctx context.Context, airportCode string) ([]types.Route, error) {
	return run(ctx, n.pool, func() ([]types.Route, error) {
		return n.next.FindDepartureRoutes(ctx, airportCode)
	})
}

func (n *Network) FindAirportRoutes(ctx context.Context, srcCode, dstCode string) ([]types.Route, error) {
	return run(ctx, n.pool, func() ([]types.Route, error) {
		return n.next.FindAirportRoutes(ctx, srcCode, dstCode)
	})
}

func (n *Network) FindCitiesConnectedByRoute(ctx context.Context, route types.Route) (types.CityPair, error) {
	return run(ctx, n.pool, func() (types.CityPair, error) {
		return n.next.FindCitiesConnectedByRoute(ctx, route)
	})
}
