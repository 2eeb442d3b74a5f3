package search

import (
	"context"

	"github.com/mesh-intelligence/flights/pkg/types"
)

// FindCityRoutes returns every direct route from an airport of citySrc to an
// airport of cityDest. All airport pairs are queried concurrently. A city
// without airports yields an empty result, not an error. Order is not
// significant.
func (e *Engine) FindCityRoutes(ctx context.Context, citySrc, cityDest string) ([]types.Route, error) {
	src, dst, err := e.resolveCities(ctx, citySrc, cityDest)
	if err != nil {
		return nil, err
	}
	if len(src) == 0 || len(dst) == 0 {
		return []types.Route{}, nil
	}

	f := newFanout[types.Route](e.maxConcurrency)
	for _, a := range src {
		f.Go(func() ([]types.Route, error) {
			return e.FindAirportRoutes(ctx, a, dst)
		})
	}
	routes, err := f.Wait()
	if err != nil {
		return nil, err
	}

	e.logger.DebugContext(ctx, "direct routes found",
		"from", citySrc, "to", cityDest, "routes", len(routes))
	return routes, nil
}

// FindAirportRoutes returns the direct routes from src to each of dests,
// querying every pair concurrently.
func (e *Engine) FindAirportRoutes(ctx context.Context, src types.Airport, dests []types.Airport) ([]types.Route, error) {
	f := newFanout[types.Route](e.maxConcurrency)
	for _, d := range dests {
		f.Go(func() ([]types.Route, error) {
			routes, err := e.network.FindAirportRoutes(ctx, src.Code, d.Code)
			return routes, wrapStoreErr(err, "finding routes %s->%s", src.Code, d.Code)
		})
	}
	return f.Wait()
}
