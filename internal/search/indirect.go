package search

import (
	"context"
	"time"

	"github.com/mesh-intelligence/flights/pkg/types"
)

// hopOutcome is the terminal state of one candidate hop.
type hopOutcome int

const (
	hopContinue hopOutcome = iota
	hopArrived
	hopPrunedCycle
	hopPrunedDistance
)

// destinationGroup collects the airlines of every departure to one airport.
type destinationGroup struct {
	code     string
	airlines []string
}

// FindCityIndirectRoutes enumerates itineraries of at most maxConnections
// hops from citySrc to cityDest. A budget of zero or less yields an empty
// result without touching the store, as does a city without airports.
//
// Every hop is bounded by one reference straight distance between the two
// cities, chosen by the engine's ReferencePolicy.
func (e *Engine) FindCityIndirectRoutes(ctx context.Context, citySrc, cityDest string, maxConnections int) ([]types.ConnectedRoutes, error) {
	if maxConnections <= 0 {
		return []types.ConnectedRoutes{}, nil
	}

	log := e.logger.With("search_id", newSearchID(), "from", citySrc, "to", cityDest)
	start := time.Now()

	src, dst, err := e.resolveCities(ctx, citySrc, cityDest)
	if err != nil {
		return nil, err
	}
	if len(src) == 0 || len(dst) == 0 {
		log.DebugContext(ctx, "city has no airports",
			"source_airports", len(src), "dest_airports", len(dst))
		return []types.ConnectedRoutes{}, nil
	}

	reference := e.policy.Distance(src, dst)
	log.DebugContext(ctx, "indirect search started",
		"max_connections", maxConnections, "policy", string(e.policy), "reference_m", reference)

	f := newFanout[types.ConnectedRoutes](e.maxConcurrency)
	for _, a := range src {
		f.Go(func() ([]types.ConnectedRoutes, error) {
			return e.expand(ctx, a, cityDest, maxConnections, reference, visitedSet{})
		})
	}
	routes, err := f.Wait()
	if err != nil {
		log.DebugContext(ctx, "indirect search failed", "error", err)
		return nil, err
	}

	log.DebugContext(ctx, "indirect search finished",
		"itineraries", len(routes), "elapsed", time.Since(start))
	return routes, nil
}

// expand returns every itinerary from current to targetCity using at most
// remaining hops without passing through a visited city.
func (e *Engine) expand(ctx context.Context, current types.Airport, targetCity string, remaining int, reference float64, visited visitedSet) ([]types.ConnectedRoutes, error) {
	if remaining <= 0 {
		return nil, nil
	}

	departures, err := e.network.FindDepartureRoutes(ctx, current.Code)
	if err != nil {
		return nil, wrapStoreErr(err, "finding departures from %s", current.Code)
	}

	f := newFanout[types.ConnectedRoutes](e.maxConcurrency)
	for _, g := range groupByDestination(departures) {
		f.Go(func() ([]types.ConnectedRoutes, error) {
			return e.hop(ctx, current, g, targetCity, remaining, reference, visited)
		})
	}
	return f.Wait()
}

// hop evaluates one candidate hop from current to the airport of g.
func (e *Engine) hop(ctx context.Context, current types.Airport, g destinationGroup, targetCity string, remaining int, reference float64, visited visitedSet) ([]types.ConnectedRoutes, error) {
	found, err := e.network.FindAirportByCode(ctx, g.code)
	if err != nil {
		return nil, wrapStoreErr(err, "finding airport %s", g.code)
	}
	if len(found) == 0 {
		return nil, nil
	}

	link, err := types.NewAirportLink(current, found[0], g.airlines)
	if err != nil {
		// Departure records without an airline code cannot form a link.
		return nil, nil
	}

	switch e.classify(link, targetCity, reference, visited) {
	case hopArrived:
		return []types.ConnectedRoutes{types.NewConnectedRoutes(link)}, nil
	case hopPrunedCycle, hopPrunedDistance:
		return nil, nil
	}

	tails, err := e.expand(ctx, link.Dest, targetCity, remaining-1, reference, visited.With(current.City))
	if err != nil {
		return nil, err
	}
	routes := make([]types.ConnectedRoutes, len(tails))
	for i, tail := range tails {
		routes[i] = tail.Prepend(link)
	}
	return routes, nil
}

// classify decides what happens to a branch after taking link. Arrival is
// checked first, so a hop into the target city is never pruned.
func (e *Engine) classify(link types.AirportLink, targetCity string, reference float64, visited visitedSet) hopOutcome {
	switch {
	case link.Dest.City == targetCity:
		return hopArrived
	case visited.Contains(link.Dest.City):
		return hopPrunedCycle
	case link.Distance*e.slack > reference:
		return hopPrunedDistance
	default:
		return hopContinue
	}
}

// groupByDestination collapses routes sharing a destination airport into one
// group, keeping the order in which destinations first appear.
func groupByDestination(routes []types.Route) []destinationGroup {
	index := make(map[string]int, len(routes))
	groups := make([]destinationGroup, 0, len(routes))
	for _, r := range routes {
		i, ok := index[r.DestCode]
		if !ok {
			i = len(groups)
			index[r.DestCode] = i
			groups = append(groups, destinationGroup{code: r.DestCode})
		}
		groups[i].airlines = append(groups[i].airlines, r.AirlineCode)
	}
	return groups
}
