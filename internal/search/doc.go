// Package search finds itineraries between two cities over a types.Network.
//
// FindCityRoutes returns every direct route between the airports of two
// cities. FindCityIndirectRoutes enumerates every multi-hop itinerary within
// a connection budget, expanding one hop at a time from each source airport.
// A branch stops when it reaches the target city, when it would revisit a
// city already on the path, when a hop is too long compared with the straight
// distance between the two cities, or when the budget runs out.
//
// Every store query at a given level is issued concurrently and the level
// returns only once all of them have completed. The first store failure
// fails the whole search; sibling queries already running are allowed to
// finish. Callers bound a search with the context they pass in.
//
// The engine does not memoize. A state reached along several paths is
// recomputed each time, so work grows exponentially with the connection
// budget on dense networks.
package search
