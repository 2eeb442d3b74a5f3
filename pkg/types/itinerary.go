package types

import "github.com/mesh-intelligence/flights/pkg/geo"

// ConnectedRoutes is one itinerary: an ordered sequence of links where each
// link departs from the airport the previous one arrived at. Values are
// treated as immutable once built; Prepend returns a copy.
type ConnectedRoutes struct {
	Links []AirportLink `json:"links"`
}

// NewConnectedRoutes returns a single-hop itinerary.
func NewConnectedRoutes(link AirportLink) ConnectedRoutes {
	return ConnectedRoutes{Links: []AirportLink{link}}
}

// Len returns the number of hops.
func (c ConnectedRoutes) Len() int {
	return len(c.Links)
}

// Prepend returns a new itinerary with link in front of c's links. The
// receiver's backing array is never shared with the result.
func (c ConnectedRoutes) Prepend(link AirportLink) ConnectedRoutes {
	links := make([]AirportLink, 0, len(c.Links)+1)
	links = append(links, link)
	links = append(links, c.Links...)
	return ConnectedRoutes{Links: links}
}

// Source returns the departure airport of the first hop.
func (c ConnectedRoutes) Source() Airport {
	if len(c.Links) == 0 {
		return Airport{}
	}
	return c.Links[0].Source
}

// Destination returns the arrival airport of the last hop.
func (c ConnectedRoutes) Destination() Airport {
	if len(c.Links) == 0 {
		return Airport{}
	}
	return c.Links[len(c.Links)-1].Dest
}

// TotalDistance is the sum of every hop's distance in meters.
func (c ConnectedRoutes) TotalDistance() float64 {
	var total float64
	for _, l := range c.Links {
		total += l.Distance
	}
	return total
}

// Displacement is the straight great-circle distance from the first
// departure to the last arrival, regardless of hop count.
func (c ConnectedRoutes) Displacement() float64 {
	if len(c.Links) == 0 {
		return 0
	}
	src, dst := c.Source(), c.Destination()
	return geo.Distance(src.Latitude, src.Longitude, dst.Latitude, dst.Longitude)
}

// Cities lists the cities along the itinerary, starting with the departure
// city and followed by the arrival city of each hop.
func (c ConnectedRoutes) Cities() []string {
	if len(c.Links) == 0 {
		return nil
	}
	cities := make([]string, 0, len(c.Links)+1)
	cities = append(cities, c.Links[0].Source.City)
	for _, l := range c.Links {
		cities = append(cities, l.Dest.City)
	}
	return cities
}

// Validate checks path continuity. Returns ErrEmptyItinerary for an
// itinerary without hops and ErrDiscontinuous when a hop does not depart
// from the previous arrival airport.
func (c ConnectedRoutes) Validate() error {
	if len(c.Links) == 0 {
		return ErrEmptyItinerary
	}
	for i := 1; i < len(c.Links); i++ {
		if c.Links[i-1].Dest.Code != c.Links[i].Source.Code {
			return ErrDiscontinuous
		}
	}
	return nil
}
