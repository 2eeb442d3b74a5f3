package types

import (
	"sort"

	"github.com/mesh-intelligence/flights/pkg/geo"
)

// AirportLink is a direct edge between two airports with every airline that
// flies it collapsed into one set.
type AirportLink struct {
	// Source is the departure airport.
	Source Airport `json:"source"`

	// Dest is the arrival airport.
	Dest Airport `json:"dest"`

	// Airlines holds the distinct airline codes serving the pair, sorted.
	// Never empty.
	Airlines []string `json:"airlines"`

	// Distance is the great-circle distance between Source and Dest in meters.
	Distance float64 `json:"distance"`
}

// NewAirportLink builds a link from src to dst served by the given airline
// codes. Duplicate and empty codes are dropped. Returns ErrNoAirlines when no
// airline code remains.
func NewAirportLink(src, dst Airport, airlines []string) (AirportLink, error) {
	set := make(map[string]struct{}, len(airlines))
	codes := make([]string, 0, len(airlines))
	for _, code := range airlines {
		if code == "" {
			continue
		}
		if _, ok := set[code]; ok {
			continue
		}
		set[code] = struct{}{}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return AirportLink{}, ErrNoAirlines
	}
	sort.Strings(codes)

	return AirportLink{
		Source:   src,
		Dest:     dst,
		Airlines: codes,
		Distance: geo.Distance(src.Latitude, src.Longitude, dst.Latitude, dst.Longitude),
	}, nil
}
