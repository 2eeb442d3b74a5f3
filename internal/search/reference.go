package search

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/flights/pkg/geo"
	"github.com/mesh-intelligence/flights/pkg/types"
)

// ReferencePolicy selects the straight distance that bounds every hop of an
// indirect search when a city has more than one airport.
type ReferencePolicy string

// Reference distance policies.
const (
	// ReferenceFirst measures between the first airport found for each city.
	// Every source airport shares that one distance even when the cities
	// have several airports far apart.
	ReferenceFirst ReferencePolicy = "first"

	// ReferenceMin takes the shortest distance over all airport pairs.
	ReferenceMin ReferencePolicy = "min"

	// ReferenceMax takes the longest distance over all airport pairs.
	ReferenceMax ReferencePolicy = "max"

	// ReferenceAverage takes the mean distance over all airport pairs.
	ReferenceAverage ReferencePolicy = "average"
)

// ParseReferencePolicy converts a configuration value to a policy. The empty
// string selects ReferenceFirst.
func ParseReferencePolicy(s string) (ReferencePolicy, error) {
	switch p := ReferencePolicy(s); p {
	case "":
		return ReferenceFirst, nil
	case ReferenceFirst, ReferenceMin, ReferenceMax, ReferenceAverage:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", types.ErrInvalidPolicy, s)
	}
}

// Distance computes the reference distance between the two airport sets.
// Both sets must be non-empty.
func (p ReferencePolicy) Distance(src, dst []types.Airport) float64 {
	if p == ReferenceFirst || p == "" {
		return airportDistance(src[0], dst[0])
	}

	lo, hi, sum := math.Inf(1), 0.0, 0.0
	for _, a := range src {
		for _, b := range dst {
			d := airportDistance(a, b)
			lo = math.Min(lo, d)
			hi = math.Max(hi, d)
			sum += d
		}
	}
	switch p {
	case ReferenceMin:
		return lo
	case ReferenceMax:
		return hi
	default:
		return sum / float64(len(src)*len(dst))
	}
}

func airportDistance(a, b types.Airport) float64 {
	return geo.Distance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}
