package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name             string
		lat1, lng1       float64
		lat2, lng2       float64
		want, tolerance float64
	}{
		{name: "coincident points", lat1: 13.69, lng1: 100.75, lat2: 13.69, lng2: 100.75, want: 0, tolerance: 1e-9},
		{name: "one degree of latitude", lat1: 0, lng1: 0, lat2: 1, lng2: 0, want: 111195, tolerance: 5},
		{name: "one degree of longitude at equator", lat1: 0, lng1: 0, lat2: 0, lng2: 1, want: 111195, tolerance: 5},
		{name: "antipodal points", lat1: 0, lng1: 0, lat2: 0, lng2: 180, want: math.Pi * EarthRadiusMeters, tolerance: 1},
		{name: "LHR to JFK", lat1: 51.4706, lng1: -0.461941, lat2: 40.639801, lng2: -73.7789, want: 5_550_000, tolerance: 30_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	points := [][2]float64{
		{0, 0}, {1, 0}, {-33.94, 151.17}, {35.55, 139.78}, {64.13, -21.94},
	}
	for _, a := range points {
		for _, b := range points {
			ab := Distance(a[0], a[1], b[0], b[1])
			ba := Distance(b[0], b[1], a[0], a[1])
			assert.InDelta(t, ab, ba, 1e-6)
			assert.GreaterOrEqual(t, ab, 0.0)
		}
	}
}

func TestDistanceCollinearAdds(t *testing.T) {
	ab := Distance(0, 0, 1, 0)
	bc := Distance(1, 0, 2, 0)
	ac := Distance(0, 0, 2, 0)
	assert.InDelta(t, ac, ab+bc, 1e-6)
}
