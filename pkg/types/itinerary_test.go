package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLink(t *testing.T, src, dst Airport, airlines ...string) AirportLink {
	t.Helper()
	link, err := NewAirportLink(src, dst, airlines)
	require.NoError(t, err)
	return link
}

func TestConnectedRoutesMetrics(t *testing.T) {
	ab := mustLink(t, airportA, airportB, "X1")
	bc := mustLink(t, airportB, airportC, "X2")
	route := NewConnectedRoutes(bc).Prepend(ab)

	require.NoError(t, route.Validate())
	assert.Equal(t, 2, route.Len())
	assert.Equal(t, airportA, route.Source())
	assert.Equal(t, airportC, route.Destination())
	assert.Equal(t, []string{"CityA", "CityB", "CityC"}, route.Cities())
	assert.InDelta(t, ab.Distance+bc.Distance, route.TotalDistance(), 1e-6)
	// B sits on the meridian between A and C, so the detour costs nothing.
	assert.InDelta(t, route.TotalDistance(), route.Displacement(), 1e-3)
}

func TestConnectedRoutesDisplacementShorterThanDetour(t *testing.T) {
	east := Airport{Code: "EEE", City: "CityE", Latitude: 1, Longitude: 1}
	route := NewConnectedRoutes(mustLink(t, east, airportC, "X1")).
		Prepend(mustLink(t, airportA, east, "X1"))

	assert.Less(t, route.Displacement(), route.TotalDistance())
}

func TestConnectedRoutesPrependDoesNotMutate(t *testing.T) {
	bc := mustLink(t, airportB, airportC, "X2")
	tail := NewConnectedRoutes(bc)

	first := tail.Prepend(mustLink(t, airportA, airportB, "X1"))
	second := tail.Prepend(mustLink(t, airportC, airportB, "X3"))

	assert.Equal(t, 1, tail.Len())
	assert.Equal(t, "AAA", first.Source().Code)
	assert.Equal(t, "CCC", second.Source().Code)
	assert.Equal(t, "BBB", first.Links[1].Source.Code)
}

func TestConnectedRoutesValidate(t *testing.T) {
	ab := mustLink(t, airportA, airportB, "X1")
	bc := mustLink(t, airportB, airportC, "X2")
	ac := mustLink(t, airportA, airportC, "X3")

	tests := []struct {
		name    string
		route   ConnectedRoutes
		wantErr error
	}{
		{name: "empty", route: ConnectedRoutes{}, wantErr: ErrEmptyItinerary},
		{name: "single hop", route: NewConnectedRoutes(ab)},
		{name: "continuous", route: ConnectedRoutes{Links: []AirportLink{ab, bc}}},
		{name: "gap between hops", route: ConnectedRoutes{Links: []AirportLink{ab, ac}}, wantErr: ErrDiscontinuous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.route.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConnectedRoutesEmpty(t *testing.T) {
	var empty ConnectedRoutes
	assert.Zero(t, empty.TotalDistance())
	assert.Zero(t, empty.Displacement())
	assert.Nil(t, empty.Cities())
	assert.Equal(t, Airport{}, empty.Source())
}
