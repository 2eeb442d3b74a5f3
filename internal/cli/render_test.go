package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flights/pkg/types"
)

func renderAirport(code, city string, lat, lng float64) types.Airport {
	return types.Airport{Code: code, City: city, Latitude: lat, Longitude: lng}
}

func renderItinerary(t *testing.T, airports ...types.Airport) types.ConnectedRoutes {
	t.Helper()
	var links []types.AirportLink
	for i := 1; i < len(airports); i++ {
		l, err := types.NewAirportLink(airports[i-1], airports[i], []string{"XX"})
		require.NoError(t, err)
		links = append(links, l)
	}
	it := types.NewConnectedRoutes(links[len(links)-1])
	for i := len(links) - 2; i >= 0; i-- {
		it = it.Prepend(links[i])
	}
	return it
}

func TestItineraryViews_Order(t *testing.T) {
	a := renderAirport("AAA", "A", 0, 0)
	b := renderAirport("BBB", "B", 0, 1)
	c := renderAirport("CCC", "C", 0, 2)
	far := renderAirport("FAR", "F", 5, 1)

	its := []types.ConnectedRoutes{
		renderItinerary(t, a, far, c),
		renderItinerary(t, a, b, far, c),
		renderItinerary(t, a, b, c),
		renderItinerary(t, a, c),
	}

	views := itineraryViews(its)
	require.Len(t, views, 4)
	assert.Equal(t, []string{"AAA", "CCC"}, views[0].Path())
	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, views[1].Path())
	assert.Equal(t, []string{"AAA", "FAR", "CCC"}, views[2].Path())
	assert.Equal(t, 3, views[3].Hops)

	assert.InDelta(t, 222.4, views[1].TotalKm, 0.5)
	assert.InDelta(t, views[0].TotalKm, views[1].DisplacementKm, 1e-9)
	assert.Equal(t, []string{"A", "B", "C"}, views[1].Cities)
}

func TestItineraryViews_Empty(t *testing.T) {
	views := itineraryViews(nil)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(errors.New("unknown flag")))
	assert.Equal(t, exitUserError, exitCode(userError("bad input")))
	assert.Equal(t, exitSysError, exitCode(sysError("disk: %w", errors.New("full"))))

	err := sysError("wrapped: %w", types.ErrNetworkDetached)
	assert.ErrorIs(t, err, types.ErrNetworkDetached)
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "warn", "error", " warn "} {
		_, err := newLogger(nil, level)
		assert.NoError(t, err, level)
	}
	_, err := newLogger(nil, "verbose")
	assert.Error(t, err)
}
