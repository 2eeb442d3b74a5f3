package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/mesh-intelligence/flights/pkg/types"
)

const metersPerKm = 1000

// linkView is one hop of an itinerary as presented to the user.
type linkView struct {
	From       string   `json:"from"`
	FromCity   string   `json:"from_city"`
	To         string   `json:"to"`
	ToCity     string   `json:"to_city"`
	Airlines   []string `json:"airlines"`
	DistanceKm float64  `json:"distance_km"`
}

// itineraryView is one itinerary with its display metrics.
type itineraryView struct {
	Hops           int        `json:"hops"`
	TotalKm        float64    `json:"total_km"`
	DisplacementKm float64    `json:"displacement_km"`
	Cities         []string   `json:"cities"`
	Links          []linkView `json:"links"`
}

// Path returns the airport codes visited, in order.
func (v itineraryView) Path() []string {
	if len(v.Links) == 0 {
		return nil
	}
	codes := []string{v.Links[0].From}
	for _, l := range v.Links {
		codes = append(codes, l.To)
	}
	return codes
}

// itineraryViews converts search results for display, ordered by hop count
// then total distance. Ties keep the path order so output is stable.
func itineraryViews(its []types.ConnectedRoutes) []itineraryView {
	views := make([]itineraryView, 0, len(its))
	for _, it := range its {
		v := itineraryView{
			Hops:           it.Len(),
			TotalKm:        it.TotalDistance() / metersPerKm,
			DisplacementKm: it.Displacement() / metersPerKm,
			Cities:         it.Cities(),
			Links:          make([]linkView, 0, it.Len()),
		}
		for _, l := range it.Links {
			v.Links = append(v.Links, linkView{
				From:       l.Source.Code,
				FromCity:   l.Source.City,
				To:         l.Dest.Code,
				ToCity:     l.Dest.City,
				Airlines:   l.Airlines,
				DistanceKm: l.Distance / metersPerKm,
			})
		}
		views = append(views, v)
	}

	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.Hops != b.Hops {
			return a.Hops < b.Hops
		}
		if a.TotalKm != b.TotalKm {
			return a.TotalKm < b.TotalKm
		}
		return fmt.Sprint(a.Path()) < fmt.Sprint(b.Path())
	})
	return views
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
