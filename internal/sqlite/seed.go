package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/flights/pkg/types"
)

// sampleAirports seed a fresh data directory so searches work out of the box.
var sampleAirports = []types.Airport{
	{Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand", Latitude: 13.6811, Longitude: 100.7472},
	{Code: "DMK", Name: "Don Mueang International Airport", City: "Bangkok", Country: "Thailand", Latitude: 13.9126, Longitude: 100.6068},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Latitude: 1.3502, Longitude: 103.9940},
	{Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia", Latitude: 2.7456, Longitude: 101.7099},
	{Code: "CGK", Name: "Soekarno-Hatta International Airport", City: "Jakarta", Country: "Indonesia", Latitude: -6.1256, Longitude: 106.6559},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong", Latitude: 22.3080, Longitude: 113.9185},
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Latitude: 35.7647, Longitude: 140.3864},
	{Code: "HND", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "Japan", Latitude: 35.5523, Longitude: 139.7798},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates", Latitude: 25.2528, Longitude: 55.3644},
	{Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom", Latitude: 51.4706, Longitude: -0.4619},
	{Code: "LGW", Name: "London Gatwick Airport", City: "London", Country: "United Kingdom", Latitude: 51.1481, Longitude: -0.1903},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Latitude: 49.0128, Longitude: 2.5500},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Latitude: 50.0333, Longitude: 8.5706},
}

var sampleAirlines = []types.Airline{
	{Code: "TG", Name: "Thai Airways International"},
	{Code: "FD", Name: "Thai AirAsia"},
	{Code: "SQ", Name: "Singapore Airlines"},
	{Code: "MH", Name: "Malaysia Airlines"},
	{Code: "GA", Name: "Garuda Indonesia"},
	{Code: "CX", Name: "Cathay Pacific"},
	{Code: "JL", Name: "Japan Airlines"},
	{Code: "NH", Name: "All Nippon Airways"},
	{Code: "EK", Name: "Emirates"},
	{Code: "BA", Name: "British Airways"},
	{Code: "AF", Name: "Air France"},
	{Code: "LH", Name: "Lufthansa"},
}

// sampleLinks are flown in both directions by every listed airline.
var sampleLinks = []struct {
	a, b     string
	airlines []string
}{
	{"BKK", "SIN", []string{"TG", "SQ"}},
	{"DMK", "SIN", []string{"FD"}},
	{"BKK", "KUL", []string{"TG", "MH"}},
	{"DMK", "KUL", []string{"FD"}},
	{"BKK", "HKG", []string{"TG", "CX"}},
	{"BKK", "NRT", []string{"TG", "JL", "NH"}},
	{"BKK", "HND", []string{"TG", "NH"}},
	{"BKK", "DXB", []string{"TG", "EK"}},
	{"BKK", "LHR", []string{"TG", "BA"}},
	{"BKK", "CDG", []string{"TG", "AF"}},
	{"BKK", "FRA", []string{"TG", "LH"}},
	{"SIN", "KUL", []string{"SQ", "MH"}},
	{"SIN", "HKG", []string{"SQ", "CX"}},
	{"SIN", "NRT", []string{"SQ", "JL"}},
	{"SIN", "CGK", []string{"SQ", "GA"}},
	{"SIN", "DXB", []string{"SQ", "EK"}},
	{"SIN", "LHR", []string{"SQ", "BA"}},
	{"KUL", "CGK", []string{"MH", "GA"}},
	{"HKG", "NRT", []string{"CX", "JL"}},
	{"HKG", "HND", []string{"CX", "NH"}},
	{"HKG", "LHR", []string{"CX", "BA"}},
	{"DXB", "LHR", []string{"EK", "BA"}},
	{"DXB", "CDG", []string{"EK", "AF"}},
	{"DXB", "FRA", []string{"EK", "LH"}},
	{"LHR", "CDG", []string{"BA", "AF"}},
	{"LHR", "FRA", []string{"BA", "LH"}},
	{"LGW", "CDG", []string{"BA"}},
	{"CDG", "FRA", []string{"AF", "LH"}},
}

// SampleDataset returns the built-in sample network.
func SampleDataset() Dataset {
	ds := Dataset{
		Airports: append([]types.Airport(nil), sampleAirports...),
		Airlines: append([]types.Airline(nil), sampleAirlines...),
	}
	for _, l := range sampleLinks {
		for _, airline := range l.airlines {
			ds.Routes = append(ds.Routes,
				types.Route{SourceCode: l.a, DestCode: l.b, AirlineCode: airline},
				types.Route{SourceCode: l.b, DestCode: l.a, AirlineCode: airline},
			)
		}
	}
	return ds
}

// SeedDataset writes the sample network into dataDir when the directory has
// no airports yet. It reports whether it wrote anything. An existing dataset
// is never overwritten.
func SeedDataset(dataDir string) (bool, error) {
	info, err := os.Stat(filepath.Join(dataDir, airportsJSONL))
	switch {
	case err == nil && info.Size() > 0:
		return false, nil
	case err != nil && !os.IsNotExist(err):
		return false, fmt.Errorf("checking %s: %w", airportsJSONL, err)
	}

	if err := WriteDataset(dataDir, SampleDataset()); err != nil {
		return false, fmt.Errorf("seeding sample dataset: %w", err)
	}
	return true, nil
}
