package types

// Airport is a single airport in the network. Code is the unique key.
type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Airline labels the carrier operating a route. It is display data only.
type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Route is a directed flight record between two airports operated by one
// airline. Several routes may share a source and destination with different
// airlines.
type Route struct {
	SourceCode  string `json:"source_code"`
	DestCode    string `json:"dest_code"`
	AirlineCode string `json:"airline_code"`
}

// CityPair names the cities at either end of a route.
type CityPair struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`
}
