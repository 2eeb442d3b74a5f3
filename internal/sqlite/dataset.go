package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/flights/pkg/types"
)

// Dataset is the full content of a data directory.
type Dataset struct {
	Airports []types.Airport
	Airlines []types.Airline
	Routes   []types.Route
}

// WriteDataset writes ds to the JSONL files in dataDir, replacing each file
// atomically. The data directory is created if needed. A backend already
// attached to dataDir sees the new data on its next Attach.
func WriteDataset(dataDir string, ds Dataset) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	airports, err := encodeRecords(ds.Airports)
	if err != nil {
		return fmt.Errorf("encoding airports: %w", err)
	}
	airlines, err := encodeRecords(ds.Airlines)
	if err != nil {
		return fmt.Errorf("encoding airlines: %w", err)
	}
	routes, err := encodeRecords(ds.Routes)
	if err != nil {
		return fmt.Errorf("encoding routes: %w", err)
	}

	files := []struct {
		name    string
		records []json.RawMessage
	}{
		{airportsJSONL, airports},
		{airlinesJSONL, airlines},
		{routesJSONL, routes},
	}
	for _, f := range files {
		if err := writeJSONL(filepath.Join(dataDir, f.name), f.records); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
	}
	return nil
}
