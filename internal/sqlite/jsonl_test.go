package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flights/pkg/types"
)

func TestWriteAndReadJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	records := []json.RawMessage{
		json.RawMessage(`{"code":"AAA"}`),
		json.RawMessage(`{"code":"BBB"}`),
	}

	require.NoError(t, writeJSONL(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"code\":\"AAA\"}\n{\"code\":\"BBB\"}\n", string(data))

	got, err := readJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestWriteJSONLLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routes.jsonl")
	require.NoError(t, writeJSONL(path, nil))
	require.NoError(t, writeJSONL(path, []json.RawMessage{json.RawMessage(`{}`)}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "routes.jsonl", entries[0].Name())
}

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.jsonl")
	content := strings.Join([]string{`{"code":"AAA"}`, `{broken`, ``, `{"code":"BBB"}`}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := readJSONL(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReadJSONLMissingFile(t *testing.T) {
	_, err := readJSONL(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}

func TestWriteDatasetRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	ds := Dataset{
		Airports: []types.Airport{{Code: "AAA", City: "CityA", Latitude: 1.5, Longitude: -2.25}},
		Airlines: []types.Airline{{Code: "X1", Name: "Example Air"}},
		Routes:   []types.Route{{SourceCode: "AAA", DestCode: "BBB", AirlineCode: "X1"}},
	}
	require.NoError(t, WriteDataset(dir, ds))

	routes, err := readJSONL(filepath.Join(dir, routesJSONL))
	require.NoError(t, err)
	require.Len(t, routes, 1)
	var r types.Route
	require.NoError(t, json.Unmarshal(routes[0], &r))
	assert.Equal(t, ds.Routes[0], r)
}
