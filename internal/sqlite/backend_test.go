package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flights/pkg/types"
)

// attachDataset writes ds into a temp data dir and attaches a backend to it.
func attachDataset(t *testing.T, ds Dataset) *Backend {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, WriteDataset(dir, ds))

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()
	b := NewBackend()
	config := types.Config{Backend: types.BackendSQLite, DataDir: tmpDir}

	require.NoError(t, b.Attach(config))
	defer b.Detach()

	assert.FileExists(t, filepath.Join(tmpDir, dbFileName))
	for _, name := range datasetFiles {
		assert.FileExists(t, filepath.Join(tmpDir, name))
	}

	assert.ErrorIs(t, b.Attach(config), types.ErrAlreadyAttached)
}

func TestBackend_AttachInvalidConfig(t *testing.T) {
	b := NewBackend()
	assert.ErrorIs(t, b.Attach(types.Config{}), types.ErrBackendEmpty)
	assert.ErrorIs(t, b.Attach(types.Config{Backend: "postgres"}), types.ErrBackendUnknown)
}

func TestBackend_AttachCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer b.Detach()

	assert.DirExists(t, dir)
	stats, err := b.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}

func TestBackend_Detach(t *testing.T) {
	b := attachDataset(t, SampleDataset())
	ctx := context.Background()

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "second Detach should not error")

	_, err := b.FindAirports(ctx, "Bangkok")
	assert.ErrorIs(t, err, types.ErrNetworkDetached)
	_, err = b.FindAirportByCode(ctx, "BKK")
	assert.ErrorIs(t, err, types.ErrNetworkDetached)
	_, err = b.FindDepartureRoutes(ctx, "BKK")
	assert.ErrorIs(t, err, types.ErrNetworkDetached)
	_, err = b.FindAirportRoutes(ctx, "BKK", "SIN")
	assert.ErrorIs(t, err, types.ErrNetworkDetached)
	_, err = b.FindCitiesConnectedByRoute(ctx, types.Route{SourceCode: "BKK", DestCode: "SIN"})
	assert.ErrorIs(t, err, types.ErrNetworkDetached)
	_, err = b.Airlines(ctx, []string{"TG"})
	assert.ErrorIs(t, err, types.ErrNetworkDetached)
	_, err = b.Stats(ctx)
	assert.ErrorIs(t, err, types.ErrNetworkDetached)
}

func TestBackend_ReattachReloadsDataset(t *testing.T) {
	dir := t.TempDir()
	config := types.Config{Backend: types.BackendSQLite, DataDir: dir}
	b := NewBackend()
	require.NoError(t, b.Attach(config))

	airports, err := b.FindAirports(context.Background(), "Bangkok")
	require.NoError(t, err)
	assert.Empty(t, airports)
	require.NoError(t, b.Detach())

	require.NoError(t, WriteDataset(dir, SampleDataset()))
	require.NoError(t, b.Attach(config))
	defer b.Detach()

	airports, err = b.FindAirports(context.Background(), "Bangkok")
	require.NoError(t, err)
	assert.Len(t, airports, 2)
}

func TestBackend_Stats(t *testing.T) {
	ds := SampleDataset()
	b := attachDataset(t, ds)

	stats, err := b.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Airports: len(ds.Airports), Airlines: len(ds.Airlines), Routes: len(ds.Routes)}, stats)
}

func TestBackend_DatabaseRebuiltOnAttach(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dbFileName), []byte("not a database"), 0o644))
	require.NoError(t, WriteDataset(dir, SampleDataset()))

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer b.Detach()

	airports, err := b.FindAirportByCode(context.Background(), "SIN")
	require.NoError(t, err)
	require.Len(t, airports, 1)
}
