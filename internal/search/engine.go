package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/mesh-intelligence/flights/pkg/types"
)

// DefaultDistanceSlack is the margin applied to a hop's distance before it is
// compared with the reference straight distance.
const DefaultDistanceSlack = 1.1

// Options tunes an Engine. Zero values select the defaults.
type Options struct {
	// Logger receives debug records for each search. Defaults to slog.Default().
	Logger *slog.Logger

	// ReferencePolicy picks the straight distance that bounds every hop.
	// Defaults to ReferenceFirst.
	ReferencePolicy ReferencePolicy

	// DistanceSlack multiplies each hop distance before the distance prune.
	// Defaults to DefaultDistanceSlack.
	DistanceSlack float64

	// MaxConcurrency caps the goroutines started by one fan-out. Zero or
	// negative means unbounded.
	MaxConcurrency int
}

// Engine runs route searches against a Network. It holds no per-search state
// and is safe for concurrent use.
type Engine struct {
	network        types.Network
	logger         *slog.Logger
	policy         ReferencePolicy
	slack          float64
	maxConcurrency int
}

// New creates an Engine reading from network.
func New(network types.Network, opts Options) *Engine {
	e := &Engine{
		network:        network,
		logger:         opts.Logger,
		policy:         opts.ReferencePolicy,
		slack:          opts.DistanceSlack,
		maxConcurrency: opts.MaxConcurrency,
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.policy == "" {
		e.policy = ReferenceFirst
	}
	if e.slack <= 0 {
		e.slack = DefaultDistanceSlack
	}
	return e
}

// resolveCities looks up the airports of both cities concurrently.
func (e *Engine) resolveCities(ctx context.Context, citySrc, cityDest string) ([]types.Airport, []types.Airport, error) {
	var src, dst []types.Airport
	p := pool.New().WithErrors().WithFirstError()
	p.Go(func() error {
		var err error
		src, err = e.network.FindAirports(ctx, citySrc)
		return wrapStoreErr(err, "finding airports in %q", citySrc)
	})
	p.Go(func() error {
		var err error
		dst, err = e.network.FindAirports(ctx, cityDest)
		return wrapStoreErr(err, "finding airports in %q", cityDest)
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}
	return src, dst, nil
}

// newSearchID returns a UUID v7 used to correlate log records of one search.
func newSearchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
