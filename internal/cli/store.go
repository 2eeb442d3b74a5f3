package cli

import (
	"github.com/mesh-intelligence/flights/internal/search"
	"github.com/mesh-intelligence/flights/internal/sqlite"
	"github.com/mesh-intelligence/flights/internal/workers"
	"github.com/mesh-intelligence/flights/pkg/types"
)

// session is an attached store plus the engine searching it. Close must be
// called when the command is done.
type session struct {
	backend *sqlite.Backend
	network *workers.Network
	engine  *search.Engine
}

// openSession attaches the configured backend and builds a search engine
// whose store queries run on a bounded worker pool.
func (a *app) openSession() (*session, error) {
	backend := sqlite.NewBackend()
	cfg := types.Config{Backend: a.cfg.Backend, DataDir: a.cfg.DataDir}
	if err := cfg.Validate(); err != nil {
		return nil, userError("backend %q: %w", a.cfg.Backend, err)
	}
	if err := backend.Attach(cfg); err != nil {
		return nil, sysError("attach backend: %w", err)
	}

	pool, err := workers.NewPool(workers.PoolConfig{MaxWorkers: a.cfg.MaxWorkers})
	if err != nil {
		backend.Detach()
		return nil, sysError("%w", err)
	}
	network := workers.NewNetwork(backend, pool)

	engine := search.New(network, search.Options{
		Logger:          a.logger,
		ReferencePolicy: a.cfg.ReferencePolicy,
		DistanceSlack:   a.cfg.DistanceSlack,
		MaxConcurrency:  a.cfg.MaxConcurrency,
	})
	return &session{backend: backend, network: network, engine: engine}, nil
}

func (s *session) Close() {
	s.network.Release()
	s.backend.Detach()
}
