// Package workers bounds how many flight-network queries run at once.
//
// A route search fans out into many concurrent lookups. NewNetwork wraps a
// types.Network so every query runs on a fixed-size ants pool; callers beyond
// the pool size wait for a free worker.
package workers

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
)

// DefaultMaxWorkers is used when PoolConfig.MaxWorkers is not positive.
const DefaultMaxWorkers = 16

// PoolConfig sizes the worker pool.
type PoolConfig struct {
	MaxWorkers int
}

// NewPool creates a blocking ants pool sized by config.
func NewPool(config PoolConfig) (*ants.Pool, error) {
	size := config.MaxWorkers
	if size <= 0 {
		size = DefaultMaxWorkers
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	return pool, nil
}
