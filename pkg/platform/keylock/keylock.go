// Package keylock serializes work per resource key without a global lock.
package keylock

import (
	"hash/maphash"
	"sync"
)

const defaultShards = 32

// Sharded distributes keys across a fixed set of mutexes. Two keys may share a
// shard, so holders must not nest locks.
type Sharded struct {
	seed   maphash.Seed
	shards []sync.Mutex
}

// New creates a lock table with n shards; n <= 0 uses 32.
func New(n int) *Sharded {
	if n <= 0 {
		n = defaultShards
	}
	return &Sharded{
		seed:   maphash.MakeSeed(),
		shards: make([]sync.Mutex, n),
	}
}

func (s *Sharded) Lock(key string) {
	s.shards[s.shardFor(key)].Lock()
}

func (s *Sharded) Unlock(key string) {
	s.shards[s.shardFor(key)].Unlock()
}

// Do runs fn while holding the lock for key.
func (s *Sharded) Do(key string, fn func() error) error {
	s.Lock(key)
	defer s.Unlock(key)
	return fn()
}

func (s *Sharded) shardFor(key string) int {
	if key == "" {
		return 0
	}
	return int(maphash.String(s.seed, key) % uint64(len(s.shards)))
}
