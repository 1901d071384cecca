// Package idgen issues per-type sequential identifiers for fleet entities.
package idgen

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// Generator hands out identifiers of the form "<tag>_<n>" where n starts at 1
// and increases strictly for each tag. A Generator is safe for concurrent use.
type Generator struct {
	counters sync.Map // lowercased tag -> *atomic.Uint64
}

// New returns a Generator with all counters at zero.
func New() *Generator {
	return &Generator{}
}

// Next returns the next identifier for the given type tag.
func (g *Generator) Next(tag string) string {
	key := strings.ToLower(strings.TrimSpace(tag))
	v, _ := g.counters.LoadOrStore(key, new(atomic.Uint64))
	n := v.(*atomic.Uint64).Add(1)
	return fmt.Sprintf("%s_%d", key, n)
}

// Peek reports the last counter value issued for tag, or 0 if none.
func (g *Generator) Peek(tag string) uint64 {
	v, ok := g.counters.Load(strings.ToLower(strings.TrimSpace(tag)))
	if !ok {
		return 0
	}
	return v.(*atomic.Uint64).Load()
}
