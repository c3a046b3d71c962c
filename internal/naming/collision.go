package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver tracks output names claimed during a commit pass and
// disambiguates duplicates with " - dupN" suffixes inserted before the
// extension. Two files matching the same reference row would otherwise
// overwrite each other in the archive. All methods are goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // output name → input path that owns it
	counters map[string]int    // base output name → next dup counter
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Resolve returns the final output name for input. If requested is
// unclaimed (or already owned by input), it is returned as-is; otherwise a
// " - dupN" variant is generated.
func (cr *CollisionResolver) Resolve(input, requested string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	owner, exists := cr.owners[requested]
	if !exists || owner == input {
		cr.owners[requested] = input
		return requested
	}

	ext := filepath.Ext(requested)
	stem := strings.TrimSuffix(requested, ext)

	counter := cr.counters[requested]
	if counter == 0 {
		counter = 1
	}

	for {
		candidate := fmt.Sprintf("%s - dup%d%s", stem, counter, ext)
		cOwner, cExists := cr.owners[candidate]
		if !cExists || cOwner == input {
			cr.counters[requested] = counter + 1
			cr.owners[candidate] = input
			return candidate
		}
		counter++
	}
}
