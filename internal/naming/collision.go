package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
)

// ErrCollision is returned by [Guard.Claim] when an output path is already
// taken within the run.
var ErrCollision = errors.New("output path collides")

// Guard tracks output paths claimed by sources in one run. Every source
// path of the batch is reserved up front so that no item can be written
// over another item's input. All methods are goroutine-safe.
type Guard struct {
	mu      sync.Mutex
	sources map[string]bool   // canonical source paths in the batch
	owners  map[string]string // canonical output path → source that owns it
}

// NewGuard creates a guard reserving every path in sources.
func NewGuard(sources []string) *Guard {
	g := &Guard{
		sources: make(map[string]bool, len(sources)),
		owners:  make(map[string]string, len(sources)),
	}
	for _, s := range sources {
		g.sources[canonical(s)] = true
	}
	return g
}

// Claim records output as belonging to source. It fails if output names a
// source file of the batch or was already claimed by a different source.
// Claiming the same pair twice is allowed.
func (g *Guard) Claim(source, output string) error {
	out := canonical(output)
	src := canonical(source)

	g.mu.Lock()
	defer g.mu.Unlock()

	if out == src {
		return fmt.Errorf("%w with its own source %s", ErrCollision, output)
	}
	if g.sources[out] {
		return fmt.Errorf("%w with input file %s", ErrCollision, output)
	}
	if owner, ok := g.owners[out]; ok && owner != src {
		return fmt.Errorf("%w: %s is already the output of %s", ErrCollision, output, owner)
	}
	g.owners[out] = src
	return nil
}

// canonical returns an absolute, cleaned form of path for comparison.
// Symlinks are not resolved: outputs do not exist yet.
func canonical(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
