package services

import (
	"math/rand/v2"
	"sync"

	"github.com/custodia-labs/style-selector/internal/core/ports/driven"
)

// Ensure the choosers implement the interface.
var (
	_ driven.Chooser = (*SeededChooser)(nil)
	_ driven.Chooser = GlobalChooser{}
)

// GlobalChooser draws from the process-wide random source.
type GlobalChooser struct{}

// IntN returns a uniform value in [0, n).
func (GlobalChooser) IntN(n int) int {
	return rand.IntN(n)
}

// SeededChooser draws from a deterministic source, for reproducible batches.
type SeededChooser struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededChooser creates a chooser seeded with seed.
func NewSeededChooser(seed uint64) *SeededChooser {
	return &SeededChooser{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// IntN returns a uniform value in [0, n).
func (c *SeededChooser) IntN(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.IntN(n)
}
