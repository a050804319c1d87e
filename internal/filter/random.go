package filter

import (
	"math/rand/v2"
	"sync"
)

// PickRandom returns a single record chosen by intn, or an empty slice when
// records is empty. intn(n) must return a value in [0, n).
func PickRandom[T any](records []T, intn func(n int) int) []T {
	if len(records) == 0 {
		return []T{}
	}
	return []T{records[intn(len(records))]}
}

// Picker draws uniform indices. It is safe for concurrent use.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker creates a Picker over src. A nil src uses the runtime's global
// generator.
func NewPicker(src rand.Source) *Picker {
	if src == nil {
		return &Picker{}
	}
	return &Picker{rng: rand.New(src)}
}

// Intn returns a uniform index in [0, n).
func (p *Picker) Intn(n int) int {
	if p == nil || p.rng == nil {
		return rand.IntN(n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}
