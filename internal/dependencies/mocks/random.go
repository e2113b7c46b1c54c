package mocks

import (
	"slices"
	"sync"

	"github.com/mcoot/hangman-solver/internal/dependencies/random"
)

// MockRandom replays queued values. Intn falls back to 0 and String to "" once
// the queues run dry, which makes the random strategy pick its first candidate.
type MockRandom struct {
	mu      sync.Mutex
	ints    []int
	strings []string
	bounds  []int
}

var _ random.Random = (*MockRandom)(nil)

func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bounds = append(r.bounds, n)
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < 0 || v >= n {
		// Out-of-range queue entries would index past the caller's slice.
		return 0
	}
	return v
}

func (r *MockRandom) String(_ int, _ string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.strings) == 0 {
		return ""
	}
	v := r.strings[0]
	r.strings = r.strings[1:]
	return v
}

// QueueIntn appends values returned by subsequent Intn calls
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	r.ints = append(r.ints, values...)
	r.mu.Unlock()
}

// QueueString appends session IDs returned by subsequent String calls
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	r.strings = append(r.strings, values...)
	r.mu.Unlock()
}

// IntnBounds returns the n passed to every Intn call so far
func (r *MockRandom) IntnBounds() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.bounds)
}

// Reset drops queued values and recorded calls
func (r *MockRandom) Reset() {
	r.mu.Lock()
	r.ints, r.strings, r.bounds = nil, nil, nil
	r.mu.Unlock()
}
