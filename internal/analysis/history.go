// ABOUTME: Bounded FIFO history buffer for rolling scalar features
// ABOUTME: Oldest entry is evicted once the capacity is reached
package analysis

// History is a bounded FIFO of scalar samples. Pushing past capacity evicts
// the oldest entry.
type History struct {
	capacity int
	values   []float64
}

// NewHistory creates a history buffer holding at most capacity samples
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		capacity: capacity,
		values:   make([]float64, 0, capacity),
	}
}

// Push appends v, evicting the oldest sample when full
func (h *History) Push(v float64) {
	if len(h.values) == h.capacity {
		copy(h.values, h.values[1:])
		h.values = h.values[:len(h.values)-1]
	}
	h.values = append(h.values, v)
}

// Len returns the number of stored samples
func (h *History) Len() int { return len(h.values) }

// Last returns the most recent n samples in arrival order. Fewer are
// returned when the buffer holds less than n.
func (h *History) Last(n int) []float64 {
	if n > len(h.values) {
		n = len(h.values)
	}
	return h.values[len(h.values)-n:]
}

// Values returns a copy of all stored samples, oldest first
func (h *History) Values() []float64 {
	out := make([]float64, len(h.values))
	copy(out, h.values)
	return out
}
