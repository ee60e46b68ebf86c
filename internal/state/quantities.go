// Package state holds the per-item interaction state of the storefront:
// quantity counters and favorite membership. Both are independent of the
// fetch lifecycle and never touch the network.
package state

// Quantities maps item IDs to non-negative counts; absent means 0
type Quantities struct {
	counts map[string]int
}

// NewQuantities creates an empty quantity map
func NewQuantities() *Quantities {
	return &Quantities{counts: make(map[string]int)}
}

// Get returns the quantity for id
func (q *Quantities) Get(id string) int {
	return q.counts[id]
}

// Increment adds one to id and returns the new quantity
func (q *Quantities) Increment(id string) int {
	q.counts[id]++
	return q.counts[id]
}

// Decrement subtracts one from id, never going below zero
func (q *Quantities) Decrement(id string) int {
	n := q.counts[id] - 1
	if n < 0 {
		n = 0
	}
	q.counts[id] = n
	return n
}

// Total returns the sum of all quantities
func (q *Quantities) Total() int {
	total := 0
	for _, n := range q.counts {
		total += n
	}
	return total
}
