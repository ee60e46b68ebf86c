// Package layout derives the grid geometry of the storefront from the
// viewport width.
package layout

import (
	"math"
	"sync"
)

// Grid sizing constants
const (
	// DefaultCardWidth is the design width of a product card
	DefaultCardWidth float32 = 180

	// SkeletonRows is the number of placeholder rows shown while loading
	SkeletonRows = 5
)

// Columns returns max(1, floor(width / cardWidth)).
// Non-finite or non-positive inputs yield a single column.
func Columns(width, cardWidth float32) int {
	w, c := float64(width), float64(cardWidth)
	if c <= 0 || math.IsNaN(c) || math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return 1
	}

	cols := math.Floor(w / c)
	if cols < 1 {
		return 1
	}
	if cols > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(cols)
}

// SkeletonCount returns how many placeholder cards fill the skeleton grid
func SkeletonCount(columns int) int {
	if columns < 1 {
		columns = 1
	}
	return columns * SkeletonRows
}

// Rows returns the number of grid rows needed to hold n cards
func Rows(n, columns int) int {
	if n <= 0 {
		return 0
	}
	if columns < 1 {
		columns = 1
	}
	return (n + columns - 1) / columns
}

// Calculator keeps the current column count for a fixed card width and
// notifies subscribers when the count changes
type Calculator struct {
	mu        sync.Mutex
	cardWidth float32
	width     float32
	columns   int

	nextID    int
	listeners map[int]func(columns int)
}

// NewCalculator creates a calculator for the given card width
func NewCalculator(cardWidth float32) *Calculator {
	if cardWidth <= 0 {
		cardWidth = DefaultCardWidth
	}
	return &Calculator{
		cardWidth: cardWidth,
		columns:   1,
		listeners: make(map[int]func(int)),
	}
}

// CardWidth returns the card width the calculator divides by
func (c *Calculator) CardWidth() float32 {
	return c.cardWidth
}

// Columns returns the last computed column count
func (c *Calculator) Columns() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.columns
}

// Width returns the last viewport width passed to Update
func (c *Calculator) Width() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

// Update recomputes the column count for a new viewport width.
// Subscribers are only called when the count actually changed.
func (c *Calculator) Update(width float32) (columns int, changed bool) {
	c.mu.Lock()
	c.width = width
	columns = Columns(width, c.cardWidth)
	changed = columns != c.columns
	c.columns = columns

	var listeners []func(int)
	if changed {
		listeners = make([]func(int), 0, len(c.listeners))
		for _, fn := range c.listeners {
			listeners = append(listeners, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(columns)
	}
	return columns, changed
}

// Subscribe registers fn for column changes and returns its cancel func
func (c *Calculator) Subscribe(fn func(columns int)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}
