package screen

import (
	"github.com/ytget/storefront/internal/layout"
	"github.com/ytget/storefront/internal/model"
)

// Mode selects which grid the render layer shows
type Mode string

const (
	ModeSkeleton Mode = "skeleton"
	ModeGrid     Mode = "grid"
	ModeEmpty    Mode = "empty"
)

// Card is the render-ready data of one product card
type Card struct {
	ID       string
	Name     string
	ImageURL string
	Price    string
	Quantity int
	Favorite bool
}

// ViewState is everything a render layer needs to draw the screen
type ViewState struct {
	Mode          Mode
	LoadState     model.LoadState
	Columns       int
	Cards         []Card
	SkeletonCount int
	Dim           bool    // skeleton pulse flag
	Opacity       float32 // alpha for skeleton blocks
	Alert         string  // non-empty once the fetch failed
}

// Rows returns the number of grid rows for the current mode
func (v ViewState) Rows() int {
	switch v.Mode {
	case ModeSkeleton:
		return layout.Rows(v.SkeletonCount, v.Columns)
	case ModeGrid:
		return layout.Rows(len(v.Cards), v.Columns)
	default:
		return 0
	}
}

// CardAt returns the card at row/col of the grid
func (v ViewState) CardAt(row, col int) (Card, bool) {
	if v.Mode != ModeGrid || col < 0 || col >= v.Columns || row < 0 {
		return Card{}, false
	}
	idx := row*v.Columns + col
	if idx >= len(v.Cards) {
		return Card{}, false
	}
	return v.Cards[idx], true
}

// Structure identifies the grid shape; render layers rebuild when it changes
// and only refresh card contents otherwise
type Structure struct {
	Mode    Mode
	Columns int
	Count   int
}

// Structure returns the structural key of the view
func (v ViewState) Structure() Structure {
	count := len(v.Cards)
	if v.Mode == ModeSkeleton {
		count = v.SkeletonCount
	}
	return Structure{Mode: v.Mode, Columns: v.Columns, Count: count}
}
