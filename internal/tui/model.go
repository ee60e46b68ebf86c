// Package tui renders the storefront screen in a terminal with Bubble Tea.
package tui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/storefront/internal/screen"
)

// DefaultTermWidth is assumed until the first WindowSizeMsg arrives
const DefaultTermWidth = 80

// changedMsg tells the model the screen's view state may have changed
type changedMsg struct{}

// Model is the Bubble Tea model of the storefront
type Model struct {
	screen    *screen.Screen
	keys      keyMap
	spinner   spinner.Model
	cardWidth int

	termWidth  int
	termHeight int
	cursorRow  int
	cursorCol  int

	view     screen.ViewState
	quitting bool
}

// New creates a model drawing scr with cards cardWidth cells wide
func New(scr *screen.Screen, cardWidth int) Model {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = spinnerStyle

	return Model{
		screen:    scr,
		keys:      defaultKeyMap(),
		spinner:   s,
		cardWidth: cardWidth,
		termWidth: DefaultTermWidth,
		view:      scr.View(),
	}
}

// Run mounts scr, runs the program until quit and unmounts on the way out
func Run(ctx context.Context, scr *screen.Screen, cardWidth int) error {
	p := tea.NewProgram(New(scr, cardWidth), tea.WithAltScreen(), tea.WithContext(ctx))

	// Send blocks while Update runs, and Update itself triggers changes
	scr.SetChangeCallback(func() {
		go p.Send(changedMsg{})
	})

	scr.Mount(ctx, DefaultTermWidth, nil)
	defer scr.Unmount()

	if _, err := p.Run(); err != nil {
		log.Printf("Terminal program stopped with error: %v", err)
		return err
	}
	return nil
}

// Quitting reports whether the user asked to quit
func (m Model) Quitting() bool {
	return m.quitting
}

// selected returns the card under the cursor
func (m Model) selected() (screen.Card, bool) {
	return m.view.CardAt(m.cursorRow, m.cursorCol)
}

// clampCursor keeps the cursor on an existing card
func (m *Model) clampCursor() {
	if m.view.Mode != screen.ModeGrid || len(m.view.Cards) == 0 {
		m.cursorRow, m.cursorCol = 0, 0
		return
	}

	columns := m.view.Columns
	last := len(m.view.Cards) - 1
	idx := m.cursorRow*columns + m.cursorCol
	if m.cursorCol >= columns {
		idx = m.cursorRow*columns + columns - 1
	}
	if idx > last {
		idx = last
	}
	if idx < 0 {
		idx = 0
	}
	m.cursorRow, m.cursorCol = idx/columns, idx%columns
}
