package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/storefront/internal/screen"
)

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.screen.Resize(float32(msg.Width))
		return m.refresh(), nil

	case changedMsg:
		return m.refresh(), nil

	case spinner.TickMsg:
		if m.view.LoadState.IsFinished() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		log.Printf("Quit requested from terminal")
		m.quitting = true
		return m, tea.Quit
	}

	if m.view.Mode != screen.ModeGrid {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursorRow--
	case key.Matches(msg, m.keys.Down):
		m.cursorRow++
	case key.Matches(msg, m.keys.Left):
		m.cursorCol--
	case key.Matches(msg, m.keys.Right):
		m.cursorCol++
	case key.Matches(msg, m.keys.Increase):
		if card, ok := m.selected(); ok {
			m.screen.IncrementQuantity(card.ID)
		}
	case key.Matches(msg, m.keys.Decrease):
		if card, ok := m.selected(); ok {
			m.screen.DecrementQuantity(card.ID)
		}
	case key.Matches(msg, m.keys.Favorite):
		if card, ok := m.selected(); ok {
			m.screen.ToggleFavorite(card.ID)
		}
	default:
		return m, nil
	}

	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	return m.refresh(), nil
}

// refresh pulls a fresh view state from the screen
func (m Model) refresh() Model {
	m.view = m.screen.View()
	m.clampCursor()
	return m
}
