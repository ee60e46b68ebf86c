package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/screen"
)

type stubFetcher struct {
	items []model.Item
	err   error
}

func (f stubFetcher) FetchItems(ctx context.Context) ([]model.Item, error) {
	return f.items, f.err
}

// createTestModel mounts a screen over stub data and waits for the fetch
func createTestModel(t *testing.T, fetcher stubFetcher) Model {
	t.Helper()

	scr := screen.New(fetcher, screen.Options{CardWidth: 20, PulsePeriod: time.Hour})
	t.Cleanup(scr.Unmount)
	scr.Mount(context.Background(), 40, nil)

	select {
	case <-scr.Loader().Done():
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not finish")
	}

	m := New(scr, 20)
	tm, _ := m.Update(changedMsg{})
	return tm.(Model)
}

func threeItems() stubFetcher {
	return stubFetcher{items: []model.Item{
		{ID: "a1", Name: "Watch", PriceUSD: 49},
		{ID: "b2", Name: "Ring", PriceUSD: 12.5},
		{ID: "c3", Name: "Necklace with a very long name", PriceUSD: 99},
	}}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	tm, _ := m.Update(msg)
	return tm.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_Navigation(t *testing.T) {
	m := createTestModel(t, threeItems())

	if m.view.Columns != 2 {
		t.Fatalf("Expected 2 columns, got %d", m.view.Columns)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cursorCol != 1 {
		t.Errorf("Expected cursorCol 1, got %d", m.cursorCol)
	}

	// Past the last column stays put
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cursorCol != 1 {
		t.Errorf("Expected cursorCol 1 at right edge, got %d", m.cursorCol)
	}

	// Row 1 has a single card, so the cursor snaps onto it
	m = press(t, m, runes("j"))
	if m.cursorRow != 1 || m.cursorCol != 0 {
		t.Errorf("Expected cursor (1,0), got (%d,%d)", m.cursorRow, m.cursorCol)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = press(t, m, runes("h"))
	if m.cursorRow != 0 || m.cursorCol != 0 {
		t.Errorf("Expected cursor (0,0), got (%d,%d)", m.cursorRow, m.cursorCol)
	}
}

func TestUpdate_QuantityAndFavorite(t *testing.T) {
	m := createTestModel(t, threeItems())

	m = press(t, m, runes("+"))
	m = press(t, m, runes("+"))
	m = press(t, m, runes("-"))
	if got := m.view.Cards[0].Quantity; got != 1 {
		t.Errorf("Expected quantity 1, got %d", got)
	}

	m = press(t, m, runes("-"))
	m = press(t, m, runes("-"))
	if got := m.view.Cards[0].Quantity; got != 0 {
		t.Errorf("Quantity must not go below 0, got %d", got)
	}

	m = press(t, m, runes("f"))
	if !m.view.Cards[0].Favorite {
		t.Error("Expected first card to be favorite")
	}
	if !strings.Contains(m.View(), heartFilled) {
		t.Error("Expected filled heart in view")
	}

	m = press(t, m, runes("f"))
	if m.view.Cards[0].Favorite {
		t.Error("Expected favorite to toggle off")
	}
}

func TestUpdate_WindowResize(t *testing.T) {
	m := createTestModel(t, threeItems())

	tm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = tm.(Model)
	if m.view.Columns != 5 {
		t.Errorf("Expected 5 columns at width 100, got %d", m.view.Columns)
	}

	tm, _ = m.Update(tea.WindowSizeMsg{Width: 5, Height: 40})
	m = tm.(Model)
	if m.view.Columns != 1 {
		t.Errorf("Expected 1 column at width 5, got %d", m.view.Columns)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := createTestModel(t, threeItems())

	tm, cmd := m.Update(runes("q"))
	m = tm.(Model)
	if !m.Quitting() {
		t.Error("Expected quitting after q")
	}
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestView_States(t *testing.T) {
	tests := []struct {
		name     string
		fetcher  stubFetcher
		contains []string
	}{
		{"grid", threeItems(), []string{"Products", "$49", "$12.5", "4.5", "[-] 0 [+]", "Watch"}},
		{"empty", stubFetcher{items: []model.Item{}}, []string{"No items found"}},
		{"failed", stubFetcher{err: errors.New("connection refused")}, []string{"Something went wrong!", "connection refused", "No items found"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := createTestModel(t, tt.fetcher)
			out := m.View()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("View() missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestView_Skeleton(t *testing.T) {
	scr := screen.New(stubFetcher{}, screen.Options{CardWidth: 20, PulsePeriod: time.Hour})
	m := New(scr, 20)

	if m.view.Mode != screen.ModeSkeleton {
		t.Fatalf("Expected skeleton before mount, got %s", m.view.Mode)
	}
	out := m.View()
	if !strings.Contains(out, blockGlyph) {
		t.Error("Expected skeleton blocks in view")
	}

	// Keys are ignored while loading
	m = press(t, m, runes("+"))
	if len(m.view.Cards) != 0 {
		t.Error("Expected no cards in skeleton mode")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		n        int
		expected string
	}{
		{"Watch", 10, "Watch"},
		{"Watch", 5, "Watch"},
		{"Necklace", 5, "Neck…"},
		{"Necklace", 0, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.n, got, tt.expected)
		}
	}
}
