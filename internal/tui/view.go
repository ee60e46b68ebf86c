package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/storefront/internal/screen"
)

// rowGap is the number of blank lines between grid rows
const rowGap = 1

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.view.Mode {
	case screen.ModeSkeleton:
		b.WriteString(m.renderSkeleton())
	case screen.ModeGrid:
		b.WriteString(m.renderGrid())
	default:
		b.WriteString(m.renderEmpty())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHeader() string {
	header := titleStyle.Render("Products")
	if !m.view.LoadState.IsFinished() {
		header += " " + m.spinner.View()
	}
	if m.view.Mode == screen.ModeGrid {
		header += mutedStyle.Render(fmt.Sprintf("  %d items", len(m.view.Cards)))
	}
	return header
}

// innerWidth is the text width inside a card border and padding
func (m Model) innerWidth() int {
	w := m.cardWidth - cardStyle.GetHorizontalFrameSize()
	if w < 4 {
		w = 4
	}
	return w
}

func (m Model) renderSkeleton() string {
	style := skeletonStyle
	if m.view.Dim {
		style = skeletonDim
	}

	inner := m.innerWidth()
	block := style.Render(strings.Repeat(blockGlyph, inner))
	short := style.Render(strings.Repeat(blockGlyph, inner/2))
	card := cardStyle.BorderForeground(style.GetForeground()).
		Render(strings.Join([]string{block, block, short, block}, "\n"))

	cards := make([]string, m.view.SkeletonCount)
	for i := range cards {
		cards[i] = card
	}
	return joinGrid(cards, m.view.Columns)
}

func (m Model) renderGrid() string {
	cards := make([]string, 0, len(m.view.Cards))
	for i, card := range m.view.Cards {
		selected := i == m.cursorRow*m.view.Columns+m.cursorCol
		cards = append(cards, m.renderCard(card, selected))
	}
	return joinGrid(cards, m.view.Columns)
}

func (m Model) renderCard(card screen.Card, selected bool) string {
	inner := m.innerWidth()

	heart := mutedStyle.Render(heartOutline)
	if card.Favorite {
		heart = heartStyle.Render(heartFilled)
	}
	name := titleStyle.Render(truncate(card.Name, inner-2))

	price := "$" + card.Price
	rating := starGlyph + " " + staticRating
	gap := inner - lipgloss.Width(price) - lipgloss.Width(rating)
	if gap < 1 {
		gap = 1
	}
	priceLine := priceStyle.Render(price) + strings.Repeat(" ", gap) + mutedStyle.Render(rating)

	stepper := fmt.Sprintf("[-] %d [+]", card.Quantity)

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Width(m.cardWidth - style.GetHorizontalBorderSize()).
		Render(strings.Join([]string{heart + " " + name, priceLine, stepper}, "\n"))
}

func (m Model) renderEmpty() string {
	out := mutedStyle.Render("No items found")
	if m.view.Alert != "" {
		out = bannerStyle.Render(errorStyle.Render(m.view.Alert)) + "\n\n" + out
	}
	return out
}

func (m Model) renderHelp() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, accentStyle.Render(h.Key)+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

// joinGrid lays out rendered cards in rows of columns
func joinGrid(cards []string, columns int) string {
	if columns < 1 {
		columns = 1
	}

	rows := make([]string, 0, len(cards)/columns+1)
	for start := 0; start < len(cards); start += columns {
		end := start + columns
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return strings.Join(rows, strings.Repeat("\n", rowGap+1))
}

// truncate shortens s to n cells, marking the cut with an ellipsis
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
