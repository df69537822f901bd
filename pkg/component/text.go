package component

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tempo/pkg/viewstate"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	detailStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	focusedStyle = lipgloss.NewStyle().Reverse(true)
)

// Text draws generic nodes as a bold title followed by a faint detail line.
type Text struct {
	// RowHeight is the cell height in points. Zero means 44.
	RowHeight float64
}

func (t Text) Height(viewstate.Item, float64) float64 {
	if t.RowHeight > 0 {
		return t.RowHeight
	}
	return 44
}

func (Text) Render(item viewstate.Item, ctx RenderContext) string {
	title, detail := describe(item)
	line := titleStyle.Render(truncate(title, ctx.Width))
	if ctx.Focused || ctx.Selected {
		line = focusedStyle.Render(truncate(title, ctx.Width))
	}
	if detail == "" {
		return line
	}
	return line + "\n" + detailStyle.Render(truncate(detail, ctx.Width))
}

// Header draws section headers.
type Header struct{}

func (Header) Height(viewstate.Item, float64) float64 { return 21 }

func (Header) Render(item viewstate.Item, ctx RenderContext) string {
	title, _ := describe(item)
	return headerStyle.Render(truncate(title, ctx.Width))
}

func describe(item viewstate.Item) (title, detail string) {
	switch it := item.(type) {
	case viewstate.Node:
		title, detail = it.Title, it.Detail
	case viewstate.SectionNode:
		title, detail = it.Title, it.Detail
	case viewstate.LeafSection:
		title, detail = it.Title, it.Detail
	case fmt.Stringer:
		title = it.String()
	}
	if title == "" {
		title = item.ID()
	}
	return title, detail
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 1 || len(r) <= 1 {
		return string(r[:min(width, len(r))])
	}
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// Defaults returns a registry that draws every item with [Text] and
// every header with [Header].
func Defaults() *Registry {
	r := NewRegistry()
	r.RegisterMatch(Any, Text{})
	r.RegisterHeader("", Header{})
	return r
}
