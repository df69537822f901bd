package products

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tempo/pkg/component"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// RowHeight is the fixed height of a product cell in points.
const RowHeight = 145

var (
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#d6d6d6")).Padding(0, 1)
	cardFocusedStyle = cardStyle.BorderForeground(lipgloss.Color("#cc0000"))
	priceStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#cc0000")).Bold(true)
	imageStyle       = lipgloss.NewStyle().Faint(true)
)

// Component draws product items as a bordered card with title and price.
// Selecting a product calls OnSelect.
type Component struct {
	OnSelect func(Item)
}

func (Component) Height(viewstate.Item, float64) float64 { return RowHeight }

func (Component) Render(item viewstate.Item, ctx component.RenderContext) string {
	p, ok := item.(Item)
	if !ok {
		return item.ID()
	}
	style := cardStyle
	if ctx.Focused || ctx.Selected {
		style = cardFocusedStyle
	}
	width := max(ctx.Width-style.GetHorizontalBorderSize(), 3)
	inner := width - style.GetHorizontalPadding()
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).MaxWidth(inner).Render(p.Title),
		priceStyle.Render(p.Price),
		imageStyle.MaxWidth(inner).Render(p.ImageURL),
	)
	return style.Width(width).Render(body)
}

func (Component) ShouldSelect(item viewstate.Item) bool {
	_, ok := item.(Item)
	return ok
}

func (c Component) Select(item viewstate.Item) {
	if p, ok := item.(Item); ok && c.OnSelect != nil {
		c.OnSelect(p)
	}
}

// Register binds c to product items in reg.
func Register(reg *component.Registry, c Component) {
	reg.Register(Kind, c)
}
