package surface

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tempo/pkg/component"
	"github.com/matzehuels/tempo/pkg/geom"
	"github.com/matzehuels/tempo/pkg/layout"
)

var (
	colorBorder = lipgloss.Color("240")
	colorCursor = lipgloss.Color("36")

	// Rounded corners only on the outer edges of a grouped run.
	groupedTop    = lipgloss.Border{Top: "─", Left: "│", Right: "│", TopLeft: "╭", TopRight: "╮"}
	groupedMiddle = lipgloss.Border{Top: "─", Left: "│", Right: "│", TopLeft: "├", TopRight: "┤"}
	groupedBottom = lipgloss.Border{Top: "─", Bottom: "─", Left: "│", Right: "│", TopLeft: "├", TopRight: "┤", BottomLeft: "╰", BottomRight: "╯"}
)

type cell struct {
	ctx component.RenderContext
	out string
}

type segment struct {
	col  int
	text string
}

// View draws the visible part of the surface.
func (s *Surface) View() string {
	if s.viewport.IsZero() {
		return ""
	}
	s.prepare()

	cols := s.columns(s.viewport.Width)
	rows := int(math.Round(s.viewport.Height / s.scale.Y))
	lines := make([][]segment, rows)

	visible := s.Visible()
	for _, attrs := range s.layout.ElementsIn(visible) {
		var block string
		switch attrs.Kind {
		case layout.KindBackdrop:
			continue
		case layout.KindHeader:
			block = s.drawHeader(attrs)
		default:
			block = s.drawCell(attrs)
		}
		col := s.columns(attrs.Frame.MinX() - visible.MinX())
		row := int(math.Round((attrs.Frame.MinY() - visible.MinY()) / s.scale.Y))
		for i, line := range strings.Split(block, "\n") {
			if r := row + i; r >= 0 && r < rows {
				lines[r] = append(lines[r], segment{col: col, text: line})
			}
		}
	}

	var b strings.Builder
	for r, segs := range lines {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(joinSegments(segs, cols))
	}
	return b.String()
}

func (s *Surface) columns(points float64) int {
	return int(math.Round(points / s.scale.X))
}

func (s *Surface) size(frame geom.Rect) (cols, rows int) {
	return max(s.columns(frame.Width), 1), max(int(math.Round(frame.Height/s.scale.Y)), 1)
}

func (s *Surface) drawHeader(attrs layout.Attributes) string {
	header := s.snap.HeaderAt(attrs.Path.Section)
	c := s.registry.MustHeaderFor(header)
	cols, rows := s.size(attrs.Frame)
	ctx := component.RenderContext{Width: cols}
	s.renders++
	return lipgloss.NewStyle().Width(cols).MaxWidth(cols).MaxHeight(rows).Render(c.Render(header, ctx))
}

func (s *Surface) drawCell(attrs layout.Attributes) string {
	cols, rows := s.size(attrs.Frame)
	style := frameStyle(attrs)
	focused := s.hasCur && s.cursor == attrs.Path
	if focused {
		style = style.BorderForeground(colorCursor)
	}

	ctx := component.RenderContext{
		Width:     max(cols-style.GetHorizontalFrameSize(), 1),
		Position:  attrs.Position,
		Style:     attrs.Style,
		Highlight: attrs.Highlight,
		Focused:   focused,
	}
	if c, ok := s.cells[attrs.Path]; ok && c.ctx == ctx {
		return c.out
	}

	item := s.snap.ItemAt(attrs.Path)
	content := s.registry.MustFor(item).Render(item, ctx)
	s.renders++

	out := style.
		Width(ctx.Width).
		Height(max(rows-style.GetVerticalFrameSize(), 0)).
		MaxWidth(cols).
		MaxHeight(rows).
		Render(content)
	s.cells[attrs.Path] = cell{ctx: ctx, out: out}
	return out
}

// frameStyle decorates a cell according to its item style and its position
// in a run of joined cells.
func frameStyle(attrs layout.Attributes) lipgloss.Style {
	st := lipgloss.NewStyle().BorderForeground(colorBorder)
	switch attrs.Style {
	case layout.StyleGrouped:
		switch attrs.Position {
		case layout.Top:
			return st.Border(groupedTop, true, true, false, true)
		case layout.Middle:
			return st.Border(groupedMiddle, true, true, false, true)
		case layout.Bottom:
			return st.Border(groupedBottom)
		default:
			return st.Border(lipgloss.RoundedBorder())
		}
	case layout.StyleDetached:
		return st.Border(lipgloss.RoundedBorder())
	case layout.StyleRule:
		return st.Border(lipgloss.NormalBorder(), false, false, true, false)
	case layout.StylePlain:
		return st.Border(lipgloss.NormalBorder(), false, false, !attrs.SeparatorHidden, false)
	default:
		return st
	}
}

// joinSegments lays segments out on one terminal line, left to right.
func joinSegments(segs []segment, cols int) string {
	slices.SortStableFunc(segs, func(a, b segment) int { return a.col - b.col })
	var b strings.Builder
	width := 0
	for _, seg := range segs {
		if seg.col > width {
			b.WriteString(strings.Repeat(" ", seg.col-width))
			width = seg.col
		}
		b.WriteString(seg.text)
		width += lipgloss.Width(seg.text)
	}
	if width < cols {
		b.WriteString(strings.Repeat(" ", cols-width))
	}
	return b.String()
}
