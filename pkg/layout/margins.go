package layout

import "github.com/matzehuels/tempo/pkg/geom"

// Margin is a named spacing step.
type Margin int

const (
	MarginNone Margin = iota
	MarginNarrow
	MarginWide
	MarginQuarter
	MarginHalf
	MarginFull
)

var marginNames = [...]string{"none", "narrow", "wide", "quarter", "half", "full"}

// Points returns the size of the margin in layout units.
func (m Margin) Points() float64 {
	switch m {
	case MarginNarrow, MarginQuarter:
		return 4
	case MarginHalf:
		return 8
	case MarginWide, MarginFull:
		return 16
	default:
		return 0
	}
}

func (m Margin) String() string { return enumString(marginNames[:], int(m), "Margin") }

func (m Margin) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Margin) UnmarshalText(b []byte) error {
	return enumParse(marginNames[:], string(b), "margin", (*int)(m))
}

// DetachMargin is the gap inserted above a cell where a detached run starts
// or ends.
const DetachMargin = MarginNarrow

// Margins holds one margin per edge.
type Margins struct {
	Top    Margin `toml:"top" json:"top"`
	Right  Margin `toml:"right" json:"right"`
	Bottom Margin `toml:"bottom" json:"bottom"`
	Left   Margin `toml:"left" json:"left"`
}

// Insets converts m to layout units.
func (m Margins) Insets() geom.Insets {
	return geom.Insets{
		Top:    m.Top.Points(),
		Left:   m.Left.Points(),
		Bottom: m.Bottom.Points(),
		Right:  m.Right.Points(),
	}
}
