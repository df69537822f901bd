package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/tempo/pkg/layout/grid"
)

// ItemStyle is the border decoration of a list cell.
type ItemStyle int

const (
	// StyleBorderless has no border and a transparent background.
	StyleBorderless ItemStyle = iota
	// StyleGrouped has rounded corners and joins its neighbours.
	StyleGrouped
	// StyleDetached is set apart from its neighbours by a narrow margin.
	StyleDetached
	// StyleRule has a one unit bottom border.
	StyleRule
	// StylePlain is a rectangular cell with separators.
	StylePlain
)

var itemStyleNames = [...]string{"borderless", "grouped", "detached", "rule", "plain"}

func (s ItemStyle) String() string { return enumString(itemStyleNames[:], int(s), "ItemStyle") }

func (s ItemStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *ItemStyle) UnmarshalText(b []byte) error {
	return enumParse(itemStyleNames[:], string(b), "item style", (*int)(s))
}

// SectionStyle selects how a section places its items.
type SectionStyle int

const (
	// SectionList stacks items vertically.
	SectionList SectionStyle = iota
	// SectionGrid packs items as tiles into a twelve column grid.
	SectionGrid
)

var sectionStyleNames = [...]string{"list", "grid"}

func (s SectionStyle) String() string { return enumString(sectionStyleNames[:], int(s), "SectionStyle") }

func (s SectionStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SectionStyle) UnmarshalText(b []byte) error {
	return enumParse(sectionStyleNames[:], string(b), "section style", (*int)(s))
}

// Position is where a cell sits within a visually joined run of cells.
type Position int

const (
	Solo Position = iota
	Top
	Middle
	Bottom
)

var positionNames = [...]string{"solo", "top", "middle", "bottom"}

func (p Position) String() string { return enumString(positionNames[:], int(p), "Position") }

func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Position) UnmarshalText(b []byte) error {
	return enumParse(positionNames[:], string(b), "position", (*int)(p))
}

// HighlightStyle selects which part of a cell reacts to highlighting.
type HighlightStyle int

const (
	HighlightBackground HighlightStyle = iota
	HighlightForeground
)

var highlightNames = [...]string{"background", "foreground"}

func (h HighlightStyle) String() string { return enumString(highlightNames[:], int(h), "HighlightStyle") }

func (h HighlightStyle) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *HighlightStyle) UnmarshalText(b []byte) error {
	return enumParse(highlightNames[:], string(b), "highlight style", (*int)(h))
}

// TileSize is a named tile footprint for grid sections.
type TileSize int

const (
	TileCarouselSmall TileSize = iota
	TileCarouselTall
	TileMini
	TileSmall
	TileWide
	TileTall
	TileBig
	TileGiant
)

var tileSizeNames = [...]string{"carousel-small", "carousel-tall", "mini", "small", "wide", "tall", "big", "giant"}

var tileSizeDimensions = [...]grid.Tile{
	TileCarouselSmall: {Width: 5, Height: 5},
	TileCarouselTall:  {Width: 5, Height: 8},
	TileMini:          {Width: 4, Height: 5},
	TileSmall:         {Width: 6, Height: 5},
	TileWide:          {Width: 12, Height: 5},
	TileTall:          {Width: 6, Height: 10},
	TileBig:           {Width: 12, Height: 10},
	TileGiant:         {Width: 12, Height: 15},
}

// Tile returns the footprint of s in columns and rows.
func (s TileSize) Tile() grid.Tile {
	if s < 0 || int(s) >= len(tileSizeDimensions) {
		return tileSizeDimensions[TileWide]
	}
	return tileSizeDimensions[s]
}

func (s TileSize) String() string { return enumString(tileSizeNames[:], int(s), "TileSize") }

func (s TileSize) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *TileSize) UnmarshalText(b []byte) error {
	return enumParse(tileSizeNames[:], string(b), "tile size", (*int)(s))
}

// ParseTile parses a tile footprint written as a size name ("wide") or as
// "WxH" ("6x5").
func ParseTile(s string) (grid.Tile, error) {
	var size TileSize
	if err := size.UnmarshalText([]byte(s)); err == nil {
		return size.Tile(), nil
	}
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	width, werr := strconv.ParseUint(w, 10, 31)
	height, herr := strconv.ParseUint(h, 10, 31)
	if !ok || werr != nil || herr != nil {
		return grid.Tile{}, fmt.Errorf("invalid tile %q: want a size name or WxH", s)
	}
	return grid.Tile{Width: int(width), Height: int(height)}, nil
}

func enumString(names []string, v int, typ string) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

func enumParse(names []string, s, what string, dst *int) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q (want one of %s)", what, s, strings.Join(names, ", "))
}
