package layout

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/matzehuels/tempo/pkg/geom"
	"github.com/matzehuels/tempo/pkg/observability"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// ElementKind distinguishes cells from supplementary elements.
type ElementKind int

const (
	KindCell ElementKind = iota
	KindHeader
	KindBackdrop
)

var elementKindNames = [...]string{"cell", "header", "backdrop"}

func (k ElementKind) String() string { return enumString(elementKindNames[:], int(k), "ElementKind") }

func (k ElementKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ElementKind) UnmarshalText(b []byte) error {
	return enumParse(elementKindNames[:], string(b), "element kind", (*int)(k))
}

// Attributes is the computed layout of one element. Headers use the section
// index with item 0 as their path.
type Attributes struct {
	Kind            ElementKind         `json:"kind"`
	Path            viewstate.IndexPath `json:"path"`
	Frame           geom.Rect           `json:"frame"`
	Position        Position            `json:"position"`
	Style           ItemStyle           `json:"style"`
	SeparatorInsets geom.Insets         `json:"separator_insets"`
	SeparatorHidden bool                `json:"separator_hidden,omitempty"`
	Highlight       HighlightStyle      `json:"highlight"`
	Padding         geom.Insets         `json:"padding"`
}

// DataSource reports the shape of the collection.
type DataSource interface {
	NumberOfSections() int
	NumberOfItems(section int) int
}

// Layout holds the result of the last successful pass. The zero value is not
// usable; create one with New.
type Layout struct {
	cfg      Config
	content  geom.Size
	cells    map[viewstate.IndexPath]Attributes
	headers  map[int]Attributes
	backdrop *Attributes
}

// New returns an empty layout using cfg for every default.
func New(cfg Config) *Layout {
	return &Layout{
		cfg:     cfg,
		cells:   make(map[viewstate.IndexPath]Attributes),
		headers: make(map[int]Attributes),
	}
}

// Config returns the defaults the layout was created with.
func (l *Layout) Config() Config { return l.cfg }

// Prepare lays out every section of src for a viewport.
//
// If the delegate also implements DataSource it is treated as the source of
// truth for the collection's shape. When its section or item counts disagree
// with src, or when the viewport has no width, the previous layout is kept
// and Prepare returns false.
func (l *Layout) Prepare(src DataSource, d Delegate, viewport geom.Size) bool {
	if viewport.Width <= 0 {
		return false
	}
	if d == nil {
		d = DefaultDelegate{}
	}

	ctx := context.Background()
	hooks := observability.Layout()
	count := src.NumberOfSections()
	hooks.OnLayoutStart(ctx, count)
	start := time.Now()

	if truth, ok := d.(DataSource); ok && !sameShape(src, truth) {
		hooks.OnLayoutComplete(ctx, len(l.cells), time.Since(start), false)
		return false
	}

	clear(l.cells)
	clear(l.headers)
	l.backdrop = nil

	cv := l.cfg.CollectionMargins.Insets()
	y := cv.Top

	for s := 0; s < count; s++ {
		n := src.NumberOfItems(s)
		if n == 0 {
			continue
		}

		sec := l.cfg.resolveSection(d.SectionConfig(s))
		sm := sec.margins.Insets()

		if s != 0 || !l.cfg.CollapseFirstSectionTopMargin {
			y += sm.Top
		}

		if sec.header {
			hm := sec.headerMargins.Insets()
			y += hm.Top
			width := viewport.Width - hm.Horizontal()
			height := sec.headerHeight(width)
			l.headers[s] = Attributes{
				Kind:  KindHeader,
				Path:  viewstate.Path(s, 0),
				Frame: geom.Rect{X: hm.Left, Y: y, Width: width, Height: height},
			}
			y += height + hm.Bottom
		}

		width := viewport.Width - sm.Horizontal() - cv.Horizontal()
		x := sm.Left + cv.Left

		items := make([]item, n)
		for i := range items {
			items[i] = l.cfg.resolveItem(d.ItemConfig(viewstate.Path(s, i)), sec.items)
		}

		var placed []Placement
		switch sec.style {
		case SectionGrid:
			entries := make([]TileEntry, n)
			for i, it := range items {
				entries[i] = TileEntry{
					Tile:    it.tileSize.Tile(),
					Spacing: it.tileSpacing,
					Insets:  it.tileInsets,
					Padding: it.padding,
				}
			}
			placed = PlaceTiles(entries, width)
		default:
			entries := make([]ListEntry, n)
			for i, it := range items {
				im := it.margins.Insets()
				entries[i] = ListEntry{
					Style:           it.style,
					Break:           d.Break(viewstate.Path(s, i)),
					Height:          it.height,
					X:               im.Left,
					Width:           width - im.Horizontal(),
					SeparatorInsets: it.separatorInsets,
				}
			}
			placed = PlaceList(entries)
		}

		bottom := y
		for i, p := range placed {
			frame := p.Frame.Offset(x, y)
			l.cells[viewstate.Path(s, i)] = Attributes{
				Kind:            KindCell,
				Path:            viewstate.Path(s, i),
				Frame:           frame,
				Position:        p.Position,
				Style:           p.Style,
				SeparatorInsets: p.SeparatorInsets,
				SeparatorHidden: items[i].separatorHidden,
				Highlight:       items[i].highlight,
				Padding:         p.Padding,
			}
			bottom = max(bottom, frame.MaxY())
		}
		y = bottom

		if s != count-1 || !l.cfg.CollapseLastSectionBottomMargin {
			y += sm.Bottom
		}
	}

	y += cv.Bottom
	l.content = geom.Size{Width: viewport.Width, Height: y}

	if l.cfg.Backdrop && len(l.cells) > 0 {
		l.backdrop = &Attributes{
			Kind:  KindBackdrop,
			Frame: geom.Rect{Width: l.content.Width, Height: l.content.Height + viewport.Height},
		}
	}
	hooks.OnLayoutComplete(ctx, len(l.cells), time.Since(start), true)
	return true
}

func sameShape(a, b DataSource) bool {
	n := a.NumberOfSections()
	if n != b.NumberOfSections() {
		return false
	}
	for s := 0; s < n; s++ {
		if a.NumberOfItems(s) != b.NumberOfItems(s) {
			return false
		}
	}
	return true
}

// Invalidate drops the current layout.
func (l *Layout) Invalidate() {
	clear(l.cells)
	clear(l.headers)
	l.backdrop = nil
	l.content = geom.Size{}
}

// ShouldInvalidate reports whether a change of viewport from old to next
// requires a new pass.
func ShouldInvalidate(old, next geom.Size) bool { return old != next }

// ContentSize returns the size of everything laid out.
func (l *Layout) ContentSize() geom.Size { return l.content }

// Item returns the attributes of the cell at path.
func (l *Layout) Item(path viewstate.IndexPath) (Attributes, bool) {
	a, ok := l.cells[path]
	return a, ok
}

// Header returns the attributes of the header of section.
func (l *Layout) Header(section int) (Attributes, bool) {
	a, ok := l.headers[section]
	return a, ok
}

// Backdrop returns the attributes of the backdrop, if one is displayed.
func (l *Layout) Backdrop() (Attributes, bool) {
	if l.backdrop == nil {
		return Attributes{}, false
	}
	return *l.backdrop, true
}

// Cells returns every cell in path order.
func (l *Layout) Cells() []Attributes {
	out := make([]Attributes, 0, len(l.cells))
	for _, a := range l.cells {
		out = append(out, a)
	}
	sortAttributes(out)
	return out
}

// ElementsIn returns every element whose frame intersects rect: cells first
// in path order, then headers, then the backdrop.
func (l *Layout) ElementsIn(rect geom.Rect) []Attributes {
	var out []Attributes
	for _, a := range l.cells {
		if a.Frame.Intersects(rect) {
			out = append(out, a)
		}
	}
	for _, a := range l.headers {
		if a.Frame.Intersects(rect) {
			out = append(out, a)
		}
	}
	if l.backdrop != nil && l.backdrop.Frame.Intersects(rect) {
		out = append(out, *l.backdrop)
	}
	sortAttributes(out)
	return out
}

// GroupFrames returns the frames of section with vertically touching cells
// merged.
func (l *Layout) GroupFrames(section int) []geom.Rect {
	var cells []Attributes
	for p, a := range l.cells {
		if p.Section == section {
			cells = append(cells, a)
		}
	}
	sortAttributes(cells)

	var groups []geom.Rect
	for _, a := range cells {
		if n := len(groups); n > 0 && groups[n-1].MaxY() == a.Frame.MinY() {
			groups[n-1] = groups[n-1].Union(a.Frame)
			continue
		}
		groups = append(groups, a.Frame)
	}
	return groups
}

func sortAttributes(attrs []Attributes) {
	slices.SortFunc(attrs, func(a, b Attributes) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Path.Section, b.Path.Section); c != 0 {
			return c
		}
		return cmp.Compare(a.Path.Item, b.Path.Item)
	})
}
