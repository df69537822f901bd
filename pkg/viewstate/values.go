package viewstate

// Value is a leaf item carrying a comparable payload.
type Value[T comparable] struct {
	Key  string
	Data T

	// Type is returned by Kind.
	Type string
}

// V returns a Value with the given identifier and payload.
func V[T comparable](key string, data T) Value[T] {
	return Value[T]{Key: key, Data: data}
}

func (v Value[T]) ID() string   { return v.Key }
func (v Value[T]) Kind() string { return v.Type }

func (v Value[T]) Equal(other Item) bool {
	o, ok := other.(Value[T])
	return ok && o == v
}

// Group is a section with child items and an optional header.
type Group struct {
	Key      string
	Children []Item
	Head     Item
	Type     string
}

func (g Group) ID() string    { return g.Key }
func (g Group) Items() []Item { return g.Children }
func (g Group) Header() Item  { return g.Head }
func (g Group) Kind() string  { return g.Type }

// Equal compares identifiers, kinds, headers and children.
func (g Group) Equal(other Item) bool {
	o, ok := other.(Group)
	if !ok {
		return false
	}
	return g.Key == o.Key && g.Type == o.Type &&
		equalItem(g.Head, o.Head) &&
		EqualItems(g.Children, o.Children)
}

// Hints carries optional layout hints for generic items. Zero values mean
// "use the layout defaults".
type Hints struct {
	Style        string  `json:"style,omitempty"`
	SectionStyle string  `json:"section_style,omitempty"`
	Tile         string  `json:"tile,omitempty"`
	Height       float64 `json:"height,omitempty"`
	Break        bool    `json:"break,omitempty"`
}

// Node is a generic leaf item, typically decoded from JSON.
type Node struct {
	Key    string
	Type   string
	Title  string
	Detail string

	// Count overrides the cell count of a leaf section. Zero means 1.
	Count int
	Hints Hints
}

func (n Node) ID() string   { return n.Key }
func (n Node) Kind() string { return n.Type }

func (n Node) NumberOfItems() int {
	if n.Count > 0 {
		return n.Count
	}
	return 1
}

func (n Node) Equal(other Item) bool {
	o, ok := other.(Node)
	return ok && o == n
}

// SectionNode is a generic section, typically decoded from JSON. Unlike
// Node it always exposes child items, even when it has none.
type SectionNode struct {
	Node
	Children []Item
	Head     Item
}

func (s SectionNode) Items() []Item { return s.Children }
func (s SectionNode) Header() Item  { return s.Head }

// NumberOfItems shadows Node.NumberOfItems; a section's count is its
// child count.
func (s SectionNode) NumberOfItems() int { return len(s.Children) }

func (s SectionNode) Equal(other Item) bool {
	o, ok := other.(SectionNode)
	if !ok {
		return false
	}
	return s.Node == o.Node &&
		equalItem(s.Head, o.Head) &&
		EqualItems(s.Children, o.Children)
}

// LeafSection wraps a Node as a section that may carry a header but has no
// child items.
type LeafSection struct {
	Node
	Head Item
}

func (s LeafSection) Header() Item { return s.Head }

func (s LeafSection) Equal(other Item) bool {
	o, ok := other.(LeafSection)
	if !ok {
		return false
	}
	return s.Node == o.Node && equalItem(s.Head, o.Head)
}

// Hinted is implemented by items that carry layout hints.
type Hinted interface {
	LayoutHints() Hints
}

// LayoutHints returns n.Hints.
func (n Node) LayoutHints() Hints { return n.Hints }

// HintsOf returns the layout hints of it, or zero hints.
func HintsOf(it Item) Hints {
	if h, ok := it.(Hinted); ok {
		return h.LayoutHints()
	}
	return Hints{}
}
