package viewstate

import "fmt"

// IndexPath addresses a cell by section and item index.
type IndexPath struct {
	Section int `json:"section"`
	Item    int `json:"item"`
}

// Path is shorthand for IndexPath{Section: section, Item: item}.
func Path(section, item int) IndexPath {
	return IndexPath{Section: section, Item: item}
}

func (p IndexPath) String() string { return fmt.Sprintf("%d.%d", p.Section, p.Item) }

// Less orders paths by section, then item.
func (p IndexPath) Less(o IndexPath) bool {
	if p.Section != o.Section {
		return p.Section < o.Section
	}
	return p.Item < o.Item
}
