package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Document is the JSON form of a snapshot.
type Document struct {
	Sections []Node           `json:"sections"`
	Focus    *viewstate.Focus `json:"focus,omitempty"`
}

// Node is the JSON form of a section, header or item.
type Node struct {
	ID     string           `json:"id"`
	Kind   string           `json:"kind,omitempty"`
	Title  string           `json:"title,omitempty"`
	Detail string           `json:"detail,omitempty"`
	Count  int              `json:"count,omitempty"`
	Hints  *viewstate.Hints `json:"hints,omitempty"`
	Header *Node            `json:"header,omitempty"`
	Items  *[]Node          `json:"items,omitempty"`
}

// FromSnapshot converts a snapshot into its JSON form.
func FromSnapshot(s *viewstate.Snapshot) Document {
	doc := Document{Sections: make([]Node, s.Len()), Focus: s.Focus()}
	for i, sec := range s.Sections() {
		doc.Sections[i] = fromItem(sec)
	}
	return doc
}

func fromItem(it viewstate.Item) Node {
	var n Node
	switch v := it.(type) {
	case viewstate.Node:
		n = fromNode(v)
	case viewstate.SectionNode:
		n = fromNode(v.Node)
		n.Count = 0
	case viewstate.LeafSection:
		n = fromNode(v.Node)
	default:
		n = Node{ID: it.ID(), Kind: viewstate.KindOf(it)}
	}

	if h := viewstate.HeaderOf(it); h != nil {
		header := fromItem(h)
		n.Header = &header
	}
	if children, ok := viewstate.Children(it); ok {
		items := make([]Node, len(children))
		for i, c := range children {
			items[i] = fromItem(c)
		}
		n.Items = &items
	}
	return n
}

func fromNode(v viewstate.Node) Node {
	n := Node{ID: v.Key, Kind: v.Type, Title: v.Title, Detail: v.Detail, Count: v.Count}
	if v.Hints != (viewstate.Hints{}) {
		hints := v.Hints
		n.Hints = &hints
	}
	return n
}

// WriteJSON encodes a snapshot as JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(s *viewstate.Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromSnapshot(s)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a snapshot to a JSON file at path.
func ExportJSON(s *viewstate.Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}
