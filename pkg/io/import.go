package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	terrors "github.com/matzehuels/tempo/pkg/errors"
	"github.com/matzehuels/tempo/pkg/layout"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// ReadJSON decodes a JSON snapshot from r.
//
// ReadJSON returns an error if the JSON is malformed, an identifier is empty
// or contains control characters, a hint names an unknown style or tile, an
// item nests items or a header, or the focus path does not address a cell.
// Validation errors carry terrors.ErrCodeInvalidSnapshot (or
// terrors.ErrCodeInvalidPath for the focus) and name the offending section.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*viewstate.Snapshot, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc.Snapshot()
}

// ImportJSON reads a JSON file at path and returns the decoded snapshot.
func ImportJSON(path string) (*viewstate.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Snapshot validates the document and captures it as a snapshot.
func (d Document) Snapshot() (*viewstate.Snapshot, error) {
	sections := make([]viewstate.Item, len(d.Sections))
	for i, n := range d.Sections {
		sec, err := toSection(n)
		if err != nil {
			return nil, terrors.Wrap(terrors.ErrCodeInvalidSnapshot, err, "section %d", i)
		}
		sections[i] = sec
	}

	state := viewstate.Static{Items: sections}
	if d.Focus != nil {
		p := d.Focus.Path
		if p.Section < 0 || p.Section >= len(sections) ||
			p.Item < 0 || p.Item >= viewstate.NumberOfItems(sections[p.Section]) {
			return nil, terrors.New(terrors.ErrCodeInvalidPath, "focus path %s out of range", p)
		}
		focus := *d.Focus
		state.FocusOn = &focus
	}
	return viewstate.Capture(state), nil
}

func toSection(n Node) (viewstate.Item, error) {
	node, err := toNode(n)
	if err != nil {
		return nil, err
	}

	var header viewstate.Item
	if n.Header != nil {
		h, err := toItem(*n.Header)
		if err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
		header = h
	}

	switch {
	case n.Items != nil:
		node.Count = 0
		children := make([]viewstate.Item, len(*n.Items))
		for i, c := range *n.Items {
			child, err := toItem(c)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			children[i] = child
		}
		return viewstate.SectionNode{Node: node, Children: children, Head: header}, nil
	case header != nil:
		return viewstate.LeafSection{Node: node, Head: header}, nil
	default:
		return node, nil
	}
}

func toItem(n Node) (viewstate.Item, error) {
	if n.Items != nil || n.Header != nil {
		return nil, terrors.New(terrors.ErrCodeInvalidSnapshot, "item %q cannot have items or a header", n.ID)
	}
	return toNode(n)
}

func toNode(n Node) (viewstate.Node, error) {
	if err := terrors.ValidateIdentifier(n.ID); err != nil {
		return viewstate.Node{}, err
	}
	if n.Count < 0 {
		return viewstate.Node{}, terrors.New(terrors.ErrCodeInvalidSnapshot, "%q: negative count %d", n.ID, n.Count)
	}
	node := viewstate.Node{Key: n.ID, Type: n.Kind, Title: n.Title, Detail: n.Detail, Count: n.Count}
	if n.Hints != nil {
		if err := validateHints(*n.Hints); err != nil {
			return viewstate.Node{}, fmt.Errorf("%q: %w", n.ID, err)
		}
		node.Hints = *n.Hints
	}
	return node, nil
}

func validateHints(h viewstate.Hints) error {
	if h.Style != "" {
		var s layout.ItemStyle
		if err := s.UnmarshalText([]byte(h.Style)); err != nil {
			return err
		}
	}
	if h.SectionStyle != "" {
		var s layout.SectionStyle
		if err := s.UnmarshalText([]byte(h.SectionStyle)); err != nil {
			return err
		}
	}
	if h.Tile != "" {
		var s layout.TileSize
		if err := s.UnmarshalText([]byte(h.Tile)); err != nil {
			return err
		}
	}
	if h.Height < 0 {
		return fmt.Errorf("negative height %v", h.Height)
	}
	return nil
}
