package reconcile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Op names the kind of a section or item update.
type Op int

const (
	OpInsert Op = iota
	OpDelete
	OpReload
	OpUpdate
	OpFocus
	OpHeader
)

var opNames = [...]string{
	OpInsert: "insert",
	OpDelete: "delete",
	OpReload: "reload",
	OpUpdate: "update",
	OpFocus:  "focus",
	OpHeader: "header",
}

func (o Op) String() string {
	if o >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Op) UnmarshalText(b []byte) error {
	for i, name := range opNames {
		if name == string(b) {
			*o = Op(i)
			return nil
		}
	}
	return fmt.Errorf("unknown op %q", b)
}

// ItemUpdate is one edit within a section. Insert and Delete use Index;
// Update uses From and To.
type ItemUpdate struct {
	Op    Op
	Index int
	From  int
	To    int
}

// InsertItem returns an item insert at index i of the current list.
func InsertItem(i int) ItemUpdate { return ItemUpdate{Op: OpInsert, Index: i} }

// DeleteItem returns an item delete at index i of the previous list.
func DeleteItem(i int) ItemUpdate { return ItemUpdate{Op: OpDelete, Index: i} }

// UpdateItem returns an in-place item update.
func UpdateItem(from, to int) ItemUpdate { return ItemUpdate{Op: OpUpdate, From: from, To: to} }

func (u ItemUpdate) String() string {
	switch u.Op {
	case OpInsert, OpDelete:
		return fmt.Sprintf("%s(%d)", u.Op, u.Index)
	default:
		return fmt.Sprintf("%s(%d→%d)", u.Op, u.From, u.To)
	}
}

type itemUpdateJSON struct {
	Op    Op   `json:"op"`
	Index *int `json:"index,omitempty"`
	From  *int `json:"from,omitempty"`
	To    *int `json:"to,omitempty"`
}

// MarshalJSON emits only the fields that belong to the op.
func (u ItemUpdate) MarshalJSON() ([]byte, error) {
	out := itemUpdateJSON{Op: u.Op}
	switch u.Op {
	case OpInsert, OpDelete:
		out.Index = &u.Index
	default:
		out.From, out.To = &u.From, &u.To
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *ItemUpdate) UnmarshalJSON(b []byte) error {
	var in itemUpdateJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*u = ItemUpdate{Op: in.Op, Index: deref(in.Index), From: deref(in.From), To: deref(in.To)}
	return nil
}

// SectionUpdate is one edit of the section list. Insert, Delete and Reload
// use Index; Update and Header use From and To; Focus uses Focus.
type SectionUpdate struct {
	Op    Op
	Index int
	From  int
	To    int
	Items []ItemUpdate
	Focus *viewstate.Focus
}

// Insert returns a section insert at index i of the current list.
func Insert(i int) SectionUpdate { return SectionUpdate{Op: OpInsert, Index: i} }

// Delete returns a section delete at index i of the previous list.
func Delete(i int) SectionUpdate { return SectionUpdate{Op: OpDelete, Index: i} }

// Reload returns a whole-section refresh of index i of the previous list.
func Reload(i int) SectionUpdate { return SectionUpdate{Op: OpReload, Index: i} }

// Update returns a section update with the given item edits. No edits means
// the section keeps its cells and only needs reconfiguring.
func Update(from, to int, items ...ItemUpdate) SectionUpdate {
	return SectionUpdate{Op: OpUpdate, From: from, To: to, Items: items}
}

// FocusOn returns a focus request.
func FocusOn(f viewstate.Focus) SectionUpdate { return SectionUpdate{Op: OpFocus, Focus: &f} }

// Header returns a header change.
func Header(from, to int) SectionUpdate { return SectionUpdate{Op: OpHeader, From: from, To: to} }

// IsStructural reports whether u changes or refreshes cells, as opposed to a
// focus request.
func (u SectionUpdate) IsStructural() bool { return u.Op != OpFocus }

func (u SectionUpdate) String() string {
	switch u.Op {
	case OpInsert, OpDelete, OpReload:
		return fmt.Sprintf("%s(%d)", u.Op, u.Index)
	case OpFocus:
		if u.Focus == nil {
			return "focus(nil)"
		}
		return fmt.Sprintf("focus(%s)", u.Focus)
	case OpUpdate:
		parts := make([]string, len(u.Items))
		for i, it := range u.Items {
			parts[i] = it.String()
		}
		return fmt.Sprintf("update(%d→%d, [%s])", u.From, u.To, strings.Join(parts, " "))
	default:
		return fmt.Sprintf("%s(%d→%d)", u.Op, u.From, u.To)
	}
}

type sectionUpdateJSON struct {
	Op    Op               `json:"op"`
	Index *int             `json:"index,omitempty"`
	From  *int             `json:"from,omitempty"`
	To    *int             `json:"to,omitempty"`
	Items []ItemUpdate     `json:"items,omitempty"`
	Focus *viewstate.Focus `json:"focus,omitempty"`
}

// MarshalJSON emits only the fields that belong to the op.
func (u SectionUpdate) MarshalJSON() ([]byte, error) {
	out := sectionUpdateJSON{Op: u.Op}
	switch u.Op {
	case OpInsert, OpDelete, OpReload:
		out.Index = &u.Index
	case OpFocus:
		out.Focus = u.Focus
	case OpUpdate:
		out.From, out.To = &u.From, &u.To
		out.Items = u.Items
	default:
		out.From, out.To = &u.From, &u.To
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *SectionUpdate) UnmarshalJSON(b []byte) error {
	var in sectionUpdateJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*u = SectionUpdate{
		Op:    in.Op,
		Index: deref(in.Index),
		From:  deref(in.From),
		To:    deref(in.To),
		Items: in.Items,
		Focus: in.Focus,
	}
	if len(u.Items) == 0 {
		u.Items = nil
	}
	return nil
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
