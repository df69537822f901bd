package reconcile

import (
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Script is an ordered edit script.
type Script []SectionUpdate

// Diff returns the edit script from one snapshot to the next. The focus
// request of to, if any, is included; the focus of from is not, because it
// was consumed by the diff that produced from.
func Diff(from, to *viewstate.Snapshot) Script {
	return DiffSections(from.Sections(), to.Sections(), to.Focus())
}

// DiffSections returns the edit script from previous to current. A non-nil
// focus is emitted once, after the structural edits and before the header
// changes. The result is never nil: adapters read a nil script as a full
// reset.
func DiffSections(previous, current []viewstate.Item, focus *viewstate.Focus) Script {
	script := Script{}

	for i, c := range current {
		if index(previous, c.ID()) < 0 {
			script = append(script, Insert(i))
		}
	}

	for i, p := range previous {
		if index(current, p.ID()) < 0 {
			script = append(script, Delete(i))
		}
	}

	for from, p := range previous {
		to := changed(current, p)
		if to < 0 {
			continue
		}
		c := current[to]

		prevItems, prevOK := viewstate.Children(p)
		currItems, currOK := viewstate.Children(c)
		switch {
		case prevOK && currOK:
			script = append(script, Update(from, to, DiffItems(prevItems, currItems)...))
		case viewstate.NumberOfItems(p) == viewstate.NumberOfItems(c):
			script = append(script, Update(from, to))
		default:
			script = append(script, Reload(from))
		}
	}

	if focus != nil {
		script = append(script, FocusOn(*focus))
	}

	for from, p := range previous {
		to := index(current, p.ID())
		if to < 0 {
			continue
		}
		ph, ch := viewstate.HeaderOf(p), viewstate.HeaderOf(current[to])
		if ph == nil || ch == nil {
			continue
		}
		if !ph.Equal(ch) {
			script = append(script, Header(from, to))
		}
	}

	return script
}

// DiffItems returns the item edits from previous to current. Child items are
// treated as leaves; their own children are not compared.
func DiffItems(previous, current []viewstate.Item) []ItemUpdate {
	var updates []ItemUpdate

	for i, c := range current {
		if index(previous, c.ID()) < 0 {
			updates = append(updates, InsertItem(i))
		}
	}

	for i, p := range previous {
		if index(current, p.ID()) < 0 {
			updates = append(updates, DeleteItem(i))
		}
	}

	for from, p := range previous {
		if to := changed(current, p); to >= 0 {
			updates = append(updates, UpdateItem(from, to))
		}
	}

	return updates
}

// index returns the position of the first item in items with identifier id.
func index(items []viewstate.Item, id string) int {
	for i, it := range items {
		if it.ID() == id {
			return i
		}
	}
	return -1
}

// changed returns the position of the first item in items that has the
// identifier of p and differs from it.
func changed(items []viewstate.Item, p viewstate.Item) int {
	id := p.ID()
	for i, it := range items {
		if it.ID() == id && !it.Equal(p) {
			return i
		}
	}
	return -1
}

// Duplicates returns every identifier that occurs more than once in items,
// in order of second occurrence.
func Duplicates(items []viewstate.Item) []string {
	seen := make(map[string]int, len(items))
	var dups []string
	for _, it := range items {
		id := it.ID()
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}

// Counts returns the number of section updates of each kind in s. Item
// edits nested in updates are not counted.
func (s Script) Counts() map[Op]int {
	counts := make(map[Op]int)
	for _, u := range s {
		counts[u.Op]++
	}
	return counts
}

// ApplyCount returns the section count after applying the inserts and
// deletes of s to a list of n sections.
func (s Script) ApplyCount(n int) int {
	for _, u := range s {
		switch u.Op {
		case OpInsert:
			n++
		case OpDelete:
			n--
		}
	}
	return n
}

// IsNoop reports whether s has no structural edits. A focus request alone
// does not change any cell.
func (s Script) IsNoop() bool {
	for _, u := range s {
		if u.IsStructural() {
			return false
		}
	}
	return true
}

// Strings returns the String form of every update.
func (s Script) Strings() []string {
	out := make([]string, len(s))
	for i, u := range s {
		out[i] = u.String()
	}
	return out
}
