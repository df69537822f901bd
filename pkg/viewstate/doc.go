// Package viewstate defines the immutable view-state model that the
// reconciler diffs and the rendering surface draws.
//
// A view state is an ordered list of sections. Every section is an [Item];
// a section that also implements [Parent] exposes child items, one cell per
// child. A section without children is a single opaque cell group whose size
// is given by [Counter] (or 1).
//
// Capabilities are expressed as small optional interfaces that are checked
// once per item:
//
//   - [Parent]: the item has child items (a nil slice still counts)
//   - [Counter]: the item reports its own leaf count
//   - [Sectioned]: the item may carry a header item
//   - [Kinded]: the item names the component kind that renders it
//
// Producers hand states to the presenter, which freezes them with [Capture].
// A [Snapshot] never changes after capture and is safe to share between
// goroutines.
package viewstate
