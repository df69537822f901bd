// Package pkg provides the core libraries of Tempo, a sectioned collection
// view core for list and grid screens.
//
// # Overview
//
// A screen is described by a view state: an ordered list of sections, each
// with an optional header and zero or more items. Every time the state
// changes, Tempo works out the smallest batch of section and item edits that
// turns what is on screen into the new state, lays the sections out as lists
// or tile grids, and hands both to a rendering surface. The pkg directory is
// organized into four areas:
//
//  1. Core - view states, reconciliation, scheduling and layout
//  2. Presentation - components, events and the terminal surface
//  3. Tooling - JSON snapshots, the stage pipeline and the HTTP server
//  4. Infrastructure - caching, HTTP clients, retries, hooks and errors
//
// # Architecture
//
// The data flow from a view state to the screen:
//
//	viewstate.State
//	       ↓  Capture
//	viewstate.Snapshot
//	       ↓  [presenter] (one diff at a time, latest state wins)
//	reconcile.Script
//	       ↓  main queue
//	Adapter (e.g. [surface])
//	       ↓  [layout] via the [component] registry
//	frames, headers, backdrops
//
// # Quick Start
//
// Diff two snapshots:
//
//	from := viewstate.Capture(viewstate.Static{Items: []viewstate.Item{a, b}})
//	to := viewstate.Capture(viewstate.Static{Items: []viewstate.Item{b, c}})
//	for _, u := range reconcile.Diff(from, to) {
//	    fmt.Println(u) // insert(1), delete(0)
//	}
//
// Drive a surface from a stream of states:
//
//	s := surface.New(component.Defaults())
//	p := presenter.New(s, presenter.WithMainQueue(queue))
//	defer p.Close()
//	p.Present(state) // first call applies synchronously
//	p.Present(next)  // later calls are diffed on the worker
//
// # Main Packages
//
// ## Core
//
// [viewstate] - Items, sections, index paths, focus requests and immutable
// snapshots.
//
// [reconcile] - The section/item diff engine producing ordered edit scripts.
//
// [presenter] - The reconciliation scheduler: serial diffs off the main
// queue, coalescing of pending states, ordered non-overlapping batches.
//
// [layout] - List placement and the layout pass; [layout/grid] is the tile
// packer and its projection to points.
//
// [geom] - Rectangles, sizes and insets.
//
// ## Presentation
//
// [component] - Renderers and heights per item kind, and the layout delegate
// built from them.
//
// [event] - Typed publish/subscribe bus for lifecycle and selection events.
//
// [surface] - A terminal rendering surface implementing the presenter's
// adapter.
//
// ## Tooling
//
// [io] - JSON import and export of snapshots.
//
// [pipeline] - The diff, pack and layout stages with caching, shared by the
// CLI and the server.
//
// [server] - The HTTP playground API.
//
// [render/diffgraph] - Graphviz diagrams of edit scripts; [render] converts
// them to PNG and PDF.
//
// ## Infrastructure
//
// [cache] - File, Redis, MongoDB and null cache backends with key builders.
//
// [integrations] - Cached, retrying HTTP client; [integrations/products]
// fetches the deals feed.
//
// [httputil] - Retry with exponential backoff.
//
// [observability] - Hooks for cache, HTTP, reconcile and layout events.
//
// [errors] - Coded errors and input validation.
//
// # Testing
//
//	go test ./pkg/...
//	go test -run Example ./pkg/...
//
// [viewstate]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/viewstate
// [reconcile]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/reconcile
// [presenter]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/presenter
// [layout]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/layout
// [layout/grid]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/layout/grid
// [geom]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/geom
// [component]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/component
// [event]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/event
// [surface]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/surface
// [io]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/server
// [render]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/render
// [render/diffgraph]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/render/diffgraph
// [cache]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/cache
// [integrations]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/integrations
// [integrations/products]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/integrations/products
// [httputil]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tempo/pkg/errors
package pkg
