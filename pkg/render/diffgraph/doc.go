// Package diffgraph draws edit scripts as Graphviz diagrams.
//
// # Usage
//
// Convert the script between two snapshots to DOT, then render it:
//
//	script := reconcile.Diff(from, to)
//	dot := diffgraph.ToDOT(from, to, script, diffgraph.Options{Detailed: true})
//	svg, err := diffgraph.RenderSVG(ctx, dot)
//
// [RenderPDF] and [RenderPNG] convert the SVG with rsvg-convert, see
// package render.
//
// # Diagram
//
// Old sections sit in the left cluster and new sections in the right one,
// laid out left to right (rankdir=LR). Inserted sections are filled green
// and deleted ones red. Every surviving section is joined to its new
// position; the edge label of an update summarises its item edits as
// "+inserted -deleted ~updated", or lists them when Options.Detailed is set.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package diffgraph
