// Package io provides JSON import and export for view-state snapshots.
//
// # Overview
//
// Snapshots are normally built in code from the items of a view state. For
// the command line tools and the playground server they are also read from
// and written to a small JSON format, decoded into the generic items of
// package viewstate ([viewstate.Node], [viewstate.SectionNode] and
// [viewstate.LeafSection]).
//
// # JSON Format
//
// A document has a "sections" array and an optional "focus":
//
//	{
//	  "sections": [
//	    {
//	      "id": "deals",
//	      "header": {"id": "deals-header", "title": "Today"},
//	      "hints": {"section_style": "grid"},
//	      "items": [
//	        {"id": "p1", "kind": "product", "title": "Lamp", "hints": {"tile": "small"}},
//	        {"id": "p2", "kind": "product", "title": "Chair", "hints": {"tile": "small"}}
//	      ]
//	    },
//	    {"id": "banner", "title": "Free shipping", "count": 3}
//	  ],
//	  "focus": {"path": {"section": 0, "item": 1}, "position": "vertical"}
//	}
//
// # Item Fields
//
// Required:
//   - id: identifier, unique within its section
//
// Optional:
//   - kind: component kind used to pick the renderer
//   - title, detail: display text
//   - count: cell count of a section without "items" (defaults to 1)
//   - hints: layout hints (style, section_style, tile, height, break)
//   - header: section header (sections only)
//   - items: child items (sections only); an empty array still makes a
//     section with zero cells
//
// A section with "items" decodes to a SectionNode, one with only a header to
// a LeafSection and anything else to a Node.
//
// # Import
//
// Use [ImportJSON] to read a snapshot from a file path, or [ReadJSON] to read
// from any io.Reader. Identifiers, hint names and the focus path are
// validated; failures carry the INVALID_SNAPSHOT code of package errors.
// Duplicate identifiers are accepted, the reconciler reports them.
//
// # Export
//
// Use [ExportJSON] or [WriteJSON]. Items other than the generic ones are
// exported by identifier, kind, header and children only.
package io
