package diffgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tempo/pkg/reconcile"
	"github.com/matzehuels/tempo/pkg/render"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

const (
	colorInserted = "#d4edda"
	colorDeleted  = "#f8d7da"
	colorReloaded = "#e8a33d"
	colorUpdated  = "#3d7ee8"
	colorSame     = "#bbbbbb"
)

// Options configures edit script diagrams.
type Options struct {
	// Detailed lists each section's items and item edits in the labels.
	// When false, only the section index and identifier are shown.
	Detailed bool
}

// ToDOT converts the edit script between two snapshots to Graphviz DOT.
//
// Old sections are drawn on the left, new sections on the right. Inserted
// sections are green, deleted ones red. Edges connect a section to its new
// position: blue for updates, dashed orange for reloads and dotted grey for
// sections the script leaves alone. The focused section gets a bold outline.
func ToDOT(from, to *viewstate.Snapshot, script reconcile.Script, opts Options) string {
	var (
		inserted = make(map[int]bool)
		deleted  = make(map[int]bool)
		headers  = make(map[int]bool)
		edits    = make(map[int]reconcile.SectionUpdate)
		focus    *viewstate.Focus
	)
	for _, u := range script {
		switch u.Op {
		case reconcile.OpInsert:
			inserted[u.Index] = true
		case reconcile.OpDelete:
			deleted[u.Index] = true
		case reconcile.OpReload:
			edits[u.Index] = u
		case reconcile.OpUpdate:
			edits[u.From] = u
		case reconcile.OpHeader:
			headers[u.To] = true
		case reconcile.OpFocus:
			focus = u.Focus
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=1.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	buf.WriteString("\n  subgraph cluster_old {\n    label=\"old\";\n")
	for i, sec := range from.Sections() {
		attrs := []string{fmt.Sprintf("label=%q", label(i, sec, opts.Detailed))}
		if deleted[i] {
			attrs = append(attrs, "fillcolor=\""+colorDeleted+"\"")
		}
		fmt.Fprintf(&buf, "    %q [%s];\n", nodeID("old", i), strings.Join(attrs, ", "))
	}
	buf.WriteString("  }\n")

	buf.WriteString("\n  subgraph cluster_new {\n    label=\"new\";\n")
	for i, sec := range to.Sections() {
		l := label(i, sec, opts.Detailed)
		if headers[i] {
			l += "\n(header changed)"
		}
		attrs := []string{fmt.Sprintf("label=%q", l)}
		if inserted[i] {
			attrs = append(attrs, "fillcolor=\""+colorInserted+"\"")
		}
		if focus != nil && focus.Path.Section == i {
			attrs = append(attrs, "penwidth=3", fmt.Sprintf("xlabel=%q", "focus "+focus.Path.String()))
		}
		fmt.Fprintf(&buf, "    %q [%s];\n", nodeID("new", i), strings.Join(attrs, ", "))
	}
	buf.WriteString("  }\n\n")

	current := to.Sections()
	for i, sec := range from.Sections() {
		if deleted[i] {
			continue
		}
		j := indexOf(current, sec.ID())
		if j < 0 {
			continue
		}
		var attrs []string
		u, edited := edits[i]
		switch {
		case !edited:
			attrs = []string{"style=dotted", "color=\"" + colorSame + "\""}
		case u.Op == reconcile.OpReload:
			attrs = []string{"style=dashed", "color=\"" + colorReloaded + "\"", "label=\"reload\""}
		default:
			attrs = []string{"color=\"" + colorUpdated + "\"", fmt.Sprintf("label=%q", itemLabel(u.Items, opts.Detailed))}
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeID("old", i), nodeID("new", j), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(side string, i int) string { return side + "/" + strconv.Itoa(i) }

func label(i int, sec viewstate.Item, detailed bool) string {
	l := fmt.Sprintf("%d: %s", i, sec.ID())
	if !detailed {
		return l
	}
	if kind := viewstate.KindOf(sec); kind != "" {
		l += " [" + kind + "]"
	}
	if children, ok := viewstate.Children(sec); ok {
		for _, c := range children {
			l += "\n  " + c.ID()
		}
		return l
	}
	return l + fmt.Sprintf("\n  %d cells", viewstate.NumberOfItems(sec))
}

// itemLabel summarises item edits as "+inserted -deleted ~updated".
func itemLabel(items []reconcile.ItemUpdate, detailed bool) string {
	if len(items) == 0 {
		return "update"
	}
	if detailed {
		parts := make([]string, len(items))
		for i, u := range items {
			parts[i] = u.String()
		}
		return strings.Join(parts, "\n")
	}
	var ins, del, upd int
	for _, u := range items {
		switch u.Op {
		case reconcile.OpInsert:
			ins++
		case reconcile.OpDelete:
			del++
		default:
			upd++
		}
	}
	return fmt.Sprintf("+%d -%d ~%d", ins, del, upd)
}

func indexOf(items []viewstate.Item, id string) int {
	for i, it := range items {
		if it.ID() == id {
			return i
		}
	}
	return -1
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point based svg header so the
// diagram scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
