package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/tempo/pkg/reconcile"
	"github.com/matzehuels/tempo/pkg/render/diffgraph"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// RenderDiff renders an edit script in the requested format.
func RenderDiff(ctx context.Context, from, to *viewstate.Snapshot, script reconcile.Script, opts DiffOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	switch opts.Format {
	case FormatText:
		data = []byte(FormatScript(script))
	case FormatJSON:
		data, err = json.MarshalIndent(script, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatDOT:
		data = []byte(diffgraph.ToDOT(from, to, script, diffgraph.Options{Detailed: opts.Detailed}))
	case FormatSVG:
		data, err = diffgraph.RenderSVG(ctx, diffgraph.ToDOT(from, to, script, diffgraph.Options{Detailed: opts.Detailed}))
	case FormatPNG:
		data, err = diffgraph.RenderPNG(ctx, diffgraph.ToDOT(from, to, script, diffgraph.Options{Detailed: opts.Detailed}), opts.Scale)
	case FormatPDF:
		data, err = diffgraph.RenderPDF(ctx, diffgraph.ToDOT(from, to, script, diffgraph.Options{Detailed: opts.Detailed}))
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}
	return data, nil
}

// FormatScript writes one update per line. An empty script renders as
// "(no changes)".
func FormatScript(script reconcile.Script) string {
	if len(script) == 0 {
		return "(no changes)\n"
	}
	return strings.Join(script.Strings(), "\n") + "\n"
}
