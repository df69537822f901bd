package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tempo/pkg/cache"
	terrors "github.com/matzehuels/tempo/pkg/errors"
	"github.com/matzehuels/tempo/pkg/layout"
	"github.com/matzehuels/tempo/pkg/layout/grid"
	"github.com/matzehuels/tempo/pkg/reconcile"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

func snapshot(items ...viewstate.Item) *viewstate.Snapshot {
	return viewstate.Capture(viewstate.Static{Items: items})
}

func node(id string) viewstate.Node { return viewstate.Node{Key: id, Title: strings.ToUpper(id)} }

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	return NewRunner(c, nil, nil)
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !terrors.Is(err, terrors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want %s", tt.format, terrors.GetCode(err), terrors.ErrCodeInvalidFormat)
		}
	}
}

func TestDiffOptionsDefaults(t *testing.T) {
	var opts DiffOptions
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if opts.Format != DefaultFormat {
		t.Errorf("Format = %q, want %q", opts.Format, DefaultFormat)
	}
	if opts.Scale != 2 {
		t.Errorf("Scale = %v, want 2", opts.Scale)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}
}

func TestPackOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts PackOptions
		code terrors.Code
	}{
		{"zero columns default", PackOptions{Tiles: []string{"wide"}}, ""},
		{"negative columns", PackOptions{Columns: -1, Tiles: []string{"1x1"}}, terrors.ErrCodeInvalidGrid},
		{"tile wider than grid", PackOptions{Columns: 4, Tiles: []string{"6x5"}}, terrors.ErrCodeInvalidTile},
		{"zero tile", PackOptions{Tiles: []string{"0x5"}}, terrors.ErrCodeInvalidTile},
		{"unknown tile", PackOptions{Tiles: []string{"huge"}}, terrors.ErrCodeInvalidTile},
		{"negative spacing", PackOptions{Spacing: -1}, terrors.ErrCodeInvalidGrid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !terrors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestFormatScript(t *testing.T) {
	if got := FormatScript(nil); got != "(no changes)\n" {
		t.Errorf("FormatScript(nil) = %q", got)
	}
	script := reconcile.Script{reconcile.Insert(1), reconcile.Delete(0)}
	if got, want := FormatScript(script), "insert(1)\ndelete(0)\n"; got != want {
		t.Errorf("FormatScript() = %q, want %q", got, want)
	}
}

func TestRunnerDiff(t *testing.T) {
	r := newTestRunner(t)
	from := snapshot(node("a"), node("b"))
	to := snapshot(node("b"), node("c"))

	res, err := r.Diff(context.Background(), from, to, DiffOptions{})
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if got, want := string(res.Output), "insert(1)\ndelete(0)\n"; got != want {
		t.Errorf("Diff() output = %q, want %q", got, want)
	}
	if res.CacheHit {
		t.Error("text output should never come from the cache")
	}
	if res.Stats.Ops[reconcile.OpInsert] != 1 || res.Stats.Ops[reconcile.OpDelete] != 1 {
		t.Errorf("Stats.Ops = %v", res.Stats.Ops)
	}

	res, err = r.Diff(context.Background(), from, to, DiffOptions{Format: FormatJSON})
	if err != nil {
		t.Fatalf("Diff(json) error = %v", err)
	}
	if !strings.Contains(string(res.Output), `"op": "insert"`) {
		t.Errorf("Diff(json) output = %s", res.Output)
	}

	if _, err := r.Diff(context.Background(), from, to, DiffOptions{Format: "gif"}); !terrors.Is(err, terrors.ErrCodeInvalidFormat) {
		t.Errorf("Diff(gif) error = %v, want INVALID_FORMAT", err)
	}
}

func TestRunnerDiffDuplicates(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Diff(context.Background(), snapshot(node("a"), node("a")), snapshot(node("a"), node("b"), node("b")), DiffOptions{})
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, res.Duplicates); diff != "" {
		t.Errorf("Duplicates mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerDiffCachesDiagrams(t *testing.T) {
	r := newTestRunner(t)
	from := snapshot(node("a"))
	to := snapshot(node("a"), node("b"))

	first, err := r.Diff(context.Background(), from, to, DiffOptions{Format: FormatSVG})
	if err != nil {
		t.Fatalf("Diff(svg) error = %v", err)
	}
	if first.CacheHit {
		t.Error("first Diff(svg) should miss the cache")
	}
	if !strings.Contains(string(first.Output), "<svg") {
		t.Errorf("Diff(svg) output is not svg: %.80s", first.Output)
	}

	// New snapshots with the same content hit the cache.
	second, err := r.Diff(context.Background(), snapshot(node("a")), snapshot(node("a"), node("b")), DiffOptions{Format: FormatSVG})
	if err != nil {
		t.Fatalf("Diff(svg) error = %v", err)
	}
	if !second.CacheHit {
		t.Error("second Diff(svg) should hit the cache")
	}
	if string(first.Output) != string(second.Output) {
		t.Error("cached output differs")
	}
}

func TestRunnerPack(t *testing.T) {
	r := newTestRunner(t)
	opts := PackOptions{Columns: 12, Width: 124, Tiles: []string{"6x5", "small", "wide"}}

	res, err := r.Pack(context.Background(), opts)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	wantCells := []grid.Rect{
		{X: 0, Y: 0, Width: 6, Height: 5},
		{X: 6, Y: 0, Width: 6, Height: 5},
		{X: 0, Y: 5, Width: 12, Height: 5},
	}
	var gotCells []grid.Rect
	for _, tile := range res.Tiles {
		gotCells = append(gotCells, tile.Cell)
	}
	if diff := cmp.Diff(wantCells, gotCells); diff != "" {
		t.Errorf("Pack() cells mismatch (-want +got):\n%s", diff)
	}
	if res.Rows != 10 {
		t.Errorf("Rows = %d, want 10", res.Rows)
	}
	if res.ColumnWidth != 10 {
		t.Errorf("ColumnWidth = %v, want 10", res.ColumnWidth)
	}
	if res.CacheHit {
		t.Error("first Pack() should miss the cache")
	}

	again, err := r.Pack(context.Background(), opts)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if !again.CacheHit {
		t.Error("second Pack() should hit the cache")
	}
	if diff := cmp.Diff(res.Tiles, again.Tiles); diff != "" {
		t.Errorf("cached tiles mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerPackInvalid(t *testing.T) {
	r := newTestRunner(t)
	_, err := r.Pack(context.Background(), PackOptions{Columns: 4, Tiles: []string{"wide"}})
	if !terrors.Is(err, terrors.ErrCodeInvalidTile) {
		t.Errorf("Pack() error = %v, want INVALID_TILE", err)
	}
}

func TestRunnerLayout(t *testing.T) {
	r := newTestRunner(t)
	snap := snapshot(
		viewstate.LeafSection{Node: node("intro"), Head: node("intro-header")},
		viewstate.SectionNode{Node: node("list"), Children: []viewstate.Item{node("x"), node("y")}},
	)

	res, err := r.Layout(context.Background(), snap, LayoutOptions{Width: 320})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	var kinds []layout.ElementKind
	var paths []viewstate.IndexPath
	for _, a := range res.Elements {
		kinds = append(kinds, a.Kind)
		paths = append(paths, a.Path)
	}
	wantKinds := []layout.ElementKind{layout.KindCell, layout.KindCell, layout.KindCell, layout.KindHeader}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Errorf("element kinds mismatch (-want +got):\n%s", diff)
	}
	wantPaths := []viewstate.IndexPath{viewstate.Path(0, 0), viewstate.Path(1, 0), viewstate.Path(1, 1), viewstate.Path(0, 0)}
	if diff := cmp.Diff(wantPaths, paths); diff != "" {
		t.Errorf("element paths mismatch (-want +got):\n%s", diff)
	}
	if res.ContentSize.Width != 320 || res.ContentSize.Height <= 0 {
		t.Errorf("ContentSize = %+v", res.ContentSize)
	}

	again, err := r.Layout(context.Background(), snap, LayoutOptions{Width: 320})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if !again.CacheHit {
		t.Error("second Layout() should hit the cache")
	}
	if diff := cmp.Diff(res.Elements, again.Elements); diff != "" {
		t.Errorf("cached elements mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerLayoutInvalidConfig(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	cfg := layout.DefaultConfig()
	cfg.ItemHeight = -1
	_, err := r.Layout(context.Background(), snapshot(node("a")), LayoutOptions{Config: &cfg})
	if !terrors.Is(err, terrors.ErrCodeInvalidConfig) {
		t.Errorf("Layout() error = %v, want INVALID_CONFIG", err)
	}
}

func TestRunnerLayoutEmpty(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Layout(context.Background(), snapshot(), LayoutOptions{})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if len(res.Elements) != 0 {
		t.Errorf("Elements = %d, want 0", len(res.Elements))
	}
}
