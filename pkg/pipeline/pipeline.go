// Package pipeline provides the shared diff, pack and layout stages behind
// the command line tools and the playground server.
//
// By centralizing this logic both entry points validate inputs, cache
// results and log the same way.
//
// # Stages
//
//  1. Diff: reconcile two snapshots and render the edit script as text,
//     JSON, DOT, SVG, PNG or PDF
//  2. Pack: place tiles on a grid and project them to points
//  3. Layout: run a full layout pass over a snapshot
//
// Every stage is independent. Results that are expensive to recompute
// (diagrams, packings, layouts) are cached through the runner's
// [cache.Cache].
//
// # Usage
//
//	runner := pipeline.NewRunner(backend, nil, logger)
//	result, err := runner.Diff(ctx, from, to, pipeline.DiffOptions{Format: "svg"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Output)
//
// [cache.Cache]: github.com/matzehuels/tempo/pkg/cache.Cache
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tempo/pkg/cache"
	terrors "github.com/matzehuels/tempo/pkg/errors"
	"github.com/matzehuels/tempo/pkg/geom"
	"github.com/matzehuels/tempo/pkg/layout"
	"github.com/matzehuels/tempo/pkg/layout/grid"
	"github.com/matzehuels/tempo/pkg/reconcile"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultColumns is the column count of a packing grid.
	DefaultColumns = 12

	// DefaultWidth is the default container width in points.
	DefaultWidth = 375.0

	// DefaultHeight is the default viewport height in points.
	DefaultHeight = 667.0

	// DefaultFormat is the default diff output format.
	DefaultFormat = FormatText

	// MaxTiles bounds the number of tiles in a single packing.
	MaxTiles = 10000
)

// Format constants for diff output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported diff output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// IsDiagram reports whether format is rendered through Graphviz.
func IsDiagram(format string) bool {
	return format == FormatSVG || format == FormatPNG || format == FormatPDF
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return terrors.New(terrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json, dot, svg, png, pdf)", format)
	}
	return nil
}

// =============================================================================
// Options - Stage Configuration
// =============================================================================

// DiffOptions configures the diff stage.
type DiffOptions struct {
	Format   string `json:"format,omitempty"`
	Detailed bool   `json:"detailed,omitempty"`
	// Scale is the PNG scale factor. Zero means 2.
	Scale float64 `json:"scale,omitempty"`

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills in zero fields.
func (o *DiffOptions) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Scale <= 0 {
		o.Scale = 2
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks the format.
func (o *DiffOptions) Validate() error {
	o.SetDefaults()
	return ValidateFormat(o.Format)
}

// ArtifactKeyOpts returns cache key options for the rendered diff.
func (o *DiffOptions) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: o.Format, Detailed: o.Detailed}
}

// PackOptions configures the pack stage.
type PackOptions struct {
	Columns int     `json:"columns,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Spacing float64 `json:"spacing,omitempty"`
	// Tiles are size names ("wide") or "WxH" footprints, placed in order.
	Tiles []string `json:"tiles"`
}

// Validate applies defaults and checks every tile against the grid.
func (o *PackOptions) Validate() ([]grid.Tile, error) {
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if err := terrors.ValidateColumns(o.Columns); err != nil {
		return nil, err
	}
	if o.Width < 0 || o.Spacing < 0 {
		return nil, terrors.New(terrors.ErrCodeInvalidGrid, "width and spacing must not be negative")
	}
	if len(o.Tiles) > MaxTiles {
		return nil, terrors.New(terrors.ErrCodeInvalidInput, "too many tiles: %d (max %d)", len(o.Tiles), MaxTiles)
	}

	tiles := make([]grid.Tile, len(o.Tiles))
	for i, s := range o.Tiles {
		t, err := layout.ParseTile(s)
		if err != nil {
			return nil, terrors.Wrap(terrors.ErrCodeInvalidTile, err, "tile %d", i)
		}
		if err := terrors.ValidateTile(t.Width, t.Height, o.Columns); err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		tiles[i] = t
	}
	return tiles, nil
}

// PackKeyOpts returns cache key options for the packing.
func (o *PackOptions) PackKeyOpts() cache.PackKeyOpts {
	return cache.PackKeyOpts{Columns: o.Columns, Width: o.Width, Spacing: o.Spacing, Tiles: o.Tiles}
}

// LayoutOptions configures the layout stage.
type LayoutOptions struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	// Config overrides the layout defaults. Nil means layout.DefaultConfig.
	Config *layout.Config `json:"config,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Validate applies defaults and checks the viewport and config.
func (o *LayoutOptions) Validate() error {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Config == nil {
		cfg := layout.DefaultConfig()
		o.Config = &cfg
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Width < 0 || o.Height < 0 {
		return terrors.New(terrors.ErrCodeInvalidInput, "viewport %vx%v must not be negative", o.Width, o.Height)
	}
	return o.Config.Validate()
}

// Viewport returns the configured viewport size.
func (o *LayoutOptions) Viewport() geom.Size {
	return geom.Size{Width: o.Width, Height: o.Height}
}

// =============================================================================
// Results
// =============================================================================

// DiffResult contains the outputs of the diff stage.
type DiffResult struct {
	// Script is the edit script from the old to the new snapshot.
	Script reconcile.Script
	// Output is the script rendered in the requested format.
	Output []byte
	// Duplicates lists section identifiers that occur more than once in
	// either snapshot.
	Duplicates []string
	Stats      Stats
	CacheHit   bool
}

// PackedTile is one placed tile.
type PackedTile struct {
	Tile  grid.Tile `json:"tile"`
	Cell  grid.Rect `json:"cell"`
	Frame geom.Rect `json:"frame"`
}

// PackResult contains the outputs of the pack stage.
type PackResult struct {
	Columns       int          `json:"columns"`
	Rows          int          `json:"rows"`
	ColumnWidth   float64      `json:"column_width"`
	ContentHeight float64      `json:"content_height"`
	Tiles         []PackedTile `json:"tiles"`
	CacheHit      bool         `json:"-"`
}

// LayoutResult contains the outputs of the layout stage.
type LayoutResult struct {
	ContentSize geom.Size           `json:"content_size"`
	Elements    []layout.Attributes `json:"elements"`
	CacheHit    bool                `json:"-"`
}

// Stats contains stage timing and size information.
type Stats struct {
	Sections int
	Ops      map[reconcile.Op]int
	Duration time.Duration
}
