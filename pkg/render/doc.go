// Package render converts SVG diagrams to the raster and print formats.
//
// Conversion runs the external rsvg-convert tool from librsvg
// (brew install librsvg, apt install librsvg2-bin):
//
//	svg, err := diffgraph.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// Diagrams themselves are produced by the [diffgraph] subpackage.
//
// [diffgraph]: github.com/matzehuels/tempo/pkg/render/diffgraph
package render
