// Package layout computes the frame of every cell, header and backdrop of a
// sectioned collection.
//
// A [Layout] walks sections top to bottom. List sections stack their items
// vertically with [PlaceList], which also assigns each cell its grouping
// [Position] (solo, top, middle or bottom) used to choose the border
// decoration. Grid sections pack fixed-size tiles into twelve columns with
// [PlaceTiles], which drives a fresh [grid.Grid] per section.
//
// # Configuration
//
// Every per-item property is resolved in one order: the item override from
// [Delegate.ItemConfig], then the section-wide item override in
// [SectionConfig.Items], then the [Config] default. Section properties are
// resolved from [Delegate.SectionConfig], then the defaults. Defaults can be
// loaded from TOML with [LoadConfig]:
//
//	item_height = 44
//	item_style = "grouped"
//	tile_size = "wide"
//
//	[section_margins]
//	bottom = "wide"
package layout
