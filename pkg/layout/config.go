package layout

import (
	"os"

	"github.com/BurntSushi/toml"

	terrors "github.com/matzehuels/tempo/pkg/errors"
	"github.com/matzehuels/tempo/pkg/geom"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Config holds the layout-wide defaults.
type Config struct {
	CollectionMargins               Margins `toml:"collection_margins" json:"collection_margins"`
	CollapseFirstSectionTopMargin   bool    `toml:"collapse_first_section_top_margin" json:"collapse_first_section_top_margin"`
	CollapseLastSectionBottomMargin bool    `toml:"collapse_last_section_bottom_margin" json:"collapse_last_section_bottom_margin"`
	Backdrop                        bool    `toml:"backdrop" json:"backdrop"`

	SectionStyle   SectionStyle `toml:"section_style" json:"section_style"`
	SectionMargins Margins      `toml:"section_margins" json:"section_margins"`
	HeaderMargins  Margins      `toml:"header_margins" json:"header_margins"`
	HeaderHeight   float64      `toml:"header_height" json:"header_height"`

	ItemHeight      float64        `toml:"item_height" json:"item_height"`
	ItemStyle       ItemStyle      `toml:"item_style" json:"item_style"`
	ItemMargins     Margins        `toml:"item_margins" json:"item_margins"`
	SeparatorInsets geom.Insets    `toml:"separator_insets" json:"separator_insets"`
	Highlight       HighlightStyle `toml:"highlight" json:"highlight"`

	TileSize    TileSize    `toml:"tile_size" json:"tile_size"`
	TileInsets  geom.Insets `toml:"tile_insets" json:"tile_insets"`
	TileSpacing float64     `toml:"tile_spacing" json:"tile_spacing"`
	Padding     geom.Insets `toml:"padding" json:"padding"`
}

// DefaultConfig returns the stock defaults.
func DefaultConfig() Config {
	return Config{
		CollectionMargins:               Margins{Top: MarginNarrow, Bottom: MarginNarrow},
		CollapseFirstSectionTopMargin:   true,
		CollapseLastSectionBottomMargin: true,

		SectionStyle:   SectionList,
		SectionMargins: Margins{Bottom: MarginWide},
		HeaderMargins:  Margins{Left: MarginNarrow, Right: MarginNarrow},
		HeaderHeight:   21,

		ItemHeight:  44,
		ItemStyle:   StyleGrouped,
		ItemMargins: Margins{Left: MarginNarrow, Right: MarginNarrow},
		Highlight:   HighlightBackground,

		TileSize:   TileWide,
		TileInsets: geom.Insets{Left: 2, Right: 2},
	}
}

// Validate reports the first setting that cannot produce a layout.
func (c Config) Validate() error {
	if c.ItemHeight < 0 {
		return terrors.New(terrors.ErrCodeInvalidConfig, "item_height must not be negative (got %v)", c.ItemHeight)
	}
	if c.HeaderHeight < 0 {
		return terrors.New(terrors.ErrCodeInvalidConfig, "header_height must not be negative (got %v)", c.HeaderHeight)
	}
	if c.TileSpacing < 0 {
		return terrors.New(terrors.ErrCodeInvalidConfig, "tile_spacing must not be negative (got %v)", c.TileSpacing)
	}
	return nil
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing from
// the file keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, terrors.Wrap(terrors.ErrCodeFileNotFound, err, "layout config %s", path)
		}
		return cfg, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return DefaultConfig(), terrors.Wrap(terrors.ErrCodeInvalidConfig, err, "decode layout config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return DefaultConfig(), terrors.New(terrors.ErrCodeInvalidConfig, "unknown layout config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// ItemConfig overrides per-item properties. Nil fields fall through to the
// next level of the resolution order.
type ItemConfig struct {
	// Height measures the cell for a given width.
	Height func(width float64) float64

	Style           *ItemStyle
	Margins         *Margins
	SeparatorInsets *geom.Insets
	SeparatorHidden *bool
	Highlight       *HighlightStyle
	TileSize        *TileSize
	TileInsets      *geom.Insets
	TileSpacing     *float64
	Padding         *geom.Insets
}

// SectionConfig overrides per-section properties.
type SectionConfig struct {
	Style         *SectionStyle
	Margins       *Margins
	HeaderMargins *Margins
	Header        bool

	// HeaderHeight measures the header for a given width. It is only
	// consulted when Header is set.
	HeaderHeight func(width float64) float64

	// Items applies to every item of the section that does not override a
	// property itself.
	Items ItemConfig
}

// Delegate supplies per-section and per-item overrides.
type Delegate interface {
	SectionConfig(section int) SectionConfig
	ItemConfig(path viewstate.IndexPath) ItemConfig
	// Break reports whether a visual break follows the item at path.
	Break(path viewstate.IndexPath) bool
}

// DefaultDelegate overrides nothing.
type DefaultDelegate struct{}

func (DefaultDelegate) SectionConfig(int) SectionConfig           { return SectionConfig{} }
func (DefaultDelegate) ItemConfig(viewstate.IndexPath) ItemConfig { return ItemConfig{} }
func (DefaultDelegate) Break(viewstate.IndexPath) bool            { return false }

// Ptr returns a pointer to v, for filling override fields.
func Ptr[T any](v T) *T { return &v }

// pick returns the first non-nil override, or def.
func pick[T any](def T, overrides ...*T) T {
	for _, o := range overrides {
		if o != nil {
			return *o
		}
	}
	return def
}

// pickFunc returns the first non-nil function, or nil.
func pickFunc[F ~func(float64) float64](fns ...F) F {
	for _, fn := range fns {
		if fn != nil {
			return fn
		}
	}
	return nil
}

// item is a fully resolved item configuration.
type item struct {
	height          func(width float64) float64
	style           ItemStyle
	margins         Margins
	separatorInsets geom.Insets
	separatorHidden bool
	highlight       HighlightStyle
	tileSize        TileSize
	tileInsets      geom.Insets
	tileSpacing     float64
	padding         geom.Insets
}

func (c Config) resolveItem(own, section ItemConfig) item {
	height := pickFunc(own.Height, section.Height)
	if height == nil {
		h := c.ItemHeight
		height = func(float64) float64 { return h }
	}
	return item{
		height:          height,
		style:           pick(c.ItemStyle, own.Style, section.Style),
		margins:         pick(c.ItemMargins, own.Margins, section.Margins),
		separatorInsets: pick(c.SeparatorInsets, own.SeparatorInsets, section.SeparatorInsets),
		separatorHidden: pick(false, own.SeparatorHidden, section.SeparatorHidden),
		highlight:       pick(c.Highlight, own.Highlight, section.Highlight),
		tileSize:        pick(c.TileSize, own.TileSize, section.TileSize),
		tileInsets:      pick(c.TileInsets, own.TileInsets, section.TileInsets),
		tileSpacing:     pick(c.TileSpacing, own.TileSpacing, section.TileSpacing),
		padding:         pick(c.Padding, own.Padding, section.Padding),
	}
}

// section is a fully resolved section configuration.
type section struct {
	style         SectionStyle
	margins       Margins
	header        bool
	headerMargins Margins
	headerHeight  func(width float64) float64
	items         ItemConfig
}

func (c Config) resolveSection(sc SectionConfig) section {
	headerHeight := sc.HeaderHeight
	if headerHeight == nil {
		h := c.HeaderHeight
		headerHeight = func(float64) float64 { return h }
	}
	return section{
		style:         pick(c.SectionStyle, sc.Style),
		margins:       pick(c.SectionMargins, sc.Margins),
		header:        sc.Header,
		headerMargins: pick(c.HeaderMargins, sc.HeaderMargins),
		headerHeight:  headerHeight,
		items:         sc.Items,
	}
}
