package component

import (
	"github.com/matzehuels/tempo/pkg/layout"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Delegate configures a layout pass from a snapshot: item heights come from
// the components drawing them, overrides from Configurer components and from
// the layout hints of generic nodes.
//
// Delegate also implements layout.DataSource, so a layout prepared against a
// surface whose applied state lags the snapshot keeps its previous geometry.
type Delegate struct {
	Registry *Registry
	Snapshot *viewstate.Snapshot
}

// NewDelegate returns a delegate for snap.
func NewDelegate(reg *Registry, snap *viewstate.Snapshot) *Delegate {
	return &Delegate{Registry: reg, Snapshot: snap}
}

func (d *Delegate) NumberOfSections() int         { return d.Snapshot.NumberOfSections() }
func (d *Delegate) NumberOfItems(section int) int { return d.Snapshot.NumberOfItems(section) }

// SectionConfig implements layout.Delegate.
func (d *Delegate) SectionConfig(section int) layout.SectionConfig {
	sec := d.Snapshot.Section(section)

	var sc layout.SectionConfig
	if h := viewstate.HintsOf(sec); h.SectionStyle != "" {
		var style layout.SectionStyle
		if style.UnmarshalText([]byte(h.SectionStyle)) == nil {
			sc.Style = &style
		}
	}
	if header := viewstate.HeaderOf(sec); header != nil {
		c := d.Registry.MustHeaderFor(header)
		sc.Header = true
		sc.HeaderHeight = func(width float64) float64 { return c.Height(header, width) }
	}
	return sc
}

// ItemConfig implements layout.Delegate.
func (d *Delegate) ItemConfig(path viewstate.IndexPath) layout.ItemConfig {
	item := d.Snapshot.ItemAt(path)
	c := d.Registry.MustFor(item)

	var cfg layout.ItemConfig
	if cc, ok := c.(Configurer); ok {
		cfg = cc.ItemConfig(item)
	}
	if cfg.Height == nil {
		cfg.Height = func(width float64) float64 { return c.Height(item, width) }
	}
	applyHints(&cfg, viewstate.HintsOf(item))
	return cfg
}

// Break implements layout.Delegate.
func (d *Delegate) Break(path viewstate.IndexPath) bool {
	return viewstate.HintsOf(d.Snapshot.ItemAt(path)).Break
}

// applyHints lets explicit hints win over component configuration.
func applyHints(cfg *layout.ItemConfig, h viewstate.Hints) {
	if h.Style != "" {
		var style layout.ItemStyle
		if style.UnmarshalText([]byte(h.Style)) == nil {
			cfg.Style = &style
		}
	}
	if h.Tile != "" {
		var size layout.TileSize
		if size.UnmarshalText([]byte(h.Tile)) == nil {
			cfg.TileSize = &size
		}
	}
	if h.Height > 0 {
		height := h.Height
		cfg.Height = func(float64) float64 { return height }
	}
}
