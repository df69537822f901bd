package cache

import "fmt"

// Keyer builds cache keys.
type Keyer interface {
	// HTTPKey keys a decoded HTTP response.
	HTTPKey(namespace, key string) string
	// PackKey keys a tile packing.
	PackKey(opts PackKeyOpts) string
	// LayoutKey keys a layout pass over a snapshot with the given hash.
	LayoutKey(snapshotHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys a rendered diagram of the content with the given hash.
	ArtifactKey(contentHash string, opts ArtifactKeyOpts) string
}

// PackKeyOpts holds every input of a packing.
type PackKeyOpts struct {
	Columns int      `json:"columns"`
	Width   float64  `json:"width"`
	Spacing float64  `json:"spacing"`
	Tiles   []string `json:"tiles"`
}

// LayoutKeyOpts holds the layout inputs besides the snapshot.
type LayoutKeyOpts struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// ConfigHash is the hash of the encoded layout configuration.
	ConfigHash string `json:"config_hash"`
}

// ArtifactKeyOpts holds the rendering inputs besides the content.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
}

// DefaultKeyer hashes key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return fmt.Sprintf("http:%s:%s", namespace, key)
}

func (DefaultKeyer) PackKey(opts PackKeyOpts) string {
	return hashKey("pack", opts)
}

func (DefaultKeyer) LayoutKey(snapshotHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", snapshotHash, opts)
}

func (DefaultKeyer) ArtifactKey(contentHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", contentHash, opts)
}
