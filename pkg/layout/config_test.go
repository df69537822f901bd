package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	terrors "github.com/matzehuels/tempo/pkg/errors"
	"github.com/matzehuels/tempo/pkg/geom"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
item_height = 60
item_style = "plain"
section_style = "grid"
tile_size = "small"
tile_spacing = 4
backdrop = true
collapse_first_section_top_margin = false

[section_margins]
top = "half"
bottom = "full"

[tile_insets]
left = 8
right = 8
`)

	got, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	want := DefaultConfig()
	want.ItemHeight = 60
	want.ItemStyle = StylePlain
	want.SectionStyle = SectionGrid
	want.TileSize = TileSmall
	want.TileSpacing = 4
	want.Backdrop = true
	want.CollapseFirstSectionTopMargin = false
	want.SectionMargins = Margins{Top: MarginHalf, Bottom: MarginFull}
	want.TileInsets = geom.Insets{Left: 8, Right: 8}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", `item_heigth = 3`},
		{"unknown style", `item_style = "fancy"`},
		{"unknown margin", "[item_margins]\nleft = \"huge\""},
		{"negative height", `item_height = -1`},
		{"not toml", `item_height = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseConfig() error = nil, want error")
			}
			if !terrors.Is(err, terrors.ErrCodeInvalidConfig) {
				t.Errorf("ParseConfig() code = %v, want %v", terrors.GetCode(err), terrors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, []byte("header_height = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.HeaderHeight != 30 || cfg.ItemHeight != 44 {
		t.Errorf("LoadConfig() header/item height = %v/%v, want 30/44", cfg.HeaderHeight, cfg.ItemHeight)
	}

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	if !terrors.Is(err, terrors.ErrCodeFileNotFound) {
		t.Errorf("LoadConfig(missing) code = %v, want %v", terrors.GetCode(err), terrors.ErrCodeFileNotFound)
	}
}

func TestMarginPoints(t *testing.T) {
	tests := []struct {
		margin Margin
		want   float64
	}{
		{MarginNone, 0},
		{MarginNarrow, 4},
		{MarginQuarter, 4},
		{MarginHalf, 8},
		{MarginWide, 16},
		{MarginFull, 16},
	}

	for _, tt := range tests {
		t.Run(tt.margin.String(), func(t *testing.T) {
			if got := tt.margin.Points(); got != tt.want {
				t.Errorf("Points() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPick(t *testing.T) {
	if got := pick(1); got != 1 {
		t.Errorf("pick(1) = %d, want 1", got)
	}
	if got := pick(1, nil, Ptr(3), Ptr(4)); got != 3 {
		t.Errorf("pick(1, nil, 3, 4) = %d, want 3", got)
	}
}
