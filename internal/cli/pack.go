package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tempo/pkg/pipeline"
)

// packCommand creates the pack command for placing grid tiles.
func (c *CLI) packCommand() *cobra.Command {
	var (
		asJSON bool
		flags  cacheFlags
	)
	opts := pipeline.PackOptions{}

	cmd := &cobra.Command{
		Use:   "pack [tile...]",
		Short: "Place tiles on a fixed-column grid",
		Long: `Place tiles on a fixed-column grid and project them to points.

Tiles are placed in order, each at the topmost and then leftmost free
position. A tile is a size name (mini, small, wide, tall, big, giant,
carousel-small, carousel-tall) or a WxH footprint in grid units:

  tempo pack --columns 12 --width 360 12x5 6x5 6x5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Tiles = args
			return c.runPack(cmd.Context(), cmd.OutOrStdout(), opts, asJSON, flags)
		},
	}

	cmd.Flags().IntVar(&opts.Columns, "columns", pipeline.DefaultColumns, "grid columns")
	cmd.Flags().Float64Var(&opts.Width, "width", pipeline.DefaultWidth, "container width in points")
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", 0, "spacing between tiles in points")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the placement as JSON")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runPack(ctx context.Context, w io.Writer, opts pipeline.PackOptions, asJSON bool, flags cacheFlags) error {
	runner, err := c.newRunner(ctx, flags, nil)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	res, err := runner.Pack(ctx, opts)
	if err != nil {
		return fmt.Errorf("pack: %w", err)
	}
	prog.done(fmt.Sprintf("Packed %d tiles", len(res.Tiles)))

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintln(w, packTable(res))
	fmt.Fprintln(w, packMap(res))
	printStats(res.CacheHit,
		fmt.Sprintf("%d columns", res.Columns),
		fmt.Sprintf("%d rows", res.Rows),
		fmt.Sprintf("%gpt column", res.ColumnWidth),
		fmt.Sprintf("%gpt content", res.ContentHeight))
	return nil
}

// packTable lists each tile with its grid cell and frame.
func packTable(res *pipeline.PackResult) string {
	rows := make([][]string, len(res.Tiles))
	for i, t := range res.Tiles {
		rows[i] = []string{
			tileLabel(i),
			t.Tile.String(),
			fmt.Sprintf("%d,%d", t.Cell.X, t.Cell.Y),
			fmt.Sprintf("%g,%g", t.Frame.X, t.Frame.Y),
			fmt.Sprintf("%gx%g", t.Frame.Width, t.Frame.Height),
		}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("", "Tile", "Cell", "Origin", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}

// packMap draws the grid occupancy, one character per grid unit.
func packMap(res *pipeline.PackResult) string {
	grid := make([][]byte, res.Rows)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", res.Columns))
	}
	for i, t := range res.Tiles {
		label := tileLabel(i)[0]
		for y := t.Cell.Y; y < t.Cell.Y+t.Cell.Height; y++ {
			for x := t.Cell.X; x < t.Cell.X+t.Cell.Width; x++ {
				grid[y][x] = label
			}
		}
	}
	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = "  " + string(row)
	}
	return strings.Join(lines, "\n")
}

// tileLabel names tile i A..Z, then a..z, then digits, cycling.
func tileLabel(i int) string {
	const labels = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	return string(labels[i%len(labels)])
}
