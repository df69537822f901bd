package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	tio "github.com/matzehuels/tempo/pkg/io"
	"github.com/matzehuels/tempo/pkg/layout"
	"github.com/matzehuels/tempo/pkg/pipeline"
)

// layoutCommand creates the layout command for computing element frames.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		configPath string
		asJSON     bool
		flags      cacheFlags
	)
	opts := pipeline.LayoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout [snapshot.json]",
		Short: "Compute cell, header and backdrop frames for a snapshot",
		Long: `Compute the layout of a snapshot in a viewport.

Sections are laid out as grouped or plain lists, or as tile grids when their
section_style hint is "grid". Cell heights come from the default text and
header components unless an item carries a height hint. Layout settings are
read from a TOML file with --config; unset keys keep their defaults.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := layout.LoadConfig(configPath)
				if err != nil {
					return err
				}
				opts.Config = &cfg
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), args[0], opts, output, asJSON, flags)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the layout as JSON to this file")
	cmd.Flags().StringVar(&configPath, "config", "", "layout configuration (TOML)")
	cmd.Flags().Float64Var(&opts.Width, "width", pipeline.DefaultWidth, "viewport width in points")
	cmd.Flags().Float64Var(&opts.Height, "height", pipeline.DefaultHeight, "viewport height in points")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	flags.register(cmd)

	return cmd
}

// runLayout loads the snapshot, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, input string, opts pipeline.LayoutOptions, output string, asJSON bool, flags cacheFlags) error {
	snap, err := tio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, flags, nil)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	opts.Logger = logger
	prog := newProgress(logger)
	res, err := runner.Layout(ctx, snap, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	prog.done(fmt.Sprintf("Laid out %d elements", len(res.Elements)))

	switch {
	case output != "":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Layout complete")
		printFile(output)
	case asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		fmt.Fprintln(w, layoutTable(res))
	}

	printStats(res.CacheHit,
		fmt.Sprintf("%d sections", snap.Len()),
		fmt.Sprintf("%d elements", len(res.Elements)),
		fmt.Sprintf("%gx%g content", res.ContentSize.Width, res.ContentSize.Height))
	if output != "" {
		printNewline()
		printNextStep("Compare with another snapshot", "tempo diff "+input+" <new.json>")
	}
	return nil
}

func layoutTable(res *pipeline.LayoutResult) string {
	rows := make([][]string, len(res.Elements))
	for i, e := range res.Elements {
		rows[i] = []string{
			e.Kind.String(),
			e.Path.String(),
			fmt.Sprintf("%g,%g", e.Frame.X, e.Frame.Y),
			fmt.Sprintf("%gx%g", e.Frame.Width, e.Frame.Height),
			e.Position.String(),
			e.Style.String(),
		}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Kind", "Path", "Origin", "Size", "Position", "Style").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}
