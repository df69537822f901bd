package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	tio "github.com/matzehuels/tempo/pkg/io"
	"github.com/matzehuels/tempo/pkg/pipeline"
)

// diffCommand creates the diff command for reconciling two snapshots.
func (c *CLI) diffCommand() *cobra.Command {
	var (
		output string
		flags  cacheFlags
	)
	opts := pipeline.DiffOptions{}

	cmd := &cobra.Command{
		Use:   "diff [old.json] [new.json]",
		Short: "Compute the edit script between two snapshots",
		Long: `Compute the edit script between two view-state snapshots.

The script lists section inserts, deletes, reloads and updates (with their
item edits), an optional focus and changed headers, in the order a surface
applies them. Text, JSON and DOT output go to stdout unless -o is given.
Diagram formats (svg, png, pdf) are written to <new>.diff.<format> by default
and cached locally.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return c.runDiff(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], opts, output, flags)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", pipeline.DefaultFormat,
		"output format: text (default), json, dot, svg, png, pdf")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "list items and item edits in diagrams")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 2, "PNG scale factor")
	flags.register(cmd)

	return cmd
}

// runDiff loads both snapshots, reconciles them and writes the script.
func (c *CLI) runDiff(ctx context.Context, stdout io.Writer, oldPath, newPath string, opts pipeline.DiffOptions, output string, flags cacheFlags) error {
	from, err := tio.ImportJSON(oldPath)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", oldPath, err)
	}
	to, err := tio.ImportJSON(newPath)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", newPath, err)
	}

	runner, err := c.newRunner(ctx, flags, nil)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	opts.Logger = logger
	prog := newProgress(logger)

	var spin *spinner
	if pipeline.IsDiagram(opts.Format) {
		spin = newSpinner(ctx, os.Stderr, "Rendering diagram...")
		spin.Start()
	}
	res, err := runner.Diff(ctx, from, to, opts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	prog.done(fmt.Sprintf("Diffed %d sections", res.Stats.Sections))

	if output == "" && !pipeline.IsDiagram(opts.Format) {
		_, err := stdout.Write(res.Output)
		return err
	}
	if output == "" {
		output = strings.TrimSuffix(newPath, filepath.Ext(newPath)) + ".diff." + opts.Format
	}
	if err := os.WriteFile(output, res.Output, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Diff complete")
	printFile(output)
	printStats(res.CacheHit, opStats(res.Stats)...)
	for _, id := range res.Duplicates {
		printWarning("duplicate section %q", id)
	}
	return nil
}

// opStats formats the update counts of a diff in operation order.
func opStats(s pipeline.Stats) []string {
	if len(s.Ops) == 0 {
		return []string{"no changes"}
	}
	parts := make([]string, 0, len(s.Ops))
	for _, op := range slices.Sorted(maps.Keys(s.Ops)) {
		parts = append(parts, fmt.Sprintf("%d %s", s.Ops[op], op))
	}
	return parts
}
