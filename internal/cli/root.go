package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tempo/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	build := buildinfo.Get()
	root := &cobra.Command{
		Use:   appName,
		Short: "Tempo reconciles and lays out sectioned list and grid views",
		Long: `Tempo is the tooling around a sectioned collection view core: it diffs
view-state snapshots into edit scripts, packs grid tiles, computes list
layouts, serves the same stages over HTTP and browses a live product feed.`,
		Version:      build.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(build.Template())

	root.AddCommand(c.diffCommand())
	root.AddCommand(c.packCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
