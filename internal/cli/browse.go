package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tempo/pkg/cache"
	"github.com/matzehuels/tempo/pkg/integrations/products"
)

// browseCommand creates the browse command for the interactive deals list.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		url   string
		file  string
		flags cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the deals feed in the terminal",
		Long: `Browse a product deals feed as a live list.

The feed is fetched from --url (cached for a day) or read from --file. Each
product is a section of its own; sorting or refreshing the feed presents a new
view state and the list animates to it through the reconciler.

Keys: ↑/↓ or k/j move, enter opens a product, / filters by title, s cycles
the sort order, y copies the image URL of an open product,
r refetches the feed bypassing the cache, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), url, file, flags)
		},
	}

	cmd.Flags().StringVar(&url, "url", products.DefaultURL, "deals feed URL")
	cmd.Flags().StringVar(&file, "file", "", "read the feed from a local JSON file")
	cmd.MarkFlagsMutuallyExclusive("url", "file")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, url, file string, flags cacheFlags) error {
	backend, err := newCache(ctx, flags)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer backend.Close()

	client := products.NewClient(backend, cache.TTLHTTP)
	fetch := func(refresh bool) (*products.List, error) {
		if file != "" {
			return products.LoadFile(file)
		}
		return client.FetchList(ctx, url, refresh)
	}

	// The model needs the program to send batches to and the program needs
	// the model, so the send function is bound once the program exists.
	var program *tea.Program
	model := NewBrowseModel(fetch, func(msg tea.Msg) { program.Send(msg) }, loggerFromContext(ctx))
	defer model.Close()

	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
