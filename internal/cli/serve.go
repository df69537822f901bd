package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tempo/pkg/cache"
	"github.com/matzehuels/tempo/pkg/server"
)

const defaultAddr = ":8080"

// apiKeyPrefix scopes the server's cache entries away from the CLI's when
// both share a backend.
const apiKeyPrefix = "api:"

// serveCommand creates the serve command for the HTTP playground API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		flags cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the reconcile, pack and layout stages over HTTP",
		Long: `Serve the reconcile, pack and layout stages as a JSON API.

Endpoints:
  GET  /healthz
  POST /v1/reconcile   {"from": <snapshot>, "to": <snapshot>, "format": "text"}
  POST /v1/pack        {"columns": 12, "width": 375, "tiles": ["wide", "6x5"]}
  POST /v1/layout      {"snapshot": <snapshot>, "width": 375, "height": 667}

The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, flags)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, flags cacheFlags) error {
	runner, err := c.newRunner(ctx, flags, cache.NewScopedKeyer(nil, apiKeyPrefix))
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	printInfo("Serving on %s", addr)
	if err := server.New(runner, logger).ListenAndServe(ctx, addr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	printSuccess("Server stopped")
	return nil
}
