package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpad/internal/server"
	"github.com/matzehuels/gridpad/pkg/observability"
)

// serveCommand creates the serve command for the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts and artifacts over HTTP",
		Long: `Serve layouts and artifacts over HTTP.

Endpoints:
  GET  /healthz
  POST /v1/layout
  POST /v1/render/{format}

Requests carry the declaration inline as {"document": {...}, "width": 800,
"height": 600}. Set GRIDPAD_REDIS_URL or GRIDPAD_MONGO_URI to share the cache
between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, timeout, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().DurationVar(&timeout, "timeout", server.DefaultTimeout, "per-request timeout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, timeout time.Duration, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	if c.verbose() {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
		defer observability.Reset()
	}

	srv := server.New(runner, c.Logger, server.WithTimeout(timeout))
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return err
	}
	c.Logger.Info("server stopped")
	return nil
}
