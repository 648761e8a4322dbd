// Package cli implements the gridpad command-line interface.
//
// The commands read grid declarations (TOML or JSON), compute layouts through
// the shared pipeline runner and write layouts or rendered artifacts to disk.
// A preview command resizes the container interactively and serve exposes
// the same pipeline over HTTP.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpad/pkg/buildinfo"
	"github.com/matzehuels/gridpad/pkg/cache"
	"github.com/matzehuels/gridpad/pkg/pipeline"
	"github.com/matzehuels/gridpad/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gridpad"

	// layoutSuffix marks files written by the layout command.
	layoutSuffix = ".layout.json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

func (c *CLI) verbose() bool {
	return c.Logger.GetLevel() <= log.DebugLevel
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Gridpad computes constraint-based grid layouts",
		Long: `Gridpad places items on a grid of fixed and weighted tracks, resolves
auto-flow positions and writes the resulting cell geometry as JSON, SVG,
text, Graphviz DOT or PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the cache the environment
// selects. noCache disables caching entirely.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg := c.cacheConfig()
	cfg.Disabled = noCache

	store, err := cache.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", cfg.Backend(), err)
	}
	c.Logger.Debug("cache ready", "backend", cfg.Backend())
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// cacheConfig reads the remote backends from the environment and falls back
// to the XDG cache directory. Without a home directory caching is off.
func (c *CLI) cacheConfig() cache.Config {
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory", "err", err)
		dir = ""
	}
	return cache.ConfigFromEnv(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/gridpad/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// basePath derives the output base from the -o flag and the input path.
// Known artifact and layout extensions are stripped from either.
func basePath(output, input string) string {
	if output == "" {
		output = input
	}
	if strings.HasSuffix(output, layoutSuffix) {
		return strings.TrimSuffix(output, layoutSuffix)
	}
	ext := filepath.Ext(output)
	switch strings.TrimPrefix(ext, ".") {
	case "toml", "json", "txt", render.FormatSVG, render.FormatDOT, render.FormatPNG:
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// addLayoutFlags registers the container flags shared by layout, render and
// preview.
func addLayoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "container width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "container height in pixels")
	cmd.Flags().BoolVar(&opts.Tight, "tight", opts.Tight, "measure items with tight constraints")
	cmd.Flags().BoolVar(&opts.RTL, "rtl", opts.RTL, "lay columns out right to left")
}
