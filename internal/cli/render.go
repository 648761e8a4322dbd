package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpad/pkg/document"
	"github.com/matzehuels/gridpad/pkg/pipeline"
	"github.com/matzehuels/gridpad/pkg/render"
)

// renderCommand creates the render command for writing layout artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()

	cmd := &cobra.Command{
		Use:   "render [grid.toml | grid.layout.json]",
		Short: "Render a grid declaration or computed layout",
		Long: `Render a grid declaration or a computed layout.

Declarations are laid out first. Files ending in .layout.json are rendered as
they are, so the container flags do not apply to them.

Formats: ` + strings.Join(render.Formats(), ", ") + ` (comma-separated, default svg).
Each artifact is written to <base>.<ext>, where the base is -o or the input
path without its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: input without extension)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): "+strings.Join(render.Formats(), ", "))
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw item ids")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached layouts and artifacts")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// runRender lays out input when needed, renders every requested format and
// writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var (
		l         document.Layout
		artifacts map[string][]byte
		cached    bool
	)
	if strings.HasSuffix(input, layoutSuffix) {
		l, err = document.ReadLayoutFile(input)
		if err != nil {
			return fmt.Errorf("load layout %s: %w", input, err)
		}
		artifacts, cached, err = runner.RenderWithCacheInfo(ctx, l, opts)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	} else {
		opts.Path = input
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			return err
		}
		l, artifacts = result.Layout, result.Artifacts
		cached = result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(basePath(output, input), opts.Formats, artifacts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifacts", len(paths)))

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(l.Items), len(l.Skipped), cached)
	return nil
}

// writeArtifacts writes artifacts in format order and returns the paths.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return paths, fmt.Errorf("renderer produced no %s output", format)
		}
		path := base + "." + render.Extension(format)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
