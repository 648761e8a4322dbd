package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpad/pkg/document"
	"github.com/matzehuels/gridpad/pkg/pipeline"
)

// layoutCommand creates the layout command for computing cell geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()

	cmd := &cobra.Command{
		Use:   "layout [grid.toml]",
		Short: "Compute the layout of a grid declaration",
		Long: `Compute the layout of a grid declaration.

The layout command reads a TOML or JSON declaration, sizes its tracks for the
given container, places every item and writes a layout.json file with track
sizes, the cell table and item frames. Items that do not fit are listed as
skipped. The layout file can be turned into artifacts with 'render'.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when a cached layout exists")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// runLayout loads the declaration, computes the layout and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	opts.Path = input
	opts.Logger = c.Logger

	doc, err := pipeline.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load declaration %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing layout at %dx%d...", opts.Width, opts.Height))
	spinner.Start()

	l, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", input) + layoutSuffix
	}
	if err := document.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Items), len(l.Skipped), cacheHit)
	for _, s := range l.Skipped {
		printWarning("skipped %s: %s", s.ID, s.Reason)
	}
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}
