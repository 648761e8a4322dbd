// Package pipeline runs grid declarations through load, layout and render.
//
// The CLI and the HTTP server both go through [Runner] so that caching,
// logging and validation behave the same everywhere.
//
// # Stages
//
//  1. Load: read a declaration from a file or take it inline
//  2. Layout: compile the declaration and run one layout pass
//  3. Render: produce artifacts (json, svg, text, dot, png)
//
// Each stage can be run on its own or as part of [Runner.Execute].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "dashboard.toml",
//	    Width:   1024,
//	    Height:  768,
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpad/pkg/cache"
	"github.com/matzehuels/gridpad/pkg/core/layout"
	"github.com/matzehuels/gridpad/pkg/document"
	errs "github.com/matzehuels/gridpad/pkg/errors"
	"github.com/matzehuels/gridpad/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default container width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default container height in pixels.
	DefaultHeight = 600
)

// DefaultFormats is used when no output format is requested.
var DefaultFormats = []string{render.FormatJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Path     string             `json:"path,omitempty"`
	Document *document.Document `json:"document,omitempty"`

	// Layout options
	Width   int  `json:"width,omitempty"`
	Height  int  `json:"height,omitempty"`
	Tight   bool `json:"tight,omitempty"` // measure items with min = max = span
	RTL     bool `json:"rtl,omitempty"`   // mirror columns right to left
	Refresh bool `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the loaded declaration.
	Document document.Document

	// DocumentHash is the content hash of the declaration.
	DocumentHash string

	// Layout is the computed layout.
	Layout document.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Items      int
	Placed     int
	Skipped    int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // all requested artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !render.IsFormat(format) {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, svg, text, dot, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that exactly one declaration source is set.
func (o *Options) ValidateForLoad() error {
	switch {
	case o.Path == "" && o.Document == nil:
		return errs.New(errs.ErrCodeInvalidInput, "path or document is required")
	case o.Path != "" && o.Document != nil:
		return errs.New(errs.ErrCodeInvalidInput, "path and document are mutually exclusive")
	case o.Path != "":
		if err := errs.ValidatePath(o.Path); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	o.setLogger()
}

// ValidateForLayout sets layout defaults and checks the container size.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errs.ValidateDimension("width", o.Width, layout.Infinity); err != nil {
		return err
	}
	return errs.ValidateDimension("height", o.Height, layout.Infinity)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for layout and rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: o.Width, Height: o.Height, Tight: o.Tight, RTL: o.RTL}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format, Labels: o.Labels}
}

// LayoutOptions returns the layout pass options implied by o.
func (o *Options) LayoutOptions() []layout.Option {
	var opts []layout.Option
	if o.Tight {
		opts = append(opts, layout.WithTightConstraints())
	}
	if o.RTL {
		opts = append(opts, layout.WithRightToLeft())
	}
	return opts
}

// RenderOptions returns the renderer options implied by o.
func (o *Options) RenderOptions() []render.Option {
	if o.Labels {
		return []render.Option{render.WithLabels()}
	}
	return nil
}
