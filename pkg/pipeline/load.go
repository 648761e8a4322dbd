package pipeline

import (
	"context"

	"github.com/matzehuels/gridpad/pkg/document"
)

// Load returns the declaration named by opts: the inline document when set,
// otherwise the file at opts.Path.
func Load(ctx context.Context, opts Options) (document.Document, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return document.Document{}, err
	}
	if opts.Document != nil {
		return *opts.Document, nil
	}
	if err := ctx.Err(); err != nil {
		return document.Document{}, err
	}
	return document.ReadFile(opts.Path)
}
