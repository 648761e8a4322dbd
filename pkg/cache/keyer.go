package cache

import "fmt"

// LayoutKeyOpts holds the inputs besides the declaration that change a
// layout pass.
type LayoutKeyOpts struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Tight  bool `json:"tight,omitempty"`
	RTL    bool `json:"rtl,omitempty"`
}

// ArtifactKeyOpts holds the inputs that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Labels bool   `json:"labels,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey keys a layout by the hash of its declaration.
	LayoutKey(docHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys a rendered artifact by the hash of its layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unscoped keys of the form kind:sha256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
