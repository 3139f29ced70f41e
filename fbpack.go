/*
Package fbpack assembles a sequence of same-sized frame images into a single
packed flipbook texture for particle and VFX playback.

Three layouts are supported. A traditional atlas places one frame per grid
cell. A stagger pack channel packs each run of 3 (or 4) consecutive frames
into the R, G, B (and A) channels of one cell. A super pack fills each
channel plane of the whole grid with one contiguous quartile of the sequence.

Every run is synchronous and owns its canvas for the duration of the call.
Running two packs against the same source directory at the same time is not
supported; the last write to the output artifact wins. The traditional atlas
and the stagger pack overwrite the artifact as they go, so the file left
behind by a failed run must be treated as invalid.
*/
package fbpack

import (
	"github.com/hashicorp/go-hclog"
)

// Packer builds flipbook textures from directories of frames.
type Packer struct {
	config Config
	logger hclog.Logger
}

// New returns a Packer using config. Unset fields in config take their
// values from DefaultConfig. A nil logger discards everything.
func New(config Config, logger hclog.Logger) *Packer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Packer{
		config: config.withDefaults(),
		logger: logger,
	}
}

// Config returns the configuration in use.
func (p *Packer) Config() Config {
	return p.config
}
