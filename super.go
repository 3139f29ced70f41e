package fbpack

import (
	"image"

	"github.com/bodgit/fbpack/canvas"
)

// SuperPack splits the 192 or 256 frames in source into 3 or 4 contiguous
// quartiles and packs quartile n into channel n of every cell of an 8x8
// grid, returning the path of the artifact. Frame x of a quartile goes to
// cell x in row-major order.
//
// As with StaggerPack the alpha channel is taken from the red plane of the
// canvas. The artifact is written once.
func (p *Packer) SuperPack(source string) (string, error) {
	seq, err := p.load(source)
	if err != nil {
		return "", err
	}

	mode, err := packedMode(seq.Len())
	if err != nil {
		return "", err
	}

	file, err := p.prepareOutput(source, Super.String(), seq.Frames[0], p.config.SaveExtension)
	if err != nil {
		return "", err
	}

	channels := mode.Channels()
	side := gridSide(seq.Len() / channels)
	width, height := seq.Frames[0].Width, seq.Frames[0].Height

	c := canvas.New(mode, width*side, height*side)

	planes := make([]*image.Gray, channels)
	for channel, quartile := range partition(seq.Len(), channels) {
		for x := 0; x < quartile.len(); x++ {
			m, err := canvas.Open(seq.Frames[quartile.start+x].Path)
			if err != nil {
				return "", err
			}

			c.Paste(m, cellOffset(x/side, x%side, width, height))
		}

		planes[channel] = c.Split()[sourcePlane(channel)]
	}

	if c, err = canvas.Merge(mode, planes...); err != nil {
		return "", err
	}

	if err := p.write(c, file, tiffFormat, true, Super, 1, 1); err != nil {
		return "", err
	}

	p.logger.Info("super packed atlas created", "path", file, "frames", seq.Len(), "mode", mode)

	return file, nil
}
