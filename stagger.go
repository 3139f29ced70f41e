package fbpack

import (
	"image"

	"github.com/bodgit/fbpack/canvas"
)

// tiffFormat is the format every channel packed artifact is written in.
const tiffFormat = "tiff"

// StaggerPack packs each run of 3 (192 frames) or 4 (256 frames)
// consecutive frames in source into the R, G, B (and A) channels of one cell
// of an 8x8 grid and returns the path of the artifact.
//
// The alpha frame of each run is pasted on a separate scratch canvas and the
// red plane of that canvas becomes the alpha channel. The artifact is
// rewritten after every cell.
func (p *Packer) StaggerPack(source string) (string, error) {
	seq, err := p.load(source)
	if err != nil {
		return "", err
	}

	mode, err := packedMode(seq.Len())
	if err != nil {
		return "", err
	}

	file, err := p.prepareOutput(source, Stagger.String(), seq.Frames[0], p.config.SaveExtension)
	if err != nil {
		return "", err
	}

	channels := mode.Channels()
	cells := seq.Len() / channels
	side := gridSide(cells)
	width, height := seq.Frames[0].Width, seq.Frames[0].Height

	c := canvas.New(mode, width*side, height*side)

	var scratch *canvas.Canvas
	if mode == canvas.RGBA {
		scratch = canvas.New(mode, width*side, height*side)
	}

	for i := 0; i < seq.Len(); i += channels {
		row := i / (side * channels)
		column := (i / channels) % side
		at := cellOffset(row, column, width, height)

		planes := make([]*image.Gray, channels)
		for x := 0; x < channels; x++ {
			m, err := canvas.Open(seq.Frames[i+x].Path)
			if err != nil {
				return "", err
			}

			target := c
			if x == 3 {
				target = scratch
			}
			target.Paste(m, at)

			planes[x] = target.Split()[sourcePlane(x)]
		}

		if c, err = canvas.Merge(mode, planes...); err != nil {
			return "", err
		}

		if err := p.write(c, file, tiffFormat, true, Stagger, i/channels+1, cells); err != nil {
			return "", err
		}
	}

	p.logger.Info("stagger packed atlas created", "path", file, "frames", seq.Len(), "mode", mode)

	return file, nil
}
