package fbpack

import (
	"fmt"

	"github.com/bodgit/fbpack/canvas"
)

// TraditionalAtlas lays the frames in source out one per cell in row-major
// order and returns the path of the artifact.
//
// The cell of frame i is row i/rows and column i%columns. Frames past the
// end of the grid land on top of earlier ones. If the first frame has alpha
// the canvas is rebuilt from each frame's own channels after it is pasted.
// The artifact is rewritten after every frame.
func (p *Packer) TraditionalAtlas(rows, columns int, source string) (string, error) {
	if rows < 1 || columns < 1 {
		return "", fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, columns)
	}

	seq, err := p.load(source)
	if err != nil {
		return "", err
	}

	if seq.Len() < 1 {
		return "", fmt.Errorf("%w: nothing to lay out as %s in %s", ErrEmptySequence, Atlas, source)
	}

	file, err := p.prepareOutput(source, Atlas.String(), seq.Frames[0], p.config.SaveExtension)
	if err != nil {
		return "", err
	}

	first, err := canvas.Open(seq.Frames[0].Path)
	if err != nil {
		return "", err
	}

	mode := canvas.RGB
	if canvas.HasAlpha(first) {
		mode = canvas.RGBA
	}

	width, height := seq.Frames[0].Width, seq.Frames[0].Height
	c := canvas.New(mode, width*columns, height*rows)

	compress := p.config.Compress && canvas.IsTIFF(p.config.SaveExtension)

	for i, frame := range seq.Frames {
		row := i / rows
		column := i % columns

		m, err := canvas.Open(frame.Path)
		if err != nil {
			return "", err
		}

		c.Paste(m, cellOffset(row, column, width, height))

		if mode == canvas.RGBA {
			if c, err = canvas.Merge(mode, canvas.FromImage(mode, m).Split()...); err != nil {
				return "", err
			}
		}

		if err := p.write(c, file, p.config.SaveExtension, compress, Atlas, i+1, seq.Len()); err != nil {
			return "", err
		}
	}

	p.logger.Info("atlas created", "path", file, "frames", seq.Len(), "mode", mode)

	return file, nil
}
