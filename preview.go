package fbpack

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"

	"github.com/bodgit/fbpack/canvas"
	"github.com/ericpauley/go-quantize/quantize"
)

const (
	previewPrefix = "preview"
	previewFormat = "gif"
	previewColors = 256
)

// Preview writes the frames in source as a looping animated GIF alongside
// the packed artifacts and returns its path. Each frame is quantized to its
// own palette.
func (p *Packer) Preview(source string) (string, error) {
	seq, err := p.load(source)
	if err != nil {
		return "", err
	}

	if seq.Len() < 1 {
		return "", fmt.Errorf("%w: nothing to preview in %s", ErrEmptySequence, source)
	}

	file, err := p.prepareOutput(source, previewPrefix, seq.Frames[0], previewFormat)
	if err != nil {
		return "", err
	}

	q := quantize.MedianCutQuantizer{}
	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, seq.Len()),
		Delay: make([]int, 0, seq.Len()),
	}

	for _, frame := range seq.Frames {
		m, err := canvas.Open(frame.Path)
		if err != nil {
			return "", err
		}

		b := m.Bounds()
		pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), q.Quantize(make(color.Palette, 0, previewColors), m))
		draw.Draw(pm, pm.Rect, m, b.Min, draw.Src)

		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, p.config.PreviewDelay)
	}

	f, err := os.Create(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := gif.EncodeAll(f, anim); err != nil {
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	p.logger.Info("preview created", "path", file, "frames", seq.Len())

	return file, nil
}
