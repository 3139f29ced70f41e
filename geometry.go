package fbpack

import (
	"fmt"
	"image"
	"math"

	"github.com/bodgit/fbpack/canvas"
)

const (
	rgbFrames  = 192
	rgbaFrames = 256
)

// packedMode picks the canvas mode for a channel packed sequence of count
// frames.
func packedMode(count int) (canvas.Mode, error) {
	switch count {
	case rgbFrames:
		return canvas.RGB, nil
	case rgbaFrames:
		return canvas.RGBA, nil
	}
	return canvas.RGB, fmt.Errorf("%w: got %d", ErrInvalidFrameCount, count)
}

// gridSide is the number of cells along each side of a square grid holding
// cells cells.
func gridSide(cells int) int {
	return int(math.Sqrt(float64(cells)))
}

// cellOffset is the pixel position of the top-left corner of a cell.
func cellOffset(row, column, width, height int) image.Point {
	return image.Pt(column*width, row*height)
}

// sourcePlane is the split plane an output channel is read from. The alpha
// channel is read from the red plane of the canvas its frame was pasted on.
func sourcePlane(channel int) int {
	if channel == 3 {
		return 0
	}
	return channel
}

type span struct {
	start, end int
}

func (s span) len() int {
	return s.end - s.start
}

// partition splits count consecutive indices into parts equal ranges.
func partition(count, parts int) []span {
	spans := make([]span, parts)
	size := count / parts
	for i := range spans {
		spans[i] = span{start: i * size, end: (i + 1) * size}
	}
	return spans
}
