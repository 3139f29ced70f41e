package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when a file extension or format name has
// no codec.
var ErrUnsupportedFormat = errors.New("canvas: unsupported format")

type decoder struct {
	decode       func(io.Reader) (image.Image, error)
	decodeConfig func(io.Reader) (image.Config, error)
}

// Decoders are picked by extension rather than sniffed as TGA has no magic
// number.
var decoders = map[string]decoder{
	"png":  {png.Decode, png.DecodeConfig},
	"jpg":  {jpeg.Decode, jpeg.DecodeConfig},
	"jpeg": {jpeg.Decode, jpeg.DecodeConfig},
	"tif":  {tiff.Decode, tiff.DecodeConfig},
	"tiff": {tiff.Decode, tiff.DecodeConfig},
	"tga":  {tga.Decode, tga.DecodeConfig},
	"bmp":  {bmp.Decode, bmp.DecodeConfig},
}

func normalize(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func decoderFor(file string) (decoder, error) {
	d, ok := decoders[normalize(filepath.Ext(file))]
	if !ok {
		return decoder{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, file)
	}
	return d, nil
}

// Open decodes the image in file. The file is closed before Open returns.
func Open(file string) (image.Image, error) {
	d, err := decoderFor(file)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := d.decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return m, nil
}

// DecodeConfig returns the color model and dimensions of the image in file
// without decoding the entire image.
func DecodeConfig(file string) (image.Config, error) {
	d, err := decoderFor(file)
	if err != nil {
		return image.Config{}, err
	}

	f, err := os.Open(file)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()

	cfg, err := d.decodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}

// HasAlpha reports whether m carries an alpha channel. Images decoded with
// unassociated alpha always do, whatever their samples hold. Types that are
// used both with and without alpha, such as *image.RGBA for PNG RGB and for
// associated alpha TIFF, are checked for any pixel that isn't fully opaque.
func HasAlpha(m image.Image) bool {
	switch m := m.(type) {
	case *Canvas:
		return m.mode == RGBA
	case *image.NRGBA, *image.NRGBA64:
		return true
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return false
	case interface{ Opaque() bool }:
		return !m.Opaque()
	}
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}
