package canvas

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const jpegQuality = 95

// Options control how Encode writes an image.
type Options struct {
	// Compress selects lossless Deflate compression for TIFF. It is
	// ignored by every other format.
	Compress bool
}

type encoder func(io.Writer, image.Image, *Options) error

func encodeTIFF(w io.Writer, m image.Image, opt *Options) error {
	compression := tiff.Uncompressed
	if opt.Compress {
		compression = tiff.Deflate
	}
	return tiff.Encode(w, m, &tiff.Options{Compression: compression})
}

func encodeJPEG(w io.Writer, m image.Image, _ *Options) error {
	return jpeg.Encode(w, m, &jpeg.Options{Quality: jpegQuality})
}

var encoders = map[string]encoder{
	"tif":  encodeTIFF,
	"tiff": encodeTIFF,
	"png": func(w io.Writer, m image.Image, _ *Options) error {
		return png.Encode(w, m)
	},
	"jpg":  encodeJPEG,
	"jpeg": encodeJPEG,
	"tga": func(w io.Writer, m image.Image, _ *Options) error {
		return tga.Encode(w, m)
	},
	"bmp": func(w io.Writer, m image.Image, _ *Options) error {
		return bmp.Encode(w, m)
	},
}

// IsTIFF reports whether format names TIFF.
func IsTIFF(format string) bool {
	switch normalize(format) {
	case "tif", "tiff":
		return true
	}
	return false
}

// CanEncode reports whether format can be written.
func CanEncode(format string) bool {
	_, ok := encoders[normalize(format)]
	return ok
}

// CanDecode reports whether files with the extension ext can be read.
func CanDecode(ext string) bool {
	_, ok := decoders[normalize(ext)]
	return ok
}

// Encode writes m to w in the named format.
func Encode(w io.Writer, format string, m image.Image, opt *Options) error {
	e, ok := encoders[normalize(format)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if opt == nil {
		opt = &Options{}
	}
	// Hand over the raw samples so alpha stays unassociated
	if c, ok := m.(*Canvas); ok {
		m = c.pix
	}
	return e(w, m, opt)
}

// Save writes m to file in the named format, replacing anything already
// there.
func Save(file, format string, m image.Image, opt *Options) (err error) {
	if !CanEncode(format) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, format, m, opt)
}
