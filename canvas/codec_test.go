package canvas

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTIFFKeepsUnassociatedAlpha(t *testing.T) {
	c := New(RGBA, 2, 2)
	c.Paste(solid(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 0}), image.Point{})
	c.Paste(solid(1, 1, color.NRGBA{R: 40, G: 50, B: 60, A: 70}), image.Pt(1, 1))

	for _, compress := range []bool{true, false} {
		file := filepath.Join(t.TempDir(), "out.tif")
		require.NoError(t, Save(file, "tiff", c, &Options{Compress: compress}))

		m, err := Open(file)
		require.NoError(t, err)
		assert.Equal(t, c.Bounds(), m.Bounds())
		assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0}, color.NRGBAModel.Convert(m.At(0, 0)))
		assert.Equal(t, color.NRGBA{R: 40, G: 50, B: 60, A: 70}, color.NRGBAModel.Convert(m.At(1, 1)))
	}
}

func TestCompressedTIFFIsSmaller(t *testing.T) {
	c := New(RGB, 64, 64)

	var plain, compressed bytes.Buffer
	require.NoError(t, Encode(&plain, "tif", c, nil))
	require.NoError(t, Encode(&compressed, "tif", c, &Options{Compress: true}))
	assert.Less(t, compressed.Len(), plain.Len())
}

func TestSaveFormats(t *testing.T) {
	c := FromImage(RGB, solid(4, 3, color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xff}))

	for _, format := range []string{"png", "tga", "bmp", "jpg"} {
		t.Run(format, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "out."+format)
			require.NoError(t, Save(file, format, c, nil))

			cfg, err := DecodeConfig(file)
			require.NoError(t, err)
			assert.Equal(t, 4, cfg.Width)
			assert.Equal(t, 3, cfg.Height)

			if format == "jpg" {
				return
			}

			m, err := Open(file)
			require.NoError(t, err)
			assert.Equal(t, color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xff}, color.NRGBAModel.Convert(m.At(3, 2)))
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.webp")

	err := Save(file, "webp", New(RGB, 1, 1), nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.NoFileExists(t, file)

	require.NoError(t, os.WriteFile(file, []byte("RIFF"), 0o644))
	_, err = Open(file)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = DecodeConfig(file)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestHasAlphaOpaqueTIFF(t *testing.T) {
	file := filepath.Join(t.TempDir(), "opaque.tif")
	require.NoError(t, Save(file, "tif", solid(2, 2, color.NRGBA{R: 1, A: 0xff}), &Options{Compress: true}))

	m, err := Open(file)
	require.NoError(t, err)
	assert.True(t, HasAlpha(m))
}

func TestFormatNames(t *testing.T) {
	assert.True(t, IsTIFF("tif"))
	assert.True(t, IsTIFF(".TIFF"))
	assert.False(t, IsTIFF("png"))
	assert.True(t, CanEncode("JPEG"))
	assert.True(t, CanDecode(".tga"))
	assert.False(t, CanDecode("exr"))
}

func TestHasAlpha(t *testing.T) {
	assert.True(t, HasAlpha(solid(2, 2, color.NRGBA{A: 0xff})))
	assert.True(t, HasAlpha(solid(2, 2, color.NRGBA{A: 0xfe})))
	assert.True(t, HasAlpha(image.NewNRGBA64(image.Rect(0, 0, 1, 1))))

	opaque := image.NewRGBA(image.Rect(0, 0, 1, 1))
	opaque.SetRGBA(0, 0, color.RGBA{A: 0xff})
	assert.False(t, HasAlpha(opaque))
	assert.True(t, HasAlpha(image.NewRGBA(image.Rect(0, 0, 1, 1))))
	assert.False(t, HasAlpha(image.NewGray(image.Rect(0, 0, 1, 1))))
	assert.True(t, HasAlpha(New(RGBA, 1, 1)))
	assert.False(t, HasAlpha(New(RGB, 1, 1)))
}
