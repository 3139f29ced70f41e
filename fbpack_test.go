package fbpack

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/fbpack/canvas"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPacker(t *testing.T, config Config) *Packer {
	t.Helper()
	return New(config, hclog.New(&hclog.LoggerOptions{
		Name:   t.Name(),
		Level:  hclog.Debug,
		Output: hclog.DefaultOutput,
	}))
}

func gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 0xff}
}

func writeFrame(t *testing.T, dir, name string, w, h int, c color.NRGBA) {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	require.NoError(t, canvas.Save(filepath.Join(dir, name), filepath.Ext(name), m, nil))
}

// colour gives each channel of frame i a different value so a channel read
// from the wrong plane shows up.
func colour(i int) color.NRGBA {
	return color.NRGBA{R: uint8(i), G: uint8(255 - i), B: uint8(i * 7), A: 0xff}
}

func grayFrame(i int) color.NRGBA {
	return gray(uint8(i))
}

// writeFrames writes n solid w by h frames named prefix_001.png onwards.
// Frame i is filled with fill(i).
func writeFrames(t *testing.T, prefix string, n, w, h int, fill func(int) color.NRGBA) string {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < n; i++ {
		writeFrame(t, dir, fmt.Sprintf("%s_%03d.png", prefix, i+1), w, h, fill(i))
	}
	return dir
}

// writeSequence writes n gray frames where frame i is filled with gray(i).
func writeSequence(t *testing.T, prefix string, n, w, h int) string {
	t.Helper()
	return writeFrames(t, prefix, n, w, h, grayFrame)
}

func openArtifact(t *testing.T, file string) image.Image {
	t.Helper()
	m, err := canvas.Open(file)
	require.NoError(t, err)
	return m
}

func pixel(m image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
}

func TestNewDefaults(t *testing.T) {
	p := New(Config{SaveExtension: ".png"}, nil)

	config := p.Config()
	assert.Equal(t, "png", config.SaveExtension)
	assert.Equal(t, DefaultConfig().Extensions, config.Extensions)
	assert.Equal(t, "fbpack", config.OutputDir)
	assert.Equal(t, 4, config.PreviewDelay)
	assert.NotNil(t, p.logger)
}

func TestNewDropsUndecodableExtensions(t *testing.T) {
	p := New(Config{Extensions: []string{"png", "exr", ".TGA"}}, nil)
	assert.Equal(t, []string{"png", ".TGA"}, p.Config().Extensions)

	p = New(Config{Extensions: []string{"exr"}}, nil)
	assert.Equal(t, DefaultConfig().Extensions, p.Config().Extensions)
}

func TestMissingSourcePath(t *testing.T) {
	p := newTestPacker(t, DefaultConfig())
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := p.TraditionalAtlas(1, 1, missing)
	assert.ErrorIs(t, err, ErrMissingSourcePath)
	_, err = p.StaggerPack(missing)
	assert.ErrorIs(t, err, ErrMissingSourcePath)
	_, err = p.SuperPack(missing)
	assert.ErrorIs(t, err, ErrMissingSourcePath)
	_, err = p.Preview(missing)
	assert.ErrorIs(t, err, ErrMissingSourcePath)

	file := filepath.Join(t.TempDir(), "file.png")
	writeFrame(t, filepath.Dir(file), filepath.Base(file), 1, 1, gray(0))
	_, err = p.TraditionalAtlas(1, 1, file)
	assert.ErrorIs(t, err, ErrMissingSourcePath)
}

func TestEmptySequence(t *testing.T) {
	p := newTestPacker(t, DefaultConfig())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	_, err := p.TraditionalAtlas(2, 2, dir)
	assert.ErrorIs(t, err, ErrEmptySequence)
	_, err = p.Preview(dir)
	assert.ErrorIs(t, err, ErrEmptySequence)
	_, err = p.StaggerPack(dir)
	assert.ErrorIs(t, err, ErrInvalidFrameCount)

	assert.NoDirExists(t, filepath.Join(dir, "fbpack"))
}
