package fbpack

import (
	"strings"

	"github.com/bodgit/fbpack/canvas"
)

// Progress describes one write of an output artifact.
type Progress struct {
	Layout Layout
	// Step counts writes from 1; the artifact is complete when Step
	// equals Total.
	Step  int
	Total int
	Path  string
}

// Config holds the settings shared by every packing run.
type Config struct {
	// SaveExtension is both the extension of the output artifact and, for
	// the traditional atlas, the format it is written in.
	SaveExtension string
	// Compress applies lossless compression when the traditional atlas is
	// saved as TIFF. Channel packed layouts are always compressed.
	Compress bool
	// Extensions lists the recognized input file extensions, without the
	// leading dot. Extensions with no decoder are dropped.
	Extensions []string
	// OutputDir is the subdirectory of the source directory artifacts are
	// written to.
	OutputDir string
	// PreviewDelay is the time each preview frame is shown, in 100ths of a
	// second.
	PreviewDelay int
	// Progress, if set, is called after each write of an artifact.
	Progress func(Progress)
}

// DefaultConfig returns the stock configuration: compressed TIFF output into
// an fbpack subdirectory, reading TIFF, PNG, JPEG and TGA frames.
func DefaultConfig() Config {
	return Config{
		SaveExtension: "tif",
		Compress:      true,
		Extensions:    []string{"tif", "png", "jpg", "jpeg", "tiff", "tga"},
		OutputDir:     "fbpack",
		PreviewDelay:  4,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SaveExtension == "" {
		c.SaveExtension = d.SaveExtension
	}
	c.SaveExtension = strings.TrimPrefix(c.SaveExtension, ".")
	var extensions []string
	for _, ext := range c.Extensions {
		if canvas.CanDecode(ext) {
			extensions = append(extensions, ext)
		}
	}
	c.Extensions = extensions
	if len(c.Extensions) == 0 {
		c.Extensions = d.Extensions
	}
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
	if c.PreviewDelay <= 0 {
		c.PreviewDelay = d.PreviewDelay
	}
	return c
}
