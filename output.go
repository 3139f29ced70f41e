package fbpack

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/bodgit/fbpack/canvas"
)

// load reads the frame sequence from source and logs anything excluded.
func (p *Packer) load(source string) (*Sequence, error) {
	seq, err := LoadSequence(source, p.config.Extensions)
	if err != nil {
		return nil, err
	}

	for _, e := range seq.Excluded {
		p.logger.Debug("excluding frame", "path", e.Frame.Path, "error", e.Err)
	}

	return seq, nil
}

// prepareOutput makes sure the output directory exists and removes any
// artifact left over from a previous run. It returns the artifact path.
func (p *Packer) prepareOutput(source, prefix string, first Frame, ext string) (string, error) {
	dir := filepath.Join(source, p.config.OutputDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	file := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", prefix, stem(first.Path), ext))
	if err := os.Remove(file); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	return file, nil
}

// write saves m to file and reports the progress of the run.
func (p *Packer) write(m image.Image, file, format string, compress bool, layout Layout, step, total int) error {
	if err := canvas.Save(file, format, m, &canvas.Options{Compress: compress}); err != nil {
		return err
	}

	p.logger.Debug("wrote artifact", "layout", layout, "path", file, "step", step, "total", total)

	if p.config.Progress != nil {
		p.config.Progress(Progress{
			Layout: layout,
			Step:   step,
			Total:  total,
			Path:   file,
		})
	}

	return nil
}
