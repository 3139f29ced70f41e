package fbpack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bodgit/fbpack/canvas"
)

// Frame is a single image of a sequence on disk.
type Frame struct {
	Path          string
	Width, Height int
}

// Exclusion records a candidate frame that was left out of a sequence.
type Exclusion struct {
	Frame Frame
	Err   error
}

// Sequence is the ordered set of frames found in a directory.
type Sequence struct {
	Frames   []Frame
	Excluded []Exclusion
}

// Len returns the number of usable frames.
func (s *Sequence) Len() int {
	return len(s.Frames)
}

func listFrames(dir string, extensions []string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSourcePath, dir)
		}
		return nil, err
	}
	defer d.Close()

	info, err := d.Stat()
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingSourcePath, dir)
	}

	entries, err := d.ReadDir(0)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	seen := make(map[string]struct{})
	var names []string
	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			continue
		}

		if _, ok := wanted[strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))]; !ok {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

// LoadSequence lists the frames in dir with one of the given extensions,
// sorted by filename. Every frame must match the size of the first one;
// any that don't are moved to Excluded.
func LoadSequence(dir string, extensions []string) (*Sequence, error) {
	names, err := listFrames(dir, extensions)
	if err != nil {
		return nil, err
	}

	s := new(Sequence)
	for _, name := range names {
		file := filepath.Join(dir, name)
		cfg, err := canvas.DecodeConfig(file)
		if err != nil {
			return nil, err
		}

		frame := Frame{
			Path:   file,
			Width:  cfg.Width,
			Height: cfg.Height,
		}

		if len(s.Frames) > 0 {
			first := s.Frames[0]
			if frame.Width != first.Width || frame.Height != first.Height {
				s.Excluded = append(s.Excluded, Exclusion{
					Frame: frame,
					Err:   fmt.Errorf("%w: %s is %dx%d, expected %dx%d", ErrDimensionMismatch, name, frame.Width, frame.Height, first.Width, first.Height),
				})
				continue
			}
		}

		s.Frames = append(s.Frames, frame)
	}

	return s, nil
}

// stem returns the filename of file up to its first dot.
func stem(file string) string {
	return strings.SplitN(filepath.Base(file), ".", 2)[0]
}
