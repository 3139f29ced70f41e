package fbpack

import "errors"

var (
	// ErrEmptySequence is returned when a directory holds no usable frames.
	ErrEmptySequence = errors.New("fbpack: no frames found")
	// ErrInvalidFrameCount is returned by the channel packed layouts when
	// the sequence isn't exactly 192 or 256 frames long.
	ErrInvalidFrameCount = errors.New("fbpack: channel packing requires either 192 frames for RGB or 256 frames for RGBA")
	// ErrDimensionMismatch marks a frame whose size differs from the first
	// frame of its sequence. Such frames are left out rather than failing
	// the run.
	ErrDimensionMismatch = errors.New("fbpack: frame dimensions differ")
	// ErrMissingSourcePath is returned when the source directory doesn't
	// exist.
	ErrMissingSourcePath = errors.New("fbpack: source path does not exist")
	// ErrUnsupportedLayout is returned for an unknown layout name.
	ErrUnsupportedLayout = errors.New("fbpack: unsupported layout")
	// ErrInvalidGrid is returned when an atlas has fewer than one row or
	// column.
	ErrInvalidGrid = errors.New("fbpack: rows and columns must be at least 1")
)
