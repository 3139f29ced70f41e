package fbpack

import (
	"fmt"
	"strings"
)

// Layout selects how frames are arranged in the output texture.
type Layout int

const (
	// Atlas is a plain grid with one frame per cell.
	Atlas Layout = iota
	// Stagger packs consecutive frames into the channels of each cell.
	Stagger
	// Super packs a quartile of the sequence into each channel plane.
	Super
)

// String returns the artifact filename prefix for the layout.
func (l Layout) String() string {
	switch l {
	case Atlas:
		return "atlas"
	case Stagger:
		return "staggerpack"
	case Super:
		return "superpack"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout maps the command line names atlas, stagger and super to a
// Layout.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(name) {
	case "atlas":
		return Atlas, nil
	case "stagger":
		return Stagger, nil
	case "super":
		return Super, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLayout, name)
}

// Pack builds the texture for layout from the frames in source and returns
// the path of the artifact. Rows and columns are only used by Atlas.
func (p *Packer) Pack(layout Layout, rows, columns int, source string) (string, error) {
	switch layout {
	case Atlas:
		return p.TraditionalAtlas(rows, columns, source)
	case Stagger:
		return p.StaggerPack(source)
	case Super:
		return p.SuperPack(source)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedLayout, layout)
}
