package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultFontFamily = "Georgia"
	DefaultFontSize   = 16
)

// Font describes the font used to draw text.
// Fonts are values : the With methods return modified copies.
type Font struct {
	Family string
	Size   float64
	IsBold bool
}

// DefaultFont returns Georgia at size 16.
func DefaultFont() Font {
	return Font{Family: DefaultFontFamily, Size: DefaultFontSize}
}

// NewFont returns a regular font.
func NewFont(family string, size float64) Font {
	return Font{Family: family, Size: size}
}

// Name is the same as Family.
func (f Font) Name() string { return f.Family }

// WithFamily returns a copy of f using family.
func (f Font) WithFamily(family string) Font {
	f.Family = family
	return f
}

// WithSize returns a copy of f with the given size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// WithWeight returns a copy of f, bold if weight is "bold", "bolder"
// or a numeric weight of at least 600, regular otherwise.
func (f Font) WithWeight(weight string) Font {
	f.IsBold = isBoldWeight(weight)
	return f
}

func isBoldWeight(weight string) bool {
	weight = strings.TrimSpace(weight)
	switch weight {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

// WithStyle is not implemented for italic or oblique styles : f is returned
// unchanged, with ErrFontStyleUnsupported for any style but "normal".
func (f Font) WithStyle(style string) (Font, error) {
	switch strings.TrimSpace(style) {
	case "", "normal":
		return f, nil
	default:
		return f, fmt.Errorf("%w: %q", ErrFontStyleUnsupported, style)
	}
}

func (f Font) String() string {
	return fmt.Sprintf("Font(%q, %g)", f.Family, f.Size)
}
