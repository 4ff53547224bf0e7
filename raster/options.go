package raster

import (
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Option configures a Platform.
type Option func(*options)

type options struct {
	regular, bold []byte
	customFonts   bool
	interpolator  draw.Interpolator
}

func defaultOptions() options {
	return options{
		regular:      goregular.TTF,
		bold:         gobold.TTF,
		interpolator: draw.BiLinear,
	}
}

// WithFonts sets the TrueType or OpenType fonts used to draw text.
// Font families are not resolved : every regular font is drawn with regular,
// and every bold font with bold. The default fonts are Go Regular and Go Bold.
// A nil slice keeps the default.
func WithFonts(regular, bold []byte) Option {
	return func(o *options) {
		if regular != nil {
			o.regular = regular
			o.customFonts = true
		}
		if bold != nil {
			o.bold = bold
			o.customFonts = true
		}
	}
}

// WithImageFilter sets the interpolator used to draw images,
// draw.BiLinear by default.
func WithImageFilter(interp draw.Interpolator) Option {
	return func(o *options) {
		if interp != nil {
			o.interpolator = interp
		}
	}
}
