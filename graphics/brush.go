package graphics

import (
	"fmt"
	"image/color"
)

// Color is a non alpha-premultiplied RGBA color.
type Color struct{ R, G, B, A uint8 }

// NewColor returns the color with the given components.
func NewColor(r, g, b, a uint8) Color { return Color{r, g, b, a} }

var (
	Black       = Color{0, 0, 0, 0xff}
	White       = Color{0xff, 0xff, 0xff, 0xff}
	Transparent = Color{}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// WithAlpha returns a copy of c with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Pen is a stroke style.
type Pen struct {
	Color Color
	Width float64
}

// NewPen returns a pen. Width is expected to be non negative.
func NewPen(c Color, width float64) *Pen {
	return &Pen{Color: c, Width: width}
}

// FillMode is the rule deciding the inside of a path.
type FillMode uint8

const (
	NonZeroWinding FillMode = iota
	EvenOdd
)

// Brush is a fill style. The set of brushes is closed :
// SolidBrush, LinearGradientBrush and RadialGradientBrush (or pointers to them).
type Brush interface {
	isBrush()
}

// SolidBrush fills with one color.
type SolidBrush struct {
	Color    Color
	FillMode FillMode
}

// GradientStop is one color of a gradient, at Offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  Color
}

// LinearGradientBrush interpolates its stops from Start to End.
// When Absolute is false, Start and End are fractions of the frame
// the brush is resolved against.
type LinearGradientBrush struct {
	Start, End Point
	Stops      []GradientStop
	Absolute   bool
}

// RadialGradientBrush interpolates its stops from Center outward.
// When Absolute is false, Center and Radius are fractions of the frame
// the brush is resolved against.
type RadialGradientBrush struct {
	Center   Point
	Radius   Size
	Stops    []GradientStop
	Absolute bool
}

func (SolidBrush) isBrush()          {}
func (LinearGradientBrush) isBrush() {}
func (RadialGradientBrush) isBrush() {}

// NewSolidBrush returns a non zero winding solid brush.
func NewSolidBrush(c Color) SolidBrush { return SolidBrush{Color: c} }

// AddStop appends a stop and returns the brush, for chaining.
func (b LinearGradientBrush) AddStop(offset float64, c Color) LinearGradientBrush {
	b.Stops = append(b.Stops[:len(b.Stops):len(b.Stops)], GradientStop{offset, c})
	return b
}

// AddStop appends a stop and returns the brush, for chaining.
func (b RadialGradientBrush) AddStop(offset float64, c Color) RadialGradientBrush {
	b.Stops = append(b.Stops[:len(b.Stops):len(b.Stops)], GradientStop{offset, c})
	return b
}

// AbsoluteStart returns the start point in user space.
func (b LinearGradientBrush) AbsoluteStart(frame Rect) Point {
	if b.Absolute {
		return b.Start
	}
	return frame.Relative(b.Start)
}

// AbsoluteEnd returns the end point in user space.
func (b LinearGradientBrush) AbsoluteEnd(frame Rect) Point {
	if b.Absolute {
		return b.End
	}
	return frame.Relative(b.End)
}

// AbsoluteCenter returns the center in user space.
func (b RadialGradientBrush) AbsoluteCenter(frame Rect) Point {
	if b.Absolute {
		return b.Center
	}
	return frame.Relative(b.Center)
}

// AbsoluteRadius returns the radii in user space.
func (b RadialGradientBrush) AbsoluteRadius(frame Rect) Size {
	if b.Absolute {
		return b.Radius
	}
	return b.Radius.Mul(frame.Size)
}

// Fill is a brush resolved against a frame, ready for a backend.
// The set is closed : SolidFill, LinearFill and RadialFill.
type Fill interface {
	isFill()
}

type SolidFill struct {
	Color    Color
	FillMode FillMode
}

// LinearFill has absolute end points. Stops are in the brush order;
// backends clamp outside of the first and last offsets.
type LinearFill struct {
	Start, End Point
	Stops      []GradientStop
}

// RadialFill has an absolute center and radius.
type RadialFill struct {
	Center Point
	Radius float64
	Stops  []GradientStop
}

func (SolidFill) isFill()  {}
func (LinearFill) isFill() {}
func (RadialFill) isFill() {}

// ResolveBrush maps brush into user space, using frame as the reference
// of fractional coordinates. The radius of a radial gradient is the
// larger of its two extents, so that the gradient covers the whole
// frame even when it is not square.
//
// A nil brush, or a gradient with less than 2 stops, resolves to
// a nil Fill and no error : nothing should be drawn.
// An unknown brush is an error wrapping ErrUnsupportedBrush.
func ResolveBrush(brush Brush, frame Rect) (Fill, error) {
	switch b := brush.(type) {
	case nil:
		return nil, nil
	case SolidBrush:
		return SolidFill{Color: b.Color, FillMode: b.FillMode}, nil
	case *SolidBrush:
		if b == nil {
			return nil, nil
		}
		return ResolveBrush(*b, frame)
	case LinearGradientBrush:
		if len(b.Stops) < 2 {
			Logger().Debug("skipping linear gradient", "stops", len(b.Stops))
			return nil, nil
		}
		return LinearFill{
			Start: b.AbsoluteStart(frame),
			End:   b.AbsoluteEnd(frame),
			Stops: b.Stops,
		}, nil
	case *LinearGradientBrush:
		if b == nil {
			return nil, nil
		}
		return ResolveBrush(*b, frame)
	case RadialGradientBrush:
		if len(b.Stops) < 2 {
			Logger().Debug("skipping radial gradient", "stops", len(b.Stops))
			return nil, nil
		}
		return RadialFill{
			Center: b.AbsoluteCenter(frame),
			Radius: b.AbsoluteRadius(frame).Max(),
			Stops:  b.Stops,
		}, nil
	case *RadialGradientBrush:
		if b == nil {
			return nil, nil
		}
		return ResolveBrush(*b, frame)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedBrush, brush)
	}
}

// MainColor returns a representative color of the fill : the color of a
// solid fill, or the first stop of a gradient. Backends without gradient
// support use it.
func MainColor(f Fill) Color {
	switch f := f.(type) {
	case SolidFill:
		return f.Color
	case LinearFill:
		return f.Stops[0].Color
	case RadialFill:
		return f.Stops[0].Color
	}
	return Transparent
}
