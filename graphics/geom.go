package graphics

import (
	"fmt"
	"math"
)

// Point is a position or a displacement in user space.
type Point struct{ X, Y float64 }

// Pt is a shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// MulSize multiplies p component-wise by s. This maps a fractional
// point (0..1) into the extent of s.
func (p Point) MulSize(s Size) Point { return Point{p.X * s.Width, p.Y * s.Height} }

// Offset moves p by the displacement s.
func (p Point) Offset(s Size) Point { return Point{p.X + s.Width, p.Y + s.Height} }

// ToSVGString returns "x,y" with the precision used in path data.
func (p Point) ToSVGString() string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

// Size is an extent. Its components are expected to be non negative,
// except when used as a displacement, but nothing here enforces it.
type Size struct{ Width, Height float64 }

// MaxSize is used as the width of a frame when the layout is unconstrained.
var MaxSize = Size{math.MaxFloat64, math.MaxFloat64}

// Mul multiplies s component-wise by o.
func (s Size) Mul(o Size) Size { return Size{s.Width * o.Width, s.Height * o.Height} }

// Div divides s component-wise by o.
func (s Size) Div(o Size) Size { return Size{s.Width / o.Width, s.Height / o.Height} }

// Scale multiplies both components by f.
func (s Size) Scale(f float64) Size { return Size{s.Width * f, s.Height * f} }

// Max returns the larger component.
func (s Size) Max() float64 { return math.Max(s.Width, s.Height) }

// Rect is an axis aligned rectangle, used as the frame of
// elements and as the reference space of fractional brushes.
type Rect struct {
	Position Point
	Size     Size
}

// NewRect returns the rectangle with top-left corner (x, y) and extent (w, h).
func NewRect(x, y, w, h float64) Rect {
	return Rect{Position: Point{x, y}, Size: Size{w, h}}
}

func (r Rect) X() float64      { return r.Position.X }
func (r Rect) Y() float64      { return r.Position.Y }
func (r Rect) Width() float64  { return r.Size.Width }
func (r Rect) Height() float64 { return r.Size.Height }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return r.Position.Offset(r.Size) }

// Center returns the middle of the rectangle.
func (r Rect) Center() Point { return r.Position.Add(Point{r.Size.Width / 2, r.Size.Height / 2}) }

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p Point) bool {
	m := r.Max()
	return r.Position.X <= p.X && p.X <= m.X && r.Position.Y <= p.Y && p.Y <= m.Y
}

// Relative maps the fractional point f into r : (0,0) is the top-left
// corner and (1,1) the bottom-right one.
func (r Rect) Relative(f Point) Point {
	return r.Position.Add(f.MulSize(r.Size))
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.Position.X, r.Position.Y, r.Size.Width, r.Size.Height)
}

// BoundingBoxBuilder accumulates the smallest axis aligned rectangle
// covering the points added to it.
// The zero value is ready to use.
type BoundingBoxBuilder struct {
	minX, minY, maxX, maxY float64
	count                  int
}

// Add includes p in the box.
func (bb *BoundingBoxBuilder) Add(p Point) {
	if bb.count == 0 {
		bb.minX, bb.maxX = p.X, p.X
		bb.minY, bb.maxY = p.Y, p.Y
	} else {
		bb.minX = math.Min(bb.minX, p.X)
		bb.minY = math.Min(bb.minY, p.Y)
		bb.maxX = math.Max(bb.maxX, p.X)
		bb.maxY = math.Max(bb.maxY, p.Y)
	}
	bb.count++
}

// Len returns the number of points added so far.
func (bb *BoundingBoxBuilder) Len() int { return bb.count }

// BoundingBox returns the accumulated box, or the zero Rect
// if no point was added.
func (bb *BoundingBoxBuilder) BoundingBox() Rect {
	if bb.count == 0 {
		return Rect{}
	}
	return Rect{
		Position: Point{bb.minX, bb.minY},
		Size:     Size{bb.maxX - bb.minX, bb.maxY - bb.minY},
	}
}
