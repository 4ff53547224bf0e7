package graphics

import (
	"fmt"
	"strings"
)

// This file defines the path model : a closed set of
// operations and the walker shared by every backend.

// PathOp is one step of an outline. The set of operations is closed :
// MoveTo, LineTo, CurveTo, ArcTo and ClosePath.
//
// Start and End follow the same convention for every variant : the anchor
// point the operation transitions from and to.
type PathOp interface {
	isPathOp()
}

// MoveTo starts a new sub-path at End.
type MoveTo struct{ Start, End Point }

// LineTo adds a segment to End.
type LineTo struct{ Start, End Point }

// CurveTo adds a cubic Bézier curve to End.
type CurveTo struct {
	Start, FirstControl, SecondControl, End Point
}

// ArcTo adds an elliptical arc to Point, with the SVG semantic
// for the LargeArc and SweepClockwise flags.
type ArcTo struct {
	Start          Point
	Radius         Size
	LargeArc       bool
	SweepClockwise bool
	Point          Point
}

// ClosePath joins the current point to the start of the sub-path.
type ClosePath struct{}

func (MoveTo) isPathOp()    {}
func (LineTo) isPathOp()    {}
func (CurveTo) isPathOp()   {}
func (ArcTo) isPathOp()     {}
func (ClosePath) isPathOp() {}

// Path is an ordered sequence of operations.
// The builder methods fill the Start fields from the current point.
type Path []PathOp

// currentPoint returns the end of the last operation, or the start
// of the sub-path after a ClosePath.
func (p Path) currentPoint() Point {
	for i := len(p) - 1; i >= 0; i-- {
		switch op := p[i].(type) {
		case MoveTo:
			return op.End
		case LineTo:
			return op.End
		case CurveTo:
			return op.End
		case ArcTo:
			return op.Point
		case ClosePath:
			// find the start of the sub-path
			for j := i - 1; j >= 0; j-- {
				if m, ok := p[j].(MoveTo); ok {
					return m.End
				}
			}
			return Point{}
		}
	}
	return Point{}
}

// MoveTo starts a new sub-path at pt.
// On an empty path, Start is pt as well.
func (p *Path) MoveTo(pt Point) {
	start := pt
	if len(*p) != 0 {
		start = p.currentPoint()
	}
	*p = append(*p, MoveTo{Start: start, End: pt})
}

// LineTo adds a segment to pt.
func (p *Path) LineTo(pt Point) {
	*p = append(*p, LineTo{Start: p.currentPoint(), End: pt})
}

// CurveTo adds a cubic Bézier curve.
func (p *Path) CurveTo(c1, c2, end Point) {
	*p = append(*p, CurveTo{Start: p.currentPoint(), FirstControl: c1, SecondControl: c2, End: end})
}

// ArcTo adds an elliptical arc to pt.
func (p *Path) ArcTo(radius Size, largeArc, sweepClockwise bool, pt Point) {
	*p = append(*p, ArcTo{Start: p.currentPoint(), Radius: radius, LargeArc: largeArc, SweepClockwise: sweepClockwise, Point: pt})
}

// Close closes the current sub-path.
func (p *Path) Close() {
	*p = append(*p, ClosePath{})
}

// ToSVGPath returns the path data, as found in the "d" attribute of SVG paths.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = "M" + op.End.ToSVGString()
		case LineTo:
			chunks[i] = "L" + op.End.ToSVGString()
		case CurveTo:
			chunks[i] = "C" + op.FirstControl.ToSVGString() + " " + op.SecondControl.ToSVGString() + " " + op.End.ToSVGString()
		case ArcTo:
			chunks[i] = fmt.Sprintf("A%g,%g 0 %d,%d %s", op.Radius.Width, op.Radius.Height,
				boolToInt(op.LargeArc), boolToInt(op.SweepClockwise), op.Point.ToSVGString())
		case ClosePath:
			chunks[i] = "Z"
		default:
			chunks[i] = fmt.Sprintf("<%T>", op)
		}
	}
	return strings.Join(chunks, " ")
}

func (p Path) String() string { return p.ToSVGPath() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// PathBuilder receives the backend-native path calls
// emitted by BuildPath.
type PathBuilder interface {
	MoveTo(p Point)
	LineTo(p Point)
	CurveTo(c1, c2, end Point)
	ClosePath()
}

// BuildPath walks ops once, sending them to b (which may be nil),
// and returns the bounding box of the points they reference :
// both anchors of moves and lines, the control points and end of curves,
// and the target of arcs. Control points overestimate the bounds of
// curves, which is accepted.
// Arcs are sent to b as cubic Bézier curves, from their Start point.
//
// An operation not handled here is an error, wrapping ErrUnsupportedOperation.
// An empty ops yields the zero Rect.
func BuildPath(ops []PathOp, b PathBuilder) (Rect, error) {
	var bb BoundingBoxBuilder
	for _, op := range ops {
		switch op := op.(type) {
		case MoveTo:
			bb.Add(op.Start)
			bb.Add(op.End)
			if b != nil {
				b.MoveTo(op.End)
			}
		case LineTo:
			bb.Add(op.Start)
			bb.Add(op.End)
			if b != nil {
				b.LineTo(op.End)
			}
		case CurveTo:
			bb.Add(op.FirstControl)
			bb.Add(op.SecondControl)
			bb.Add(op.End)
			if b != nil {
				b.CurveTo(op.FirstControl, op.SecondControl, op.End)
			}
		case ArcTo:
			bb.Add(op.Point)
			if b != nil {
				arcToCubics(op.Start, op, b)
			}
		case ClosePath:
			if b != nil {
				b.ClosePath()
			}
		default:
			return Rect{}, fmt.Errorf("%w: %T", ErrUnsupportedOperation, op)
		}
	}
	return bb.BoundingBox(), nil
}

// RectanglePath returns the closed outline of frame.
func RectanglePath(frame Rect) Path {
	m := frame.Max()
	var p Path
	p.MoveTo(frame.Position)
	p.LineTo(Point{m.X, frame.Position.Y})
	p.LineTo(m)
	p.LineTo(Point{frame.Position.X, m.Y})
	p.Close()
	return p
}

// kappa is the control point distance approximating a quarter of circle
const kappa = 0.5522847498

// EllipsePath returns the ellipse inscribed in frame,
// as four cubic curves.
func EllipsePath(frame Rect) Path {
	c := frame.Center()
	rx, ry := frame.Size.Width/2, frame.Size.Height/2
	ox, oy := rx*kappa, ry*kappa
	var p Path
	p.MoveTo(Point{c.X + rx, c.Y})
	p.CurveTo(Point{c.X + rx, c.Y + oy}, Point{c.X + ox, c.Y + ry}, Point{c.X, c.Y + ry})
	p.CurveTo(Point{c.X - ox, c.Y + ry}, Point{c.X - rx, c.Y + oy}, Point{c.X - rx, c.Y})
	p.CurveTo(Point{c.X - rx, c.Y - oy}, Point{c.X - ox, c.Y - ry}, Point{c.X, c.Y - ry})
	p.CurveTo(Point{c.X + ox, c.Y - ry}, Point{c.X + rx, c.Y - oy}, Point{c.X + rx, c.Y})
	p.Close()
	return p
}
