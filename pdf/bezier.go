package pdf

import (
	"math"
	"sort"

	"github.com/benoitkugler/vecdoc/graphics"
)

// clip polygons approximate curves with this many chords, plus
// the extrema of the curve
const flattenSteps = 16

type cubicBezier [4]graphics.Point

// cubic polynomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		// bX + c : a line
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	default:
		sq := math.Sqrt(d)
		return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
	}
}

func (cu cubicBezier) at(t float64) graphics.Point {
	return graphics.Point{
		X: bezierSpline(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		Y: bezierSpline(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t),
	}
}

// criticalPoints returns the t in ]0, 1[ zeroing
// the derivative along x or y.
func (cu cubicBezier) criticalPoints() []float64 {
	aX, bX, cX := cubicDerivative(cu[0].X, cu[1].X, cu[2].X, cu[3].X)
	aY, bY, cY := cubicDerivative(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)
	var out []float64
	for _, t := range append(quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)...) {
		if 0 < t && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

// flatten returns points on the curve, excluding its start,
// ending with cu[3]. The extrema of the curve are always included.
func (cu cubicBezier) flatten() []graphics.Point {
	ts := cu.criticalPoints()
	for i := 1; i < flattenSteps; i++ {
		ts = append(ts, float64(i)/flattenSteps)
	}
	sort.Float64s(ts)
	out := make([]graphics.Point, 0, len(ts)+1)
	for _, t := range ts {
		out = append(out, cu.at(t))
	}
	return append(out, cu[3])
}
