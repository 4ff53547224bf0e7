package graphics

import (
	"fmt"
	"math"
)

// Matrix is a 2x3 affine matrix. It maps (x, y) to
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the matrix which leaves points unchanged.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Elements returns [A B C D E F].
func (a Matrix) Elements() [6]float64 {
	return [6]float64{a.A, a.B, a.C, a.D, a.E, a.F}
}

// Mult returns a*b : the resulting matrix applies b first, then a.
func (a Matrix) Mult(b Matrix) Matrix {
	return Matrix{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate returns a.Mult(translation by (x, y)).
func (a Matrix) Translate(x, y float64) Matrix {
	return a.Mult(Matrix{1, 0, 0, 1, x, y})
}

// Scale returns a.Mult(scaling by (x, y)).
func (a Matrix) Scale(x, y float64) Matrix {
	return a.Mult(Matrix{x, 0, 0, y, 0, 0})
}

// Rotate returns a.Mult(rotation by theta), with theta in radians.
func (a Matrix) Rotate(theta float64) Matrix {
	s, c := math.Sincos(theta)
	return a.Mult(Matrix{c, s, -s, c, 0, 0})
}

// SkewX returns a.Mult(skew along x by theta radians).
func (a Matrix) SkewX(theta float64) Matrix {
	return a.Mult(Matrix{1, 0, math.Tan(theta), 1, 0, 0})
}

// SkewY returns a.Mult(skew along y by theta radians).
func (a Matrix) SkewY(theta float64) Matrix {
	return a.Mult(Matrix{1, math.Tan(theta), 0, 1, 0, 0})
}

// Det returns the determinant of the linear part.
func (a Matrix) Det() float64 { return a.A*a.D - a.B*a.C }

// Invert returns the inverse of a, which must not be singular.
func (a Matrix) Invert() Matrix {
	det := a.Det()
	return Matrix{
		A: a.D / det,
		B: -a.B / det,
		C: -a.C / det,
		D: a.A / det,
		E: (a.C*a.F - a.D*a.E) / det,
		F: (a.B*a.E - a.A*a.F) / det,
	}
}

// Apply maps the point p.
func (a Matrix) Apply(p Point) Point {
	return Point{
		X: p.X*a.A + p.Y*a.C + a.E,
		Y: p.X*a.B + p.Y*a.D + a.F,
	}
}

// ApplyVector maps the displacement v, ignoring the translation part.
func (a Matrix) ApplyVector(v Point) Point {
	return Point{
		X: v.X*a.A + v.Y*a.C,
		Y: v.X*a.B + v.Y*a.D,
	}
}

// ScaleFactor is the mean scaling of lengths, used to map
// line widths and radii to device space.
func (a Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(a.Det()))
}

func (a Matrix) String() string {
	return fmt.Sprintf("matrix(%g, %g, %g, %g, %g, %g)", a.A, a.B, a.C, a.D, a.E, a.F)
}
