package graphics

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestRect(t *testing.T) {
	r := NewRect(10, 10, 100, 50)
	test.T(t, r.Max(), Pt(110, 60))
	test.T(t, r.Center(), Pt(60, 35))
	test.T(t, r.Relative(Pt(0.5, 1)), Pt(60, 60))
	test.That(t, r.Contains(Pt(110, 60)))
	test.That(t, !r.Contains(Pt(9, 20)))
	test.String(t, r.String(), "Rect(10, 10, 100, 50)")
}

func TestBoundingBoxBuilder(t *testing.T) {
	var bb BoundingBoxBuilder
	test.T(t, bb.BoundingBox(), Rect{})

	bb.Add(Pt(3, -2))
	test.T(t, bb.BoundingBox(), NewRect(3, -2, 0, 0))

	bb.Add(Pt(-1, 5))
	bb.Add(Pt(0, 0))
	test.T(t, bb.Len(), 3)
	test.T(t, bb.BoundingBox(), NewRect(-1, -2, 4, 7))
}

func TestMatrix(t *testing.T) {
	m := Identity.Translate(10, 20).Scale(2, 3)
	test.T(t, m.Apply(Pt(1, 1)), Pt(12, 23))
	test.T(t, m.ApplyVector(Pt(1, 1)), Pt(2, 3))
	inv := m.Invert().Apply(Pt(12, 23))
	test.Float(t, inv.X, 1)
	test.Float(t, inv.Y, 1)
	test.Float(t, m.ScaleFactor(), math.Sqrt(6))

	r := Identity.Rotate(math.Pi / 2).Apply(Pt(1, 0))
	test.Float(t, r.X, 0)
	test.Float(t, r.Y, 1)

	test.String(t, Identity.String(), "matrix(1, 0, 0, 1, 0, 0)")
}
