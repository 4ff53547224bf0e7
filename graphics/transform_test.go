package graphics

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestTransformNil(t *testing.T) {
	var tr *Transform
	test.T(t, tr.Compose(), Identity)
	test.String(t, tr.String(), "")

	tr, err := NewMatrixTransform(nil, nil)
	test.Error(t, err)
	test.T(t, tr.Compose(), Identity)
}

func TestTransformMatrixElements(t *testing.T) {
	_, err := NewMatrixTransform([]float64{1, 0, 0, 1, 5}, nil)
	test.That(t, errors.Is(err, ErrMatrixElements))

	tr, err := NewMatrixTransform([]float64{1, 0, 0, 1, 5, 6}, nil)
	test.Error(t, err)
	test.T(t, tr.Elements(), [6]float64{1, 0, 0, 1, 5, 6})
	test.T(t, tr.Apply(Pt(1, 1)), Pt(6, 7))
}

func TestTransformOrder(t *testing.T) {
	// the newest node is applied first to the point
	tr := NewTranslate(10, 0, nil).Scale(2, 2)
	test.T(t, tr.Apply(Pt(1, 1)), Pt(12, 2))

	tr = NewScale(2, 2, nil).Translate(10, 0)
	test.T(t, tr.Apply(Pt(1, 1)), Pt(22, 2))

	rot := NewTranslate(10, 20, nil).Rotate(90)
	p := rot.Apply(Pt(1, 0))
	test.Float(t, p.X, 10)
	test.Float(t, p.Y, 21)
}

func TestTransformCompose(t *testing.T) {
	outer := NewTranslate(10, 20, nil)
	inner := outer.Scale(2, 3)
	test.T(t, inner.Compose(), outer.Compose().Mult(inner.Own()))
	test.T(t, inner.Previous(), outer)
	test.T(t, inner.Kind(), ScaleTransform)
	test.T(t, inner.Factors(), Size{2, 3})
	test.T(t, outer.Offset(), Size{10, 20})
}

func TestTransformShared(t *testing.T) {
	root := NewTranslate(5, 5, nil)
	a := root.Scale(2, 2)
	b := root.Rotate(45)
	test.T(t, root.Compose(), Identity.Translate(5, 5))
	test.That(t, a.Previous() == b.Previous())
}

func TestTransformString(t *testing.T) {
	tr := NewTranslate(10, 20, nil).Rotate(30)
	test.String(t, tr.String(), "translate(10, 20) rotate(30)")

	tr = tr.Scale(2, 0.5).Matrix(Matrix{1, 0, 0, 1, 3, 4})
	test.String(t, tr.String(), "translate(10, 20) rotate(30) scale(2, 0.5) matrix(1, 0, 0, 1, 3, 4)")
	test.T(t, tr.Kind().String(), "matrix")
}
