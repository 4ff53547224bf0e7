package graphics

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

type unknownBrush struct{ SolidBrush }

func TestResolveLinear(t *testing.T) {
	frame := NewRect(10, 10, 100, 50)
	brush := LinearGradientBrush{Start: Pt(0, 0), End: Pt(1, 1)}.
		AddStop(0, Black).
		AddStop(1, White)

	fill, err := ResolveBrush(brush, frame)
	test.Error(t, err)
	lin := fill.(LinearFill)
	test.T(t, lin.Start, Pt(10, 10))
	test.T(t, lin.End, Pt(110, 60))
	test.T(t, len(lin.Stops), 2)

	brush.Absolute = true
	fill, err = ResolveBrush(&brush, frame)
	test.Error(t, err)
	test.T(t, fill.(LinearFill).End, Pt(1, 1))
}

func TestResolveRadial(t *testing.T) {
	frame := NewRect(10, 10, 100, 50)
	brush := RadialGradientBrush{Center: Pt(0.5, 0.5), Radius: Size{0.5, 0.5}}.
		AddStop(0, White).
		AddStop(1, Black)

	fill, err := ResolveBrush(brush, frame)
	test.Error(t, err)
	rad := fill.(RadialFill)
	test.T(t, rad.Center, Pt(60, 35))
	// the larger of the extents
	test.Float(t, rad.Radius, 50)
	test.T(t, MainColor(rad), White)
}

func TestResolveSkipped(t *testing.T) {
	frame := NewRect(0, 0, 10, 10)
	one := LinearGradientBrush{End: Pt(1, 0)}.AddStop(0, Black)
	fill, err := ResolveBrush(one, frame)
	test.Error(t, err)
	test.That(t, fill == nil)

	fill, err = ResolveBrush(RadialGradientBrush{}, frame)
	test.Error(t, err)
	test.That(t, fill == nil)

	fill, err = ResolveBrush(nil, frame)
	test.Error(t, err)
	test.That(t, fill == nil)

	var nilBrush *SolidBrush
	fill, err = ResolveBrush(nilBrush, frame)
	test.Error(t, err)
	test.That(t, fill == nil)
}

func TestResolveSolid(t *testing.T) {
	red := NewColor(0xff, 0, 0, 0xff)
	brush := NewSolidBrush(red)
	brush.FillMode = EvenOdd
	fill, err := ResolveBrush(brush, Rect{})
	test.Error(t, err)
	test.T(t, fill, Fill(SolidFill{Color: red, FillMode: EvenOdd}))
	test.String(t, red.String(), "#ff0000ff")
}

func TestResolveUnsupported(t *testing.T) {
	_, err := ResolveBrush(unknownBrush{}, Rect{})
	test.That(t, errors.Is(err, ErrUnsupportedBrush))
}

func TestAddStopCopies(t *testing.T) {
	base := LinearGradientBrush{Stops: make([]GradientStop, 0, 4)}.AddStop(0, Black)
	a := base.AddStop(1, White)
	b := base.AddStop(1, Black)
	test.T(t, a.Stops[1].Color, White)
	test.T(t, b.Stops[1].Color, Black)
}
