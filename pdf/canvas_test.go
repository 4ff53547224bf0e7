package pdf

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"github.com/benoitkugler/vecdoc/graphics"
)

func newTestCanvas() *Canvas {
	cv := NewCanvas(graphics.Size{Width: 200, Height: 100})
	cv.Document().SetCompression(false)
	return cv
}

func output(t *testing.T, cv *Canvas) string {
	t.Helper()
	var buf bytes.Buffer
	test.Error(t, cv.Write(&buf))
	out := buf.String()
	test.That(t, strings.HasPrefix(out, "%PDF-"), "not a PDF")
	return out
}

func TestEmptyPage(t *testing.T) {
	cv := newTestCanvas()
	test.T(t, cv.Size(), graphics.Size{Width: 200, Height: 100})
	output(t, cv)
}

func TestDrawShapes(t *testing.T) {
	cv := newTestCanvas()
	red := graphics.NewSolidBrush(graphics.NewColor(0xff, 0, 0, 0xff))
	test.Error(t, cv.DrawRectangle(graphics.NewRect(10, 10, 50, 20), nil, red))
	test.Error(t, cv.DrawEllipse(graphics.NewRect(80, 10, 50, 20), graphics.NewPen(graphics.Black, 2), nil))

	var p graphics.Path
	p.MoveTo(graphics.Pt(0, 0))
	p.ArcTo(graphics.Size{Width: 10, Height: 10}, false, true, graphics.Pt(20, 0))
	p.Close()
	test.Error(t, cv.DrawPath(p, nil, graphics.SolidBrush{Color: graphics.Black, FillMode: graphics.EvenOdd}))

	out := output(t, cv)
	test.That(t, strings.Contains(out, " rg\n"), "fill color")
	test.That(t, strings.Contains(out, " c\n"), "curves")
	test.That(t, strings.Contains(out, "f*\n"), "even odd fill")
}

func TestDrawPathErrors(t *testing.T) {
	cv := newTestCanvas()
	test.Error(t, cv.DrawPath(nil, nil, graphics.NewSolidBrush(graphics.Black)))
	err := cv.DrawPath([]graphics.PathOp{nil}, nil, graphics.NewSolidBrush(graphics.Black))
	test.That(t, errors.Is(err, graphics.ErrUnsupportedOperation))
}

func TestTransform(t *testing.T) {
	cv := newTestCanvas()
	cv.SaveState()
	cv.ApplyTransform(graphics.Identity.Translate(10, 20))
	test.Error(t, cv.DrawRectangle(graphics.NewRect(0, 0, 5, 5), nil, graphics.NewSolidBrush(graphics.Black)))
	cv.RestoreState()
	cv.RestoreState() // unbalanced, ignored
	cv.SaveState()    // closed by Write

	out := output(t, cv)
	// y-down translation by (10, 20) on a 100pt high page
	test.That(t, strings.Contains(out, " cm\n"), "transform")
	test.That(t, strings.Contains(out, "-20.0"), "flipped translation")
}

func TestGradients(t *testing.T) {
	cv := newTestCanvas()
	linear := graphics.LinearGradientBrush{End: graphics.Pt(1, 0)}.
		AddStop(0, graphics.Black).
		AddStop(1, graphics.White)
	radial := graphics.RadialGradientBrush{Center: graphics.Pt(0.5, 0.5), Radius: graphics.Size{Width: 0.5, Height: 0.5}}.
		AddStop(0, graphics.White).
		AddStop(1, graphics.Black)
	test.Error(t, cv.DrawRectangle(graphics.NewRect(10, 10, 50, 20), nil, linear))
	test.Error(t, cv.DrawEllipse(graphics.NewRect(80, 10, 40, 40), nil, radial))

	out := output(t, cv)
	test.That(t, strings.Contains(out, "/ShadingType 2"), "axial shading")
	test.That(t, strings.Contains(out, "/ShadingType 3"), "radial shading")
}

func TestText(t *testing.T) {
	cv := newTestCanvas()
	font := graphics.NewFont("Georgia", 12)
	tm := cv.MeasureText("Hello", font)
	test.That(t, tm.Width > 0)
	test.That(t, tm.Ascent > 0 && tm.Descent > 0)
	test.That(t, cv.MeasureText("Hello", font.WithWeight("bold")).Width > tm.Width)

	test.Error(t, cv.DrawText("Hello", graphics.NewRect(10, 50, 0, 0), font, graphics.AlignLeft, nil, nil))
	test.Error(t, cv.DrawText("Hello", graphics.NewRect(100, 50, 0, 0), font, graphics.AlignCenter, nil, graphics.NewSolidBrush(graphics.Black)))
	grad := graphics.LinearGradientBrush{End: graphics.Pt(1, 0)}.
		AddStop(0, graphics.Black).
		AddStop(1, graphics.White)
	test.Error(t, cv.DrawText("Wörld", graphics.NewRect(190, 80, 0, 0), font, graphics.AlignRight, nil, grad))

	out := output(t, cv)
	test.That(t, strings.Contains(out, "(Hello) Tj"), "text")
	test.That(t, strings.Contains(out, "/Times-Roman"), "font")
}

func TestCoreFont(t *testing.T) {
	for _, tt := range []struct {
		font   graphics.Font
		family string
		style  string
	}{
		{graphics.NewFont("Courier New", 10), "Courier", ""},
		{graphics.NewFont("serif", 10).WithWeight("700"), "Times", "B"},
		{graphics.NewFont("Roboto", 10), "Helvetica", ""},
	} {
		family, style := coreFont(tt.font)
		test.String(t, family, tt.family)
		test.String(t, style, tt.style)
	}
}

type testImage struct{ img image.Image }

func (ti testImage) Size() graphics.Size {
	return graphics.Size{Width: float64(ti.img.Bounds().Dx()), Height: float64(ti.img.Bounds().Dy())}
}
func (ti testImage) Scale() float64      { return 1 }
func (ti testImage) Pixels() image.Image { return ti.img }

func TestDrawImage(t *testing.T) {
	cv := newTestCanvas()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		img.SetNRGBA(i, i, color.NRGBA{R: 0xff, A: 0xff})
	}
	test.Error(t, cv.DrawImage(testImage{img}, graphics.NewRect(10, 10, 40, 40), 0.5))
	test.Error(t, cv.DrawImage(testImage{img}, graphics.NewRect(60, 10, 40, 40), 1))

	err := cv.DrawImage(testImage{}, graphics.NewRect(0, 0, 1, 1), 1)
	test.That(t, errors.Is(err, graphics.ErrUnsupportedImage))

	out := output(t, cv)
	test.That(t, strings.Contains(out, "/Subtype /Image"), "embedded image")
}

func TestDrawTree(t *testing.T) {
	cv := newTestCanvas()
	g := &graphics.Group{Base: graphics.Base{Transform: graphics.NewScale(2, 2, nil)}}
	g.Add(
		&graphics.Rectangle{Base: graphics.Base{Brush: graphics.NewSolidBrush(graphics.Black)}, Frame: graphics.NewRect(0, 0, 10, 10)},
		graphics.NewText("Hi", graphics.NewRect(5, 30, 0, 0), graphics.DefaultFont(), graphics.AlignLeft, nil, graphics.NewSolidBrush(graphics.Black)),
	)
	test.Error(t, graphics.Draw(cv, g))
	out := output(t, cv)
	test.That(t, strings.Contains(out, "(Hi) Tj"))
}

func TestFlatten(t *testing.T) {
	cu := cubicBezier{graphics.Pt(0, 0), graphics.Pt(0, 10), graphics.Pt(10, 10), graphics.Pt(10, 0)}
	test.T(t, cu.criticalPoints(), []float64{0.5})

	pts := cu.flatten()
	test.T(t, pts[len(pts)-1], graphics.Pt(10, 0))
	top := 0.
	for _, p := range pts {
		test.That(t, 0 <= p.X && p.X <= 10, "x out of the curve hull")
		top = max(top, p.Y)
	}
	test.Float(t, top, 7.5)

	test.T(t, len(quadraticRoots(0, 0, 1)), 0)
	test.T(t, len(quadraticRoots(1, 0, 1)), 0)
	test.T(t, quadraticRoots(1, -2, 1), []float64{1.})
}
