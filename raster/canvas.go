// Package raster implements graphics.Canvas into bitmaps, by wrapping rasterx.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanFT"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/vecdoc/graphics"
)

var _ graphics.ImageCanvas = (*Canvas)(nil) // assert interface conformance

// Canvas draws into an RGBA image. Its size is expressed in user space
// units; the bitmap has size*scale pixels.
type Canvas struct {
	img   *image.RGBA
	size  graphics.Size
	scale float64

	renderer renderer

	ctm   graphics.Matrix // user space to pixels
	stack []graphics.Matrix

	shaper       shaper
	interpolator xdraw.Interpolator
}

// NewCanvas returns a transparent canvas, using the default Go fonts.
func NewCanvas(size graphics.Size, scale float64) *Canvas {
	return newCanvas(size, scale, true, goFonts(), defaultOptions().interpolator)
}

func newCanvas(size graphics.Size, scale float64, transparency bool, fonts *fontSet, interp xdraw.Interpolator) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	w, h := int(math.Ceil(size.Width*scale)), int(math.Ceil(size.Height*scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if !transparency {
		draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	}
	return &Canvas{
		img:          img,
		size:         size,
		scale:        scale,
		renderer:     newRenderer(w, h, img),
		ctm:          graphics.Identity.Scale(scale, scale),
		shaper:       shaper{fonts: fonts},
		interpolator: interp,
	}
}

func (cv *Canvas) Size() graphics.Size { return cv.size }

func (cv *Canvas) Scale() float64 { return cv.scale }

// Image returns an image sharing the canvas pixels.
func (cv *Canvas) Image() graphics.Image { return &Image{img: cv.img, scale: cv.scale} }

// RGBA returns the underlying bitmap.
func (cv *Canvas) RGBA() *image.RGBA { return cv.img }

func (cv *Canvas) SaveState() {
	cv.stack = append(cv.stack, cv.ctm)
}

func (cv *Canvas) RestoreState() {
	if len(cv.stack) == 0 {
		graphics.Logger().Warn("raster: RestoreState without SaveState")
		return
	}
	cv.ctm = cv.stack[len(cv.stack)-1]
	cv.stack = cv.stack[:len(cv.stack)-1]
}

func (cv *Canvas) ApplyTransform(m graphics.Matrix) {
	cv.ctm = cv.ctm.Mult(m)
}

// renderer holds the rasterx drawers. ScannerGV only supports the
// non zero rule, so even-odd fills go through a ScannerFT.
type renderer struct {
	nonZero *rasterx.Filler
	evenOdd *rasterx.Filler
	dasher  *rasterx.Dasher
}

func newRenderer(width, height int, img *image.RGBA) renderer {
	fillScanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	evenOddScanner := scanFT.NewScannerFT(width, height, scanFT.NewRGBAPainter(img))
	strokeScanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return renderer{
		nonZero: rasterx.NewFiller(width, height, fillScanner),
		evenOdd: rasterx.NewFiller(width, height, evenOddScanner),
		dasher:  rasterx.NewDasher(width, height, strokeScanner),
	}
}

// pathAdder maps the user space path calls to device
// space rasterx calls, sent to fill and stroke when they are not nil.
type pathAdder struct {
	fill   *rasterx.Filler
	stroke *rasterx.Dasher
	ctm    graphics.Matrix
	open   bool
}

func (pa *pathAdder) clear() {
	if pa.fill != nil {
		pa.fill.Clear()
	}
	if pa.stroke != nil {
		pa.stroke.Clear()
	}
}

func (pa *pathAdder) fixed(p graphics.Point) fixed.Point26_6 {
	p = pa.ctm.Apply(p)
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func (pa *pathAdder) MoveTo(p graphics.Point) {
	pa.stop(false)
	a := pa.fixed(p)
	if pa.fill != nil {
		pa.fill.Start(a)
	}
	if pa.stroke != nil {
		pa.stroke.Start(a)
	}
	pa.open = true
}

func (pa *pathAdder) LineTo(p graphics.Point) {
	b := pa.fixed(p)
	if pa.fill != nil {
		pa.fill.Line(b)
	}
	if pa.stroke != nil {
		pa.stroke.Line(b)
	}
}

func (pa *pathAdder) CurveTo(c1, c2, end graphics.Point) {
	b, c, d := pa.fixed(c1), pa.fixed(c2), pa.fixed(end)
	if pa.fill != nil {
		pa.fill.CubeBezier(b, c, d)
	}
	if pa.stroke != nil {
		pa.stroke.CubeBezier(b, c, d)
	}
}

func (pa *pathAdder) ClosePath() { pa.stop(true) }

func (pa *pathAdder) stop(closeLoop bool) {
	if !pa.open {
		return
	}
	if pa.fill != nil {
		pa.fill.Stop(closeLoop)
	}
	if pa.stroke != nil {
		pa.stroke.Stop(closeLoop)
	}
	pa.open = false
}

// draw sends ops to the drawers set up on pa, and renders them.
func (pa *pathAdder) draw(ops []graphics.PathOp) error {
	pa.clear()
	if _, err := graphics.BuildPath(ops, pa); err != nil {
		return err
	}
	pa.stop(false)
	if pa.fill != nil {
		pa.fill.Draw()
	}
	if pa.stroke != nil {
		pa.stroke.Draw()
	}
	return nil
}

// toRasterxStops maps the stops of a resolved gradient.
func toRasterxStops(stops []graphics.GradientStop) []rasterx.GradStop {
	out := make([]rasterx.GradStop, len(stops))
	for i, s := range stops {
		out[i] = rasterx.GradStop{StopColor: color.NRGBA(s.Color), Offset: s.Offset, Opacity: 1}
	}
	return out
}

// setFillColor resolves the fill, mapped to device space by ctm,
// into the color of a filler, and returns that filler.
// Only solid fills may use the even-odd rule.
func (cv *Canvas) setFillColor(fill graphics.Fill) (*rasterx.Filler, error) {
	filler := cv.renderer.nonZero
	switch fill := fill.(type) {
	case graphics.SolidFill:
		if fill.FillMode == graphics.EvenOdd {
			filler = cv.renderer.evenOdd
			filler.SetWinding(false)
		}
		filler.SetColor(color.NRGBA(fill.Color))
	case graphics.LinearFill:
		s, e := cv.ctm.Apply(fill.Start), cv.ctm.Apply(fill.End)
		grad := rasterx.Gradient{
			Points: [5]float64{s.X, s.Y, e.X, e.Y},
			Stops:  toRasterxStops(fill.Stops),
			Matrix: rasterx.Identity,
			Units:  rasterx.UserSpaceOnUse,
		}
		filler.SetColor(grad.GetColorFunction(1))
	case graphics.RadialFill:
		c := cv.ctm.Apply(fill.Center)
		grad := rasterx.Gradient{
			Points:   [5]float64{c.X, c.Y, c.X, c.Y, fill.Radius * cv.ctm.ScaleFactor()},
			Stops:    toRasterxStops(fill.Stops),
			Matrix:   rasterx.Identity,
			Units:    rasterx.UserSpaceOnUse,
			IsRadial: true,
		}
		filler.SetColor(grad.GetColorFunction(1))
	default:
		return nil, fmt.Errorf("%w: %T", graphics.ErrUnsupportedBrush, fill)
	}
	return filler, nil
}

func (cv *Canvas) setStroke(pen *graphics.Pen) {
	width := pen.Width * cv.ctm.ScaleFactor()
	cv.renderer.dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel, nil, 0)
	cv.renderer.dasher.SetColor(color.NRGBA(pen.Color))
}

// DrawPath fills then strokes the path. The brush is resolved
// against the user space bounding box of ops.
func (cv *Canvas) DrawPath(ops []graphics.PathOp, pen *graphics.Pen, brush graphics.Brush) error {
	if len(ops) == 0 {
		graphics.Logger().Debug("raster: skipping empty path")
		return nil
	}
	bbox, err := graphics.BuildPath(ops, nil)
	if err != nil {
		return err
	}
	fill, err := graphics.ResolveBrush(brush, bbox)
	if err != nil {
		return err
	}

	// the dasher outlines the stroke while the path is added,
	// so the pen must be set first
	adder := &pathAdder{ctm: cv.ctm}
	if fill != nil {
		if adder.fill, err = cv.setFillColor(fill); err != nil {
			return err
		}
	}
	if pen != nil && pen.Width > 0 {
		cv.setStroke(pen)
		adder.stroke = cv.renderer.dasher
	}
	if adder.fill == nil && adder.stroke == nil {
		return nil
	}
	return adder.draw(ops)
}

func (cv *Canvas) DrawRectangle(frame graphics.Rect, pen *graphics.Pen, brush graphics.Brush) error {
	return cv.DrawPath(graphics.RectanglePath(frame), pen, brush)
}

func (cv *Canvas) DrawEllipse(frame graphics.Rect, pen *graphics.Pen, brush graphics.Brush) error {
	return cv.DrawPath(graphics.EllipsePath(frame), pen, brush)
}

// MeasureText returns the metrics of text drawn with font.
func (cv *Canvas) MeasureText(text string, font graphics.Font) graphics.TextMetrics {
	return cv.shaper.measure(text, font)
}

// DrawText fills the glyph outlines of text with the brush. The baseline
// starts at frame.Position, moved left by the text width for right
// aligned text, and by half of it for centered text. The brush is
// resolved against the line box of the text. The pen is not used.
func (cv *Canvas) DrawText(text string, frame graphics.Rect, font graphics.Font, alignment graphics.TextAlignment, pen *graphics.Pen, brush graphics.Brush) error {
	if brush == nil {
		return nil
	}
	tm := cv.shaper.measure(text, font)
	origin := frame.Position
	switch alignment {
	case graphics.AlignCenter:
		origin.X -= tm.Width / 2
	case graphics.AlignRight:
		origin.X -= tm.Width
	}
	outline, err := cv.shaper.outline(text, font, origin)
	if err != nil {
		return err
	}
	if len(outline) == 0 { // blank text
		return nil
	}
	fill, err := graphics.ResolveBrush(brush, graphics.NewRect(origin.X, origin.Y-tm.Ascent, tm.Width, tm.Ascent+tm.Descent))
	if err != nil || fill == nil {
		return err
	}

	// glyph outlines rely on the non zero rule
	if solid, ok := fill.(graphics.SolidFill); ok {
		solid.FillMode = graphics.NonZeroWinding
		fill = solid
	}
	adder := &pathAdder{ctm: cv.ctm}
	if adder.fill, err = cv.setFillColor(fill); err != nil {
		return err
	}
	return adder.draw(outline)
}

// DrawImage draws img scaled into frame, with the given opacity.
func (cv *Canvas) DrawImage(img graphics.Image, frame graphics.Rect, alpha float64) error {
	src := img.Pixels()
	if src == nil {
		return fmt.Errorf("%w: %T has no pixels", graphics.ErrUnsupportedImage, img)
	}
	sb := src.Bounds()
	if sb.Empty() || alpha <= 0 {
		return nil
	}
	m := cv.ctm.
		Translate(frame.Position.X, frame.Position.Y).
		Scale(frame.Size.Width/float64(sb.Dx()), frame.Size.Height/float64(sb.Dy())).
		Translate(-float64(sb.Min.X), -float64(sb.Min.Y))
	s2d := f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
	var opts *xdraw.Options
	if alpha < 1 {
		opts = &xdraw.Options{SrcMask: image.NewUniform(color.Alpha{A: uint8(math.Round(alpha * 0xff))})}
	}
	cv.interpolator.Transform(cv.img, s2d, src, sb, xdraw.Over, opts)
	return nil
}
