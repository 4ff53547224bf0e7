// Package pdf implements graphics.Canvas as a one page PDF document,
// by wrapping github.com/jung-kurt/gofpdf.
//
// Coordinates are in PDF points, with the origin at the top left corner
// of the page and the y axis pointing down, as for the other backends.
package pdf

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/benoitkugler/vecdoc/graphics"
)

var _ graphics.Canvas = (*Canvas)(nil) // assert interface conformance

// Canvas writes drawing operations to a PDF page.
type Canvas struct {
	pdf  *gofpdf.Fpdf
	size graphics.Size

	depth  int // number of SaveState not yet restored
	images int // used to name registered images

	translate func(string) string // UTF-8 to the core fonts encoding
}

// NewCanvas returns a canvas drawing on a page of the given size, in points.
func NewCanvas(size graphics.Size) *Canvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	// gofpdf only accepts transforms inside a transformation context
	pdf.TransformBegin()
	return &Canvas{
		pdf:       pdf,
		size:      size,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (cv *Canvas) Size() graphics.Size { return cv.size }

// Document gives access to the underlying gofpdf document,
// for settings not exposed by the canvas.
func (cv *Canvas) Document() *gofpdf.Fpdf { return cv.pdf }

// Write closes the page and writes the document to w.
// The canvas must not be used afterwards.
func (cv *Canvas) Write(w io.Writer) error {
	for cv.depth > 0 {
		cv.RestoreState()
	}
	cv.pdf.TransformEnd()
	return cv.pdf.Output(w)
}

// WriteFile writes the document to a file at path.
func (cv *Canvas) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cv.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (cv *Canvas) SaveState() {
	cv.pdf.TransformBegin()
	cv.depth++
}

func (cv *Canvas) RestoreState() {
	if cv.depth == 0 {
		graphics.Logger().Warn("pdf: RestoreState without SaveState")
		return
	}
	cv.pdf.TransformEnd()
	cv.depth--
}

// ApplyTransform maps m, expressed in the y-down page space,
// to the PDF y-up space.
func (cv *Canvas) ApplyTransform(m graphics.Matrix) {
	h := cv.size.Height
	cv.pdf.Transform(gofpdf.TransformMatrix{
		A: m.A, B: -m.B,
		C: -m.C, D: m.D,
		E: m.C*h + m.E, F: h - m.D*h - m.F,
	})
}

// pather writes the path operators to the document.
type pather struct {
	pdf *gofpdf.Fpdf
}

func (p pather) MoveTo(pt graphics.Point) { p.pdf.MoveTo(pt.X, pt.Y) }

func (p pather) LineTo(pt graphics.Point) { p.pdf.LineTo(pt.X, pt.Y) }

func (p pather) CurveTo(c1, c2, end graphics.Point) {
	p.pdf.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
}

func (p pather) ClosePath() { p.pdf.ClosePath() }

// polygon records a flattened version of the path,
// used to clip gradients.
type polygon struct {
	points  []gofpdf.PointType
	current graphics.Point
	start   graphics.Point
}

func (pg *polygon) add(pt graphics.Point) {
	pg.points = append(pg.points, gofpdf.PointType{X: pt.X, Y: pt.Y})
	pg.current = pt
}

func (pg *polygon) MoveTo(pt graphics.Point) {
	pg.add(pt)
	pg.start = pt
}

func (pg *polygon) LineTo(pt graphics.Point) { pg.add(pt) }

func (pg *polygon) CurveTo(c1, c2, end graphics.Point) {
	for _, pt := range (cubicBezier{pg.current, c1, c2, end}).flatten() {
		pg.add(pt)
	}
}

func (pg *polygon) ClosePath() { pg.add(pg.start) }

func (cv *Canvas) setAlpha(a uint8) {
	cv.pdf.SetAlpha(float64(a)/0xff, "Normal")
}

func (cv *Canvas) err() error {
	if err := cv.pdf.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// DrawPath fills then strokes the path. Gradients only use
// their first and last stops. Gradient fills are clipped by a polygon
// approximating the path, and do not preserve its holes.
func (cv *Canvas) DrawPath(ops []graphics.PathOp, pen *graphics.Pen, brush graphics.Brush) error {
	if len(ops) == 0 {
		graphics.Logger().Debug("pdf: skipping empty path")
		return nil
	}
	var pg polygon
	bbox, err := graphics.BuildPath(ops, &pg)
	if err != nil {
		return err
	}
	fill, err := graphics.ResolveBrush(brush, bbox)
	if err != nil {
		return err
	}

	switch fill := fill.(type) {
	case nil:
	case graphics.SolidFill:
		c := fill.Color
		cv.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		cv.setAlpha(c.A)
		if _, err := graphics.BuildPath(ops, pather{cv.pdf}); err != nil {
			return err
		}
		if fill.FillMode == graphics.EvenOdd {
			cv.pdf.DrawPath("F*")
		} else {
			cv.pdf.DrawPath("F")
		}
	default:
		cv.pdf.ClipPolygon(pg.points, false)
		cv.paintGradient(fill, bbox)
		cv.pdf.ClipEnd()
	}

	if pen != nil && pen.Width > 0 {
		c := pen.Color
		cv.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		cv.pdf.SetLineWidth(pen.Width)
		cv.setAlpha(c.A)
		if _, err := graphics.BuildPath(ops, pather{cv.pdf}); err != nil {
			return err
		}
		cv.pdf.DrawPath("D")
	}
	cv.setAlpha(0xff)
	return cv.err()
}

// paintGradient paints the rectangle frame (expected to be clipped)
// with the gradient fill.
func (cv *Canvas) paintGradient(fill graphics.Fill, frame graphics.Rect) {
	x, y, w, h := frame.X(), frame.Y(), frame.Width(), frame.Height()
	switch fill := fill.(type) {
	case graphics.LinearFill:
		if w <= 0 && h <= 0 {
			return
		}
		// gofpdf needs a non degenerated rectangle
		w, h = max(w, 1e-3), max(h, 1e-3)
		c1, c2 := fill.Stops[0].Color, fill.Stops[len(fill.Stops)-1].Color
		// gradient vector is a fraction of the rectangle, with (0, 0) at the lower left
		cv.pdf.LinearGradient(x, y, w, h,
			int(c1.R), int(c1.G), int(c1.B), int(c2.R), int(c2.G), int(c2.B),
			(fill.Start.X-x)/w, 1-(fill.Start.Y-y)/h, (fill.End.X-x)/w, 1-(fill.End.Y-y)/h)
	case graphics.RadialFill:
		// a square keeps the gradient circular
		side := max(w, h)
		if side <= 0 || fill.Radius <= 0 {
			return
		}
		c1, c2 := fill.Stops[0].Color, fill.Stops[len(fill.Stops)-1].Color
		cx, cy := (fill.Center.X-x)/side, 1-(fill.Center.Y-y)/side
		cv.pdf.RadialGradient(x, y, side, side,
			int(c1.R), int(c1.G), int(c1.B), int(c2.R), int(c2.G), int(c2.B),
			cx, cy, cx, cy, fill.Radius/side)
	}
}

func (cv *Canvas) DrawRectangle(frame graphics.Rect, pen *graphics.Pen, brush graphics.Brush) error {
	return cv.DrawPath(graphics.RectanglePath(frame), pen, brush)
}

func (cv *Canvas) DrawEllipse(frame graphics.Rect, pen *graphics.Pen, brush graphics.Brush) error {
	return cv.DrawPath(graphics.EllipsePath(frame), pen, brush)
}

// DrawText writes text with the core font closest to font.
// The baseline starts at frame.Position, moved left by the text width
// for right aligned text, and by half of it for centered text.
// The pen is not used.
func (cv *Canvas) DrawText(text string, frame graphics.Rect, font graphics.Font, alignment graphics.TextAlignment, pen *graphics.Pen, brush graphics.Brush) error {
	if brush == nil {
		return nil
	}
	tm := cv.MeasureText(text, font) // also selects the font
	origin := frame.Position
	switch alignment {
	case graphics.AlignCenter:
		origin.X -= tm.Width / 2
	case graphics.AlignRight:
		origin.X -= tm.Width
	}
	lineBox := graphics.NewRect(origin.X, origin.Y-tm.Ascent, tm.Width, tm.Ascent+tm.Descent)
	fill, err := graphics.ResolveBrush(brush, lineBox)
	if err != nil || fill == nil {
		return err
	}

	txt := cv.translate(text)
	switch fill := fill.(type) {
	case graphics.SolidFill:
		c := fill.Color
		cv.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
		cv.setAlpha(c.A)
		cv.pdf.Text(origin.X, origin.Y, txt)
		cv.setAlpha(0xff)
	default:
		cv.pdf.ClipText(origin.X, origin.Y, txt, false)
		cv.paintGradient(fill, lineBox)
		cv.pdf.ClipEnd()
	}
	return cv.err()
}

// MeasureText returns the metrics of text written with the core font
// closest to font.
func (cv *Canvas) MeasureText(text string, font graphics.Font) graphics.TextMetrics {
	family, style := coreFont(font)
	cv.pdf.SetFont(family, style, font.Size)
	tm := graphics.TextMetrics{Width: cv.pdf.GetStringWidth(cv.translate(text))}
	desc := cv.pdf.GetFontDesc(family, style)
	if desc.Ascent != 0 {
		tm.Ascent = float64(desc.Ascent) / 1000 * font.Size
		tm.Descent = -float64(desc.Descent) / 1000 * font.Size
	} else {
		tm.Ascent, tm.Descent = 0.8*font.Size, 0.2*font.Size
	}
	return tm
}

// DrawImage embeds img as PNG, scaled to frame.
func (cv *Canvas) DrawImage(img graphics.Image, frame graphics.Rect, alpha float64) error {
	src := img.Pixels()
	if src == nil {
		return fmt.Errorf("%w: %T has no pixels", graphics.ErrUnsupportedImage, img)
	}
	if src.Bounds().Empty() || alpha <= 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return fmt.Errorf("%w: %s", graphics.ErrUnsupportedImage, err)
	}
	cv.images++
	name := fmt.Sprintf("image-%d", cv.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	cv.pdf.RegisterImageOptionsReader(name, opts, &buf)
	cv.pdf.SetAlpha(min(alpha, 1), "Normal")
	cv.pdf.ImageOptions(name, frame.X(), frame.Y(), frame.Width(), frame.Height(), false, opts, 0, "")
	cv.setAlpha(0xff)
	return cv.err()
}
