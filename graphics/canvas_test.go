package graphics

import (
	"errors"
	"fmt"
	"strings"
)

// recorder is a Canvas logging the calls it receives.
type recorder struct {
	calls []string
	depth int
	fail  error // returned by the Draw* methods when not nil
}

func (r *recorder) log(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) SaveState() {
	r.depth++
	r.log("save")
}

func (r *recorder) RestoreState() {
	r.depth--
	r.log("restore")
}

func (r *recorder) ApplyTransform(m Matrix) { r.log("transform %s", m) }

func (r *recorder) DrawPath(ops []PathOp, pen *Pen, brush Brush) error {
	r.log("path %s", Path(ops))
	return r.fail
}

func (r *recorder) DrawRectangle(frame Rect, pen *Pen, brush Brush) error {
	r.log("rectangle %s", frame)
	return r.fail
}

func (r *recorder) DrawEllipse(frame Rect, pen *Pen, brush Brush) error {
	r.log("ellipse %s", frame)
	return r.fail
}

func (r *recorder) DrawText(text string, frame Rect, font Font, alignment TextAlignment, pen *Pen, brush Brush) error {
	if frame.Size == MaxSize {
		r.log("text %q at %s %s %s", text, frame.Position.ToSVGString(), font, alignment)
	} else {
		r.log("text %q in %s %s %s", text, frame, font, alignment)
	}
	return r.fail
}

func (r *recorder) DrawImage(img Image, frame Rect, alpha float64) error {
	r.log("image %s %g", frame, alpha)
	return r.fail
}

func (r *recorder) String() string { return strings.Join(r.calls, "\n") }

var errBackend = errors.New("backend failure")
