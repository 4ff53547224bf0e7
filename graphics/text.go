package graphics

import (
	"strings"
	"unicode"
)

// TextAlignment is the horizontal alignment of text in its frame.
type TextAlignment uint8

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

func (a TextAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "<unknown TextAlignment>"
	}
}

// TextSpan is a run of text. A nil Font means the font of the
// enclosing Text; a nil Position means the span is laid out in the
// frame of the enclosing Text.
type TextSpan struct {
	Text     string
	Font     *Font
	Position *Point
}

// TextMetrics are the measures of a string drawn with a font.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Size returns the extent of the text.
func (tm TextMetrics) Size() Size {
	return Size{tm.Width, tm.Ascent + tm.Descent}
}

// Text is an element drawing spans of text.
type Text struct {
	Base
	Frame     Rect
	Font      Font
	Alignment TextAlignment
	Spans     []TextSpan
}

// NewText returns a text element with one span.
func NewText(text string, frame Rect, font Font, alignment TextAlignment, pen *Pen, brush Brush) *Text {
	return &Text{
		Base:      Base{Pen: pen, Brush: brush},
		Frame:     frame,
		Font:      font,
		Alignment: alignment,
		Spans:     []TextSpan{{Text: text}},
	}
}

// String returns the concatenation of the spans.
func (t *Text) String() string {
	var sb strings.Builder
	for _, s := range t.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Trim removes the whitespace-only spans at the start and the end,
// then the leading whitespace of the first remaining span and the trailing
// whitespace of the last one. Interior whitespace is kept.
func (t *Text) Trim() {
	t.Spans = TrimSpans(t.Spans)
}

// TrimSpans implements Text.Trim. The returned slice shares spans' memory.
func TrimSpans(spans []TextSpan) []TextSpan {
	for len(spans) > 0 && isBlank(spans[0].Text) {
		spans = spans[1:]
	}
	for len(spans) > 0 && isBlank(spans[len(spans)-1].Text) {
		spans = spans[:len(spans)-1]
	}
	if len(spans) == 0 {
		return nil
	}
	spans[0].Text = strings.TrimLeftFunc(spans[0].Text, unicode.IsSpace)
	last := len(spans) - 1
	spans[last].Text = strings.TrimRightFunc(spans[last].Text, unicode.IsSpace)
	return spans
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (t *Text) drawElement(c Canvas) error {
	if t.Brush == nil {
		Logger().Debug("skipping text without brush", "text", t.String())
		return nil
	}
	for _, s := range t.Spans {
		font := t.Font
		if s.Font != nil {
			font = *s.Font
		}
		var err error
		if s.Position != nil {
			err = c.DrawText(s.Text, Rect{Position: *s.Position, Size: MaxSize}, font, AlignLeft, t.Pen, t.Brush)
		} else {
			err = c.DrawText(s.Text, t.Frame, font, t.Alignment, t.Pen, t.Brush)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
