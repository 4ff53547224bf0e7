package graphics

import (
	"testing"

	"github.com/tdewolff/test"
)

func spanTexts(spans []TextSpan) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

func textSpans(texts ...string) []TextSpan {
	out := make([]TextSpan, len(texts))
	for i, s := range texts {
		out[i] = TextSpan{Text: s}
	}
	return out
}

func TestTextTrim(t *testing.T) {
	var tests = []struct {
		in  []string
		out []string
	}{
		{[]string{"  ", "Hello ", " World", "   "}, []string{"Hello ", " World"}},
		{[]string{"\n  a  b \t"}, []string{"a  b"}},
		{[]string{" ", "\t", "\n"}, []string{}},
		{[]string{}, []string{}},
		{[]string{" x", " ", "y "}, []string{"x", " ", "y"}},
	}
	for _, tt := range tests {
		text := Text{Spans: textSpans(tt.in...)}
		text.Trim()
		test.T(t, spanTexts(text.Spans), tt.out)
	}
}

func TestTextTrimIdempotent(t *testing.T) {
	text := Text{Spans: textSpans("  ", " Hello ", "World  ")}
	text.Trim()
	first := spanTexts(text.Spans)
	text.Trim()
	test.T(t, spanTexts(text.Spans), first)
}

func TestTextString(t *testing.T) {
	text := NewText("a", Rect{}, DefaultFont(), AlignLeft, nil, nil)
	text.Spans = append(text.Spans, TextSpan{Text: "b c"})
	test.String(t, text.String(), "ab c")
	test.String(t, AlignCenter.String(), "Center")
}

func TestTextMetrics(t *testing.T) {
	tm := TextMetrics{Width: 10, Ascent: 8, Descent: 3}
	test.T(t, tm.Size(), Size{10, 11})
}
