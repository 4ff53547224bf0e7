package markup

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"

	"github.com/benoitkugler/vecdoc/graphics"
)

func TestReadNumber(t *testing.T) {
	var tests = []struct {
		in  string
		out float64
	}{
		{"12", 12},
		{" 12.5px ", 12.5},
		{"-3e2", -300},
		{"14pt", 14},
		{"50%", 50},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ReadNumber(tt.in)
			test.Error(t, err)
			test.Float(t, f, tt.out)
		})
	}

	_, err := ReadNumber("bold")
	test.That(t, err != nil)
	_, err = ReadNumber("")
	test.That(t, err != nil)
}

func TestReadLength(t *testing.T) {
	f, err := ReadLength("1in", 0)
	test.Error(t, err)
	test.Float(t, f, 96)

	f, err = ReadLength("50%", 30)
	test.Error(t, err)
	test.Float(t, f, 15)

	_, err = ReadLength("3parsec", 0)
	test.That(t, err != nil)
}

func TestParseColor(t *testing.T) {
	var tests = []struct {
		in  string
		out graphics.Color
	}{
		{"red", graphics.NewColor(0xff, 0, 0, 0xff)},
		{"#0f0", graphics.NewColor(0, 0xff, 0, 0xff)},
		{"#123456", graphics.NewColor(0x12, 0x34, 0x56, 0xff)},
		{"rgb(10, 20, 30)", graphics.NewColor(10, 20, 30, 0xff)},
		{"rgb(100%, 0%, 50%)", graphics.NewColor(255, 0, 128, 0xff)},
		{"rgba(10, 20, 30, 0.5)", graphics.NewColor(10, 20, 30, 128)},
		{" White ", graphics.White},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, ok, err := ParseColor(tt.in)
			test.Error(t, err)
			test.That(t, ok)
			test.T(t, c, tt.out)
		})
	}

	_, ok, err := ParseColor("none")
	test.Error(t, err)
	test.That(t, !ok)

	_, _, err = ParseColor("#12345")
	test.That(t, err != nil)
	_, _, err = ParseColor("notacolor")
	test.That(t, err != nil)
}

func TestParseTransform(t *testing.T) {
	var tests = []struct {
		in   string
		code string
	}{
		{"translate(10, 20) rotate(30)", "translate(10, 20) rotate(30)"},
		{"scale(2)", "scale(2, 2)"},
		{"translate(5)", "translate(5, 0)"},
		{"rotate(90 10 10)", "translate(10, 10) rotate(90) translate(-10, -10)"},
		{"matrix(1 0 0 1 3 4), scale(2,3)", "matrix(1, 0, 0, 1, 3, 4) scale(2, 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tr, err := ParseTransform(tt.in, nil)
			test.Error(t, err)
			test.String(t, tr.String(), tt.code)
		})
	}

	for _, bad := range []string{"rotate(1, 2)", "spin(3)", "matrix(1 2 3)", "translate(a)"} {
		_, err := ParseTransform(bad, nil)
		test.That(t, err != nil, fmt.Sprintf("%q should fail", bad))
	}
}

func TestParseTransformPrevious(t *testing.T) {
	outer := graphics.NewTranslate(1, 1, nil)
	tr, err := ParseTransform("scale(2)", outer)
	test.Error(t, err)
	test.T(t, tr.Previous(), outer)
	test.T(t, tr.Apply(graphics.Pt(1, 1)), graphics.Pt(3, 3))
}

func TestParseStyle(t *testing.T) {
	style := ParseStyle("font-weight: bold; font-size:12px ;fill:#fff;font-weight:normal")
	test.T(t, style, map[string]string{
		"font-weight": "normal",
		"font-size":   "12px",
		"fill":        "#fff",
	})
	test.T(t, len(ParseStyle("  ")), 0)

	// unterminated last declarations keep their value
	test.T(t, ParseStyle("font-size: 20px"), map[string]string{"font-size": "20px"})
	test.T(t, ParseStyle("text-anchor:middle"), map[string]string{"text-anchor": "middle"})
	test.T(t, ParseStyle("font-family: Courier; font-weight: 700"), map[string]string{
		"font-family": "Courier",
		"font-weight": "700",
	})
	test.T(t, ParseStyle("stroke-width: 2;;"), map[string]string{"stroke-width": "2"})
}
