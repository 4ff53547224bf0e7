package markup

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/benoitkugler/vecdoc/graphics"
)

func TestParsePathData(t *testing.T) {
	var tests = []struct {
		in  string
		out string
	}{
		{"M10 20L30 40Z", "M10,20 L30,40 Z"},
		{"m10,20 l5,5 h10 v-5 z", "M10,20 L15,25 L25,25 L25,20 Z"},
		{"M0 0 10 0 10 10", "M0,0 L10,0 L10,10"},
		{"M0 0C1 2 3 4 5 6S9 10 11 12", "M0,0 C1,2 3,4 5,6 C7,8 9,10 11,12"},
		{"M0 0Q3 3 6 0", "M0,0 C2,2 4,2 6,0"},
		{"M0 0A5 5 0 1 0 10 0", "M0,0 A5,5 0 1,0 10,0"},
		{"M0 0a5 5 0 0110 0", "M0,0 A5,5 0 0,1 10,0"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePathData(tt.in)
			test.Error(t, err)
			test.String(t, p.String(), tt.out)
		})
	}
}

func TestParsePathDataStart(t *testing.T) {
	p, err := ParsePathData("M1 1L2 2M5 5z L6 6")
	test.Error(t, err)
	test.T(t, p[1].(graphics.LineTo).Start, graphics.Pt(1, 1))
	test.T(t, p[4].(graphics.LineTo).Start, graphics.Pt(5, 5))
}

func TestParsePathDataErrors(t *testing.T) {
	for _, bad := range []string{"10 10", "M10", "M0 0 A1 1 0 2 0 3 3", "M0 0 X 1"} {
		_, err := ParsePathData(bad)
		test.That(t, err != nil, bad)
	}
}
