package markup

import (
	"errors"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestParse(t *testing.T) {
	n, err := ParseString(`<?xml version="1.0"?>
<text xmlns="http://www.w3.org/2000/svg" x="1"><!-- comment -->a<tspan y=" 2 ">b<b>c</b></tspan>d</text>`)
	test.Error(t, err)
	test.String(t, n.Name, "text")
	test.String(t, n.Attr("x"), "1")
	test.T(t, len(n.Children), 3)
	test.That(t, n.Children[0].IsText())
	test.String(t, n.Children[1].Attr("y"), "2")
	test.String(t, n.Children[1].Content(), "bc")
	test.String(t, n.Content(), "abcd")
	test.T(t, len(n.Elements()), 1)
	test.That(t, !n.HasAttr("y"))
}

func TestParseCharset(t *testing.T) {
	// "é" in latin-1
	input := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><text>caf\xe9</text>"
	n, err := Parse(strings.NewReader(input))
	test.Error(t, err)
	test.String(t, n.Content(), "café")
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "just text", "<text>unclosed"} {
		_, err := ParseString(input)
		test.That(t, errors.Is(err, ErrInvalidMarkup), input)
	}
}
