package markup

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/tdewolff/parse/v2"
	"golang.org/x/image/colornames"

	"github.com/benoitkugler/vecdoc/graphics"
)

// ReadNumber reads the number at the start of v, ignoring a following unit.
// Blank input is an error.
func ReadNumber(v string) (float64, error) {
	v = strings.TrimSpace(v)
	nn, _ := parse.Dimension([]byte(v))
	if nn == 0 {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	return strconv.ParseFloat(v[:nn], 64)
}

// ReadLength reads a length with an optional unit, converted to pixels
// at 96 dpi. Percentages are relative to parent.
func ReadLength(v string, parent float64) (float64, error) {
	v = strings.TrimSpace(v)
	nn, _ := parse.Dimension([]byte(v))
	if nn == 0 {
		return 0, fmt.Errorf("invalid length %q", v)
	}
	num, err := strconv.ParseFloat(v[:nn], 64)
	if err != nil {
		return 0, err
	}
	switch dim := strings.ToLower(v[nn:]); dim {
	case "", "px":
		return num, nil
	case "cm":
		return num * 10 * 96 / 25.4, nil
	case "mm":
		return num * 96 / 25.4, nil
	case "in":
		return num * 96, nil
	case "pc":
		return num * 96 / 6, nil
	case "pt":
		return num * 96 / 72, nil
	case "%":
		return num * parent / 100, nil
	default:
		return 0, fmt.Errorf("unknown unit %q", dim)
	}
}

// readOptionalLength returns ok = false if the attribute is missing
// or invalid.
func readOptionalLength(n *Node, attr string) (float64, bool) {
	v := n.Attr(attr)
	if v == "" {
		return 0, false
	}
	f, err := ReadLength(v, 0)
	if err != nil {
		graphics.Logger().Debug("markup: invalid length", "attr", attr, "err", err)
		return 0, false
	}
	return f, true
}

func readLengthOr(n *Node, attr string, def float64) float64 {
	if f, ok := readOptionalLength(n, attr); ok {
		return f
	}
	return def
}

// readFraction reads a number or a percentage, as a fraction.
func readFraction(v string) (float64, error) {
	v = strings.TrimSpace(v)
	d := 1.
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err := strconv.ParseFloat(v, 64)
	return f / d, err
}

func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

// readPoints reads a list of numbers separated by commas or spaces.
func readPoints(v string) ([]float64, error) {
	fields := splitOnCommaOrSpace(v)
	out := make([]float64, len(fields))
	for i, f := range fields {
		var err error
		out[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ParseColor reads a color given by name, by hexadecimal code (#rgb or #rrggbb),
// or by the rgb() and rgba() functions. "none" and "transparent" return ok = false.
func ParseColor(v string) (c graphics.Color, ok bool, err error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v == "none" || v == "transparent" || v == "":
		return graphics.Color{}, false, nil
	case strings.HasPrefix(v, "#"):
		c, err = parseHexColor(v[1:])
		return c, err == nil, err
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		c, err = parseColorFunction(v[4:len(v)-1], 3)
		return c, err == nil, err
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		c, err = parseColorFunction(v[5:len(v)-1], 4)
		return c, err == nil, err
	}
	if col, has := colornames.Map[v]; has {
		return graphics.NewColor(col.R, col.G, col.B, col.A), true, nil
	}
	return graphics.Color{}, false, fmt.Errorf("unknown color %q", v)
}

func parseHexColor(v string) (graphics.Color, error) {
	if len(v) == 3 { // #rgb
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return graphics.Color{}, fmt.Errorf("invalid hex color #%s", v)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return graphics.Color{}, fmt.Errorf("invalid hex color #%s: %s", v, err)
	}
	return graphics.NewColor(uint8(n>>16), uint8(n>>8), uint8(n), 0xff), nil
}

func parseColorFunction(args string, nb int) (graphics.Color, error) {
	comps := strings.Split(args, ",")
	if len(comps) != nb {
		return graphics.Color{}, fmt.Errorf("%w: expected %d color components, got %d", errParamMismatch, nb, len(comps))
	}
	var values [4]uint8
	values[3] = 0xff
	for i, comp := range comps {
		comp = strings.TrimSpace(comp)
		var (
			f   float64
			err error
		)
		switch {
		case i == 3: // alpha is a fraction
			f, err = readFraction(comp)
			f *= 255
		case strings.HasSuffix(comp, "%"):
			f, err = readFraction(comp)
			f *= 255
		default:
			f, err = strconv.ParseFloat(comp, 64)
		}
		if err != nil {
			return graphics.Color{}, fmt.Errorf("invalid color component %q: %s", comp, err)
		}
		values[i] = uint8(math.Max(0, math.Min(255, math.Round(f))))
	}
	return graphics.NewColor(values[0], values[1], values[2], values[3]), nil
}

// ParseTransform reads the transform list v (as found in SVG "transform"
// attributes) and appends it to previous, one node per function.
// skewX and skewY become matrix nodes, rotations about a center become
// three nodes.
func ParseTransform(v string, previous *graphics.Transform) (*graphics.Transform, error) {
	t := previous
	for _, chunk := range strings.Split(v, ")") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		d := strings.Split(chunk, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return previous, fmt.Errorf("%w: badly formed transformation %q", errParamMismatch, chunk)
		}
		points, err := readPoints(d[1])
		if err != nil {
			return previous, err
		}
		name := strings.ToLower(strings.TrimSpace(strings.TrimLeft(d[0], ", \t\n")))
		t, err = appendTransform(t, name, points)
		if err != nil {
			return previous, err
		}
	}
	return t, nil
}

func appendTransform(t *graphics.Transform, name string, points []float64) (*graphics.Transform, error) {
	ln := len(points)
	switch name {
	case "rotate":
		if ln == 1 {
			return t.Rotate(points[0]), nil
		} else if ln == 3 {
			return t.Translate(points[1], points[2]).
				Rotate(points[0]).
				Translate(-points[1], -points[2]), nil
		}
	case "translate":
		if ln == 1 {
			return t.Translate(points[0], 0), nil
		} else if ln == 2 {
			return t.Translate(points[0], points[1]), nil
		}
	case "skewx":
		if ln == 1 {
			return t.Matrix(graphics.Identity.SkewX(points[0] * math.Pi / 180)), nil
		}
	case "skewy":
		if ln == 1 {
			return t.Matrix(graphics.Identity.SkewY(points[0] * math.Pi / 180)), nil
		}
	case "scale":
		if ln == 1 {
			return t.Scale(points[0], points[0]), nil
		} else if ln == 2 {
			return t.Scale(points[0], points[1]), nil
		}
	case "matrix":
		if ln == 6 {
			return graphics.NewMatrixTransform(points, t)
		}
	default:
		return t, fmt.Errorf("%w: unknown transformation %q", errParamMismatch, name)
	}
	return t, fmt.Errorf("%w: %d arguments for %s", errParamMismatch, ln, name)
}

var keyValueRe = regexp.MustCompile(`^\s*([\w-]+)\s*:\s*(.*)$`)

// ParseStyle reads an inline declaration block such as
// "font-weight: bold; font-size: 12". Later declarations win.
// Malformed declarations are skipped.
func ParseStyle(style string) map[string]string {
	out := make(map[string]string)
	if strings.TrimSpace(style) == "" {
		return out
	}
	// douceur drops the value of an unterminated last declaration
	decls, err := parser.ParseDeclarations(strings.TrimRight(style, "; \t\r\n") + ";")
	if err == nil {
		for _, decl := range decls {
			v := strings.TrimSpace(decl.Value)
			if v == "" {
				err = fmt.Errorf("empty value for %q", decl.Property)
				break
			}
			out[decl.Property] = v
		}
		if err == nil {
			return out
		}
		clear(out)
	}
	graphics.Logger().Debug("markup: falling back to lenient style parsing", "err", err)
	for _, kv := range strings.Split(style, ";") {
		if m := keyValueRe.FindStringSubmatch(kv); m != nil {
			out[m[1]] = strings.TrimSpace(m[2])
		}
	}
	return out
}
