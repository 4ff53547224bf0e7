package markup

import (
	"fmt"
	"math"

	"github.com/benoitkugler/vecdoc/graphics"
)

// paint holds the presentation properties of a node.
type paint struct {
	fill          *graphics.Color // nil for none
	stroke        *graphics.Color
	strokeWidth   float64
	fillOpacity   float64
	strokeOpacity float64
}

func defaultPaint() paint {
	black := graphics.Black
	return paint{fill: &black, strokeWidth: 1, fillOpacity: 1, strokeOpacity: 1}
}

// readColorAttr returns nil for "none".
func readColorAttr(v string) (*graphics.Color, error) {
	c, ok, err := ParseColor(v)
	if err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

// readPaint reads the fill and stroke properties of current,
// each one falling back to parent.
func readPaint(current, parent *Node) (paint, error) {
	p := defaultPaint()
	var err error
	if v := cascade(current, parent, "fill-opacity"); v != "" {
		p.fillOpacity, err = readFraction(v)
	}
	if v := cascade(current, parent, "stroke-opacity"); err == nil && v != "" {
		p.strokeOpacity, err = readFraction(v)
	}
	if v := StyleAttr(current, "opacity"); err == nil && v != "" {
		var op float64
		op, err = readFraction(v)
		p.fillOpacity *= op
		p.strokeOpacity *= op
	}
	if v := cascade(current, parent, "stroke-width"); err == nil && v != "" {
		p.strokeWidth, err = ReadLength(v, 0)
	}
	if v := cascade(current, parent, "fill"); err == nil && v != "" {
		p.fill, err = readColorAttr(v)
	}
	if v := cascade(current, parent, "stroke"); err == nil && v != "" {
		p.stroke, err = readColorAttr(v)
	}
	if err != nil {
		return defaultPaint(), fmt.Errorf("<%s> style: %w", current.Name, err)
	}
	return p, nil
}

func (p paint) brush() graphics.Brush {
	if p.fill == nil {
		return nil
	}
	return graphics.NewSolidBrush(withOpacity(*p.fill, p.fillOpacity))
}

func (p paint) pen() *graphics.Pen {
	if p.stroke == nil || p.strokeWidth <= 0 {
		return nil
	}
	return graphics.NewPen(withOpacity(*p.stroke, p.strokeOpacity), p.strokeWidth)
}

func withOpacity(c graphics.Color, opacity float64) graphics.Color {
	if opacity >= 1 {
		return c
	}
	return c.WithAlpha(uint8(math.Round(float64(c.A) * math.Max(0, opacity))))
}

// readBase reads the pen, brush and transform of n.
// Invalid values are handled according to the error mode, and
// replaced by the defaults : black fill, no stroke, no transform.
func readBase(n, parent *Node, o options) (graphics.Base, error) {
	p, err := readPaint(n, parent)
	if err != nil {
		if err = o.unsupported(err); err != nil {
			return graphics.Base{}, err
		}
	}
	base := graphics.Base{Brush: p.brush(), Pen: p.pen()}
	if tr := n.Attr("transform"); tr != "" {
		base.Transform, err = ParseTransform(tr, nil)
		if err != nil {
			base.Transform = nil
			if err = o.unsupported(fmt.Errorf("<%s>: %w", n.Name, err)); err != nil {
				return graphics.Base{}, err
			}
		}
	}
	return base, nil
}
