package markup

import (
	"fmt"

	"github.com/benoitkugler/vecdoc/graphics"
)

// StyleAttr returns the value of the presentation attribute attr of n :
// the attribute itself when it is not blank, or the declaration of the
// same name in the "style" attribute. It returns "" if neither is set,
// or if n is nil.
func StyleAttr(n *Node, attr string) string {
	if n == nil {
		return ""
	}
	if v := n.Attr(attr); v != "" {
		return v
	}
	if style := n.Attr("style"); style != "" {
		return ParseStyle(style)[attr]
	}
	return ""
}

// cascade returns StyleAttr(current, attr), falling back to parent.
func cascade(current, parent *Node, attr string) string {
	if v := StyleAttr(current, attr); v != "" {
		return v
	}
	return StyleAttr(parent, attr)
}

func ReadTextFontFamily(n *Node) string { return StyleAttr(n, "font-family") }

func ReadTextFontWeight(n *Node) string { return StyleAttr(n, "font-weight") }

func ReadTextFontStyle(n *Node) string { return StyleAttr(n, "font-style") }

// ReadTextFontSize returns the font size of n, or -1 if it is missing
// or invalid. Units are ignored.
func ReadTextFontSize(n *Node) float64 {
	v := StyleAttr(n, "font-size")
	if v == "" {
		return -1
	}
	size, err := ReadNumber(v)
	if err != nil {
		graphics.Logger().Debug("markup: invalid font size", "value", v, "err", err)
		return -1
	}
	return size
}

// ReadTextAlignment maps the "text-anchor" property of n :
// "end" is right aligned, "middle" centered, anything else left aligned.
func ReadTextAlignment(n *Node) graphics.TextAlignment {
	switch StyleAttr(n, "text-anchor") {
	case "end":
		return graphics.AlignRight
	case "middle":
		return graphics.AlignCenter
	default:
		return graphics.AlignLeft
	}
}

// resolveFont applies the font properties found on current (or, for
// each missing property, on parent) to ambient.
func resolveFont(current, parent *Node, ambient graphics.Font, o options) (graphics.Font, error) {
	font := ambient
	if family := cascade(current, parent, "font-family"); family != "" {
		font = font.WithFamily(family)
	}
	if weight := cascade(current, parent, "font-weight"); weight != "" {
		font = font.WithWeight(weight)
	}
	if style := cascade(current, parent, "font-style"); style != "" {
		var err error
		font, err = font.WithStyle(style)
		if err != nil {
			if err = o.unsupported(err); err != nil {
				return font, err
			}
		}
	}
	size := ReadTextFontSize(current)
	if size <= 0 {
		size = ReadTextFontSize(parent)
	}
	if size > 0 {
		font = font.WithSize(size)
	}
	return font, nil
}

// readPosition returns the point given by the x and y attributes,
// or nil if one of them is missing.
func readPosition(n *Node) *graphics.Point {
	x, okX := readOptionalLength(n, "x")
	y, okY := readOptionalLength(n, "y")
	if !okX || !okY {
		return nil
	}
	return &graphics.Point{X: x, Y: y}
}

// ResolveSpans splits the content of node into spans.
// Text children become spans without font or position. <tspan> children
// become spans with their whole text content, an optional position (when
// both x and y are given) and a font override when their properties,
// cascaded with the ones of node, differ from ambient.
// Other elements are skipped, or rejected in StrictErrorMode.
// The list is trimmed (see graphics.TrimSpans).
//
// The returned font is the one of the first span, or ambient
// if there is no span.
func ResolveSpans(node *Node, ambient graphics.Font, opts ...Option) ([]graphics.TextSpan, graphics.Font, error) {
	return resolveSpans(node, node, ambient, newOptions(opts))
}

// resolveSpans cascades the <tspan> properties with the ones of parent,
// which is nil when ambient already includes them.
func resolveSpans(node, parent *Node, ambient graphics.Font, o options) ([]graphics.TextSpan, graphics.Font, error) {
	var spans []graphics.TextSpan
	for _, child := range node.Children {
		if child.IsText() {
			spans = append(spans, graphics.TextSpan{Text: child.Text})
			continue
		}
		if child.Name != "tspan" {
			if err := o.unsupported(fmt.Errorf("%w: <%s> in <%s>", ErrUnknownElement, child.Name, node.Name)); err != nil {
				return nil, ambient, err
			}
			continue
		}
		span := graphics.TextSpan{
			Text:     child.Content(),
			Position: readPosition(child),
		}
		font, err := resolveFont(child, parent, ambient, o)
		if err != nil {
			return nil, ambient, err
		}
		if font != ambient {
			span.Font = &font
		}
		spans = append(spans, span)
	}
	spans = graphics.TrimSpans(spans)

	first := ambient
	if len(spans) != 0 && spans[0].Font != nil {
		first = *spans[0].Font
	}
	return spans, first, nil
}

// ReadText builds a text element from a <text> node.
// The frame starts at (x, y), the baseline origin, and is unbounded.
// The element font is the ambient font (see WithAmbientFont) updated
// by the properties of the node. The brush is read from the "fill",
// "fill-opacity" and "opacity" properties (black by default), the pen from
// "stroke", "stroke-width" and "stroke-opacity", and the transform from
// the "transform" attribute.
func ReadText(node *Node, opts ...Option) (*graphics.Text, error) {
	o := newOptions(opts)
	if node.Name != "text" {
		if err := o.unsupported(fmt.Errorf("%w: <%s>, expected <text>", ErrUnknownElement, node.Name)); err != nil {
			return nil, err
		}
	}
	font, err := resolveFont(node, nil, o.ambient, o)
	if err != nil {
		return nil, err
	}
	base, err := readBase(node, nil, o)
	if err != nil {
		return nil, err
	}
	text := &graphics.Text{
		Base: base,
		Frame: graphics.Rect{
			Position: graphics.Point{X: readLengthOr(node, "x", 0), Y: readLengthOr(node, "y", 0)},
			Size:     graphics.MaxSize,
		},
		Font:      font,
		Alignment: ReadTextAlignment(node),
	}
	// font already includes the properties of node
	text.Spans, _, err = resolveSpans(node, nil, font, o)
	if err != nil {
		return nil, err
	}
	return text, nil
}
