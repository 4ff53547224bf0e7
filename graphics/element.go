package graphics

import "fmt"

// Element is a node of the drawing tree. The set of elements is closed :
// *PathElement, *Rectangle, *Ellipse, *Text, *ImageElement and *Group.
type Element interface {
	base() *Base
	drawElement(c Canvas) error
}

// Base holds the style and transform shared by every element.
// A nil Pen means no stroke, a nil Brush no fill, a nil Transform
// the identity.
type Base struct {
	Pen       *Pen
	Brush     Brush
	Transform *Transform
}

func (b *Base) base() *Base { return b }

// PathElement draws an arbitrary outline.
type PathElement struct {
	Base
	Ops Path
}

// Rectangle draws the outline of Frame.
type Rectangle struct {
	Base
	Frame Rect
}

// Ellipse draws the ellipse inscribed in Frame.
type Ellipse struct {
	Base
	Frame Rect
}

// ImageElement draws a bitmap scaled into Frame.
// Pen and Brush are ignored.
type ImageElement struct {
	Base
	Image Image
	Frame Rect
	Alpha float64
}

// Group draws its children in order, after its own transform.
// Pen and Brush are not inherited by the children.
type Group struct {
	Base
	Children []Element
}

// Add appends children to the group.
func (g *Group) Add(children ...Element) { g.Children = append(g.Children, children...) }

func (p *PathElement) drawElement(c Canvas) error {
	return c.DrawPath(p.Ops, p.Pen, p.Brush)
}

func (r *Rectangle) drawElement(c Canvas) error {
	return c.DrawRectangle(r.Frame, r.Pen, r.Brush)
}

func (e *Ellipse) drawElement(c Canvas) error {
	return c.DrawEllipse(e.Frame, e.Pen, e.Brush)
}

func (im *ImageElement) drawElement(c Canvas) error {
	if im.Image == nil {
		return nil
	}
	return c.DrawImage(im.Image, im.Frame, im.Alpha)
}

func (g *Group) drawElement(c Canvas) error {
	for i, child := range g.Children {
		if err := Draw(c, child); err != nil {
			return fmt.Errorf("group child %d: %w", i, err)
		}
	}
	return nil
}

// Draw renders e on c. The state of c is saved before e's transform is
// applied and restored before returning, including on error, so that
// calls to Draw may be freely nested.
// A nil element draws nothing.
func Draw(c Canvas, e Element) error {
	if e == nil {
		return nil
	}
	c.SaveState()
	defer c.RestoreState()

	if t := e.base().Transform; t != nil {
		c.ApplyTransform(t.Compose())
	}
	return e.drawElement(c)
}
