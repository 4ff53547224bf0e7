package graphics

import (
	"fmt"
	"math"
	"strings"
)

// TransformKind identifies the elementary transformation
// held by a Transform node.
type TransformKind uint8

const (
	MatrixTransform TransformKind = iota
	TranslateTransform
	ScaleTransform
	RotateTransform
)

func (k TransformKind) String() string {
	switch k {
	case MatrixTransform:
		return "matrix"
	case TranslateTransform:
		return "translate"
	case ScaleTransform:
		return "scale"
	case RotateTransform:
		return "rotate"
	default:
		return fmt.Sprintf("<unknown TransformKind %d>", k)
	}
}

// Transform is one node of an immutable chain of transformations.
// Each node refers to the transform applied before it (its previous,
// or "outer", transform); a nil *Transform is the identity.
//
// Nodes have no exported fields and no mutating methods, so that a chain
// may be shared between elements and between goroutines.
type Transform struct {
	previous *Transform
	kind     TransformKind
	elements Matrix  // MatrixTransform
	size     Size    // offset for TranslateTransform, factors for ScaleTransform
	angle    float64 // degrees, RotateTransform
}

// NewMatrixTransform returns a matrix node following previous.
// elements is [A B C D E F] (see Matrix); a nil slice gives the identity.
// Any other length is a configuration error.
func NewMatrixTransform(elements []float64, previous *Transform) (*Transform, error) {
	t := &Transform{previous: previous, kind: MatrixTransform, elements: Identity}
	if elements == nil {
		return t, nil
	}
	if len(elements) != 6 {
		return nil, fmt.Errorf("%w: got %d", ErrMatrixElements, len(elements))
	}
	t.elements = Matrix{elements[0], elements[1], elements[2], elements[3], elements[4], elements[5]}
	return t, nil
}

// NewTranslate returns a translation node following previous.
func NewTranslate(dx, dy float64, previous *Transform) *Transform {
	return &Transform{previous: previous, kind: TranslateTransform, size: Size{dx, dy}}
}

// NewScale returns a scaling node following previous.
func NewScale(sx, sy float64, previous *Transform) *Transform {
	return &Transform{previous: previous, kind: ScaleTransform, size: Size{sx, sy}}
}

// NewRotate returns a rotation node following previous.
// The angle is in degrees.
func NewRotate(angle float64, previous *Transform) *Transform {
	return &Transform{previous: previous, kind: RotateTransform, angle: angle}
}

// Translate returns a new node, translating after t.
// t may be nil.
func (t *Transform) Translate(dx, dy float64) *Transform { return NewTranslate(dx, dy, t) }

// Scale returns a new node, scaling after t.
// t may be nil.
func (t *Transform) Scale(sx, sy float64) *Transform { return NewScale(sx, sy, t) }

// Rotate returns a new node, rotating by angle degrees after t.
// t may be nil.
func (t *Transform) Rotate(angle float64) *Transform { return NewRotate(angle, t) }

// Matrix returns a new matrix node applied after t.
// t may be nil.
func (t *Transform) Matrix(m Matrix) *Transform {
	return &Transform{previous: t, kind: MatrixTransform, elements: m}
}

func (t *Transform) Previous() *Transform { return t.previous }

func (t *Transform) Kind() TransformKind { return t.kind }

// Offset returns the displacement of a translation node.
func (t *Transform) Offset() Size { return t.size }

// Factors returns the scaling factors of a scale node.
func (t *Transform) Factors() Size { return t.size }

// Angle returns the angle, in degrees, of a rotation node.
func (t *Transform) Angle() float64 { return t.angle }

// Elements returns the elements of a matrix node.
func (t *Transform) Elements() [6]float64 { return t.elements.Elements() }

// Own returns the matrix of the node alone, ignoring previous transforms.
func (t *Transform) Own() Matrix {
	switch t.kind {
	case TranslateTransform:
		return Identity.Translate(t.size.Width, t.size.Height)
	case ScaleTransform:
		return Identity.Scale(t.size.Width, t.size.Height)
	case RotateTransform:
		return Identity.Rotate(t.angle * math.Pi / 180)
	default:
		return t.elements
	}
}

// Compose folds the chain, from the oldest node to t, into one matrix :
// each node is right-multiplied onto the accumulated result, so that it
// acts in the frame established by its previous transforms.
// A nil chain is the identity.
func (t *Transform) Compose() Matrix {
	var chain []*Transform
	for n := t; n != nil; n = n.previous {
		chain = append(chain, n)
	}
	m := Identity
	for i := len(chain) - 1; i >= 0; i-- {
		m = m.Mult(chain[i].Own())
	}
	return m
}

// Apply maps p by the whole chain.
func (t *Transform) Apply(p Point) Point { return t.Compose().Apply(p) }

func (t *Transform) code() string {
	switch t.kind {
	case TranslateTransform:
		return fmt.Sprintf("translate(%g, %g)", t.size.Width, t.size.Height)
	case ScaleTransform:
		return fmt.Sprintf("scale(%g, %g)", t.size.Width, t.size.Height)
	case RotateTransform:
		return fmt.Sprintf("rotate(%g)", t.angle)
	default:
		return t.elements.String()
	}
}

// String returns the chain in code form, oldest first,
// for instance "translate(10, 20) rotate(30)".
func (t *Transform) String() string {
	if t == nil {
		return ""
	}
	var chunks []string
	for n := t; n != nil; n = n.previous {
		chunks = append(chunks, n.code())
	}
	for i, j := 0, len(chunks)-1; i < j; i, j = i+1, j-1 {
		chunks[i], chunks[j] = chunks[j], chunks[i]
	}
	return strings.Join(chunks, " ")
}
