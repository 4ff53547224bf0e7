package graphics

import (
	"image"
	"io"
)

// Canvas is implemented by rendering backends. The elements only
// talk to a Canvas, so that they never depend on a particular device.
//
// A Canvas is not required to be safe for concurrent use.
type Canvas interface {
	// SaveState pushes the current transform (and clip) on a stack.
	// Calls must be paired with RestoreState, and properly nested.
	SaveState()
	// RestoreState pops the state saved by the last SaveState.
	RestoreState()
	// ApplyTransform right-multiplies m onto the current transform.
	ApplyTransform(m Matrix)

	// DrawPath renders a completed path. The brush is resolved against
	// the bounding box of ops (see BuildPath). A solid brush fill mode
	// must be honored.
	DrawPath(ops []PathOp, pen *Pen, brush Brush) error
	DrawRectangle(frame Rect, pen *Pen, brush Brush) error
	DrawEllipse(frame Rect, pen *Pen, brush Brush) error
	// DrawText is a no-op if brush is nil.
	DrawText(text string, frame Rect, font Font, alignment TextAlignment, pen *Pen, brush Brush) error
	// DrawImage draws img scaled to fill frame, with opacity alpha in [0, 1].
	DrawImage(img Image, frame Rect, alpha float64) error
}

// Image is a drawable bitmap provided by a Platform.
type Image interface {
	// Size is the size in user space, that is the pixel size divided by the scale.
	Size() Size
	Scale() float64
	// Pixels returns the underlying bitmap.
	Pixels() image.Image
}

// ImageCanvas is a Canvas drawing into a bitmap.
type ImageCanvas interface {
	Canvas
	Size() Size
	Scale() float64
	// Image returns the current content of the canvas.
	Image() Image
}

// Platform creates the backend specific surfaces.
type Platform interface {
	Name() string
	// CreateImageCanvas returns a canvas of size*scale pixels. When
	// transparency is false, the canvas is initially opaque black.
	CreateImageCanvas(size Size, scale float64, transparency bool) ImageCanvas
	LoadImage(r io.Reader) (Image, error)
	LoadImageFile(path string) (Image, error)
	// CreateImage builds an image from pixels, row by row, width pixels per row.
	CreateImage(pixels []Color, width int, scale float64) (Image, error)
}
