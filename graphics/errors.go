package graphics

import "errors"

var (
	// ErrMatrixElements is returned when a matrix transform
	// is not built from exactly 6 elements.
	ErrMatrixElements = errors.New("6 matrix elements were expected")

	// ErrUnsupportedOperation is returned when a path walker meets
	// an operation it does not know how to draw.
	ErrUnsupportedOperation = errors.New("unsupported path operation")

	// ErrUnsupportedBrush is returned when a brush variant can't be resolved.
	ErrUnsupportedBrush = errors.New("unsupported brush")

	// ErrUnsupportedImage is returned by backends given an image they can't draw.
	ErrUnsupportedImage = errors.New("unsupported image")

	// ErrFontStyleUnsupported is returned by Font.WithStyle : font styles
	// other than "normal" are not implemented.
	ErrFontStyleUnsupported = errors.New("font style not implemented")
)
