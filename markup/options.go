package markup

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/vecdoc/graphics"
)

var (
	// ErrInvalidMarkup is returned when the input holds no element.
	ErrInvalidMarkup = errors.New("invalid markup")
	// ErrUnknownElement is returned in StrictErrorMode for elements
	// which are not supported.
	ErrUnknownElement = errors.New("unknown element")

	errParamMismatch = errors.New("param mismatch")
)

// ErrorMode is the strategy used when an unsupported element or value is met.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unsupported input.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs unsupported input and skips it.
	WarnErrorMode
	// StrictErrorMode fails on unsupported input.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return fmt.Sprintf("<unknown ErrorMode %d>", m)
	}
}

// Option configures the readers of this package.
type Option func(*options)

type options struct {
	errorMode ErrorMode
	ambient   graphics.Font
}

func defaultOptions() options {
	return options{
		errorMode: WarnErrorMode,
		ambient:   graphics.DefaultFont(),
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithErrorMode sets how unsupported input is handled.
// The default is WarnErrorMode.
func WithErrorMode(m ErrorMode) Option {
	return func(o *options) {
		o.errorMode = m
	}
}

// WithAmbientFont sets the font inherited by the elements which
// do not specify one. The default is graphics.DefaultFont().
func WithAmbientFont(f graphics.Font) Option {
	return func(o *options) {
		o.ambient = f
	}
}

// unsupported applies the error mode to err.
func (o options) unsupported(err error) error {
	switch o.errorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		graphics.Logger().Warn("markup: skipping unsupported input", "err", err)
	default:
		graphics.Logger().Debug("markup: skipping unsupported input", "err", err)
	}
	return nil
}
