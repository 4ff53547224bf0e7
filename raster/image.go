package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register decoders
	_ "image/jpeg" // register decoders
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register decoders
	_ "golang.org/x/image/tiff" // register decoders
	_ "golang.org/x/image/webp" // register decoders

	"github.com/benoitkugler/vecdoc/graphics"
)

var _ graphics.Image = (*Image)(nil)

// Image is a bitmap with a scale : its size in user space
// is its size in pixels divided by the scale.
type Image struct {
	img   image.Image
	scale float64
}

// NewImage wraps img. A non positive scale is replaced by 1.
func NewImage(img image.Image, scale float64) *Image {
	if scale <= 0 {
		scale = 1
	}
	return &Image{img: img, scale: scale}
}

func (im *Image) Size() graphics.Size {
	b := im.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()) / im.scale, Height: float64(b.Dy()) / im.scale}
}

func (im *Image) Scale() float64 { return im.scale }

func (im *Image) Pixels() image.Image { return im.img }

// SavePNG encodes the image in PNG format.
func (im *Image) SavePNG(w io.Writer) error {
	return png.Encode(w, im.img)
}

// SavePNGFile writes the image to a PNG file at path.
func (im *Image) SavePNGFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := im.SavePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var _ graphics.Platform = (*Platform)(nil)

// Platform creates raster canvases and images.
type Platform struct {
	fonts *fontSet
	opts  options
}

// NewPlatform parses the configured fonts and returns a platform.
func NewPlatform(opts ...Option) (*Platform, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	fonts := goFonts()
	if o.customFonts {
		var err error
		fonts, err = parseFonts(o)
		if err != nil {
			return nil, err
		}
	}
	return &Platform{fonts: fonts, opts: o}, nil
}

func (*Platform) Name() string { return "raster" }

func (pl *Platform) CreateImageCanvas(size graphics.Size, scale float64, transparency bool) graphics.ImageCanvas {
	return pl.NewCanvas(size, scale, transparency)
}

// NewCanvas is the same as CreateImageCanvas, with a concrete return type.
func (pl *Platform) NewCanvas(size graphics.Size, scale float64, transparency bool) *Canvas {
	return newCanvas(size, scale, transparency, pl.fonts, pl.opts.interpolator)
}

// LoadImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP image,
// with scale 1.
func (*Platform) LoadImage(r io.Reader) (graphics.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", graphics.ErrUnsupportedImage, err)
	}
	return NewImage(img, 1), nil
}

func (pl *Platform) LoadImageFile(path string) (graphics.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pl.LoadImage(f)
}

var errPixelCount = errors.New("pixel count is not a multiple of the width")

// CreateImage builds an image from rows of width pixels.
func (*Platform) CreateImage(pixels []graphics.Color, width int, scale float64) (graphics.Image, error) {
	if width <= 0 || len(pixels)%width != 0 {
		return nil, fmt.Errorf("%w: %d pixels, width %d", errPixelCount, len(pixels), width)
	}
	height := len(pixels) / width
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, c := range pixels {
		img.SetNRGBA(i%width, i/width, color.NRGBA(c))
	}
	return NewImage(img, scale), nil
}
