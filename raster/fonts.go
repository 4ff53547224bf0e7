package raster

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/vecdoc/graphics"
)

// fontSet holds the parsed regular and bold faces.
// sfnt.Font is safe for concurrent use, sfnt.Buffer is not :
// each Canvas uses its own buffer.
type fontSet struct {
	regular, bold *sfnt.Font
}

func parseFonts(o options) (*fontSet, error) {
	regular, err := sfnt.Parse(o.regular)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := sfnt.Parse(o.bold)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	return &fontSet{regular: regular, bold: bold}, nil
}

var (
	defaultFontsOnce sync.Once
	defaultFonts     *fontSet
)

// goFonts returns the default Go fonts, which are known to be valid.
func goFonts() *fontSet {
	defaultFontsOnce.Do(func() {
		var err error
		defaultFonts, err = parseFonts(defaultOptions())
		if err != nil {
			panic(err)
		}
	})
	return defaultFonts
}

func (fs *fontSet) face(f graphics.Font) *sfnt.Font {
	if f.IsBold {
		return fs.bold
	}
	return fs.regular
}

// shaper lays out strings with a fontSet.
type shaper struct {
	fonts *fontSet
	buf   sfnt.Buffer
}

func ppem(size float64) fixed.Int26_6 { return fixed.Int26_6(size * 64) }

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }

// measure returns the metrics of text drawn with f.
func (sh *shaper) measure(text string, f graphics.Font) graphics.TextMetrics {
	face := sh.fonts.face(f)
	size := ppem(f.Size)
	var tm graphics.TextMetrics
	if m, err := face.Metrics(&sh.buf, size, font.HintingNone); err == nil {
		tm.Ascent = fromFixed(m.Ascent)
		tm.Descent = fromFixed(m.Descent)
	}
	var (
		width fixed.Int26_6
		prev  sfnt.GlyphIndex
	)
	for i, r := range text {
		idx, err := face.GlyphIndex(&sh.buf, r)
		if err != nil {
			continue
		}
		if i > 0 {
			if k, err := face.Kern(&sh.buf, prev, idx, size, font.HintingNone); err == nil {
				width += k
			}
		}
		if adv, err := face.GlyphAdvance(&sh.buf, idx, size, font.HintingNone); err == nil {
			width += adv
		}
		prev = idx
	}
	tm.Width = fromFixed(width)
	return tm
}

// outline returns the glyph outlines of text, with the baseline
// starting at origin. Glyphs missing from the font are skipped.
func (sh *shaper) outline(text string, f graphics.Font, origin graphics.Point) (graphics.Path, error) {
	face := sh.fonts.face(f)
	size := ppem(f.Size)
	var (
		path graphics.Path
		dot  = origin
		prev sfnt.GlyphIndex
	)
	for i, r := range text {
		idx, err := face.GlyphIndex(&sh.buf, r)
		if err != nil || idx == 0 {
			graphics.Logger().Debug("raster: missing glyph", "rune", r)
			continue
		}
		if i > 0 {
			if k, err := face.Kern(&sh.buf, prev, idx, size, font.HintingNone); err == nil {
				dot.X += fromFixed(k)
			}
		}
		segments, err := face.LoadGlyph(&sh.buf, idx, size, nil)
		if err != nil {
			return nil, fmt.Errorf("loading glyph for %q: %w", r, err)
		}
		at := func(p fixed.Point26_6) graphics.Point {
			return graphics.Point{X: dot.X + fromFixed(p.X), Y: dot.Y + fromFixed(p.Y)}
		}
		var current graphics.Point
		for _, seg := range segments {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if len(path) != 0 {
					path.Close()
				}
				current = at(seg.Args[0])
				path.MoveTo(current)
			case sfnt.SegmentOpLineTo:
				current = at(seg.Args[0])
				path.LineTo(current)
			case sfnt.SegmentOpQuadTo:
				q, end := at(seg.Args[0]), at(seg.Args[1])
				path.CurveTo(
					graphics.Point{X: current.X + 2*(q.X-current.X)/3, Y: current.Y + 2*(q.Y-current.Y)/3},
					graphics.Point{X: end.X + 2*(q.X-end.X)/3, Y: end.Y + 2*(q.Y-end.Y)/3},
					end)
				current = end
			case sfnt.SegmentOpCubeTo:
				current = at(seg.Args[2])
				path.CurveTo(at(seg.Args[0]), at(seg.Args[1]), current)
			}
		}
		if adv, err := face.GlyphAdvance(&sh.buf, idx, size, font.HintingNone); err == nil {
			dot.X += fromFixed(adv)
		}
		prev = idx
	}
	if len(path) != 0 {
		path.Close()
	}
	return path, nil
}
