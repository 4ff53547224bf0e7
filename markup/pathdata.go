package markup

import (
	"fmt"

	pstrconv "github.com/tdewolff/parse/v2/strconv"

	"github.com/benoitkugler/vecdoc/graphics"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

type pathScanner struct {
	data []byte
	pos  int
	err  error
}

func (s *pathScanner) num() float64 {
	if s.err != nil {
		return 0
	}
	s.pos += skipCommaWhitespace(s.data[s.pos:])
	f, n := pstrconv.ParseFloat(s.data[s.pos:])
	if n == 0 {
		s.err = fmt.Errorf("expected number at offset %d", s.pos)
		return 0
	}
	s.pos += n
	return f
}

// flag reads an arc flag, which may be written without separator.
func (s *pathScanner) flag() bool {
	if s.err != nil {
		return false
	}
	s.pos += skipCommaWhitespace(s.data[s.pos:])
	if s.pos < len(s.data) && (s.data[s.pos] == '0' || s.data[s.pos] == '1') {
		s.pos++
		return s.data[s.pos-1] == '1'
	}
	s.err = fmt.Errorf("expected flag at offset %d", s.pos)
	return false
}

// ParsePathData reads SVG path data (the "d" attribute).
// Quadratic curves are raised to cubic ones.
func ParsePathData(d string) (graphics.Path, error) {
	s := pathScanner{data: []byte(d)}
	var (
		p        graphics.Path
		prevCmd  byte
		cur      graphics.Point // current point
		subStart graphics.Point
		ctrl     graphics.Point // last control point, for smooth curves
	)
	for {
		s.pos += skipCommaWhitespace(s.data[s.pos:])
		if s.pos >= len(s.data) {
			break
		}
		cmd := prevCmd
		if c := s.data[s.pos]; c >= 'A' {
			cmd = c
			s.pos++
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("%w: expected command at offset %d", errParamMismatch, s.pos)
		}
		rel := cmd >= 'a'
		pt := func() graphics.Point {
			x, y := s.num(), s.num()
			if rel {
				return graphics.Point{X: cur.X + x, Y: cur.Y + y}
			}
			return graphics.Point{X: x, Y: y}
		}
		switch cmd {
		case 'M', 'm':
			cur = pt()
			subStart = cur
			p.MoveTo(cur)
			// implicit commands following a move are lines
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z', 'z':
			p.Close()
			cur = subStart
		case 'L', 'l':
			cur = pt()
			p.LineTo(cur)
		case 'H', 'h':
			x := s.num()
			if rel {
				x += cur.X
			}
			cur.X = x
			p.LineTo(cur)
		case 'V', 'v':
			y := s.num()
			if rel {
				y += cur.Y
			}
			cur.Y = y
			p.LineTo(cur)
		case 'C', 'c':
			c1, c2, end := pt(), pt(), pt()
			p.CurveTo(c1, c2, end)
			cur, ctrl = end, c2
		case 'S', 's':
			c1 := cur
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				c1 = graphics.Point{X: 2*cur.X - ctrl.X, Y: 2*cur.Y - ctrl.Y}
			}
			c2, end := pt(), pt()
			p.CurveTo(c1, c2, end)
			cur, ctrl = end, c2
		case 'Q', 'q':
			q, end := pt(), pt()
			quadTo(&p, cur, q, end)
			cur, ctrl = end, q
		case 'T', 't':
			q := cur
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				q = graphics.Point{X: 2*cur.X - ctrl.X, Y: 2*cur.Y - ctrl.Y}
			}
			end := pt()
			quadTo(&p, cur, q, end)
			cur, ctrl = end, q
		case 'A', 'a':
			rx, ry := s.num(), s.num()
			_ = s.num() // the x axis rotation is not supported
			large, sweep := s.flag(), s.flag()
			end := pt()
			p.ArcTo(graphics.Size{Width: rx, Height: ry}, large, sweep, end)
			cur = end
		default:
			return nil, fmt.Errorf("%w: unknown path command %q", errParamMismatch, cmd)
		}
		if s.err != nil {
			return nil, fmt.Errorf("invalid path data: %s", s.err)
		}
		prevCmd = cmd
	}
	return p, nil
}

// quadTo appends the quadratic curve (from, q, end) as a cubic one.
func quadTo(p *graphics.Path, from, q, end graphics.Point) {
	c1 := graphics.Point{X: from.X + 2*(q.X-from.X)/3, Y: from.Y + 2*(q.Y-from.Y)/3}
	c2 := graphics.Point{X: end.X + 2*(q.X-end.X)/3, Y: end.Y + 2*(q.Y-end.Y)/3}
	p.CurveTo(c1, c2, end)
}
