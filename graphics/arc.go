package graphics

import "math"

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an ellipse.
const maxDx float64 = math.Pi / 8

// arcToCubics approximates the arc from `from` to op.Point
// with cubic Bézier curves sent to b.
func arcToCubics(from Point, op ArcTo, b PathBuilder) {
	if from == op.Point { // omitted, as in SVG
		return
	}
	ra, rb := math.Abs(op.Radius.Width), math.Abs(op.Radius.Height)
	if ra == 0 || rb == 0 {
		b.LineTo(op.Point)
		return
	}
	const rotX = 0.
	cx, cy := findEllipseCenter(&ra, &rb, rotX, from.X, from.Y, op.Point.X, op.Point.Y, op.SweepClockwise, !op.LargeArc)

	startAngle := math.Atan2(from.Y-cy, from.X-cx) - rotX
	endAngle := math.Atan2(op.Point.Y-cy, op.Point.X-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	etaStart := math.Atan2(math.Sin(startAngle)/rb, math.Cos(startAngle)/ra)
	etaEnd := math.Atan2(math.Sin(endAngle)/rb, math.Cos(endAngle)/ra)
	deltaEta := etaEnd - etaStart
	if arcBig != op.LargeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// needed if the center of the ellipse is the midpoint of the start and end
	if deltaEta < 0 && op.SweepClockwise {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !op.SweepClockwise {
		deltaEta -= math.Pi * 2
	}

	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs)
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := from.X, from.Y
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(ra, rb, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = op.Point.X, op.Point.Y // exact end point
		} else {
			px, py = ellipsePointAt(ra, rb, sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(ra, rb, sinTheta, cosTheta, eta)
		b.CurveTo(Point{lx + alpha*ldx, ly + alpha*ldy}, Point{px - alpha*dx, py - alpha*dy}, Point{px, py})
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// ellipsePrime gives tangent vectors for parameterized ellipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized ellipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the ellipse. If it does not exist,
// the radii are increased minimally, preserving their ratio; ra and rb are
// updated in place.
// The problem is reduced to finding the center of a circle through the
// origin and an arbitrary point, which is then mapped back.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// move origin to start point
	nx, ny := endX-startX, endY-startY

	// rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// scale X dimension so that ra = rb
	nx *= *rb / *ra

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// requested ellipse does not exist; scale ra, rb to fit
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// if hr is zero, both answers are the same
	if sweep == smallArc {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	// reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
