package svgicon

// Computes the extent of the geometry of an icon, used to
// normalize it to a target size.

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

type line [2]fixed.Point26_6

func (l line) criticalPoints() (tX, tY []float64) {
	return nil, nil
}

func (l line) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fixedTof(l[0])
	p1x, p1y := fixedTof(l[1])
	return bezierLine(p0x, p1x, t), bezierLine(p0y, p1y, t)
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type quadBezier [3]fixed.Point26_6

// quadratic polynomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])

	aX, bX := quadraticDerivative(p0x, p1x, p2x)
	aY, bY := quadraticDerivative(p0y, p1y, p2y)

	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	return bezierQuad(p0x, p1x, p2x, t), bezierQuad(p0y, p1y, p2y, t)
}

type cubicBezier [4]fixed.Point26_6

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	p1x, p1y := fixedTof(cu[0])
	c1x, c1y := fixedTof(cu[1])
	c2x, c2y := fixedTof(cu[2])
	p2x, p2y := fixedTof(cu[3])

	aX, bX, cX := cubicDerivative(p1x, c1x, c2x, p2x)
	aY, bY, cY := cubicDerivative(p1y, c1y, c2y, p2y)

	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	p3x, p3y := fixedTof(cu[3])
	return bezierSpline(p0x, p1x, p2x, p3x, t), bezierSpline(p0y, p1y, p2y, p3y, t)
}

// cubic polynomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// We would like to know the values of t where X = 0
// X  = (p3-3*p2+3*p1-p0)t^3 + (3*p2-6*p1+3*p0)t^2 + (3*p1-3*p0)t + (p0)
// Derivative :
// X' = 3(p3-3*p2+3*p1-p0)t^(3-1) + 2(6*p2-12*p1+6*p0)t^(2-1) + 1(3*p1-3*p0)t^(1-1)
// simplified:
// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// b^2 - 4ac = Determinant
func determinant(a, b, c float64) float64 { return b*b - 4*a*c }

func solveQuadratic(a, b, c float64, s bool) float64 {
	sign := 1.
	if !s {
		sign = -1.
	}
	return (-b + (math.Sqrt((b*b)-(4*a*c)) * sign)) / (2 * a)
}

func quadraticRoots(a, b, c float64) []float64 {
	d := determinant(a, b, c)
	if d < 0 {
		return nil
	}

	if a == 0 {
		// aX^2 + bX + c well then this is a simple line
		// x = -c / b
		return linearRoots(b, c)
	}

	if d == 0 {
		return []float64{solveQuadratic(a, b, c, true)}
	}
	return []float64{
		solveQuadratic(a, b, c, true),
		solveQuadratic(a, b, c, false),
	}
}

type segment interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point at time t
	evaluateCurve(t float64) (x, y float64)
}

func fixedTof(p fixed.Point26_6) (x, y float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}

// extent accumulates a float precision bounding box. The zero value is
// empty; unlike fixed.Rectangle26_6 it keeps degenerate (zero area)
// geometry instead of collapsing it.
type extent struct {
	minX, minY, maxX, maxY float64
	set                    bool
}

func (e *extent) addPoint(x, y float64) {
	if !e.set {
		e.minX, e.maxX = x, x
		e.minY, e.maxY = y, y
		e.set = true
		return
	}
	e.minX = math.Min(e.minX, x)
	e.minY = math.Min(e.minY, y)
	e.maxX = math.Max(e.maxX, x)
	e.maxY = math.Max(e.maxY, y)
}

func (e *extent) addSegment(curve segment) {
	resX, resY := curve.criticalPoints()
	// the begin and end points always count
	for _, t := range append(append(resX, 0, 1), resY...) {
		// filter invalid values
		if !(0 <= t && t <= 1) {
			continue
		}
		e.addPoint(curve.evaluateCurve(t))
	}
}

// geometryExtent walks the resolved geometry (path transforms and the
// icon transform applied) and returns its exact bounding box.
// ok is false when the icon contains no geometry at all.
func (s *SvgIcon) geometryExtent() (b Bounds, ok bool) {
	var e extent
	for _, svgp := range s.SVGPaths {
		m := s.Transform.Mult(svgp.Style.transform)
		var cur, start fixed.Point26_6
		for _, op := range svgp.Path {
			switch op := op.(type) {
			case MoveTo:
				cur = m.trMove(op)
				start = cur
				e.addPoint(fixedTof(cur))
			case LineTo:
				to := m.trLine(op)
				e.addSegment(line{cur, to})
				cur = to
			case QuadTo:
				b, c := m.trQuad(op)
				e.addSegment(quadBezier{cur, b, c})
				cur = c
			case CubicTo:
				b, c, d := m.trCubic(op)
				e.addSegment(cubicBezier{cur, b, c, d})
				cur = d
			case Close:
				cur = start
			}
		}
	}
	if !e.set {
		return Bounds{}, false
	}
	return Bounds{X: e.minX, Y: e.minY, W: e.maxX - e.minX, H: e.maxY - e.minY}, true
}

// Normalize rescales and translates the icon geometry so that its
// bounding box starts at the origin and its longer side equals
// maxSize. It returns the scale factor applied. Icons without any
// geometry are rejected with an EmptyGeometry error; degenerate
// (zero area) geometry is kept as it is, only translated.
func (s *SvgIcon) Normalize(maxSize float64) (scale float64, err error) {
	if maxSize <= 0 {
		return 0, fmt.Errorf("invalid target size %g", maxSize)
	}
	ext, ok := s.geometryExtent()
	if !ok {
		return 0, emptyGeometry("icon has no drawable geometry")
	}
	scale = 1.0
	if longer := math.Max(ext.W, ext.H); longer > 0 {
		scale = maxSize / longer
	}
	s.Transform = Identity.Scale(scale, scale).Translate(-ext.X, -ext.Y).Mult(s.Transform)
	s.ViewBox = Bounds{X: 0, Y: 0, W: ext.W * scale, H: ext.H * scale}
	return scale, nil
}
