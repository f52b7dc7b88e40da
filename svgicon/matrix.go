package svgicon

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Matrix2D represents an SVG style matrix of the form
//	/ A C E \
//	\ B D F /
// mapping a point (x, y) to (A*x + C*y + E, B*x + D*y + F).
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity matrix
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a.b, the matrix applying b first, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

func (a Matrix2D) transform(x, y float64) (x1, y1 float64) {
	return a.A*x + a.C*y + a.E, a.B*x + a.D*y + a.F
}

// Translate returns a translated matrix
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale returns a scaled matrix
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate returns a matrix rotated by `theta` (radians)
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	cs, sn := math.Cos(theta), math.Sin(theta)
	return a.Mult(Matrix2D{cs, sn, -sn, cs, 0, 0})
}

// SkewX returns a matrix skewed on the X axis by `theta` (radians)
func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(theta), 1, 0, 0})
}

// SkewY returns a matrix skewed on the Y axis by `theta` (radians)
func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(theta), 0, 1, 0, 0})
}

// tFixed transforms a fixed.Point26_6 by the matrix
func (a Matrix2D) tFixed(x fixed.Point26_6) fixed.Point26_6 {
	fx, fy := float64(x.X)/64, float64(x.Y)/64
	tx, ty := a.transform(fx, fy)
	return fixed.Point26_6{X: fixed.Int26_6(tx * 64), Y: fixed.Int26_6(ty * 64)}
}

func (a Matrix2D) trMove(m MoveTo) fixed.Point26_6 {
	return a.tFixed(fixed.Point26_6(m))
}

func (a Matrix2D) trLine(l LineTo) fixed.Point26_6 {
	return a.tFixed(fixed.Point26_6(l))
}

func (a Matrix2D) trQuad(q QuadTo) (b, c fixed.Point26_6) {
	return a.tFixed(q[0]), a.tFixed(q[1])
}

func (a Matrix2D) trCubic(q CubicTo) (b, c, d fixed.Point26_6) {
	return a.tFixed(q[0]), a.tFixed(q[1]), a.tFixed(q[2])
}
