package svgicon

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestNormalize(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 100 100">
		<rect x="10" y="20" width="40" height="20"/>
	</svg>`)
	scale, err := icon.Normalize(80)
	if err != nil {
		t.Fatal(err)
	}
	if scale != 2 {
		t.Errorf("expected scale 2, got %g", scale)
	}
	if icon.ViewBox != (Bounds{0, 0, 80, 40}) {
		t.Errorf("unexpected viewbox %v", icon.ViewBox)
	}
	// the resolved geometry must start at the origin
	ext, ok := icon.geometryExtent()
	if !ok {
		t.Fatal("missing geometry")
	}
	if math.Abs(ext.X) > 1e-9 || math.Abs(ext.Y) > 1e-9 {
		t.Errorf("geometry not anchored at origin: %v", ext)
	}
	if math.Abs(ext.W-80) > 1e-9 || math.Abs(ext.H-40) > 1e-9 {
		t.Errorf("geometry not scaled to target: %v", ext)
	}
}

func TestNormalizeTallIcon(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 100 100">
		<rect x="0" y="0" width="25" height="50"/>
	</svg>`)
	if _, err := icon.Normalize(80); err != nil {
		t.Fatal(err)
	}
	// the longer side drives the scale
	if icon.ViewBox != (Bounds{0, 0, 40, 80}) {
		t.Errorf("unexpected viewbox %v", icon.ViewBox)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 100 100"></svg>`)
	_, err := icon.Normalize(80)
	var icErr *Error
	if !errors.As(err, &icErr) || icErr.Kind != EmptyGeometry {
		t.Errorf("expected empty geometry error, got %v", err)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	// a horizontal line has zero height but is valid geometry
	icon := parseIcon(t, `<svg viewBox="0 0 100 100">
		<line x1="10" y1="50" x2="50" y2="50" stroke="black"/>
	</svg>`)
	scale, err := icon.Normalize(80)
	if err != nil {
		t.Fatal(err)
	}
	if scale != 2 {
		t.Errorf("expected scale 2, got %g", scale)
	}
	if icon.ViewBox != (Bounds{0, 0, 80, 0}) {
		t.Errorf("unexpected viewbox %v", icon.ViewBox)
	}
}

func TestNormalizeInvalidSize(t *testing.T) {
	icon := parseIcon(t, rectIcon)
	if _, err := icon.Normalize(0); err == nil {
		t.Error("expected an error for a zero target size")
	}
	if _, err := icon.Normalize(-4); err == nil {
		t.Error("expected an error for a negative target size")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	a := parseIcon(t, rectIcon)
	b := parseIcon(t, rectIcon)
	if _, err := a.Normalize(80); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Normalize(80); err != nil {
		t.Fatal(err)
	}
	extA, _ := a.geometryExtent()
	extB, _ := b.geometryExtent()
	if extA != extB {
		t.Errorf("normalizing the same icon twice diverged: %v != %v", extA, extB)
	}
}

func TestCurveExtent(t *testing.T) {
	// the control point pulls the curve below its end points
	icon := parseIcon(t, `<svg viewBox="0 0 100 100">
		<path d="M10 50 Q50 90 90 50" fill="none" stroke="black"/>
	</svg>`)
	ext, ok := icon.geometryExtent()
	if !ok {
		t.Fatal("missing geometry")
	}
	// apex of the quadratic is at y = 70, not at the control point 90
	if math.Abs(ext.Y-50) > 1e-9 || math.Abs(ext.H-20) > 1e-9 {
		t.Errorf("curve extremum not accounted for: %v", ext)
	}
}

// the cubic approximation of a circle must stay within 1% of the radius
func TestCircleArcTolerance(t *testing.T) {
	const r = 40.
	icon := parseIcon(t, `<svg viewBox="0 0 100 100">
		<circle cx="50" cy="50" r="40"/>
	</svg>`)
	if len(icon.SVGPaths) != 1 {
		t.Fatal("expected a single path")
	}
	var checked int
	var cur cubicBezier
	for _, op := range icon.SVGPaths[0].Path {
		switch op := op.(type) {
		case MoveTo:
			cur[3] = fixed.Point26_6(op)
		case CubicTo:
			cur[0] = cur[3]
			cur[1], cur[2], cur[3] = op[0], op[1], op[2]
			for i := 0; i <= 16; i++ {
				x, y := cur.evaluateCurve(float64(i) / 16)
				dist := math.Hypot(x-50, y-50)
				if math.Abs(dist-r) > r/100 {
					t.Fatalf("point (%g, %g) deviates from the circle by %g", x, y, dist-r)
				}
				checked++
			}
		}
	}
	if checked == 0 {
		t.Fatal("no cubic segments found in circle approximation")
	}
}

func TestGeometryExtentAllOps(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 100 100">
		<path d="M10 10 L90 10 Q90 90 10 90 C10 50 10 50 10 10 Z"/>
	</svg>`)
	ext, ok := icon.geometryExtent()
	if !ok {
		t.Fatal("missing geometry")
	}
	if ext.X != 10 || ext.Y != 10 {
		t.Errorf("unexpected origin: %v", ext)
	}
	if ext.W < 70 || ext.W > 81 || ext.H < 70 || ext.H > 81 {
		t.Errorf("implausible extent: %v", ext)
	}
}

func TestMatrixComposition(t *testing.T) {
	m := Identity.Scale(2, 2).Translate(10, 10)
	x, y := m.transform(5, 5)
	if x != 30 || y != 30 {
		t.Errorf("got (%g, %g), want (30, 30)", x, y)
	}
	// the rightmost matrix applies first
	m = Identity.Translate(10, 10).Scale(2, 2)
	x, y = m.transform(5, 5)
	if x != 20 || y != 20 {
		t.Errorf("got (%g, %g), want (20, 20)", x, y)
	}
}
