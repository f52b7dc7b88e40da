package svgraster

import (
	"image/color"
	"strings"
	"testing"

	"github.com/ry0y4n/vscode-diagrams-icon-builder/svgicon"
)

func TestRasterFilledRect(t *testing.T) {
	const content = `<svg viewBox="0 0 40 40">
		<rect x="10" y="10" width="20" height="20" fill="#FF0000"/>
	</svg>`
	img, err := RasterSVGIconToImage(strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("unexpected image size %v", b)
	}

	if got := img.RGBAAt(20, 20); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("center pixel not filled: %v", got)
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("outside pixel should be clear: %v", got)
	}
}

func TestRasterStroke(t *testing.T) {
	const content = `<svg viewBox="0 0 40 40">
		<line x1="0" y1="20" x2="40" y2="20" stroke="#0000FF" stroke-width="4"/>
	</svg>`
	img, err := RasterSVGIconToImage(strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(20, 20); got.B == 0 || got.A == 0 {
		t.Errorf("stroke pixel not painted: %v", got)
	}
	if got := img.RGBAAt(20, 5); got.A != 0 {
		t.Errorf("pixel far from the stroke should be clear: %v", got)
	}
}

// an unfilled shape must only paint its outline: the fill coverage
// accumulated alongside the stroke must never leak into the stroke pass
func TestRasterStrokeOnlyCircle(t *testing.T) {
	const content = `<svg viewBox="0 0 40 40">
		<circle cx="20" cy="20" r="15" fill="none" stroke="black" stroke-width="2"/>
	</svg>`
	img, err := RasterSVGIconToImage(strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(20, 20); got.A != 0 {
		t.Errorf("circle interior should be clear: %v", got)
	}
	if got := img.RGBAAt(20, 5); got.A == 0 {
		t.Error("circle outline not painted")
	}
	if got := img.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("pixel outside the circle should be clear: %v", got)
	}
}

// a view box with a non zero origin is mapped onto the image
func TestRasterOffsetViewBox(t *testing.T) {
	const content = `<svg viewBox="10 10 40 40">
		<rect x="10" y="10" width="40" height="40" fill="#FF0000"/>
	</svg>`
	img, err := RasterSVGIconToImage(strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("unexpected image size %v", b)
	}
	for _, p := range [][2]int{{2, 2}, {20, 20}, {37, 37}} {
		if got := img.RGBAAt(p[0], p[1]); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
			t.Errorf("pixel (%d, %d) not filled: %v", p[0], p[1], got)
		}
	}
}

func TestRasterNormalizedIcon(t *testing.T) {
	icon, err := svgicon.ReadIconStream(strings.NewReader(
		`<svg viewBox="0 0 100 100"><rect x="10" y="10" width="40" height="40"/></svg>`),
		svgicon.StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	scale, err := icon.Normalize(80)
	if err != nil {
		t.Fatal(err)
	}
	img := RenderIcon(icon, 80, 80, scale)
	if got := img.RGBAAt(40, 40); got.A != 0xFF {
		t.Errorf("normalized icon should cover the target: %v", got)
	}
}

// stroke widths are declared in source units: rendering a normalized
// icon must scale them along with the geometry
func TestRasterNormalizedStrokeWidth(t *testing.T) {
	icon, err := svgicon.ReadIconStream(strings.NewReader(
		`<svg viewBox="0 0 100 100">
			<rect x="10" y="10" width="40" height="40" fill="none" stroke="black" stroke-width="2"/>
		</svg>`), svgicon.StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	scale, err := icon.Normalize(80)
	if err != nil {
		t.Fatal(err)
	}
	if scale != 2 {
		t.Fatalf("expected scale 2, got %g", scale)
	}
	img := RenderIcon(icon, 80, 80, scale)
	// the top edge sits at y=0; a 2 unit stroke scaled by 2 covers
	// two full pixel rows inside the image
	if got := img.RGBAAt(40, 1); got.A != 0xFF {
		t.Errorf("scaled stroke should cover row 1: %v", got)
	}
	if got := img.RGBAAt(40, 40); got.A != 0 {
		t.Errorf("unfilled interior should be clear: %v", got)
	}
}
