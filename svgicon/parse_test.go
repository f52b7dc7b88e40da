package svgicon

import (
	"errors"
	"strings"
	"testing"
)

const rectIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
	<rect x="10" y="20" width="30" height="40" fill="#FF0000"/>
</svg>`

func parseIcon(t *testing.T, content string) *SvgIcon {
	t.Helper()
	icon, err := ReadIconStream(strings.NewReader(content), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	return icon
}

func TestParseBasicShapes(t *testing.T) {
	for _, content := range []string{
		rectIcon,
		`<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="10"/></svg>`,
		`<svg viewBox="0 0 24 24"><ellipse cx="12" cy="12" rx="10" ry="5"/></svg>`,
		`<svg viewBox="0 0 24 24"><line x1="2" y1="2" x2="22" y2="22" stroke="black"/></svg>`,
		`<svg viewBox="0 0 24 24"><polyline points="2,2 12,22 22,2" stroke="blue" fill="none"/></svg>`,
		`<svg viewBox="0 0 24 24"><polygon points="2,2 12,22 22,2"/></svg>`,
		`<svg viewBox="0 0 24 24"><path d="M2 2 L22 2 Q22 22 2 22 C2 12 2 12 2 2 Z"/></svg>`,
		`<svg viewBox="0 0 24 24"><path d="M2 12 A10 10 0 1 1 22 12"/></svg>`,
		`<svg viewBox="0 0 24 24"><rect width="20" height="20" rx="4" ry="2"/></svg>`,
		`<svg viewBox="0 0 24 24"><path d="m2 2l20 0 0 20z m4-1 2 2"/></svg>`,
		`<svg viewBox="0 0 24 24"><path d="M2 2C4 4 6 4 8 2S12 0 14 2T18 2t2 0"/></svg>`,
	} {
		icon := parseIcon(t, content)
		if len(icon.SVGPaths) == 0 {
			t.Errorf("no geometry parsed from %s", content)
		}
	}
}

func TestParseViewBox(t *testing.T) {
	icon := parseIcon(t, rectIcon)
	if icon.ViewBox != (Bounds{0, 0, 100, 100}) {
		t.Errorf("unexpected viewbox %v", icon.ViewBox)
	}

	icon = parseIcon(t, `<svg width="24px" height="12px"><rect width="4" height="4"/></svg>`)
	if icon.ViewBox != (Bounds{0, 0, 24, 12}) {
		t.Errorf("unexpected viewbox %v", icon.ViewBox)
	}
}

func TestMalformedSource(t *testing.T) {
	for _, content := range []string{
		"",
		"this is not svg at all",
		`<svg viewBox="0 0 24 24"><rect width="4" height="4"`,
		`<svg viewBox="0 0 24 24"><path d="M banana"/></svg>`,
		`<svg viewBox="0 0 24 24"><path d="M2 2 L4"/></svg>`,
		`<svg viewBox="0 0 24 24"><rect width="huge" height="4"/></svg>`,
	} {
		_, err := ReadIconStream(strings.NewReader(content), StrictErrorMode)
		var icErr *Error
		if !errors.As(err, &icErr) || icErr.Kind != MalformedSource {
			t.Errorf("expected malformed source error for %q, got %v", content, err)
		}
	}
}

func TestUnsupportedElement(t *testing.T) {
	for _, content := range []string{
		`<svg viewBox="0 0 24 24"><text x="2" y="2">hi</text></svg>`,
		`<svg viewBox="0 0 24 24"><filter id="f"/><rect width="4" height="4"/></svg>`,
		`<svg viewBox="0 0 24 24"><linearGradient id="g"/><rect width="4" height="4"/></svg>`,
		`<svg viewBox="0 0 24 24"><rect width="4" height="4" fill="url(#g)"/></svg>`,
		`<svg viewBox="0 0 24 24"><rect width="4" height="4" stroke="url(#g)"/></svg>`,
	} {
		_, err := ReadIconStream(strings.NewReader(content), StrictErrorMode)
		var icErr *Error
		if !errors.As(err, &icErr) || icErr.Kind != UnsupportedElement {
			t.Errorf("expected unsupported element error for %q, got %v", content, err)
		}

		// the lenient mode skips the construct instead
		if _, err := ReadIconStream(strings.NewReader(content), IgnoreErrorMode); err != nil {
			t.Errorf("ignore mode should not fail on %q: %v", content, err)
		}
	}
}

func TestStyleInheritance(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 24 24">
		<g fill="#00FF00" stroke="blue" stroke-width="3">
			<rect width="4" height="4"/>
			<rect width="4" height="4" fill="none"/>
		</g>
	</svg>`)
	if len(icon.SVGPaths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(icon.SVGPaths))
	}
	first := icon.SVGPaths[0].Style
	if first.FillerColor != NewPlainColor(0, 0xFF, 0, 0xFF) {
		t.Errorf("group fill not inherited: %v", first.FillerColor)
	}
	if first.LinerColor != NewPlainColor(0, 0, 0xFF, 0xFF) {
		t.Errorf("group stroke not inherited: %v", first.LinerColor)
	}
	if first.LineWidth != 3 {
		t.Errorf("group stroke-width not inherited: %v", first.LineWidth)
	}
	if second := icon.SVGPaths[1].Style; second.FillerColor != nil {
		t.Errorf("fill none should disable filling, got %v", second.FillerColor)
	}
}

func TestStyleAttribute(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 24 24">
		<rect width="4" height="4" style="fill:#102030;fill-opacity:0.5"/>
	</svg>`)
	style := icon.SVGPaths[0].Style
	if style.FillerColor != NewPlainColor(0x10, 0x20, 0x30, 0xFF) {
		t.Errorf("css style fill not applied: %v", style.FillerColor)
	}
	if style.FillOpacity != 0.5 {
		t.Errorf("css style fill-opacity not applied: %v", style.FillOpacity)
	}
}

// two renditions of the same nested transforms must resolve to the
// same geometry
func TestTransformComposition(t *testing.T) {
	nested := parseIcon(t, `<svg viewBox="0 0 100 100">
		<g transform="scale(2)">
			<g transform="translate(10,10)">
				<rect x="5" y="5" width="10" height="10"/>
			</g>
		</g>
	</svg>`)
	flat := parseIcon(t, `<svg viewBox="0 0 100 100">
		<g transform="matrix(2 0 0 2 20 20)">
			<rect x="5" y="5" width="10" height="10"/>
		</g>
	</svg>`)

	extNested, ok1 := nested.geometryExtent()
	extFlat, ok2 := flat.geometryExtent()
	if !ok1 || !ok2 {
		t.Fatal("missing geometry")
	}
	if extNested != extFlat {
		t.Errorf("nested %v != flat %v", extNested, extFlat)
	}
	if want := (Bounds{30, 30, 20, 20}); extNested != want {
		t.Errorf("got %v, want %v", extNested, want)
	}
}

func TestUseAndDefs(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 24 24">
		<defs><rect id="unit" width="4" height="4"/></defs>
		<use href="#unit" x="10" y="10"/>
	</svg>`)
	if len(icon.SVGPaths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(icon.SVGPaths))
	}
	ext, _ := icon.geometryExtent()
	if ext != (Bounds{10, 10, 4, 4}) {
		t.Errorf("use offset not applied: %v", ext)
	}
}

func TestTitleAndDesc(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 24 24">
		<title>Disk</title><desc>A disk icon</desc>
		<rect width="4" height="4"/>
	</svg>`)
	if len(icon.Titles) != 1 || icon.Titles[0] != "Disk" {
		t.Errorf("unexpected titles %v", icon.Titles)
	}
	if len(icon.Descriptions) != 1 || icon.Descriptions[0] != "A disk icon" {
		t.Errorf("unexpected descriptions %v", icon.Descriptions)
	}
}
