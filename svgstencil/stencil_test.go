package svgstencil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ry0y4n/vscode-diagrams-icon-builder/svgicon"
)

func TestFmtNum(t *testing.T) {
	for _, test := range []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{80, "80"},
		{2.5, "2.5"},
		{0.125, "0.13"},
		{1.999, "2"},
		{-3.14159, "-3.14"},
		{-0.001, "0"},
		{33.333333, "33.33"},
	} {
		if got := fmtNum(test.in); got != test.want {
			t.Errorf("fmtNum(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

func parseAndEncode(t *testing.T, content string, name string) []byte {
	t.Helper()
	icon, err := svgicon.ReadIconStream(strings.NewReader(content), svgicon.StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	scale, err := icon.Normalize(80)
	if err != nil {
		t.Fatal(err)
	}
	w := NewWriter(scale)
	icon.Draw(w, 1.0)
	return w.Shape(name, icon.ViewBox.W, icon.ViewBox.H)
}

func TestEncodeRect(t *testing.T) {
	got := parseAndEncode(t, `<svg viewBox="0 0 100 100">
		<rect x="10" y="10" width="40" height="20" fill="#FF0000"/>
	</svg>`, "block")

	want := `<shape aspect="fixed" h="40" name="block" strokewidth="inherit" w="80">` +
		`<connections/><foreground>` +
		`<fillcolor color="#FF0000"/>` +
		`<path><move x="0" y="0"/><line x="80" y="0"/><line x="80" y="40"/><line x="0" y="40"/><close/></path>` +
		`<fill/>` +
		`</foreground></shape>`
	if string(got) != want {
		t.Errorf("unexpected stencil:\ngot  %s\nwant %s", got, want)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	const content = `<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="10"/><path d="M2 2q10 10 20 0z" fill="none" stroke="blue"/></svg>`
	a := parseAndEncode(t, content, "icon")
	b := parseAndEncode(t, content, "icon")
	if !bytes.Equal(a, b) {
		t.Error("encoding the same icon twice produced different bytes")
	}
}

func TestEncodeStroke(t *testing.T) {
	got := string(parseAndEncode(t, `<svg viewBox="0 0 100 100">
		<rect x="0" y="0" width="40" height="40" fill="none" stroke="#00FF00" stroke-width="2" stroke-opacity="0.5"/>
	</svg>`, "frame"))

	for _, fragment := range []string{
		`<strokecolor color="#00FF00"/>`,
		`<strokewidth width="4"/>`, // scaled by 80/40
		`<strokealpha alpha="0.5"/>`,
		`<stroke/>`,
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("missing %s in %s", fragment, got)
		}
	}
	if strings.Contains(got, "<fill") {
		t.Errorf("unexpected fill op in %s", got)
	}
}

// shapes with no visible paint still carry their geometry
func TestEncodeInvisibleShape(t *testing.T) {
	got := string(parseAndEncode(t, `<svg viewBox="0 0 100 100">
		<rect x="0" y="0" width="40" height="40" fill="none"/>
	</svg>`, "ghost"))

	if !strings.Contains(got, "<path>") || !strings.Contains(got, "<close/>") {
		t.Errorf("geometry missing from invisible shape: %s", got)
	}
	for _, painted := range []string{"<fill/>", "<stroke/>", "<fillstroke/>"} {
		if strings.Contains(got, painted) {
			t.Errorf("unexpected paint op %s in %s", painted, got)
		}
	}
}

func TestEncodeFillStroke(t *testing.T) {
	got := string(parseAndEncode(t, `<svg viewBox="0 0 100 100">
		<rect x="0" y="0" width="40" height="40" fill="yellow" stroke="black"/>
	</svg>`, "both"))
	if !strings.Contains(got, "<fillstroke/>") {
		t.Errorf("expected a combined paint op in %s", got)
	}
}

func TestEscapedShapeName(t *testing.T) {
	w := NewWriter(1)
	got := string(w.Shape(`a<b&"c"`, 10, 10))
	if strings.Contains(got, `name="a<b`) {
		t.Errorf("shape name not escaped: %s", got)
	}
	if !strings.Contains(got, "a&lt;b&amp;") {
		t.Errorf("expected escaped name in %s", got)
	}
}
