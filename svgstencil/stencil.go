// Package svgstencil encodes parsed SVG icons into the mxGraph
// stencil XML grammar understood by draw.io custom shapes.
// It implements svgicon.Driver: the resolved geometry of the icon is
// replayed as stencil drawing operations, so the output carries no
// trace of the source markup.
package svgstencil

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/ry0y4n/vscode-diagrams-icon-builder/svgicon"
	"golang.org/x/image/math/fixed"
)

var _ svgicon.Driver = (*Writer)(nil) // assert interface conformance

// Writer accumulates the foreground operations of a stencil.
// Use one Writer per icon: feed it to SvgIcon.Draw, then call Shape.
type Writer struct {
	fg          bytes.Buffer
	style       svgicon.PathStyle
	strokeScale float64
	inPath      bool
}

// NewWriter returns an empty stencil writer. strokeScale is the
// factor applied to stroke widths, which are expressed in source
// coordinates while the geometry reaching the writer is already
// scaled; pass the scale returned by Normalize, or <= 0 for 1.
func NewWriter(strokeScale float64) *Writer {
	if strokeScale <= 0 {
		strokeScale = 1
	}
	return &Writer{strokeScale: strokeScale}
}

// SetStyle starts a new styled path.
func (w *Writer) SetStyle(style svgicon.PathStyle) {
	w.style = style
}

// openPath emits the style ops and the path opening tag once per
// styled path, before the first geometry op.
func (w *Writer) openPath() {
	if w.inPath {
		return
	}
	w.writeStyleOps()
	w.fg.WriteString("<path>")
	w.inPath = true
}

func (w *Writer) writeStyleOps() {
	if c, ok := w.style.FillerColor.(svgicon.PlainColor); ok {
		fmt.Fprintf(&w.fg, `<fillcolor color="%s"/>`, hexColor(c))
		if a := combinedAlpha(c, w.style.FillOpacity); a != 1 {
			fmt.Fprintf(&w.fg, `<fillalpha alpha="%s"/>`, fmtNum(a))
		}
	}
	if c, ok := w.style.LinerColor.(svgicon.PlainColor); ok {
		fmt.Fprintf(&w.fg, `<strokecolor color="%s"/>`, hexColor(c))
		fmt.Fprintf(&w.fg, `<strokewidth width="%s"/>`, fmtNum(w.style.LineWidth*w.strokeScale))
		if a := combinedAlpha(c, w.style.LineOpacity); a != 1 {
			fmt.Fprintf(&w.fg, `<strokealpha alpha="%s"/>`, fmtNum(a))
		}
	}
}

// Start starts a new subpath at the given point.
func (w *Writer) Start(a fixed.Point26_6) {
	w.openPath()
	fmt.Fprintf(&w.fg, `<move x="%s" y="%s"/>`, num26_6(a.X), num26_6(a.Y))
}

// Line adds a line from the current point to b.
func (w *Writer) Line(b fixed.Point26_6) {
	w.openPath()
	fmt.Fprintf(&w.fg, `<line x="%s" y="%s"/>`, num26_6(b.X), num26_6(b.Y))
}

// QuadBezier adds a quadratic bezier curve to the path.
func (w *Writer) QuadBezier(b, c fixed.Point26_6) {
	w.openPath()
	fmt.Fprintf(&w.fg, `<quad x1="%s" y1="%s" x2="%s" y2="%s"/>`,
		num26_6(b.X), num26_6(b.Y), num26_6(c.X), num26_6(c.Y))
}

// CubeBezier adds a cubic bezier curve to the path.
func (w *Writer) CubeBezier(b, c, d fixed.Point26_6) {
	w.openPath()
	fmt.Fprintf(&w.fg, `<curve x1="%s" y1="%s" x2="%s" y2="%s" x3="%s" y3="%s"/>`,
		num26_6(b.X), num26_6(b.Y), num26_6(c.X), num26_6(c.Y), num26_6(d.X), num26_6(d.Y))
}

// Stop closes the current subpath when closeLoop is true.
func (w *Writer) Stop(closeLoop bool) {
	if closeLoop && w.inPath {
		w.fg.WriteString("<close/>")
	}
}

// Paint closes the current path and emits its paint operation,
// according to the fill and stroke colors of the style. A path with
// both colors set to none is kept, without paint op, so that the
// geometry survives round trips.
func (w *Writer) Paint() {
	if !w.inPath {
		return
	}
	w.fg.WriteString("</path>")
	w.inPath = false
	_, fill := w.style.FillerColor.(svgicon.PlainColor)
	_, stroke := w.style.LinerColor.(svgicon.PlainColor)
	switch {
	case fill && stroke:
		w.fg.WriteString("<fillstroke/>")
	case fill:
		w.fg.WriteString("<fill/>")
	case stroke:
		w.fg.WriteString("<stroke/>")
	}
}

// Shape wraps the accumulated operations into a complete stencil
// element of the given name and dimensions.
func (w *Writer) Shape(name string, width, height float64) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<shape aspect="fixed" h="%s" name="%s" strokewidth="inherit" w="%s">`,
		fmtNum(height), escapeAttr(name), fmtNum(width))
	b.WriteString("<connections/><foreground>")
	b.Write(w.fg.Bytes())
	b.WriteString("</foreground></shape>")
	return b.Bytes()
}

// fmtNum formats a coordinate with two decimals of precision,
// trailing zeros trimmed, so identical geometry always encodes to
// identical bytes.
func fmtNum(f float64) string {
	f = math.Round(f*100) / 100
	if f == 0 {
		f = 0 // drop negative zero
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func num26_6(v fixed.Int26_6) string {
	return fmtNum(float64(v) / 64)
}

func hexColor(c svgicon.PlainColor) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// combinedAlpha folds the alpha channel of the color into the style
// opacity, rounded like any other stencil number.
func combinedAlpha(c svgicon.PlainColor, opacity float64) float64 {
	a := opacity * float64(c.A) / 255
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return math.Round(a*100) / 100
}

func escapeAttr(s string) string {
	var b bytes.Buffer
	xml.EscapeText(&b, []byte(s)) // the error is always nil on a bytes.Buffer
	return b.String()
}
