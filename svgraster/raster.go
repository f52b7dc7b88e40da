// Package svgraster implements a raster backend to render parsed SVG
// icons, by wrapping rasterx.
package svgraster

import (
	"image"
	"io"
	"math"

	"github.com/ry0y4n/vscode-diagrams-icon-builder/svgicon"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgicon.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher      *rasterx.Dasher // to avoid shared state
	filler      *rasterx.Filler // we use separated instances
	strokeScale float64
	style       svgicon.PathStyle
}

// NewRenderer returns a renderer drawing onto img.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
// Each drawer gets its own scanner: both receive every geometry op,
// so a shared scanner would mix fill and stroke coverage.
// strokeScale is the factor applied to stroke widths, which are
// expressed in source coordinates while the geometry is already
// scaled; pass the scale returned by Normalize, or <= 0 for 1.
func NewRenderer(width, height int, img *image.RGBA, strokeScale float64) *Renderer {
	if strokeScale <= 0 {
		strokeScale = 1
	}
	return &Renderer{
		dasher:      rasterx.NewDasher(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
		filler:      rasterx.NewFiller(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
		strokeScale: strokeScale,
	}
}

// RenderIcon rasterizes a parsed icon into a width x height image.
// strokeScale is forwarded to NewRenderer.
func RenderIcon(icon *svgicon.SvgIcon, width, height int, strokeScale float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	icon.Draw(NewRenderer(width, height, img, strokeScale), 1.0)
	return img
}

// RasterSVGIconToImage parses and renders the icon at the size of its
// view box, and returns the image.
func RasterSVGIconToImage(icon io.Reader) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	w := int(math.Ceil(parsedIcon.ViewBox.W))
	h := int(math.Ceil(parsedIcon.ViewBox.H))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	// maps view boxes with a non zero origin onto the image
	parsedIcon.SetTarget(0, 0, float64(w), float64(h))
	return RenderIcon(parsedIcon, w, h, 1), nil
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgicon.Round:     rasterx.Round,
		svgicon.Bevel:     rasterx.Bevel,
		svgicon.Miter:     rasterx.Miter,
		svgicon.MiterClip: rasterx.MiterClip,
		svgicon.Arc:       rasterx.Arc,
		svgicon.ArcClip:   rasterx.ArcClip,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgicon.ButtCap:      rasterx.ButtCap,
		svgicon.SquareCap:    rasterx.SquareCap,
		svgicon.RoundCap:     rasterx.RoundCap,
		svgicon.CubicCap:     rasterx.CubicCap,
		svgicon.QuadraticCap: rasterx.QuadraticCap,
	}

	gapToFunc = [...]rasterx.GapFunc{
		svgicon.FlatGap:      rasterx.FlatGap,
		svgicon.RoundGap:     rasterx.RoundGap,
		svgicon.CubicGap:     rasterx.CubicGap,
		svgicon.QuadraticGap: rasterx.QuadraticGap,
	}
)

// SetStyle resets both backends for a new styled path.
// Draw has already resolved the Nil cap and gap values.
func (rd *Renderer) SetStyle(style svgicon.PathStyle) {
	rd.style = style
	rd.filler.Clear()
	rd.filler.SetWinding(style.UseNonZeroWinding)
	rd.dasher.Clear()
	if style.LinerColor != nil {
		rd.dasher.SetStroke(
			fixed.Int26_6(style.LineWidth*rd.strokeScale*64), style.Join.MiterLimit,
			capToFunc[style.Join.LeadLineCap], capToFunc[style.Join.TrailLineCap],
			gapToFunc[style.Join.LineGap], joinToJoin[style.Join.LineJoin],
			style.Dash.Dash, style.Dash.DashOffset,
		)
	}
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	rd.filler.Start(a)
	rd.dasher.Start(a)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	rd.filler.Line(b)
	rd.dasher.Line(b)
}

func (rd *Renderer) QuadBezier(b, c fixed.Point26_6) {
	rd.filler.QuadBezier(b, c)
	rd.dasher.QuadBezier(b, c)
}

func (rd *Renderer) CubeBezier(b, c, d fixed.Point26_6) {
	rd.filler.CubeBezier(b, c, d)
	rd.dasher.CubeBezier(b, c, d)
}

func (rd *Renderer) Stop(closeLoop bool) {
	rd.filler.Stop(closeLoop)
	rd.dasher.Stop(closeLoop)
}

// Paint rasterizes the accumulated path, fill first, then stroke.
func (rd *Renderer) Paint() {
	if c, ok := rd.style.FillerColor.(svgicon.PlainColor); ok {
		rd.filler.SetColor(rasterx.ApplyOpacity(c, rd.style.FillOpacity))
		rd.filler.Draw()
	}
	if c, ok := rd.style.LinerColor.(svgicon.PlainColor); ok {
		rd.dasher.SetColor(rasterx.ApplyOpacity(c, rd.style.LineOpacity))
		rd.dasher.Draw()
	}
	rd.filler.SetWinding(true) // default is true
}
