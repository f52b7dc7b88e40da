// Package drawlib assembles SVG icons into draw.io custom library
// documents. Each icon is parsed, normalized to a common size and
// re-encoded as an mxGraph stencil shape; the shapes are then packed
// into a single <mxlibrary> document.
//
// Conversion is failure tolerant: a bad icon is reported and skipped,
// it never aborts the batch. Only an empty batch is a fatal error.
package drawlib

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ry0y4n/vscode-diagrams-icon-builder/svgicon"
	"github.com/ry0y4n/vscode-diagrams-icon-builder/svgstencil"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMaxSize is the length of the longer side of a converted
// shape when Options does not specify one.
const DefaultMaxSize = 80.

// ErrEmptyBatch is returned by Convert when no input icon is given.
var ErrEmptyBatch = errors.New("no svg icons to convert")

// Icon is one raw SVG input, identified by its name (typically the
// file stem).
type Icon struct {
	Name string
	Raw  []byte
}

// Options parametrize a conversion batch.
type Options struct {
	// Title names the resulting library; informational only, the
	// mxlibrary format has no title field.
	Title string
	// MaxSize is the target length of the longer bounding box side
	// of each shape. Zero means DefaultMaxSize.
	MaxSize float64
}

// Shape is one converted icon.
type Shape struct {
	Name    string  // unique within the document
	Title   string  // display label, derived from Name
	Stencil []byte  // stencil XML
	W, H    float64 // placement size of the shape
}

// Failure records an icon that could not be converted.
type Failure struct {
	Name string
	Err  error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Name, f.Err)
}

// Document is an assembled library, ready to be serialized.
type Document struct {
	Title  string
	Shapes []Shape
}

// Convert builds a library document out of the given icons.
// Icons which cannot be converted are collected in the returned
// failure list, in input order, and left out of the document; the
// error is non nil only when the whole batch is unusable.
// The same input always yields the same document, byte for byte.
func Convert(icons []Icon, opts Options) (*Document, []Failure, error) {
	size := opts.MaxSize
	if size == 0 {
		size = DefaultMaxSize
	}
	if size < 0 {
		return nil, nil, fmt.Errorf("invalid max size %g", size)
	}
	if len(icons) == 0 {
		return nil, nil, ErrEmptyBatch
	}

	doc := &Document{Title: opts.Title}
	var failures []Failure
	seen := make(map[string]bool, len(icons))
	for _, ic := range icons {
		icon, err := svgicon.ReadIconBytes(ic.Raw, svgicon.StrictErrorMode)
		if err != nil {
			failures = append(failures, Failure{Name: ic.Name, Err: err})
			continue
		}
		scale, err := icon.Normalize(size)
		if err != nil {
			failures = append(failures, Failure{Name: ic.Name, Err: err})
			continue
		}

		// names become definitive only once the icon is known good,
		// so failed icons never consume a suffix
		name := uniqueName(ic.Name, seen)
		wr := svgstencil.NewWriter(scale)
		icon.Draw(wr, 1.0)
		w := clampDim(round2(icon.ViewBox.W))
		h := clampDim(round2(icon.ViewBox.H))
		doc.Shapes = append(doc.Shapes, Shape{
			Name:    name,
			Title:   TitleFromName(name),
			Stencil: wr.Shape(name, w, h),
			W:       w,
			H:       h,
		})
	}
	return doc, failures, nil
}

// uniqueName returns name, or name suffixed with the first free
// numeric suffix (name-2, name-3, ...), and marks it as taken.
func uniqueName(name string, seen map[string]bool) string {
	unique := name
	for n := 2; seen[unique]; n++ {
		unique = name + "-" + strconv.Itoa(n)
	}
	seen[unique] = true
	return unique
}

// TitleFromName derives a display label from an icon name:
// dashes and underscores become spaces, words are title cased.
func TitleFromName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == '-' || r == '_' {
			r = ' '
		}
		out = append(out, r)
	}
	return cases.Title(language.English).String(string(out))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// clampDim keeps degenerate shapes selectable in the editor.
func clampDim(f float64) float64 {
	if f < 1 {
		return 1
	}
	return f
}
