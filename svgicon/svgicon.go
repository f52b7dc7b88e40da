// Package svgicon parses SVG icon files into an abstract geometry
// representation, which can then be consumed by drawing or encoding
// drivers (see svgraster and svgstencil).
package svgicon

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// Bounds defines a bounding box, such as a viewport
// or a path extent.
type Bounds struct{ X, Y, W, H float64 }

// SvgPath binds a style to a path
type SvgPath struct {
	Path  Path
	Style PathStyle
}

// SvgIcon holds data from parsed SVGs.
// See the `Draw` and `Normalize` methods to use it.
type SvgIcon struct {
	ViewBox      Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here
	SVGPaths     []SvgPath
	Transform    Matrix2D

	Width, Height string // top level width and height attributes

	defs map[string][]definition
}

// ReadIconStream reads an icon from the given io.Reader.
// Only a subset of SVG is supported; errMode determines whether an
// element outside this subset is ignored, logged, or aborts the parse.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*SvgIcon, error) {
	icon := &SvgIcon{defs: make(map[string][]definition), Transform: Identity}
	cursor := &iconCursor{styleStack: []PathStyle{DefaultStyle}, icon: icon}
	cursor.errorMode = errMode
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, malformed(nil, "invalid svg xml icon")
				}
				break
			}
			return icon, malformed(err, "invalid svg xml icon")
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			err = cursor.pushStyle(se.Attr)
			if err != nil {
				return icon, asIconError(err)
			}
			err = cursor.readStartElement(se)
			if err != nil {
				return icon, asIconError(err)
			}
		case xml.EndElement:
			// pop style
			cursor.styleStack = cursor.styleStack[:len(cursor.styleStack)-1]
			switch se.Name.Local {
			case "g":
				if cursor.inDefs {
					cursor.currentDef = append(cursor.currentDef, definition{
						Tag: "endg",
					})
				}
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			case "defs":
				if len(cursor.currentDef) > 0 {
					cursor.icon.defs[cursor.currentDef[0].ID] = cursor.currentDef
					cursor.currentDef = make([]definition, 0)
				}
				cursor.inDefs = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				icon.Descriptions[len(icon.Descriptions)-1] += string(se)
			}
		}
	}
	return icon, nil
}

// ReadIconBytes parses an in-memory SVG document.
func ReadIconBytes(raw []byte, errMode ErrorMode) (*SvgIcon, error) {
	return ReadIconStream(bytes.NewReader(raw), errMode)
}

// ReadIcon reads the icon from the named file.
func ReadIcon(iconFile string, errMode ErrorMode) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}
