package drawlib

// Serialization of a Document to the draw.io library format:
// an <mxlibrary> element wrapping a JSON array of entries, each
// entry carrying a deflate+base64 compressed mxGraphModel.

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// libraryEntry is the JSON shape of one library item. The fields are
// declared in the key order draw.io emits (alphabetical).
type libraryEntry struct {
	Aspect string  `json:"aspect"`
	H      float64 `json:"h"`
	Title  string  `json:"title"`
	W      float64 `json:"w"`
	XML    string  `json:"xml"`
}

// cellStyleFormat is the style of the mxCell carrying a stencil shape.
const cellStyleFormat = "shape=stencil(%s);verticalLabelPosition=bottom;labelBackgroundColor=default;verticalAlign=top;aspect=fixed;"

// Bytes serializes the document. The output only depends on the
// document content.
func (d *Document) Bytes() ([]byte, error) {
	entries := make([]libraryEntry, len(d.Shapes))
	for i, s := range d.Shapes {
		entry, err := buildEntry(s)
		if err != nil {
			return nil, fmt.Errorf("encoding shape %s: %w", s.Name, err)
		}
		entries[i] = entry
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.WriteString("<mxlibrary>")
	b.Write(payload)
	b.WriteString("</mxlibrary>")
	return b.Bytes(), nil
}

// Encode serializes the document to w.
func (d *Document) Encode(w io.Writer) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func buildEntry(s Shape) (libraryEntry, error) {
	stencilPayload, err := compress(s.Stencil)
	if err != nil {
		return libraryEntry{}, err
	}
	style := fmt.Sprintf(cellStyleFormat, stencilPayload)
	model := fmt.Sprintf(`<mxGraphModel><root><mxCell id="0"/><mxCell id="1" parent="0"/>`+
		`<mxCell id="2" value="%s" style="%s" vertex="1" parent="1">`+
		`<mxGeometry width="%s" height="%s" as="geometry"/></mxCell></root></mxGraphModel>`,
		escapeAttr(s.Title), escapeAttr(style), fmtDim(s.W), fmtDim(s.H))
	compressedModel, err := compress([]byte(model))
	if err != nil {
		return libraryEntry{}, err
	}
	return libraryEntry{
		Aspect: "fixed",
		H:      s.H,
		Title:  s.Title,
		W:      s.W,
		XML:    compressedModel,
	}, nil
}

// compress applies the draw.io payload encoding: URI escaping, raw
// deflate, then standard base64. Graph.decompress reverses the three
// steps, decoding the URI escapes after inflating.
func compress(data []byte) (string, error) {
	var b bytes.Buffer
	zw, err := flate.NewWriter(&b, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := zw.Write([]byte(uriEncode(data))); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b.Bytes()), nil
}

const upperhex = "0123456789ABCDEF"

// uriEncode mirrors JavaScript's encodeURIComponent.
func uriEncode(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		if isUnreservedURI(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}

// isUnreservedURI reports whether encodeURIComponent leaves c as is.
func isUnreservedURI(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func fmtDim(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func escapeAttr(s string) string {
	var b bytes.Buffer
	xml.EscapeText(&b, []byte(s)) // the error is always nil on a bytes.Buffer
	return b.String()
}
