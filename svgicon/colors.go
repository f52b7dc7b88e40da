package svgicon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Pattern groups the possible paint sources of a path.
// The only concrete type is PlainColor; a nil Pattern means 'none'.
type Pattern interface {
	isPattern()
}

// PlainColor is a solid color paint.
type PlainColor struct {
	color.NRGBA
}

// NewPlainColor returns an opaque color from its components.
func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{NRGBA: color.NRGBA{R: r, G: g, B: b, A: a}}
}

func (PlainColor) isPattern() {}

// optionalColor distinguishes a color from the 'none' keyword
type optionalColor struct {
	color PlainColor
	valid bool
}

// asPattern returns nil for 'none'
func (o optionalColor) asPattern() Pattern {
	if !o.valid {
		return nil
	}
	return o.color
}

// parseColorComponent accepts a byte value or a percentage
func parseColorComponent(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		p, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return 0, err
		}
		return uint8(p / 100 * 255), nil
	}
	n, err := strconv.ParseUint(v, 10, 8)
	return uint8(n), err
}

// parseSVGColor parses an SVG color string in all forms
// including all SVG1.1 names, obtained from the colornames package
func parseSVGColor(colorStr string) (optionalColor, error) {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	switch v {
	case "none", "transparent":
		// nil signals that the function (fill or stroke) is off
		return optionalColor{}, nil
	case "currentcolor", "inherit":
		// not tracked; default to black as user agents do
		return optionalColor{color: NewPlainColor(0, 0, 0, 0xff), valid: true}, nil
	}
	switch {
	case strings.HasPrefix(v, "#"):
		hex := v[1:]
		switch len(hex) {
		case 3:
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		case 6:
		default:
			return optionalColor{}, fmt.Errorf("invalid hex color %q", colorStr)
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return optionalColor{}, err
		}
		c := NewPlainColor(uint8(n>>16), uint8(n>>8), uint8(n), 0xff)
		return optionalColor{color: c, valid: true}, nil
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"),
		strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		inner := v[strings.Index(v, "(")+1 : len(v)-1]
		values := splitOnCommaOrSpace(inner)
		if len(values) != 3 && len(values) != 4 {
			return optionalColor{}, fmt.Errorf("invalid rgb color %q", colorStr)
		}
		var comps [3]uint8
		for i := 0; i < 3; i++ {
			comp, err := parseColorComponent(values[i])
			if err != nil {
				return optionalColor{}, err
			}
			comps[i] = comp
		}
		alpha := uint8(0xff)
		if len(values) == 4 {
			a, err := strconv.ParseFloat(values[3], 64)
			if err != nil {
				return optionalColor{}, err
			}
			if a < 0 {
				a = 0
			} else if a > 1 {
				a = 1
			}
			alpha = uint8(a*255 + 0.5)
		}
		c := NewPlainColor(comps[0], comps[1], comps[2], alpha)
		return optionalColor{color: c, valid: true}, nil
	}
	if c, ok := colornames.Map[v]; ok {
		return optionalColor{color: PlainColor{NRGBA: color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}}, valid: true}, nil
	}
	return optionalColor{}, fmt.Errorf("unknown color %q", colorStr)
}
