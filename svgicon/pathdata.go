package svgicon

// Implements the parsing of the 'd' attribute of path elements.

import (
	"math"
	"strconv"
	"unicode"
)

// pathCursor tracks the pen while a path data string is compiled
// into basic operations.
type pathCursor struct {
	path                   Path
	points                 []float64
	placeX, placeY         float64 // current pen position
	curX, curY             float64 // offset applied by use elements
	cntlPtX, cntlPtY       float64 // last control point, for smooth commands
	pathStartX, pathStartY float64
	errorMode              ErrorMode
	lastKey                uint8
	inPath                 bool
}

// compilePath translates the svgPath description string into the path
// structure, filling c.path.
func (c *pathCursor) compilePath(svgPath string) error {
	c.placeX, c.placeY = 0.0, 0.0
	c.points = c.points[0:0]
	c.lastKey = ' '
	c.path.Clear()
	c.inPath = false
	lastIndex := -1
	for i, v := range svgPath {
		if unicode.IsLetter(v) && v != 'e' && v != 'E' {
			if lastIndex != -1 {
				if err := c.addSeg(svgPath[lastIndex:i]); err != nil {
					return err
				}
			}
			lastIndex = i
		}
	}
	if lastIndex != -1 {
		if err := c.addSeg(svgPath[lastIndex:]); err != nil {
			return err
		}
	}
	return nil
}

// getPoints reads a set of floating point values from the SVG format
// number string, and add them to the cursor's points slice.
// Handles sign, exponents and commas and spaces as separators; a '-'
// may also pack two numbers together ("10-5").
func (c *pathCursor) getPoints(dataPoints string) error {
	lastIndex := -1
	c.points = c.points[0:0]
	lr := ' '
	for i, r := range dataPoints {
		if !unicode.IsNumber(r) && r != '.' && !(r == '-' && (lr == 'e' || lr == 'E')) && r != 'e' && r != 'E' {
			if lastIndex != -1 {
				value, err := strconv.ParseFloat(dataPoints[lastIndex:i], 64)
				if err != nil {
					return err
				}
				c.points = append(c.points, value)
			}
			if r == '-' {
				lastIndex = i
			} else {
				lastIndex = -1
			}
		} else if lastIndex == -1 {
			lastIndex = i
		}
		lr = r
	}
	if lastIndex != -1 && lastIndex != len(dataPoints) {
		value, err := strconv.ParseFloat(dataPoints[lastIndex:], 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, value)
	}
	return nil
}

// hasSetsOrMore returns true if c.points has one (or more if rep is
// true) complete set of n coordinates.
func (c *pathCursor) hasSetsOrMore(n int, rep bool) bool {
	return len(c.points) >= n && (rep || len(c.points) == n) && len(c.points)%n == 0
}

// reflection returns the point px, py mirrored through rx, ry.
func reflection(px, py, rx, ry float64) (x, y float64) {
	return px*2 - rx, py*2 - ry
}

// reflectControlQuad reflects the last control point if the previous
// command was also a quadratic curve, per the SVG smooth command rule.
func (c *pathCursor) reflectControlQuad() {
	switch c.lastKey {
	case 'q', 'Q', 't', 'T':
		c.cntlPtX, c.cntlPtY = reflection(c.placeX, c.placeY, c.cntlPtX, c.cntlPtY)
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
	}
}

// reflectControlCube reflects the last control point if the previous
// command was also a cubic curve, per the SVG smooth command rule.
func (c *pathCursor) reflectControlCube() {
	switch c.lastKey {
	case 'c', 'C', 's', 'S':
		c.cntlPtX, c.cntlPtY = reflection(c.placeX, c.placeY, c.cntlPtX, c.cntlPtY)
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
	}
}

// addSeg decodes an SVG segment string into equivalent path operations.
func (c *pathCursor) addSeg(segString string) error {
	if err := c.getPoints(segString[1:]); err != nil {
		return err
	}
	l := len(c.points)
	k := segString[0]
	rel := false
	switch k {
	case 'z':
		fallthrough
	case 'Z':
		if l != 0 {
			return errParamMismatch
		}
		if c.inPath {
			c.path.Stop(true)
			c.placeX = c.pathStartX
			c.placeY = c.pathStartY
			c.inPath = false
		}
	case 'm':
		rel = true
		fallthrough
	case 'M':
		if !c.hasSetsOrMore(2, true) {
			return errParamMismatch
		}
		x, y := c.points[0], c.points[1]
		if rel {
			x += c.placeX
			y += c.placeY
		}
		c.pathStartX, c.pathStartY = x, y
		c.inPath = true
		c.path.Start(toFixedP(x+c.curX, y+c.curY))
		c.placeX, c.placeY = x, y
		// additional coordinate pairs are implicit lineto commands
		for i := 2; i < l-1; i += 2 {
			x, y = c.points[i], c.points[i+1]
			if rel {
				x += c.placeX
				y += c.placeY
			}
			c.path.Line(toFixedP(x+c.curX, y+c.curY))
			c.placeX, c.placeY = x, y
		}
	case 'l':
		rel = true
		fallthrough
	case 'L':
		if !c.hasSetsOrMore(2, true) {
			return errParamMismatch
		}
		for i := 0; i < l-1; i += 2 {
			x, y := c.points[i], c.points[i+1]
			if rel {
				x += c.placeX
				y += c.placeY
			}
			c.path.Line(toFixedP(x+c.curX, y+c.curY))
			c.placeX, c.placeY = x, y
		}
	case 'v':
		rel = true
		fallthrough
	case 'V':
		if !c.hasSetsOrMore(1, true) {
			return errParamMismatch
		}
		for _, p := range c.points {
			y := p
			if rel {
				y += c.placeY
			}
			c.path.Line(toFixedP(c.placeX+c.curX, y+c.curY))
			c.placeY = y
		}
	case 'h':
		rel = true
		fallthrough
	case 'H':
		if !c.hasSetsOrMore(1, true) {
			return errParamMismatch
		}
		for _, p := range c.points {
			x := p
			if rel {
				x += c.placeX
			}
			c.path.Line(toFixedP(x+c.curX, c.placeY+c.curY))
			c.placeX = x
		}
	case 'q':
		rel = true
		fallthrough
	case 'Q':
		if !c.hasSetsOrMore(4, true) {
			return errParamMismatch
		}
		for i := 0; i < l-3; i += 4 {
			x1, y1 := c.points[i], c.points[i+1]
			x, y := c.points[i+2], c.points[i+3]
			if rel {
				x1 += c.placeX
				y1 += c.placeY
				x += c.placeX
				y += c.placeY
			}
			c.path.QuadBezier(toFixedP(x1+c.curX, y1+c.curY), toFixedP(x+c.curX, y+c.curY))
			c.cntlPtX, c.cntlPtY = x1, y1
			c.placeX, c.placeY = x, y
			c.lastKey = k
		}
	case 't':
		rel = true
		fallthrough
	case 'T':
		if !c.hasSetsOrMore(2, true) {
			return errParamMismatch
		}
		for i := 0; i < l-1; i += 2 {
			x, y := c.points[i], c.points[i+1]
			if rel {
				x += c.placeX
				y += c.placeY
			}
			c.reflectControlQuad()
			c.path.QuadBezier(toFixedP(c.cntlPtX+c.curX, c.cntlPtY+c.curY), toFixedP(x+c.curX, y+c.curY))
			c.placeX, c.placeY = x, y
			c.lastKey = k
		}
	case 'c':
		rel = true
		fallthrough
	case 'C':
		if !c.hasSetsOrMore(6, true) {
			return errParamMismatch
		}
		for i := 0; i < l-5; i += 6 {
			x1, y1 := c.points[i], c.points[i+1]
			x2, y2 := c.points[i+2], c.points[i+3]
			x, y := c.points[i+4], c.points[i+5]
			if rel {
				x1 += c.placeX
				y1 += c.placeY
				x2 += c.placeX
				y2 += c.placeY
				x += c.placeX
				y += c.placeY
			}
			c.path.CubeBezier(toFixedP(x1+c.curX, y1+c.curY),
				toFixedP(x2+c.curX, y2+c.curY), toFixedP(x+c.curX, y+c.curY))
			c.cntlPtX, c.cntlPtY = x2, y2
			c.placeX, c.placeY = x, y
			c.lastKey = k
		}
	case 's':
		rel = true
		fallthrough
	case 'S':
		if !c.hasSetsOrMore(4, true) {
			return errParamMismatch
		}
		for i := 0; i < l-3; i += 4 {
			x2, y2 := c.points[i], c.points[i+1]
			x, y := c.points[i+2], c.points[i+3]
			if rel {
				x2 += c.placeX
				y2 += c.placeY
				x += c.placeX
				y += c.placeY
			}
			c.reflectControlCube()
			c.path.CubeBezier(toFixedP(c.cntlPtX+c.curX, c.cntlPtY+c.curY),
				toFixedP(x2+c.curX, y2+c.curY), toFixedP(x+c.curX, y+c.curY))
			c.cntlPtX, c.cntlPtY = x2, y2
			c.placeX, c.placeY = x, y
			c.lastKey = k
		}
	case 'a':
		rel = true
		fallthrough
	case 'A':
		if !c.hasSetsOrMore(7, true) {
			return errParamMismatch
		}
		for i := 0; i < l-6; i += 7 {
			x, y := c.points[i+5], c.points[i+6]
			if rel {
				x += c.placeX
				y += c.placeY
			}
			c.addSegArc([]float64{c.points[i], c.points[i+1], c.points[i+2],
				c.points[i+3], c.points[i+4], x, y})
		}
	default:
		return errParamMismatch
	}
	c.lastKey = k
	return nil
}

// addSegArc appends an elliptical arc segment; points holds the seven
// arc parameters with an absolute end point.
func (c *pathCursor) addSegArc(points []float64) {
	if points[0] == 0 || points[1] == 0 {
		// a zero radius arc degenerates to a straight line (SVG spec)
		c.path.Line(toFixedP(points[5]+c.curX, points[6]+c.curY))
		c.placeX, c.placeY = points[5], points[6]
		return
	}
	points[0], points[1] = math.Abs(points[0]), math.Abs(points[1])
	cx, cy := findEllipseCenter(&points[0], &points[1], points[2]*math.Pi/180,
		c.placeX, c.placeY, points[5], points[6], points[4] == 0, points[3] == 0)
	c.placeX, c.placeY = c.path.addArc(points, cx, cy, c.placeX, c.placeY)
}

// ellipseAt appends a full ellipse, starting at the rightmost point.
func (c *pathCursor) ellipseAt(cx, cy, rx, ry float64) {
	c.placeX, c.placeY = cx+rx, cy
	c.points = c.points[0:0]
	c.points = append(c.points, rx, ry, 0.0, 1.0, 0.0, c.placeX, c.placeY)
	c.path.Start(toFixedP(c.placeX, c.placeY))
	c.placeX, c.placeY = c.path.addArc(c.points, cx, cy, c.placeX, c.placeY)
	c.path.Stop(true)
}
