package format

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/svgrot/internal/geom"
)

// DefaultPrecision is the number of fractional digits kept before trimming.
const DefaultPrecision = 10

// Number formats v with precision fractional digits, then drops trailing
// zeros and a dangling decimal point. Negative zero is written as "0".
func Number(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Point renders p as "(x, y)".
func Point(p geom.Point, precision int) string {
	return "(" + Number(p.X, precision) + ", " + Number(p.Y, precision) + ")"
}

// Points renders a single point as "(x, y)" and several as
// "[(x1, y1) (x2, y2)]".
func Points(ps geom.PointSet, precision int) string {
	if len(ps) == 1 {
		return Point(ps[0], precision)
	}

	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = Point(p, precision)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
