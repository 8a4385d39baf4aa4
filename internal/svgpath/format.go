package svgpath

import (
	"strings"

	"github.com/specialistvlad/svgrot/internal/format"
	"github.com/specialistvlad/svgrot/internal/geom"
)

// Rotation describes a rotation applied while reformatting.
type Rotation struct {
	Angle  float64
	Center geom.Point
}

// Options controls Reformat and Format.
type Options struct {
	Precision int
	Multiline bool
	Absolute  bool
	Rotation  *Rotation
}

// Format writes p back as path data. Each segment is its command letter
// followed by space-separated numbers.
func (p Path) Format(opts Options) string {
	sep := " "
	if opts.Multiline {
		sep = "\n"
	}

	var sb strings.Builder
	for i, seg := range p {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteByte(seg.Command)
		for k, v := range seg.Args {
			if k > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(format.Number(v, opts.Precision))
		}
	}
	return sb.String()
}

// Reformat parses d, applies the requested conversion, and formats it again.
func Reformat(d string, opts Options) (string, error) {
	if strings.TrimSpace(d) == "" {
		return "", ErrNoData
	}

	path, err := Parse(d)
	if err != nil {
		return "", err
	}

	switch {
	case opts.Rotation != nil:
		path = path.Rotate(opts.Rotation.Angle, opts.Rotation.Center)
	case opts.Absolute:
		path = path.Absolute()
	}
	if !path.IsFinite() {
		return "", geom.ErrOutOfRange
	}
	return path.Format(opts), nil
}
