// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package svgpath

import (
	"math"
	"slices"

	"github.com/specialistvlad/svgrot/internal/geom"
)

// Absolute returns a copy of p with every relative command converted to its
// absolute form. H and V stay horizontal and vertical lines.
func (p Path) Absolute() Path {
	out := make(Path, 0, len(p))
	var cur, start geom.Point

	for _, seg := range p {
		cmd := upper(seg.Command)
		args := slices.Clone(seg.Args)

		var off geom.Point
		if isRelative(seg.Command) {
			off = cur
		}

		switch cmd {
		case 'H':
			args[0] += off.X
			cur.X = args[0]
		case 'V':
			args[0] += off.Y
			cur.Y = args[0]
		case 'A':
			args[5] += off.X
			args[6] += off.Y
			cur = geom.Pt(args[5], args[6])
		case 'Z':
			cur = start
		default:
			for k := 0; k+1 < len(args); k += 2 {
				args[k] += off.X
				args[k+1] += off.Y
			}
			cur = geom.Pt(args[len(args)-2], args[len(args)-1])
		}

		if cmd == 'M' {
			start = cur
		}
		out = append(out, Segment{Command: cmd, Args: args})
	}
	return out
}

// Rotate returns an absolute copy of p rotated by angle degrees around
// center. Horizontal and vertical lines become general lines. Arc radii and
// flags are kept and the arc's x-axis rotation is advanced by angle.
func (p Path) Rotate(angle float64, center geom.Point) Path {
	out := p.Absolute()
	var cur, start geom.Point

	for i := range out {
		seg := &out[i]

		switch seg.Command {
		case 'H':
			seg.Command = 'L'
			seg.Args = []float64{seg.Args[0], cur.Y}
		case 'V':
			seg.Command = 'L'
			seg.Args = []float64{cur.X, seg.Args[0]}
		}

		switch seg.Command {
		case 'Z':
			cur = start
			continue
		case 'A':
			cur = geom.Pt(seg.Args[5], seg.Args[6])
			seg.Args[2] = math.Mod(seg.Args[2]+angle, 360)
			rotatePair(seg.Args[5:7], angle, center)
		default:
			cur = geom.Pt(seg.Args[len(seg.Args)-2], seg.Args[len(seg.Args)-1])
			for k := 0; k+1 < len(seg.Args); k += 2 {
				rotatePair(seg.Args[k:k+2], angle, center)
			}
		}

		if seg.Command == 'M' {
			start = cur
		}
	}
	return out
}

func rotatePair(xy []float64, angle float64, center geom.Point) {
	r := geom.Pt(xy[0], xy[1]).RotateAbout(angle, center)
	xy[0], xy[1] = r.X, r.Y
}
