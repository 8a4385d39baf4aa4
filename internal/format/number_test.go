package format

import (
	"math"
	"testing"

	"github.com/specialistvlad/svgrot/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	testCases := []struct {
		name      string
		value     float64
		precision int
		expected  string
	}{
		{name: "integer", value: 96, precision: 10, expected: "96"},
		{name: "trailing zeros trimmed", value: 1.5, precision: 10, expected: "1.5"},
		{name: "negative", value: -255.25, precision: 10, expected: "-255.25"},
		{name: "rounding noise removed", value: 6.123233995736766e-17, precision: 10, expected: "0"},
		{name: "negative noise is plain zero", value: -1.2246467991473532e-16, precision: 10, expected: "0"},
		{name: "ten digits kept", value: math.Sqrt2, precision: 10, expected: "1.4142135624"},
		{name: "custom precision", value: math.Pi, precision: 3, expected: "3.142"},
		{name: "zero precision", value: 2.6, precision: 0, expected: "3"},
		{name: "integer with zero precision keeps zeros", value: 100, precision: 0, expected: "100"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Number(tc.value, tc.precision))
		})
	}
}

func TestPoints(t *testing.T) {
	one := geom.PointSet{geom.Pt(50, 96)}
	assert.Equal(t, "(50, 96)", Points(one, DefaultPrecision))

	many := geom.PointSet{geom.Pt(50, 96), geom.Pt(-0.5, 1e-12), geom.Pt(1, 2)}
	assert.Equal(t, "[(50, 96) (-0.5, 0) (1, 2)]", Points(many, DefaultPrecision))
}
