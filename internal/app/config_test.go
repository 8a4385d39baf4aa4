package app

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/svgrot/internal/format"
	"github.com/specialistvlad/svgrot/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	valid := Config{
		Command:   CommandRotate,
		Precision: format.DefaultPrecision,
		Workers:   1,
		Rotate:    RotateArgs{Points: geom.PointSet{geom.Pt(1, 1)}},
	}

	cfg, err := NewConfig(valid)
	require.NoError(t, err)
	assert.Equal(t, format.Text, cfg.Output, "output defaults to text")

	testCases := []struct {
		name        string
		mutate      func(c *Config)
		expectedMsg string
	}{
		{name: "unknown command", mutate: func(c *Config) { c.Command = "spin" }, expectedMsg: "unknown command"},
		{name: "rotate without points", mutate: func(c *Config) { c.Rotate.Points = nil }, expectedMsg: "at least one point"},
		{name: "batch without paths", mutate: func(c *Config) { c.Command = CommandBatch }, expectedMsg: "at least one file"},
		{name: "negative precision", mutate: func(c *Config) { c.Precision = -1 }, expectedMsg: "precision"},
		{name: "no workers", mutate: func(c *Config) { c.Workers = 0 }, expectedMsg: "workers"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			_, err := NewConfig(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedMsg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger("info", "text", buf, "run-1")

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "run_id=run-1")
}
