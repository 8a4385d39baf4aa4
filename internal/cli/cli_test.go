package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/svgrot/internal/app"
	"github.com/specialistvlad/svgrot/internal/cli"
	"github.com/specialistvlad/svgrot/internal/format"
	"github.com/specialistvlad/svgrot/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectCode     int
		expectMessage  string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "rotate with center point and all flags",
			args: []string{
				"--log-level=debug", "--log-format=json", "-o", "yaml",
				"--precision=4", "--workers=8",
				"rotate", "[(50,96) (510,296)]", "90", "(256,256)",
			},
			expectedConfig: &app.Config{
				Command:   app.CommandRotate,
				LogFormat: "json",
				LogLevel:  "debug",
				Output:    format.YAML,
				Precision: 4,
				Workers:   8,
				Rotate: app.RotateArgs{
					Points: geom.PointSet{geom.Pt(50, 96), geom.Pt(510, 296)},
					Angle:  90,
					Center: geom.Pt(256, 256),
				},
			},
		},
		{
			name: "rotate with separate center and negative angle",
			args: []string{"rotate", "(1,0)", "-90", "0", "0"},
			expectedConfig: &app.Config{
				Command:   app.CommandRotate,
				LogFormat: "text",
				LogLevel:  "warn",
				Output:    format.Text,
				Precision: format.DefaultPrecision,
				Workers:   4,
				Rotate: app.RotateArgs{
					Points: geom.PointSet{geom.Pt(1, 0)},
					Angle:  -90,
				},
			},
		},
		{
			name: "path with rotation flags",
			args: []string{"path", "-angle", "-45", "-center", "(1,1)", "-multiline", "M0", "0", "L1", "1"},
			expectedConfig: &app.Config{
				Command:   app.CommandPath,
				LogFormat: "text",
				LogLevel:  "warn",
				Output:    format.Text,
				Precision: format.DefaultPrecision,
				Workers:   4,
				Path: app.PathArgs{
					Data:      "M0 0 L1 1",
					Rotate:    true,
					Angle:     -45,
					Center:    geom.Pt(1, 1),
					Multiline: true,
				},
			},
		},
		{
			name: "batch with several paths",
			args: []string{"batch", "a.hcl", "jobs/"},
			expectedConfig: &app.Config{
				Command:    app.CommandBatch,
				LogFormat:  "text",
				LogLevel:   "warn",
				Output:     format.Text,
				Precision:  format.DefaultPrecision,
				Workers:    4,
				BatchPaths: []string{"a.hcl", "jobs/"},
			},
		},
		{
			name:       "help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
			},
		},
		{
			name:       "no command triggers clean exit with usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "svgrot [options] rotate POINTS ANGLE CENTER")
			},
		},
		{
			name:          "invalid points",
			args:          []string{"rotate", "[invalid]", "90", "(0,0)"},
			expectCode:    cli.ExitInvalidInput,
			expectMessage: `Invalid points format: [invalid]. Use "(x,y)" or "[(x,y) (x,y)]".`,
		},
		{
			name:          "invalid center",
			args:          []string{"rotate", "(1,1)", "90", "invalid"},
			expectCode:    cli.ExitInvalidInput,
			expectMessage: `Invalid center format: invalid. Use "(cx,cy)" or pass separate cx cy.`,
		},
		{
			name:          "non-numeric angle",
			args:          []string{"rotate", "(1,1)", "ninety", "(0,0)"},
			expectCode:    cli.ExitInvalidInput,
			expectMessage: "Angle and center coordinates must be numbers.",
		},
		{
			name:          "NaN angle",
			args:          []string{"rotate", "(1,1)", "NaN", "(0,0)"},
			expectCode:    cli.ExitInvalidInput,
			expectMessage: "Angle and center coordinates must be numbers.",
		},
		{
			name:          "non-numeric separate center",
			args:          []string{"rotate", "(1,1)", "90", "0", "y"},
			expectCode:    cli.ExitInvalidInput,
			expectMessage: "Angle and center coordinates must be numbers.",
		},
		{
			name:       "wrong rotate arity",
			args:       []string{"rotate", "(1,1)", "90"},
			expectCode: cli.ExitUsage,
		},
		{
			name:       "unknown command",
			args:       []string{"spin"},
			expectCode: cli.ExitUsage,
		},
		{
			name:       "invalid log level",
			args:       []string{"--log-level=foo", "batch", "x.hcl"},
			expectCode: cli.ExitUsage,
		},
		{
			name:       "invalid output",
			args:       []string{"--output=xml", "batch", "x.hcl"},
			expectCode: cli.ExitUsage,
		},
		{
			name:       "precision out of range",
			args:       []string{"--precision=40", "batch", "x.hcl"},
			expectCode: cli.ExitUsage,
		},
		{
			name:       "batch without paths",
			args:       []string{"batch"},
			expectCode: cli.ExitUsage,
		},
		{
			name:       "path data and file together",
			args:       []string{"path", "-f", "x.path", "M0 0"},
			expectCode: cli.ExitUsage,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			config, shouldExit, err := cli.Parse(tc.args, out)

			// --- Assert ---
			if tc.expectCode != 0 {
				require.Error(t, err)
				var exitErr *cli.ExitError
				require.True(t, errors.As(err, &exitErr), "Expected error to be of type ExitError")
				require.Equal(t, tc.expectCode, exitErr.Code)
				if tc.expectMessage != "" {
					require.Equal(t, tc.expectMessage, exitErr.Message)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, config); diff != "" {
					t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
				}
			}
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}

func TestParse_ExitErrorUnwrapsFormatErrors(t *testing.T) {
	t.Parallel()

	_, _, err := cli.Parse([]string{"rotate", "(1,2)", "10", "(a,b)"}, &bytes.Buffer{})
	var centerErr *geom.CenterFormatError
	require.ErrorAs(t, err, &centerErr)
	require.Equal(t, "(a,b)", centerErr.Input)
}
