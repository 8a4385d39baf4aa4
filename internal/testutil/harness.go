package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/svgrot/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles writes files into a fresh temporary directory and returns it.
// Names are relative paths such as "jobs/main.hcl"; parent directories are
// created as needed.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return dir
}

// HarnessResult holds the outcomes of an App run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// RunApp runs an App built from cfg with stdin as its input and captures
// both result and log output.
func RunApp(t *testing.T, cfg app.Config, stdin string) *HarnessResult {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 2
	}
	config, err := app.NewConfig(cfg)
	require.NoError(t, err, "invalid test config")

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	var in io.Reader = strings.NewReader(stdin)

	runErr := app.NewApp(app.Streams{In: in, Out: out, Err: logs}, config).Run(context.Background())
	if runErr != nil && os.Getenv("SVGROT_TEST_LOGS") == "true" {
		t.Logf("--- APP LOGS ---\n%s", logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
