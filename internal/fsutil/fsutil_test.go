package fsutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.hcl", "a.hcl", "nested/c.hcl", "notes.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "c.hcl"),
	}, files)

	single, err := FindFilesByExtension(filepath.Join(dir, "a.hcl"), ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.hcl")}, single)

	_, err = FindFilesByExtension(filepath.Join(dir, "missing"), ".hcl")
	require.Error(t, err)
}

func TestReadFile(t *testing.T) {
	const payload = "M0 0 L10 10 Z"
	dir := t.TempDir()

	plain := filepath.Join(dir, "arrow.path")
	require.NoError(t, os.WriteFile(plain, []byte(payload), 0644))

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	gzPath := filepath.Join(dir, "arrow.svgz")
	require.NoError(t, os.WriteFile(gzPath, gz.Bytes(), 0644))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zstPath := filepath.Join(dir, "arrow.path.zst")
	require.NoError(t, os.WriteFile(zstPath, enc.EncodeAll([]byte(payload), nil), 0644))
	require.NoError(t, enc.Close())

	for _, p := range []string{plain, gzPath, zstPath} {
		t.Run(filepath.Base(p), func(t *testing.T) {
			data, err := ReadFile(p, nil)
			require.NoError(t, err)
			assert.Equal(t, payload, string(data))
		})
	}

	t.Run("stdin", func(t *testing.T) {
		data, err := ReadFile(StdinName, strings.NewReader(payload))
		require.NoError(t, err)
		assert.Equal(t, payload, string(data))
	})

	t.Run("corrupt gzip", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.gz")
		require.NoError(t, os.WriteFile(bad, []byte("not gzip"), 0644))
		_, err := ReadFile(bad, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open gzip stream")
	})
}
