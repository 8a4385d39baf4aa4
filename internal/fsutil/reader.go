package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// StdinName is the path that selects standard input in ReadFile.
const StdinName = "-"

// ReadFile reads the whole file at path. Files ending in .gz or .svgz are
// gunzipped and files ending in .zst are zstd-decoded. The path "-" reads
// from stdin.
func ReadFile(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinName {
		if stdin == nil {
			return nil, errors.New("standard input is not available")
		}
		return io.ReadAll(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readDecoded(path, f)
}

func readDecoded(name string, r io.Reader) ([]byte, error) {
	switch {
	case strings.HasSuffix(name, ".gz"), strings.HasSuffix(name, ".svgz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream %s: %w", name, err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case strings.HasSuffix(name, ".zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream %s: %w", name, err)
		}
		defer dec.Close()
		return io.ReadAll(dec)
	default:
		return io.ReadAll(r)
	}
}
