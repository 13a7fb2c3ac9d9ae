// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNotSEPFile indicates a filename that does not follow the
// sep-NNNN.<ext> convention.
var ErrNotSEPFile = errors.New("not a SEP file name")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFileReadable writes data to path and forces group/world read
// permission on it, regardless of umask, so the web server can serve
// the result.
func WriteFileReadable(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return err
	}
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	return nil
}

// SEPNumber extracts the numeric suffix of a sep-NNNN.txt or
// sep-NNNN.md file name.
func SEPNumber(path string) (int, error) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	dash := strings.LastIndex(base, "-")
	if dash < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotSEPFile, path)
	}
	num, err := strconv.Atoi(base[dash+1:])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrNotSEPFile, path)
	}
	return num, nil
}

// HTMLPath returns the output path for a source document: same base
// name with the extension swapped for .html.
func HTMLPath(inpath string) string {
	ext := filepath.Ext(inpath)
	return strings.TrimSuffix(inpath, ext) + ".html"
}
