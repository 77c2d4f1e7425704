package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

var errEncoding = errors.New("content is not valid UTF-8")

// pathError ties a sub-scanner failure to the file it was reading.
type pathError struct {
	path string
	err  error
}

func (e *pathError) Error() string { return e.path + ": " + e.err.Error() }
func (e *pathError) Unwrap() error { return e.err }

func skipFile(path string, err error) error {
	return &pathError{path: path, err: err}
}

// fileExists returns true if path exists and is a regular file. Pipes,
// sockets and devices do not count, since reading them may never return.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// dirExists returns true if path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// firstFile returns the first candidate (relative to root) that is a
// regular file, or "" when none exist.
func firstFile(root string, candidates []string) string {
	for _, c := range candidates {
		path := filepath.Join(root, filepath.FromSlash(c))
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// firstDir is firstFile for directories.
func firstDir(root string, candidates []string) string {
	for _, c := range candidates {
		path := filepath.Join(root, filepath.FromSlash(c))
		if dirExists(path) {
			return path
		}
	}
	return ""
}

// readText reads a whole UTF-8 file. Read and decoding failures are
// wrapped with the path so the driver can record them as an Issue.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", skipFile(path, err)
	}
	if !utf8.Valid(data) {
		return "", skipFile(path, errEncoding)
	}
	return string(data), nil
}

// ignoreMissing drops not-exist errors: a file that vanished between the
// existence probe and the read counts as absent, not malformed.
func ignoreMissing(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
