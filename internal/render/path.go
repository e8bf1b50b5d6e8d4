package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrPathEscapesRoot rejects output paths that resolve outside the
// configured output directory.
var ErrPathEscapesRoot = errors.New("output path escapes the configured output directory")

// ResolveOutputPath turns a caller-supplied path into an absolute location
// under root. Relative paths resolve against root; absolute paths are
// accepted only when they are already inside it. An empty path yields a
// unique per-request filename, so concurrent requests using the default
// never overwrite each other.
func ResolveOutputPath(root, requested string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	if requested == "" {
		requested = fmt.Sprintf("ebook_%s.pdf", uuid.New().String())
	}

	var candidate string
	if filepath.IsAbs(requested) {
		candidate = filepath.Clean(requested)
	} else {
		candidate = filepath.Join(absRoot, requested)
	}

	rel, err := filepath.Rel(absRoot, candidate)
	if err != nil {
		return "", ErrPathEscapesRoot
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrPathEscapesRoot
	}
	return candidate, nil
}
