package publish

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/velum-dev/velum/internal/errors"
)

// DiskStore writes exported pages under a root directory.
type DiskStore struct {
	root string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &DiskStore{root: root}, nil
}

// Root returns the absolute output directory.
func (s *DiskStore) Root() string {
	return s.root
}

// Put writes one file under the root. Paths that escape the root are
// rejected.
func (s *DiskStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0644)
}

// resolve maps a slash-separated export path to an absolute path inside
// the root, rejecting traversal.
func (s *DiskStore) resolve(path string) (string, error) {
	if path == "" || strings.HasPrefix(path, "/") {
		return "", errors.New("E130").WithDetailf("invalid export path %q", path)
	}
	full := filepath.Join(s.root, filepath.FromSlash(path))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.New("E130").WithDetailf("export path %q escapes the output directory", path)
	}
	return full, nil
}
