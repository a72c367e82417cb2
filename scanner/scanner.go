// Package scanner discovers input files for batch lexing: it walks one or
// more roots and returns the paths whose extension matches the configured
// set, in walk order.
package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// Scanner filters walked files by extension. Extensions are matched with or
// without a leading dot; an empty set matches every regular file.
type Scanner struct {
	extensions []string
}

func New(extensions ...string) *Scanner {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return &Scanner{extensions: normalized}
}

// Scan walks each root and collects matching file paths. A root that is a
// regular file is returned as-is, regardless of extension, so explicit
// arguments always win over the filter.
func (s *Scanner) Scan(roots ...string) ([]string, error) {
	var paths []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, root)
			continue
		}
		err = filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return nil
			}
			if s.matches(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func (s *Scanner) matches(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, want := range s.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
