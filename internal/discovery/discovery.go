// Package discovery scans a project tree for files that embed a version
// string, so "vbump init" can generate a configuration reflecting the
// project instead of a static default.
package discovery

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lcrosetto/vbump/internal/core"
	"github.com/lcrosetto/vbump/internal/source"
)

// MaxDepth bounds how deep below the root the scan descends.
const MaxDepth = 3

// Candidate is a file whose embedded version was successfully extracted.
type Candidate struct {
	Path   string
	Format source.Format
	Field  string
}

// Service provides version source discovery.
type Service struct {
	reader *source.Reader
}

// NewService creates a discovery Service. The filesystem serves the
// candidate reads; directory traversal always uses the operating system.
func NewService(fsys core.FileSystem) *Service {
	return &Service{reader: source.NewReader(fsys)}
}

// Discover walks root and returns every candidate file that actually yields
// a version under its inferred format. Files whose extraction fails are
// skipped, not reported: discovery suggests sources, it does not validate
// the project.
func (s *Service) Discover(ctx context.Context, root string) ([]Candidate, error) {
	var candidates []Candidate

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if d.IsDir() {
			if isSkippedDir(d.Name()) && rel != "." {
				return filepath.SkipDir
			}
			if strings.Count(rel, string(filepath.Separator)) >= MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !isCandidateName(d.Name()) {
			return nil
		}

		cfg := source.FileConfig{Path: path}.Normalize()
		if _, readErr := s.reader.Read(ctx, cfg); readErr != nil {
			return nil
		}

		candidates = append(candidates, Candidate{
			Path:   rel,
			Format: cfg.Format,
			Field:  cfg.Field,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

// isCandidateName reports whether the file name is a known version carrier.
func isCandidateName(name string) bool {
	switch strings.ToLower(name) {
	case "setup.py", "__init__.py", "pyproject.toml", "package.json", "readme.md", "readme.rst":
		return true
	default:
		return false
	}
}

// isSkippedDir filters directories that never carry project sources.
func isSkippedDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "node_modules", "venv", "dist", "build", "__pycache__":
		return true
	default:
		return false
	}
}
