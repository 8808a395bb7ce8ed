// Package operations provides the reusable read/reconcile/write operations
// the CLI commands are built on.
package operations

import (
	"context"
	"fmt"

	"github.com/lcrosetto/vbump/internal/core"
	"github.com/lcrosetto/vbump/internal/source"
	"github.com/lcrosetto/vbump/internal/version"
)

// SourceVersion pairs a source file with the version extracted from it.
type SourceVersion struct {
	Config  source.FileConfig
	Version string
}

// Service reads and writes versions across the configured source files.
type Service struct {
	rw      *source.ReadWriter
	sources []source.FileConfig
}

// NewService creates a Service over the given filesystem and sources.
func NewService(fs core.FileSystem, sources []source.FileConfig) *Service {
	return &Service{
		rw:      source.NewReadWriter(fs),
		sources: sources,
	}
}

// MissingSources returns the configured source paths that do not exist.
func (s *Service) MissingSources(ctx context.Context) []string {
	var missing []string
	for _, cfg := range s.sources {
		if !s.rw.Exists(ctx, cfg.Path) {
			missing = append(missing, cfg.Path)
		}
	}
	return missing
}

// ReadAll extracts the version from every configured source. Extraction
// failures are fatal: a missing pattern in any source aborts the run.
func (s *Service) ReadAll(ctx context.Context) ([]SourceVersion, error) {
	out := make([]SourceVersion, 0, len(s.sources))
	for _, cfg := range s.sources {
		v, err := s.rw.Read(ctx, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, SourceVersion{Config: cfg, Version: v})
	}
	return out, nil
}

// Latest returns the maximum version among the extracted source versions.
func Latest(entries []SourceVersion) (string, error) {
	versions := make([]string, len(entries))
	for i, e := range entries {
		versions[i] = e.Version
	}
	return version.Latest(versions)
}

// Divergent reports whether the extracted versions disagree.
func Divergent(entries []SourceVersion) bool {
	if len(entries) == 0 {
		return false
	}
	for _, e := range entries[1:] {
		if e.Version != entries[0].Version {
			return true
		}
	}
	return false
}

// ReplaceAll substitutes oldVersion with newVersion in every configured
// source. Pattern-based sources whose contents do not carry the exact
// oldVersion literal are left unchanged.
func (s *Service) ReplaceAll(ctx context.Context, oldVersion, newVersion string) error {
	for _, cfg := range s.sources {
		if err := s.rw.Replace(ctx, cfg, oldVersion, newVersion); err != nil {
			return fmt.Errorf("failed to update %q: %w", cfg.Path, err)
		}
	}
	return nil
}

// SetAll rewrites every source to newVersion, replacing whatever version
// each source currently carries.
func (s *Service) SetAll(ctx context.Context, newVersion string) error {
	entries, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := s.rw.Replace(ctx, e.Config, e.Version, newVersion); err != nil {
			return fmt.Errorf("failed to update %q: %w", e.Config.Path, err)
		}
	}
	return nil
}
