package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"

	"github.com/lcrosetto/vbump/internal/core"
)

// Writer rewrites version strings inside configured source files.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a Writer over the given filesystem.
func NewWriter(fs core.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// Replace substitutes oldVersion with newVersion in the file described by cfg.
//
// For pattern-based formats the substitution is a literal replacement of
// every occurrence of the single-quoted assignment (version='{old}' or
// __version__ = '{old}'); when that exact literal is absent the file is
// written back unchanged. Structured formats rewrite the configured field
// and ignore oldVersion.
func (w *Writer) Replace(ctx context.Context, cfg FileConfig, oldVersion, newVersion string) error {
	cfg = cfg.Normalize()
	if cfg.Path == "" {
		return fmt.Errorf("file path is required")
	}
	if !cfg.Format.IsValid() {
		return fmt.Errorf("invalid format: %s", cfg.Format)
	}

	switch cfg.Format {
	case FormatSetup, FormatReadme:
		return w.replaceLiteral(ctx, cfg.Path, assignLiteral(oldVersion), assignLiteral(newVersion))
	case FormatInit:
		return w.replaceLiteral(ctx, cfg.Path, initLiteral(oldVersion), initLiteral(newVersion))
	case FormatTOML:
		return w.writeTOML(ctx, cfg.Path, cfg.Field, newVersion)
	case FormatJSON:
		return w.writeJSON(ctx, cfg.Path, cfg.Field, newVersion)
	default:
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}

// Exists checks if a file exists at the given path.
func (w *Writer) Exists(ctx context.Context, path string) bool {
	_, err := w.fs.Stat(ctx, path)
	return err == nil
}

func assignLiteral(version string) string {
	return fmt.Sprintf("version='%s'", version)
}

func initLiteral(version string) string {
	return fmt.Sprintf("__version__ = '%s'", version)
}

// replaceLiteral performs an exact-match substring replacement of every
// occurrence and writes the result back. An absent literal leaves the
// contents untouched.
func (w *Writer) replaceLiteral(ctx context.Context, path, old, new string) error {
	data, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", path, err)
	}

	updated := strings.ReplaceAll(string(data), old, new)

	if err := w.fs.WriteFile(ctx, path, []byte(updated), core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}

// writeTOML rewrites the version field in a TOML manifest.
func (w *Writer) writeTOML(ctx context.Context, path, field, version string) error {
	data, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", path, err)
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}

	if err := setNestedValue(obj, field, version); err != nil {
		return fmt.Errorf("in file %q: %w", path, err)
	}

	updated, err := toml.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal TOML for %q: %w", path, err)
	}

	if err := w.fs.WriteFile(ctx, path, updated, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}

// writeJSON rewrites the version field using sjson to preserve formatting
// and field order.
func (w *Writer) writeJSON(ctx context.Context, path, field, version string) error {
	data, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", path, err)
	}

	updated, err := sjson.SetBytes(data, field, version)
	if err != nil {
		return fmt.Errorf("failed to set version in %q: %w", path, err)
	}

	// Ensure trailing newline
	if len(updated) > 0 && updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}

	if err := w.fs.WriteFile(ctx, path, updated, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}

// setNestedValue sets a value in a nested map using dot notation, creating
// intermediate maps as needed.
func setNestedValue(obj map[string]any, field string, value any) error {
	if field == "" {
		return fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := obj

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]

		next, exists := current[part]
		if !exists {
			newMap := make(map[string]any)
			current[part] = newMap
			current = newMap
			continue
		}

		nextMap, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q is not an object at path %q", strings.Join(parts[:i+1], "."), part)
		}

		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// ReadWriter combines Reader and Writer functionality.
type ReadWriter struct {
	*Reader
	*Writer
}

// NewReadWriter creates a ReadWriter over the given filesystem.
func NewReadWriter(fs core.FileSystem) *ReadWriter {
	return &ReadWriter{
		Reader: NewReader(fs),
		Writer: NewWriter(fs),
	}
}
