package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lcrosetto/vbump/internal/core"
)

// ErrVersionNotFound is returned when a source file does not contain a
// version in the expected form.
var ErrVersionNotFound = errors.New("version not found")

var (
	// assignPattern matches version='1.2.3' or version="1.2.3.ab" with a
	// case-insensitive label. Shared by setup.py and README extraction.
	assignPattern = regexp.MustCompile(`(?i)version=['"]([0-9]+\.[0-9]+\.[0-9]+(?:\.[a-zA-Z]+)?)['"]`)

	// initPattern matches __version__ = '1.2.3' in a module initializer.
	initPattern = regexp.MustCompile(`(?i)__version__\s*=\s*['"]([0-9]+\.[0-9]+\.[0-9]+(?:\.[a-zA-Z]+)?)['"]`)
)

// Reader extracts version strings from configured source files.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a Reader over the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read extracts the version string from the file described by cfg.
func (r *Reader) Read(ctx context.Context, cfg FileConfig) (string, error) {
	cfg = cfg.Normalize()
	if cfg.Path == "" {
		return "", fmt.Errorf("file path is required")
	}
	if !cfg.Format.IsValid() {
		return "", fmt.Errorf("invalid format: %s", cfg.Format)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	switch cfg.Format {
	case FormatSetup, FormatReadme:
		return readPattern(data, cfg.Path, assignPattern)
	case FormatInit:
		return readPattern(data, cfg.Path, initPattern)
	case FormatTOML:
		return r.readTOML(data, cfg.Path, cfg.Field)
	case FormatJSON:
		return r.readJSON(data, cfg.Path, cfg.Field)
	default:
		return "", fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}

// readPattern extracts the first pattern match from the file contents.
func readPattern(data []byte, path string, re *regexp.Regexp) (string, error) {
	matches := re.FindSubmatch(data)
	if len(matches) < 2 {
		return "", fmt.Errorf("%w in %q", ErrVersionNotFound, path)
	}
	return string(matches[1]), nil
}

// readTOML extracts a version from TOML data using dot notation for the field path.
func (r *Reader) readTOML(data []byte, path, field string) (string, error) {
	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}
	return stringField(obj, path, field)
}

// readJSON extracts a version from JSON data using dot notation for the field path.
func (r *Reader) readJSON(data []byte, path, field string) (string, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse JSON in %q: %w", path, err)
	}
	return stringField(obj, path, field)
}

func stringField(obj map[string]any, path, field string) (string, error) {
	value, err := getNestedValue(obj, field)
	if err != nil {
		return "", fmt.Errorf("%w in %q: %s", ErrVersionNotFound, path, err.Error())
	}

	version, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q in %q is not a string", field, path)
	}
	return version, nil
}

// getNestedValue retrieves a value from a nested map using dot notation.
// Example: "project.version" accesses obj["project"]["version"].
func getNestedValue(obj map[string]any, field string) (any, error) {
	if field == "" {
		return nil, fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object at path %q", strings.Join(parts[:i], "."), part)
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, fmt.Errorf("field %q not found", field)
		}

		current = value
	}

	return current, nil
}
