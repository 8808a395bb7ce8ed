package source

import (
	"path/filepath"
	"strings"
)

// Format identifies how a version is embedded in a source file.
type Format string

const (
	// FormatSetup matches a packaging-descriptor assignment: version='1.2.3'.
	FormatSetup Format = "setup"

	// FormatReadme matches the same assignment grammar embedded in prose.
	FormatReadme Format = "readme"

	// FormatInit matches a module initializer: __version__ = '1.2.3'.
	FormatInit Format = "init"

	// FormatTOML is for TOML manifests (pyproject.toml).
	FormatTOML Format = "toml"

	// FormatJSON is for JSON manifests (package.json).
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatSetup, FormatReadme, FormatInit, FormatTOML, FormatJSON:
		return true
	default:
		return false
	}
}

// FileConfig describes where and how to find a version in one file.
type FileConfig struct {
	// Path is the file path (absolute or relative).
	Path string

	// Format specifies how the version is embedded. When empty it is
	// inferred from the file name via FormatForFile.
	Format Format

	// Field is the dot-notation path to the version field for structured
	// formats. Defaults per format via DefaultField.
	Field string
}

// Normalize fills in the inferred format and default field.
func (c FileConfig) Normalize() FileConfig {
	if c.Format == "" {
		c.Format = FormatForFile(c.Path)
	}
	if c.Field == "" {
		c.Field = DefaultField(c.Format)
	}
	return c
}

// FormatForFile infers the format from a file name. Unknown names fall back
// to FormatReadme, whose assignment grammar is the generic one.
func FormatForFile(path string) Format {
	base := strings.ToLower(filepath.Base(path))

	switch {
	case base == "setup.py":
		return FormatSetup
	case base == "__init__.py":
		return FormatInit
	case strings.HasSuffix(base, ".toml"):
		return FormatTOML
	case strings.HasSuffix(base, ".json"):
		return FormatJSON
	default:
		return FormatReadme
	}
}

// DefaultField returns the conventional version field path for structured
// formats, and "" for pattern-based ones.
func DefaultField(f Format) string {
	switch f {
	case FormatTOML:
		return "project.version"
	case FormatJSON:
		return "version"
	default:
		return ""
	}
}
