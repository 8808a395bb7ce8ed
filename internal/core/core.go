// Package core provides shared abstractions used across vbump:
// a filesystem seam for testability, file permission constants,
// and a marshaling interface for configuration persistence.
package core

import (
	"context"
	"io/fs"
	"os"
)

// PermOwnerRW is the file permission used for files written by vbump
// (owner read/write only).
const PermOwnerRW fs.FileMode = 0o600

// FileSystem abstracts file operations so that readers and writers can be
// exercised against an in-memory implementation in tests.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
}

// Marshaler abstracts serialization for configuration saving.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

// osFileSystem is the production FileSystem backed by the os package.
type osFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the operating system.
func NewOSFileSystem() FileSystem {
	return &osFileSystem{}
}

func (*osFileSystem) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (*osFileSystem) WriteFile(_ context.Context, path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (*osFileSystem) Stat(_ context.Context, path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
