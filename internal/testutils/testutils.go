// Package testutils provides helpers for exercising vbump commands in tests.
package testutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

// BuildCLIForTests wraps the given commands in a minimal root command.
func BuildCLIForTests(commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     "vbump",
		Commands: commands,
	}
}

// Chdir switches the working directory to dir for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}

// RunCLITest runs the command with args from dir and fails the test on error.
func RunCLITest(t *testing.T, cmd *cli.Command, args []string, dir string) {
	t.Helper()
	Chdir(t, dir)
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("cli run failed: %v", err)
	}
}

// WriteProjectFile writes a file under dir, creating parent directories.
func WriteProjectFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ReadProjectFile reads a file under dir.
func ReadProjectFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
