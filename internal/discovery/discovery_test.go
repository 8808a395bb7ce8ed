package discovery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lcrosetto/vbump/internal/core"
	"github.com/lcrosetto/vbump/internal/source"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestService_Discover(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "setup.py", "setup(version='1.0.0')\n")
	writeFile(t, tmp, "README.md", "install version='1.0.0'\n")
	writeFile(t, tmp, "mypkg/__init__.py", "__version__ = '1.0.0'\n")
	writeFile(t, tmp, "pyproject.toml", "[project]\nversion = \"1.0.0\"\n")
	// No version inside: must be skipped even though the name matches.
	writeFile(t, tmp, "other/__init__.py", "")
	// Never a candidate name.
	writeFile(t, tmp, "main.py", "version='9.9.9'\n")

	svc := NewService(core.NewOSFileSystem())
	candidates, err := svc.Discover(context.Background(), tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := make(map[string]source.Format, len(candidates))
	for _, c := range candidates {
		found[c.Path] = c.Format
	}

	want := []struct {
		path   string
		format source.Format
	}{
		{"setup.py", source.FormatSetup},
		{"README.md", source.FormatReadme},
		{filepath.Join("mypkg", "__init__.py"), source.FormatInit},
		{"pyproject.toml", source.FormatTOML},
	}
	for _, w := range want {
		if got, ok := found[w.path]; !ok || got != w.format {
			t.Errorf("candidate %q: got (%v, %v), want %v", w.path, got, ok, w.format)
		}
	}
	if len(candidates) != len(want) {
		t.Errorf("got %d candidates %v, want %d", len(candidates), found, len(want))
	}
}

func TestService_Discover_SkipsHiddenAndVendorDirs(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, ".tox/setup.py", "setup(version='1.0.0')\n")
	writeFile(t, tmp, "node_modules/pkg/package.json", `{"version": "1.0.0"}`)

	svc := NewService(core.NewOSFileSystem())
	candidates, err := svc.Discover(context.Background(), tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected no candidates, got %v", candidates)
	}
}

func TestService_Discover_DepthLimit(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a/b/c/d/e/setup.py", "setup(version='1.0.0')\n")

	svc := NewService(core.NewOSFileSystem())
	candidates, err := svc.Discover(context.Background(), tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected depth-limited scan to find nothing, got %v", candidates)
	}
}
