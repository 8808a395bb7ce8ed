package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lcrosetto/vbump/internal/source"
)

func chdir(t *testing.T, dir string) {
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

func TestLoadConfig_MissingFileFallsBack(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config for missing file, got %+v", cfg)
	}
}

func TestLoadConfig_ReadsSources(t *testing.T) {
	tmp := t.TempDir()
	content := "sources:\n" +
		"  - path: setup.py\n" +
		"  - path: README.md\n" +
		"  - path: mypkg/__init__.py\n" +
		"  - path: pyproject.toml\n" +
		"    field: tool.poetry.version\n"
	if err := os.WriteFile(filepath.Join(tmp, DefaultConfigFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, tmp)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}
	if len(cfg.Sources) != 4 {
		t.Fatalf("got %d sources, want 4", len(cfg.Sources))
	}
	if cfg.Sources[3].Field != "tool.poetry.version" {
		t.Errorf("source field = %q", cfg.Sources[3].Field)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	tmp := t.TempDir()
	alt := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(alt, []byte("sources:\n  - path: setup.py\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VBUMP_CONFIG", alt)
	chdir(t, t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil || len(cfg.Sources) != 1 || cfg.Sources[0].Path != "setup.py" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_EnvTraversalRejected(t *testing.T) {
	t.Setenv("VBUMP_CONFIG", "../evil.yaml")

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for traversal path, got nil")
	}
}

func TestLoadConfig_StrictDecode(t *testing.T) {
	tmp := t.TempDir()
	content := "sources:\n  - path: setup.py\nunknown-key: true\n"
	if err := os.WriteFile(filepath.Join(tmp, DefaultConfigFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, tmp)

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown key, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Sources: []SourceConfig{{Path: "setup.py"}}},
		},
		{
			name:    "no sources",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "source without path",
			cfg:     Config{Sources: []SourceConfig{{Format: "setup"}}},
			wantErr: true,
		},
		{
			name:    "invalid format",
			cfg:     Config{Sources: []SourceConfig{{Path: "setup.py", Format: "xml"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_FileConfigs_InfersFormats(t *testing.T) {
	cfg := Config{Sources: []SourceConfig{
		{Path: "setup.py"},
		{Path: "README.md"},
		{Path: "mypkg/__init__.py"},
		{Path: "pyproject.toml"},
	}}

	got := cfg.FileConfigs()
	wantFormats := []source.Format{source.FormatSetup, source.FormatReadme, source.FormatInit, source.FormatTOML}
	for i, fc := range got {
		if fc.Format != wantFormats[i] {
			t.Errorf("source %q format = %v, want %v", fc.Path, fc.Format, wantFormats[i])
		}
	}
	if got[3].Field != "project.version" {
		t.Errorf("toml default field = %q", got[3].Field)
	}
}

type failingMarshaler struct{}

func (failingMarshaler) Marshal(any) ([]byte, error) {
	return nil, errors.New("marshal failed")
}

func TestConfigSaver_SaveTo(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, DefaultConfigFile)

	saver := NewConfigSaver(nil, nil, nil)
	if err := saver.SaveTo(Default(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("saved config is empty")
	}
}

func TestConfigSaver_MarshalError(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, DefaultConfigFile)

	saver := NewConfigSaver(failingMarshaler{}, nil, nil)
	if err := saver.SaveTo(Default(), path); err == nil {
		t.Error("expected marshal error, got nil")
	}
}
