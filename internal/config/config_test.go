package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TOC.MaxLevels != 2 {
		t.Errorf("expected max_levels 2, got %d", cfg.TOC.MaxLevels)
	}
	if cfg.Images.ScaleFactor != 0.5 {
		t.Errorf("expected scale_factor 0.5, got %v", cfg.Images.ScaleFactor)
	}
	for _, docType := range []string{"re", "tu", "ps"} {
		if _, ok := cfg.DocumentPath(docType); !ok {
			t.Errorf("expected default document entry for %s", docType)
		}
	}
}

func TestDocumentTypesOrder(t *testing.T) {
	cfg := DefaultConfig()
	types := cfg.DocumentTypes()
	if len(types) != 3 {
		t.Fatalf("expected 3 types, got %d", len(types))
	}
	want := []string{"re", "tu", "ps"}
	for i, w := range want {
		if types[i] != w {
			t.Errorf("position %d: expected %s, got %s", i, types[i], w)
		}
	}
}

func TestLoaderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	if loader.Exists() {
		t.Fatal("expected no config file yet")
	}
	if err := loader.Init(); err != nil {
		t.Fatalf("failed to init config: %v", err)
	}
	if !loader.Exists() {
		t.Fatal("expected config file after init")
	}
	if err := loader.Init(); err == nil {
		t.Error("expected error on second init")
	}

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Dirs.Output != "build" {
		t.Errorf("expected output dir 'build', got %s", cfg.Dirs.Output)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	loader := NewLoader(t.TempDir())
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.TOC.MaxLevels != DefaultConfig().TOC.MaxLevels {
		t.Error("expected default config for missing file")
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOSTDOC_TEST_PASSWORD", "secret")

	content := `
pdf:
  owner_password: "${GOSTDOC_TEST_PASSWORD}"
`
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.PDF.OwnerPassword != "secret" {
		t.Errorf("expected expanded password, got %q", cfg.PDF.OwnerPassword)
	}
}

func TestResolveRelativePaths(t *testing.T) {
	loader := NewLoader("/project")
	if got := loader.Resolve("content/re.yaml"); got != filepath.Join("/project", "content/re.yaml") {
		t.Errorf("unexpected resolved path: %s", got)
	}
	if got := loader.Resolve("/abs/path.yaml"); got != "/abs/path.yaml" {
		t.Errorf("expected absolute path unchanged, got %s", got)
	}
}
