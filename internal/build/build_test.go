package build

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/promtec/gostdoc/internal/toc"
)

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// fixtureProject lays out a minimal project using the default layout.
func fixtureProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeProjectFile(t, root, "data/product.yaml", `
product:
  name: "Блок управления"
  code: "АВГД.123456.001"
  purpose: "управления насосом"
`)
	writeProjectFile(t, root, "data/company.yaml", `
company:
  name: "ООО Пример"
`)
	writeProjectFile(t, root, "content/re.yaml", `
sections:
  - id: table_of_contents
  - id: s1
    name: "Назначение"
    blocks:
      - "Изделие {{product.name}} предназначено для {{product.purpose}}."
  - id: s2
    name: "Технические характеристики"
    blocks:
      - table:
          name: "Параметры"
          headers: ["Параметр", "Значение"]
          rows:
            - cells: ["Масса", "1 кг"]
`)
	writeProjectFile(t, root, "content/tu.yaml", `
sections:
  - id: s1
    name: "Технические требования"
    blocks:
      - "текст"
`)
	writeProjectFile(t, root, "content/ps.yaml", `
sections:
  - id: s1
    name: "Основные сведения"
    blocks:
      - "текст"
`)
	return root
}

func TestBuildManual(t *testing.T) {
	root := fixtureProject(t)

	builder, err := New(Options{RootDir: root})
	if err != nil {
		t.Fatalf("failed to create builder: %v", err)
	}

	result, err := builder.Build(context.Background(), toc.DocTypeManual)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if result.FileName != "АВГД.123456.001.РЭ.odt" {
		t.Errorf("unexpected file name: %s", result.FileName)
	}
	if result.Tables != 1 {
		t.Errorf("expected 1 table, got %d", result.Tables)
	}
	if got := result.Index.NumberOf("s1"); got != "1" {
		t.Errorf("expected s1 number '1', got %q", got)
	}

	zr, err := zip.OpenReader(result.Path)
	if err != nil {
		t.Fatalf("expected readable odt package: %v", err)
	}
	defer zr.Close()
	if zr.File[0].Name != "mimetype" {
		t.Errorf("expected mimetype first in package, got %s", zr.File[0].Name)
	}
}

func TestBuildAllTypes(t *testing.T) {
	root := fixtureProject(t)

	builder, err := New(Options{RootDir: root})
	if err != nil {
		t.Fatalf("failed to create builder: %v", err)
	}

	results, err := builder.BuildAll(context.Background(), builder.Config().DocumentTypes())
	if err != nil {
		t.Fatalf("build all failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	suffixes := map[string]string{"re": ".РЭ.odt", "tu": ".ТУ.odt", "ps": ".ПС.odt"}
	for _, r := range results {
		if !strings.HasSuffix(r.FileName, suffixes[r.DocType]) {
			t.Errorf("%s: unexpected file name %s", r.DocType, r.FileName)
		}
		if _, err := os.Stat(r.Path); err != nil {
			t.Errorf("%s: expected output file: %v", r.DocType, err)
		}
	}
}

func TestBuildRejectsInvalidStructure(t *testing.T) {
	root := fixtureProject(t)
	writeProjectFile(t, root, "content/re.yaml", `
sections:
  - id: dup
    name: "Первый"
    blocks:
      - "текст"
  - id: dup
    name: "Второй"
    blocks:
      - "текст"
`)

	builder, err := New(Options{RootDir: root})
	if err != nil {
		t.Fatalf("failed to create builder: %v", err)
	}

	if _, err := builder.Build(context.Background(), toc.DocTypeManual); err == nil {
		t.Fatal("expected validation error")
	}

	forced, err := New(Options{RootDir: root, Force: true})
	if err != nil {
		t.Fatalf("failed to create builder: %v", err)
	}
	if _, err := forced.Build(context.Background(), toc.DocTypeManual); err != nil {
		t.Errorf("expected forced build to succeed, got %v", err)
	}
}

func TestBuildToleratesUntitledIntro(t *testing.T) {
	root := fixtureProject(t)
	writeProjectFile(t, root, "content/re.yaml", `
sections:
  - id: intro
    blocks:
      - "Вводный текст."
  - id: s1
    name: "Назначение"
    blocks:
      - "текст"
`)

	builder, err := New(Options{RootDir: root})
	if err != nil {
		t.Fatalf("failed to create builder: %v", err)
	}
	if _, err := builder.Build(context.Background(), toc.DocTypeManual); err != nil {
		t.Errorf("expected untitled intro to build, got %v", err)
	}
}

func TestBuildUnknownDocType(t *testing.T) {
	root := fixtureProject(t)
	builder, err := New(Options{RootDir: root})
	if err != nil {
		t.Fatalf("failed to create builder: %v", err)
	}
	if _, err := builder.Build(context.Background(), "xx"); err == nil {
		t.Fatal("expected error for unknown document type")
	}
}

func TestFileNameFallback(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "content/re.yaml", `
sections:
  - id: s1
    name: "Раздел"
    blocks:
      - "текст"
`)

	builder, err := New(Options{RootDir: root})
	if err != nil {
		t.Fatalf("failed to create builder: %v", err)
	}
	if got := builder.FileName(toc.DocTypeManual); got != "document.РЭ.odt" {
		t.Errorf("expected fallback file name, got %s", got)
	}
}

func TestDocTitle(t *testing.T) {
	if got := DocTitle(toc.DocTypeManual); got != "Руководство по эксплуатации" {
		t.Errorf("unexpected title: %s", got)
	}
	if got := DocTitle("xx"); got != "xx" {
		t.Errorf("expected passthrough for unknown type, got %s", got)
	}
}
