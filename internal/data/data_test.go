package data

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDataFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadMergesFiles(t *testing.T) {
	dir := t.TempDir()
	product := writeDataFile(t, dir, "product.yaml", `
product:
  name: "Блок управления"
  code: "АВГД.123456.001"
`)
	company := writeDataFile(t, dir, "company.yaml", `
company:
  name: "ООО Пример"
product:
  purpose: "управления насосом"
`)

	m, err := Load([]string{product, company, filepath.Join(dir, "missing.yaml")})
	if err != nil {
		t.Fatalf("failed to load data: %v", err)
	}

	if v, ok := m.Lookup("product.name"); !ok || v != "Блок управления" {
		t.Errorf("expected product.name 'Блок управления', got %v", v)
	}
	if v, ok := m.Lookup("product.purpose"); !ok || v != "управления насосом" {
		t.Errorf("expected merged product.purpose, got %v", v)
	}
	if v, ok := m.Lookup("company.name"); !ok || v != "ООО Пример" {
		t.Errorf("expected company.name 'ООО Пример', got %v", v)
	}
}

func TestLookupIndexedAndValueKey(t *testing.T) {
	dir := t.TempDir()
	path := writeDataFile(t, dir, "data.yaml", `
contacts:
  phones:
    - "+7 111"
    - "+7 222"
product:
  voltage:
    value: "220 В"
    note: "номинальное"
`)
	m, err := Load([]string{path})
	if err != nil {
		t.Fatalf("failed to load data: %v", err)
	}

	if v, ok := m.Lookup("contacts.phones[1]"); !ok || v != "+7 222" {
		t.Errorf("expected phones[1] '+7 222', got %v", v)
	}
	if v, ok := m.Lookup("product.voltage"); !ok || v != "220 В" {
		t.Errorf("expected value-wrapped lookup '220 В', got %v", v)
	}
	if _, ok := m.Lookup("contacts.phones[5]"); ok {
		t.Error("expected out of range index to miss")
	}
	if _, ok := m.Lookup("nothing.here"); ok {
		t.Error("expected unknown path to miss")
	}
}

func TestResolve(t *testing.T) {
	m := Map{
		"a": map[string]any{"b": "X"},
		"n": 42,
		"f": true,
	}
	r := NewResolver(m)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "{{a.b}}", "X"},
		{"spaced token", "{{ a.b }}", "X"},
		{"unknown path", "до {{a.missing}} после", "до после"},
		{"number", "n = {{n}}", "n = 42"},
		{"bool", "flag: {{f}}", "flag: true"},
		{"whitespace collapse", "  много   пробелов  ", "много пробелов"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolveNilResolverMap(t *testing.T) {
	r := NewResolver(nil)
	if got := r.Resolve("{{a.b}} текст"); got != "текст" {
		t.Errorf("expected 'текст', got %q", got)
	}
}
