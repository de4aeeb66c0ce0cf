package pdf

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"build/АВГД.123456.001.РЭ.odt", "АВГД.123456.001.РЭ.pdf"},
		{"doc.odt", "doc.pdf"},
		{"/abs/path/file.ODT", "file.pdf"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestConvertMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Convert(context.Background(), filepath.Join(dir, "missing.odt"), dir)
	if err == nil {
		t.Fatal("expected error for missing source document")
	}
}

func TestProtectRequiresPassword(t *testing.T) {
	if err := Protect("in.pdf", "out.pdf", ""); err == nil {
		t.Fatal("expected error for empty owner password")
	}
}
