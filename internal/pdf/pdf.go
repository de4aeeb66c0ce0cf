// Package pdf converts ODT files to PDF through LibreOffice and applies
// print-only protection to the result.
package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// OutputName returns the PDF file name produced for an ODT file.
func OutputName(odtPath string) string {
	base := filepath.Base(odtPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
}

// Convert runs a headless LibreOffice conversion of odtPath into outDir
// and returns the path of the produced PDF.
func Convert(ctx context.Context, odtPath, outDir string) (string, error) {
	if _, err := os.Stat(odtPath); err != nil {
		return "", fmt.Errorf("source document: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, "soffice",
		"--headless", "--convert-to", "pdf", "--outdir", outDir, odtPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("soffice conversion failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	result := filepath.Join(outDir, OutputName(odtPath))
	if _, err := os.Stat(result); err != nil {
		return "", fmt.Errorf("conversion produced no file at %s", result)
	}
	return result, nil
}

// Protect encrypts the PDF with an owner password, leaving it openable
// without a password but restricted to printing.
func Protect(inPath, outPath, ownerPassword string) error {
	if ownerPassword == "" {
		return fmt.Errorf("owner password is empty")
	}
	conf := model.NewAESConfiguration("", ownerPassword, 256)
	conf.Permissions = model.PermissionsPrint
	if err := api.EncryptFile(inPath, outPath, conf); err != nil {
		return fmt.Errorf("encrypt %s: %w", inPath, err)
	}
	return nil
}
