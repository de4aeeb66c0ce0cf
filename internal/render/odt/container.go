// Package odt renders an instruction stream into an OpenDocument text
// package (a zip archive with a stored mimetype first entry).
package odt

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/promtec/gostdoc/internal/ir"
	"github.com/promtec/gostdoc/internal/toc"
)

const mimetype = "application/vnd.oasis.opendocument.text"

// Metadata fills meta.xml.
type Metadata struct {
	Title       string
	Creator     string
	Generator   string
	Description string
}

// Renderer writes ODT packages. BaseDir resolves relative image paths.
type Renderer struct {
	BaseDir string
	Meta    Metadata
}

// WriteFile renders the stream into an ODT file at path. It returns the
// non-fatal problems collected while rendering (missing image files).
func (r *Renderer) WriteFile(path string, stream *ir.Stream, index *toc.Index) ([]string, error) {
	content, images, problems := renderContent(stream, index, r.BaseDir)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return problems, fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return problems, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	// The mimetype entry must come first and must be stored uncompressed
	// for the package to be recognized as ODF.
	mw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return problems, err
	}
	if _, err := mw.Write([]byte(mimetype)); err != nil {
		return problems, err
	}

	entries := []struct {
		name string
		body string
	}{
		{"content.xml", content},
		{"styles.xml", stylesXML},
		{"meta.xml", r.metaXML()},
		{"settings.xml", settingsXML},
		{"META-INF/manifest.xml", manifestXML(images)},
	}
	for _, e := range entries {
		ew, err := zw.Create(e.name)
		if err != nil {
			return problems, err
		}
		if _, err := ew.Write([]byte(e.body)); err != nil {
			return problems, err
		}
	}

	for _, img := range images {
		if err := addFileEntry(zw, img.ArchiveName, img.SourcePath); err != nil {
			return problems, fmt.Errorf("pack image %s: %w", img.SourcePath, err)
		}
	}

	if err := zw.Close(); err != nil {
		return problems, fmt.Errorf("finalize %s: %w", path, err)
	}
	return problems, nil
}

func addFileEntry(zw *zip.Writer, name, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}

func (r *Renderer) metaXML() string {
	now := time.Now().Format("2006-01-02T15:04:05")
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<office:document-meta xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
 xmlns:meta="urn:oasis:names:tc:opendocument:xmlns:meta:1.0"
 xmlns:dc="http://purl.org/dc/elements/1.1/" office:version="1.2">
 <office:meta>
`)
	fmt.Fprintf(&b, "  <dc:title>%s</dc:title>\n", xmlEscape(r.Meta.Title))
	fmt.Fprintf(&b, "  <dc:creator>%s</dc:creator>\n", xmlEscape(r.Meta.Creator))
	fmt.Fprintf(&b, "  <dc:description>%s</dc:description>\n", xmlEscape(r.Meta.Description))
	fmt.Fprintf(&b, "  <meta:generator>%s</meta:generator>\n", xmlEscape(r.Meta.Generator))
	fmt.Fprintf(&b, "  <meta:creation-date>%s</meta:creation-date>\n", now)
	b.WriteString(" </office:meta>\n</office:document-meta>\n")
	return b.String()
}

func manifestXML(images []imageEntry) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="` + mimetype + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="meta.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="settings.xml" manifest:media-type="text/xml"/>
`)
	for _, img := range images {
		fmt.Fprintf(&b, " <manifest:file-entry manifest:full-path=%q manifest:media-type=%q/>\n",
			img.ArchiveName, imageMIME(img.ArchiveName))
	}
	b.WriteString("</manifest:manifest>\n")
	return b.String()
}

func imageMIME(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tiff", ".tif":
		return "image/tiff"
	default:
		return "image/png"
	}
}
