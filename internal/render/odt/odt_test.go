package odt

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/promtec/gostdoc/internal/ir"
)

func readArchive(t *testing.T, path string) (*zip.ReadCloser, map[string]string) {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	files := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return zr, files
}

func TestWriteFilePackageLayout(t *testing.T) {
	dir := t.TempDir()

	stream := ir.NewStream()
	stream.AddHeading("toc_s1_1", "1 Раздел", ir.StyleHeading1)
	stream.AddParagraph("Текст с <символами> & \"кавычками\".", ir.StyleClause)
	out := filepath.Join(dir, "doc.odt")

	r := &Renderer{BaseDir: dir, Meta: Metadata{Title: "Тест", Generator: "gostdoc"}}
	problems, err := r.WriteFile(out, stream, nil)
	if err != nil {
		t.Fatalf("failed to write package: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}

	zr, files := readArchive(t, out)
	defer zr.Close()

	first := zr.File[0]
	if first.Name != "mimetype" {
		t.Fatalf("expected mimetype first, got %s", first.Name)
	}
	if first.Method != zip.Store {
		t.Error("expected mimetype stored uncompressed")
	}
	if files["mimetype"] != "application/vnd.oasis.opendocument.text" {
		t.Errorf("unexpected mimetype: %q", files["mimetype"])
	}

	for _, name := range []string{"content.xml", "styles.xml", "meta.xml", "settings.xml", "META-INF/manifest.xml"} {
		if _, ok := files[name]; !ok {
			t.Errorf("missing archive entry %s", name)
		}
	}

	content := files["content.xml"]
	if !strings.Contains(content, `text:name="toc_s1_1"`) {
		t.Error("expected heading bookmark in content.xml")
	}
	if !strings.Contains(content, "Текст с &lt;символами&gt; &amp; &quot;кавычками&quot;.") {
		t.Error("expected escaped paragraph text in content.xml")
	}
	if !strings.Contains(files["meta.xml"], "<dc:title>Тест</dc:title>") {
		t.Error("expected title in meta.xml")
	}
}

func TestWriteFilePacksImages(t *testing.T) {
	dir := t.TempDir()
	mediaDir := filepath.Join(dir, "media")
	if err := os.MkdirAll(mediaDir, 0755); err != nil {
		t.Fatal(err)
	}
	// Payload content is irrelevant to the packaging.
	if err := os.WriteFile(filepath.Join(mediaDir, "view.png"), []byte("png-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	stream := ir.NewStream()
	stream.AddFigure(&ir.Figure{
		Number:      1,
		Caption:     "Рисунок 1 – Вид",
		Path:        "media/view.png",
		ArchiveName: "Pictures/image_1_abcd1234.png",
		Width:       "6.00cm",
		Height:      "4.50cm",
	})

	out := filepath.Join(dir, "doc.odt")
	r := &Renderer{BaseDir: dir}
	problems, err := r.WriteFile(out, stream, nil)
	if err != nil {
		t.Fatalf("failed to write package: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}

	zr, files := readArchive(t, out)
	defer zr.Close()

	if files["Pictures/image_1_abcd1234.png"] != "png-bytes" {
		t.Error("expected image payload in archive")
	}
	if !strings.Contains(files["META-INF/manifest.xml"], `manifest:full-path="Pictures/image_1_abcd1234.png"`) {
		t.Error("expected image manifest entry")
	}
	if !strings.Contains(files["content.xml"], `xlink:href="Pictures/image_1_abcd1234.png"`) {
		t.Error("expected draw:image reference in content.xml")
	}
}

func TestWriteFileMissingImage(t *testing.T) {
	dir := t.TempDir()

	stream := ir.NewStream()
	stream.AddFigure(&ir.Figure{
		Number:      1,
		Caption:     "Рисунок 1 – Вид",
		Path:        "media/lost.png",
		ArchiveName: "Pictures/image_1_ffff0000.png",
		Width:       "6.00cm",
		Height:      "4.50cm",
	})

	out := filepath.Join(dir, "doc.odt")
	r := &Renderer{BaseDir: dir}
	problems, err := r.WriteFile(out, stream, nil)
	if err != nil {
		t.Fatalf("failed to write package: %v", err)
	}
	if len(problems) != 1 || !strings.Contains(problems[0], "media/lost.png") {
		t.Errorf("expected missing file problem, got %v", problems)
	}

	zr, files := readArchive(t, out)
	defer zr.Close()

	if _, ok := files["Pictures/image_1_ffff0000.png"]; ok {
		t.Error("expected no image entry for missing file")
	}
	if !strings.Contains(files["content.xml"], "[Изображение: media/lost.png]") {
		t.Error("expected missing image notice in content.xml")
	}
}

func TestWriteFileEmptyTable(t *testing.T) {
	dir := t.TempDir()

	stream := ir.NewStream()
	stream.AddTable(&ir.Table{Number: 1, Title: "Таблица 1 – Без данных"})

	out := filepath.Join(dir, "doc.odt")
	r := &Renderer{BaseDir: dir}
	if _, err := r.WriteFile(out, stream, nil); err != nil {
		t.Fatalf("failed to write package: %v", err)
	}

	zr, files := readArchive(t, out)
	defer zr.Close()

	content := files["content.xml"]
	if !strings.Contains(content, "Таблица 1 – Без данных") {
		t.Error("expected table caption in content.xml")
	}
	if strings.Contains(content, "<table:table ") {
		t.Error("expected no table element for zero columns")
	}
	if strings.Contains(content, `table:number-columns-repeated="0"`) {
		t.Error("expected no zero-width column declaration")
	}
}

func TestStyleNameFor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{ir.StyleHeading1, "Heading_20_1"},
		{ir.StyleHeading2, "Heading_20_2"},
		{ir.StyleClause, "Clause"},
		{"", "Normal"},
	}
	for _, tt := range tests {
		if got := styleNameFor(tt.in); got != tt.want {
			t.Errorf("styleNameFor(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
