// Package site renders document instruction streams into a small static
// HTML site: one page per document plus an index page, with navigation
// built from the collected section anchors.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/promtec/gostdoc/internal/ir"
	"github.com/promtec/gostdoc/internal/toc"
)

// Options configures a site build.
type Options struct {
	// OutputDir receives the generated pages and the media directory.
	OutputDir string
	// BaseDir resolves relative image paths of the source streams.
	BaseDir string
	// Title is the site-wide heading on the index page.
	Title string
}

// Document is one rendered document to publish.
type Document struct {
	Type     string // document type code, used in the page file name
	Title    string
	FileName string // source ODT file name, shown as a download link
	PDF      string // optional PDF file name, shown as a download link
	Stream   *ir.Stream
	Index    *toc.Index
}

// Builder writes the site.
type Builder struct {
	opts Options
	md   goldmark.Markdown
}

// New returns a site builder.
func New(opts Options) *Builder {
	if opts.Title == "" {
		opts.Title = "Эксплуатационная документация"
	}
	return &Builder{opts: opts, md: goldmark.New()}
}

// Build renders all documents and the index page into OutputDir. Media
// files referenced by the streams are copied under media/.
func (b *Builder) Build(docs []Document) error {
	if err := os.MkdirAll(filepath.Join(b.opts.OutputDir, "media"), 0o755); err != nil {
		return fmt.Errorf("create site directory: %w", err)
	}

	for _, doc := range docs {
		if err := b.writeDocPage(doc); err != nil {
			return fmt.Errorf("render %s page: %w", doc.Type, err)
		}
	}
	return b.writeIndex(docs)
}

// PageName returns the file name of a document page.
func PageName(docType string) string {
	return "doc_" + docType + ".html"
}

func (b *Builder) writeDocPage(doc Document) error {
	var body strings.Builder
	for _, op := range doc.Stream.Ops {
		switch op.Kind {
		case ir.OpHeading:
			b.writeHeading(&body, op.Heading)
		case ir.OpParagraph:
			b.writeParagraph(&body, op.Paragraph)
		case ir.OpTable:
			writeTable(&body, op.Table)
		case ir.OpFigure:
			b.writeFigure(&body, op.Figure)
		case ir.OpPageBreak:
			body.WriteString("<hr class=\"page-break\">\n")
		case ir.OpTOC:
			// The sidebar navigation replaces the in-document TOC.
		}
	}

	data := pageData{
		SiteTitle: b.opts.Title,
		Title:     doc.Title,
		Nav:       navEntries(doc.Index),
		Body:      template.HTML(body.String()),
		ODT:       doc.FileName,
		PDF:       doc.PDF,
	}
	return writeTemplate(filepath.Join(b.opts.OutputDir, PageName(doc.Type)), pageTmpl, data)
}

func (b *Builder) writeIndex(docs []Document) error {
	data := indexData{SiteTitle: b.opts.Title}
	for _, doc := range docs {
		data.Docs = append(data.Docs, indexEntry{
			Title: doc.Title,
			Page:  PageName(doc.Type),
			ODT:   doc.FileName,
			PDF:   doc.PDF,
		})
	}
	return writeTemplate(filepath.Join(b.opts.OutputDir, "index.html"), indexTmpl, data)
}

func headingLevel(style string) int {
	switch style {
	case ir.StyleHeading1:
		return 2
	case ir.StyleHeading2:
		return 3
	default:
		return 4
	}
}

func (b *Builder) writeHeading(w *strings.Builder, h *ir.Heading) {
	level := headingLevel(h.Style)
	if h.Anchor != "" {
		fmt.Fprintf(w, "<h%d id=%q>%s</h%d>\n", level, h.Anchor, template.HTMLEscapeString(h.Text), level)
		return
	}
	fmt.Fprintf(w, "<h%d>%s</h%d>\n", level, template.HTMLEscapeString(h.Text), level)
}

func (b *Builder) writeParagraph(w *strings.Builder, p *ir.Paragraph) {
	if strings.TrimSpace(p.Text) == "" {
		return
	}
	var buf bytes.Buffer
	if err := b.md.Convert([]byte(p.Text), &buf); err != nil {
		fmt.Fprintf(w, "<p>%s</p>\n", template.HTMLEscapeString(p.Text))
		return
	}
	w.Write(buf.Bytes())
}

func writeTable(w *strings.Builder, t *ir.Table) {
	fmt.Fprintf(w, "<p class=\"table-title\">%s</p>\n<table>\n", template.HTMLEscapeString(t.Title))
	if len(t.Headers) > 0 {
		w.WriteString("<thead><tr>")
		for _, h := range t.Headers {
			fmt.Fprintf(w, "<th>%s</th>", template.HTMLEscapeString(h))
		}
		w.WriteString("</tr></thead>\n")
	}
	w.WriteString("<tbody>\n")
	for _, row := range t.Rows {
		w.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(w, "<td>%s</td>", template.HTMLEscapeString(cell))
		}
		w.WriteString("</tr>\n")
	}
	w.WriteString("</tbody>\n</table>\n")
}

func (b *Builder) writeFigure(w *strings.Builder, f *ir.Figure) {
	rel, err := b.copyMedia(f)
	if err != nil {
		fmt.Fprintf(w, "<p class=\"figure-missing\">[Изображение: %s]</p>\n", template.HTMLEscapeString(f.Path))
	} else {
		fmt.Fprintf(w, "<figure><img src=%q alt=%q></figure>\n", rel, template.HTMLEscapeString(f.Caption))
	}
	fmt.Fprintf(w, "<p class=\"figure-caption\">%s</p>\n", template.HTMLEscapeString(f.Caption))
}

// copyMedia copies the figure's file into the site media directory, named
// after its archive name so pages never collide.
func (b *Builder) copyMedia(f *ir.Figure) (string, error) {
	src := f.Path
	if b.opts.BaseDir != "" && !filepath.IsAbs(src) {
		src = filepath.Join(b.opts.BaseDir, src)
	}
	name := filepath.Base(f.ArchiveName)
	if name == "" || name == "." {
		name = filepath.Base(f.Path)
	}
	rel := "media/" + name

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()
	out, err := os.Create(filepath.Join(b.opts.OutputDir, "media", name))
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return "", err
	}
	return rel, nil
}

type navEntry struct {
	Anchor string
	Label  string
	Deep   bool
}

func navEntries(index *toc.Index) []navEntry {
	if index == nil {
		return nil
	}
	var out []navEntry
	for _, e := range index.Entries() {
		label := e.Title
		if e.DisplayNumber != "" {
			label = e.DisplayNumber + " " + label
		}
		out = append(out, navEntry{Anchor: e.AnchorID, Label: label, Deep: e.Depth > 0})
	}
	return out
}

func writeTemplate(path string, tmpl *template.Template, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}
