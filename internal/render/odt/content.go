package odt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/promtec/gostdoc/internal/ir"
	"github.com/promtec/gostdoc/internal/toc"
)

const contentHeader = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
 xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
 xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
 xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"
 xmlns:draw="urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
 xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
 xmlns:xlink="http://www.w3.org/1999/xlink"
 xmlns:svg="urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
 office:version="1.2">
`

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string { return xmlEscaper.Replace(s) }

// escapedText escapes s and turns embedded newlines into ODF line breaks.
func escapedText(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = xmlEscape(line)
	}
	return strings.Join(lines, "<text:line-break/>")
}

// imageEntry records an image that must be packed into the archive.
type imageEntry struct {
	SourcePath  string // path on disk, relative to BaseDir
	ArchiveName string // Pictures/... name inside the package
}

// contentWriter accumulates the body of content.xml.
type contentWriter struct {
	baseDir  string
	buf      strings.Builder
	images   []imageEntry
	problems []string
}

// renderContent turns the instruction stream into the full content.xml
// text, the list of images to pack and any problems found on the way.
func renderContent(stream *ir.Stream, index *toc.Index, baseDir string) (string, []imageEntry, []string) {
	w := &contentWriter{baseDir: baseDir}

	w.buf.WriteString(contentHeader)
	w.buf.WriteString(automaticStyles)
	w.buf.WriteString("\n <office:body>\n  <office:text>\n")

	for _, op := range stream.Ops {
		switch op.Kind {
		case ir.OpHeading:
			w.writeHeading(op.Heading)
		case ir.OpParagraph:
			w.writeParagraph(op.Paragraph)
		case ir.OpTable:
			w.writeTable(op.Table)
		case ir.OpFigure:
			w.writeFigure(op.Figure)
		case ir.OpPageBreak:
			w.buf.WriteString(`   <text:p text:style-name="PageBreak"/>` + "\n")
		case ir.OpTOC:
			w.writeTOC(index)
		}
	}

	w.buf.WriteString("  </office:text>\n </office:body>\n</office:document-content>\n")
	return w.buf.String(), w.images, w.problems
}

func (w *contentWriter) writeHeading(h *ir.Heading) {
	style := styleNameFor(h.Style)
	text := escapedText(h.Text)
	if h.Anchor != "" {
		anchor := xmlEscape(h.Anchor)
		fmt.Fprintf(&w.buf,
			"   <text:p text:style-name=%q><text:bookmark-start text:name=%q/>%s<text:bookmark-end text:name=%q/></text:p>\n",
			style, anchor, text, anchor)
		return
	}
	fmt.Fprintf(&w.buf, "   <text:p text:style-name=%q>%s</text:p>\n", style, text)
}

func (w *contentWriter) writeParagraph(p *ir.Paragraph) {
	fmt.Fprintf(&w.buf, "   <text:p text:style-name=%q>%s</text:p>\n",
		styleNameFor(p.Style), escapedText(p.Text))
}

func (w *contentWriter) writeTOC(index *toc.Index) {
	w.buf.WriteString("   <text:p text:style-name=\"TOCTitle\">Содержание</text:p>\n")
	if index == nil {
		return
	}
	for _, e := range index.Entries() {
		style := "TOC"
		if e.Depth > 0 {
			style = "TOC2"
		}
		label := e.Title
		if e.DisplayNumber != "" {
			label = e.DisplayNumber + " " + label
		}
		fmt.Fprintf(&w.buf,
			"   <text:p text:style-name=%q>%s<text:tab/><text:bookmark-ref text:reference-format=\"page\" text:ref-name=%q>1</text:bookmark-ref></text:p>\n",
			style, xmlEscape(label), xmlEscape(e.AnchorID))
	}
}

func (w *contentWriter) writeTable(t *ir.Table) {
	fmt.Fprintf(&w.buf, "   <text:p text:style-name=\"TableTitle\">%s</text:p>\n", escapedText(t.Title))

	// A table without columns degrades to its caption.
	cols := t.Columns()
	if cols == 0 {
		return
	}
	fmt.Fprintf(&w.buf, "   <table:table table:name=\"Table%d\" table:style-name=\"DocTable\">\n", t.Number)
	fmt.Fprintf(&w.buf, "    <table:table-column table:style-name=\"DocTableColumn\" table:number-columns-repeated=\"%d\"/>\n", cols)

	if len(t.Headers) > 0 {
		w.buf.WriteString("    <table:table-header-rows>\n     <table:table-row>\n")
		for _, h := range t.Headers {
			w.writeCell(h, "TableHeader")
		}
		w.buf.WriteString("     </table:table-row>\n    </table:table-header-rows>\n")
	}
	for _, row := range t.Rows {
		w.buf.WriteString("    <table:table-row>\n")
		for _, cell := range row {
			w.writeCell(cell, "TableCell")
		}
		w.buf.WriteString("    </table:table-row>\n")
	}
	w.buf.WriteString("   </table:table>\n")
}

func (w *contentWriter) writeCell(text, style string) {
	fmt.Fprintf(&w.buf,
		"      <table:table-cell table:style-name=\"DocTableCell\" office:value-type=\"string\"><text:p text:style-name=%q>%s</text:p></table:table-cell>\n",
		style, escapedText(text))
}

func (w *contentWriter) writeFigure(f *ir.Figure) {
	src := f.Path
	if w.baseDir != "" && !filepath.IsAbs(src) {
		src = filepath.Join(w.baseDir, src)
	}
	if _, err := os.Stat(src); err != nil {
		w.problems = append(w.problems,
			fmt.Sprintf("рисунок %d: файл %s не найден", f.Number, f.Path))
		fmt.Fprintf(&w.buf, "   <text:p text:style-name=\"ImageCaptionCenter\">%s</text:p>\n", escapedText(f.Caption))
		fmt.Fprintf(&w.buf, "   <text:p text:style-name=\"Normal\">[Изображение: %s]</text:p>\n", xmlEscape(f.Path))
		return
	}

	w.images = append(w.images, imageEntry{SourcePath: src, ArchiveName: f.ArchiveName})

	w.buf.WriteString("   <text:p text:style-name=\"GraphicsCenter\">")
	fmt.Fprintf(&w.buf,
		`<draw:frame draw:style-name="DocFrame" draw:name="Figure%d" text:anchor-type="as-char" svg:width=%q svg:height=%q><draw:image xlink:href=%q xlink:type="simple" xlink:show="embed" xlink:actuate="onLoad"/></draw:frame>`,
		f.Number, f.Width, f.Height, f.ArchiveName)
	w.buf.WriteString("</text:p>\n")
	fmt.Fprintf(&w.buf, "   <text:p text:style-name=\"ImageCaptionCenter\">%s</text:p>\n", escapedText(f.Caption))
}
