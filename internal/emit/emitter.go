// Package emit walks a normalized document tree and produces a flat
// instruction stream ready for rendering into ODT or HTML.
package emit

import (
	"crypto/md5"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/promtec/gostdoc/internal/data"
	"github.com/promtec/gostdoc/internal/doctree"
	"github.com/promtec/gostdoc/internal/ir"
	"github.com/promtec/gostdoc/internal/toc"
)

const (
	tableCounterToken = "{{table_counter_next}}"
	imageCounterToken = "{{image_counter_next}}"

	defaultImageWidth = "12cm"
)

// Options controls document emission.
type Options struct {
	// DocType is one of the document type codes ("re", "tu", "ps").
	DocType string
	// ImageScale multiplies declared image sizes. Zero means 0.5.
	ImageScale float64
}

// Counters holds the running table and figure numbers for one build.
type Counters struct {
	Table  int
	Figure int
}

// Emitter converts a document tree into an ir.Stream. An emitter carries
// per-build counter state and must not be reused across documents.
type Emitter struct {
	res      *data.Resolver
	index    *toc.Index
	opts     Options
	counters Counters
	stream   *ir.Stream
	problems []string
}

// New returns an emitter over the given placeholder resolver and section
// index. res may be nil, in which case placeholders resolve to "".
func New(res *data.Resolver, index *toc.Index, opts Options) *Emitter {
	if opts.ImageScale == 0 {
		opts.ImageScale = 0.5
	}
	return &Emitter{
		res:    res,
		index:  index,
		opts:   opts,
		stream: ir.NewStream(),
	}
}

// Counters reports the table and figure totals after Emit.
func (e *Emitter) Counters() Counters { return e.counters }

// Emit walks the document and returns the instruction stream plus any
// non-fatal problems encountered (missing captions, skipped blocks).
func (e *Emitter) Emit(doc *doctree.Document) (*ir.Stream, []string) {
	for _, sec := range doc.Sections {
		switch sec.ID {
		case doctree.IDTitlePage:
			e.emitTitlePage(sec)
		case doctree.IDTableOfContents:
			e.stream.AddTOC()
			e.stream.AddPageBreak()
		case doctree.IDAppendices:
			e.emitAppendices(sec)
		case doctree.IDIntro:
			e.emitNode(sec)
			e.stream.AddPageBreak()
		default:
			e.emitNode(sec)
		}
	}
	return e.stream, e.problems
}

func (e *Emitter) resolve(s string) string {
	if e.res == nil {
		return strings.TrimSpace(s)
	}
	return e.res.Resolve(s)
}

func (e *Emitter) emitTitlePage(n *doctree.Node) {
	for _, item := range n.Content {
		switch item.Type {
		case "blank_line":
			count := item.Count
			if count <= 0 {
				count = 1
			}
			for i := 0; i < count; i++ {
				e.stream.AddParagraph("", ir.StyleTitlePage)
			}
		case "text":
			e.emitTitleText(item)
		}
	}
	e.stream.AddPageBreak()
}

// emitTitleText places one title page text item with its role-specific
// style. The approval block keeps its raw multi-line layout.
func (e *Emitter) emitTitleText(item doctree.ContentItem) {
	switch item.ID {
	case "approval":
		e.stream.AddParagraph(item.Value, ir.StyleTitleRight)
		return
	}

	var style string
	upper := false
	switch item.ID {
	case "company_name":
		style = ir.StyleTitleCompany
	case "product_name":
		style = ir.StyleTitleCompany
		upper = true
	case "okpd_code":
		style = ir.StyleTitleLeft
	case "bottom_info":
		style = ir.StyleTitleBottom
	default:
		style = ir.StyleTitlePage
	}

	for _, line := range strings.Split(item.Value, "\n") {
		line = e.resolve(line)
		if line == "" {
			continue
		}
		if upper {
			line = strings.ToUpper(line)
		}
		e.stream.AddParagraph(line, style)
	}
}

func (e *Emitter) emitAppendices(n *doctree.Node) {
	e.stream.AddPageBreak()
	title := e.resolve(n.Name)
	if title == "" {
		title = "Приложения"
	}
	e.stream.AddHeading(e.index.AnchorFor(n.ID), title, ir.StyleHeading1)
	e.emitBlocks(contentBlocks(n.Content), n.Depth)
}

// contentBlocks converts legacy content items into regular blocks so that
// appendices share the list, table, figure and page-break emission paths.
func contentBlocks(items []doctree.ContentItem) []doctree.Block {
	var blocks []doctree.Block
	for _, item := range items {
		switch {
		case item.Type == "page_break":
			blocks = append(blocks, doctree.Block{PageBreak: true})
		case item.List != nil:
			blocks = append(blocks, doctree.Block{List: item.List})
		case item.Table != nil:
			blocks = append(blocks, doctree.Block{Table: item.Table})
		case item.Image != nil:
			blocks = append(blocks, doctree.Block{Image: item.Image})
		default:
			text := item.Value
			if text == "" {
				text = item.Text
			}
			if text != "" {
				blocks = append(blocks, doctree.Block{Text: text})
			}
		}
	}
	return blocks
}

// emitNode renders a numbered node: its heading, its content blocks and
// then its children in order.
func (e *Emitter) emitNode(n *doctree.Node) {
	title := e.replaceCounters(n.Name, n.Blocks, -1)
	title = e.resolve(title)
	if number := e.index.NumberOf(n.ID); number != "" {
		title = number + " " + title
	}
	if strings.TrimSpace(title) != "" {
		e.stream.AddHeading(e.index.AnchorFor(n.ID), title, ir.StyleForDepth(n.Depth))
	}

	e.emitBlocks(n.Blocks, n.Depth)

	for _, child := range n.Children() {
		e.emitNode(child)
	}
}

func (e *Emitter) emitBlocks(blocks []doctree.Block, depth int) {
	// Figure numbers that the blocks ahead will claim, so that forward
	// counter tokens in earlier text resolve to the right number.
	positions := map[int]int{}
	next := e.counters.Figure
	for i, b := range blocks {
		if b.Kind() == doctree.BlockImage {
			next++
			positions[i] = next
		}
	}

	for i, b := range blocks {
		switch b.Kind() {
		case doctree.BlockText:
			text := e.resolve(e.replaceCountersAt(b.Text, positions, i))
			if text == "" {
				continue
			}
			style := ir.StyleClause
			if depth >= 3 {
				style = ir.StyleNormal
			}
			e.stream.AddParagraph(text, style)
		case doctree.BlockList:
			e.emitList(b.List, positions, i, depth)
		case doctree.BlockTable:
			e.emitTable(b.Table)
		case doctree.BlockImage:
			e.emitFigure(b.Image)
		case doctree.BlockPageBreak:
			e.stream.AddPageBreak()
		default:
			e.problems = append(e.problems, "skipped malformed content block")
		}
	}
}

func (e *Emitter) emitList(l *doctree.List, positions map[int]int, pos, depth int) {
	if l == nil {
		return
	}
	var items []string
	for _, it := range l.Items {
		text := e.resolve(e.replaceCountersAt(it.Text, positions, pos))
		if text == "" {
			continue
		}
		items = append(items, text)
	}
	style := ir.StyleSubclause
	if depth < 2 {
		style = ir.StyleNormal
	}
	for i, text := range items {
		e.stream.AddParagraph(formatListItem(text, i, l.Style, i == len(items)-1), style)
	}
}

func (e *Emitter) emitTable(t *doctree.Table) {
	if t == nil {
		return
	}
	e.counters.Table++

	title := fmt.Sprintf("Таблица %d", e.counters.Table)
	if name := e.resolve(t.Name); name != "" {
		title += " – " + name
	}

	cols := t.ColumnCount()
	headers := make([]string, 0, len(t.Headers))
	for _, h := range t.Headers {
		headers = append(headers, e.resolve(h))
	}

	var rows [][]string
	for _, r := range t.Rows {
		if len(r.Cells) != cols {
			e.problems = append(e.problems,
				fmt.Sprintf("таблица %d: строка из %d ячеек при %d столбцах пропущена", e.counters.Table, len(r.Cells), cols))
			continue
		}
		cells := make([]string, 0, cols)
		for _, c := range r.Cells {
			cell := e.resolve(c)
			if cell == "" {
				cell = " "
			}
			cells = append(cells, cell)
		}
		rows = append(rows, cells)
	}

	e.stream.AddTable(&ir.Table{
		Number:  e.counters.Table,
		Title:   title,
		Headers: headers,
		Rows:    rows,
	})

	if after := e.resolve(t.TextAfter); after != "" {
		e.stream.AddParagraph(after, ir.StyleNormal)
	}
}

func (e *Emitter) emitFigure(img *doctree.Image) {
	if img == nil {
		return
	}
	e.counters.Figure++

	caption := fmt.Sprintf("Рисунок %d", e.counters.Figure)
	if text := e.resolve(img.CaptionText()); text != "" {
		caption += " – " + text
	}

	if strings.TrimSpace(img.Path) == "" {
		e.problems = append(e.problems,
			fmt.Sprintf("рисунок %d: не указан путь к файлу", e.counters.Figure))
		e.stream.AddParagraph(caption, ir.StyleTableTitle)
		e.stream.AddParagraph("[Изображение отсутствует]", ir.StyleNormal)
		return
	}

	width := img.Width
	if width == "" {
		width = defaultImageWidth
	}
	width = scaleSize(width, e.opts.ImageScale)

	var height string
	if img.Height != "" {
		height = scaleSize(img.Height, e.opts.ImageScale)
	} else {
		height = scaleSize(width, 0.75)
	}

	e.stream.AddFigure(&ir.Figure{
		Number:      e.counters.Figure,
		Caption:     caption,
		Path:        img.Path,
		ArchiveName: archiveName(img.Path, e.counters.Figure),
		Width:       width,
		Height:      height,
	})
}

// archiveName builds a collision-free name for the image inside the ODT
// package, keeping the original extension when it is a known raster type.
func archiveName(path string, number int) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif":
	default:
		ext = ".png"
	}
	sum := md5.Sum([]byte(path))
	return fmt.Sprintf("Pictures/image_%d_%x%s", number, sum[:4], ext)
}

// replaceCounters substitutes counter tokens in a heading, scanning the
// node's own blocks for the figures the tokens refer to.
func (e *Emitter) replaceCounters(s string, blocks []doctree.Block, pos int) string {
	positions := map[int]int{}
	next := e.counters.Figure
	for i, b := range blocks {
		if b.Kind() == doctree.BlockImage {
			next++
			positions[i] = next
		}
	}
	return e.replaceCountersAt(s, positions, pos)
}

// replaceCountersAt substitutes the table and image counter tokens. The
// image token resolves to the first figure emitted after position pos, or
// to the next global figure number when none follows in the same node.
func (e *Emitter) replaceCountersAt(s string, positions map[int]int, pos int) string {
	if strings.Contains(s, tableCounterToken) {
		s = strings.ReplaceAll(s, tableCounterToken, strconv.Itoa(e.counters.Table+1))
	}
	if strings.Contains(s, imageCounterToken) {
		number := 0
		for i, n := range positions {
			if i > pos && (number == 0 || n < number) {
				number = n
			}
		}
		if number == 0 {
			number = e.counters.Figure + 1
		}
		s = strings.ReplaceAll(s, imageCounterToken, strconv.Itoa(number))
	}
	return s
}
