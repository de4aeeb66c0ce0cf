// Package ir defines the ordered stream of styled output instructions
// produced by the emitter. Renderers (ODT, HTML site) consume the stream
// without re-walking the section tree.
package ir

// OpKind identifies the instruction carried by an Op.
type OpKind string

const (
	OpHeading   OpKind = "heading"
	OpParagraph OpKind = "paragraph"
	OpTable     OpKind = "table"
	OpFigure    OpKind = "figure"
	OpPageBreak OpKind = "page_break"
	// OpTOC marks the position of the table of contents; renderers fill
	// it from the collected index.
	OpTOC OpKind = "toc"
)

// Op is one output instruction. Exactly one payload field matching Kind is
// set; page-break and TOC markers carry no payload.
type Op struct {
	Kind      OpKind
	Heading   *Heading
	Paragraph *Paragraph
	Table     *Table
	Figure    *Figure
}

// Stream is an ordered instruction sequence for one document build.
type Stream struct {
	Ops []Op
}

// NewStream returns an empty instruction stream.
func NewStream() *Stream {
	return &Stream{Ops: make([]Op, 0)}
}

// AddHeading appends a heading instruction.
func (s *Stream) AddHeading(anchor, text, style string) {
	s.Ops = append(s.Ops, Op{Kind: OpHeading, Heading: &Heading{
		Anchor: anchor,
		Text:   text,
		Style:  style,
	}})
}

// AddParagraph appends a paragraph instruction.
func (s *Stream) AddParagraph(text, style string) {
	s.Ops = append(s.Ops, Op{Kind: OpParagraph, Paragraph: &Paragraph{
		Text:  text,
		Style: style,
	}})
}

// AddTable appends a table instruction.
func (s *Stream) AddTable(t *Table) {
	s.Ops = append(s.Ops, Op{Kind: OpTable, Table: t})
}

// AddFigure appends a figure instruction.
func (s *Stream) AddFigure(f *Figure) {
	s.Ops = append(s.Ops, Op{Kind: OpFigure, Figure: f})
}

// AddPageBreak appends a page-break instruction.
func (s *Stream) AddPageBreak() {
	s.Ops = append(s.Ops, Op{Kind: OpPageBreak})
}

// AddTOC appends the table-of-contents marker.
func (s *Stream) AddTOC() {
	s.Ops = append(s.Ops, Op{Kind: OpTOC})
}

// Figures returns the figure instructions in document order.
func (s *Stream) Figures() []*Figure {
	var out []*Figure
	for _, op := range s.Ops {
		if op.Kind == OpFigure {
			out = append(out, op.Figure)
		}
	}
	return out
}
