package doctree

import "gopkg.in/yaml.v3"

// BlockKind identifies the payload of a content block.
type BlockKind string

const (
	BlockText      BlockKind = "text"
	BlockList      BlockKind = "list"
	BlockTable     BlockKind = "table"
	BlockImage     BlockKind = "image"
	BlockPageBreak BlockKind = "page_break"
	BlockInvalid   BlockKind = "invalid"
)

// Block is one typed unit of body content under a node. A block is a
// mapping with exactly one of the payload keys; a bare scalar is accepted
// as shorthand for a text block.
type Block struct {
	Text      string `yaml:"text"`
	List      *List  `yaml:"list"`
	Table     *Table `yaml:"table"`
	Image     *Image `yaml:"image"`
	PageBreak bool   `yaml:"page_break"`

	// Invalid marks a block whose YAML shape could not be decoded. The
	// validator reports it; the emitter skips it.
	Invalid bool `yaml:"-"`
}

// Kind returns the payload kind of the block.
func (b *Block) Kind() BlockKind {
	switch {
	case b.Invalid:
		return BlockInvalid
	case b.List != nil:
		return BlockList
	case b.Table != nil:
		return BlockTable
	case b.Image != nil:
		return BlockImage
	case b.PageBreak:
		return BlockPageBreak
	default:
		return BlockText
	}
}

// UnmarshalYAML accepts either a mapping block or a bare scalar (treated
// as text). Anything else is kept as an invalid block so that traversal
// never aborts on malformed input.
func (b *Block) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&b.Text)
	case yaml.MappingNode:
		type raw Block
		var r raw
		if err := value.Decode(&r); err != nil {
			b.Invalid = true
			return nil
		}
		*b = Block(r)
		known := false
		for i := 0; i+1 < len(value.Content); i += 2 {
			switch value.Content[i].Value {
			case "page_break":
				// page_break is presence-based: "page_break:" with a
				// null value still means a break.
				b.PageBreak = true
				known = true
			case "text", "list", "table", "image":
				known = true
			}
		}
		if !known {
			b.Invalid = true
		}
		return nil
	default:
		b.Invalid = true
		return nil
	}
}

// List is a styled item list. Style is one of bullet, numeric, alpha,
// roman, no_bullet; an unknown style falls back to bullet.
type List struct {
	Style string     `yaml:"style"`
	Items []ListItem `yaml:"items"`
}

// ListItem is a single list entry. The YAML form is either a scalar or a
// mapping with a text key.
type ListItem struct {
	Text string
}

func (it *ListItem) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		var r struct {
			Text string `yaml:"text"`
		}
		if err := value.Decode(&r); err != nil {
			return err
		}
		it.Text = r.Text
		return nil
	}
	return value.Decode(&it.Text)
}

// Table is a captioned table with a header row and data rows.
type Table struct {
	Name      string     `yaml:"name"`
	Headers   []string   `yaml:"headers"`
	Rows      []TableRow `yaml:"rows"`
	TextAfter string     `yaml:"text_after"`
}

// TableRow is one table row.
type TableRow struct {
	Cells []string `yaml:"cells"`
}

// ColumnCount returns the table width: the header length, or the widest
// row when there is no header.
func (t *Table) ColumnCount() int {
	if len(t.Headers) > 0 {
		return len(t.Headers)
	}
	max := 0
	for _, r := range t.Rows {
		if len(r.Cells) > max {
			max = len(r.Cells)
		}
	}
	return max
}

// Image is a figure reference with an optional caption and display size.
// Width and Height carry a unit suffix ("12cm", "80mm", "300px").
type Image struct {
	Path    string `yaml:"path"`
	Name    string `yaml:"name"`
	Caption string `yaml:"caption"`
	Width   string `yaml:"width"`
	Height  string `yaml:"height"`
}

// CaptionText returns the caption, falling back to the name.
func (im *Image) CaptionText() string {
	if im.Caption != "" {
		return im.Caption
	}
	return im.Name
}
