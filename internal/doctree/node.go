// Package doctree defines the recursive section tree of a GOST document
// and its structural validation.
package doctree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Special node ids with fixed structural roles. They are recognised by the
// numbering and emission passes and must not be used for ordinary sections.
const (
	IDTitlePage       = "title_page"
	IDTableOfContents = "table_of_contents"
	IDAppendices      = "appendices"
	IDIntro           = "intro"
)

// IsStructural reports whether the id names a service section (title page,
// TOC placeholder, appendices) that is never numbered and never enters the
// table of contents.
func IsStructural(id string) bool {
	return id == IDTitlePage || id == IDTableOfContents || id == IDAppendices
}

// Node is one entry of the section tree. At most one of the three nesting
// arrays is populated; which one it is determines the node's Kind.
type Node struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	Subsections []*Node `yaml:"subsections"`
	Points      []*Node `yaml:"points"`
	Subpoints   []*Node `yaml:"subpoints"`

	Blocks []Block `yaml:"blocks"`

	// Content carries the flat item list of the title page and appendices
	// sections (the legacy pre-blocks schema).
	Content []ContentItem `yaml:"content"`

	// Kind and Depth are assigned once by Normalize and are not part of
	// the YAML schema.
	Kind  Kind `yaml:"-"`
	Depth int  `yaml:"-"`
}

// Children returns whichever nesting array is present, or nil.
func (n *Node) Children() []*Node {
	switch {
	case n.Subsections != nil:
		return n.Subsections
	case n.Points != nil:
		return n.Points
	case n.Subpoints != nil:
		return n.Subpoints
	}
	return nil
}

// ContentItem is one element of a title page or appendices content list.
type ContentItem struct {
	Type  string `yaml:"type"`
	ID    string `yaml:"id"`
	Value string `yaml:"value"`
	Count int    `yaml:"count"`

	// Legacy appendices items reuse the block field names.
	Text  string `yaml:"text"`
	List  *List  `yaml:"list"`
	Table *Table `yaml:"table"`
	Image *Image `yaml:"image"`
}

// Document is the root of a parsed document template.
type Document struct {
	Sections []*Node `yaml:"sections"`
}

// Parse unmarshals a document template and normalizes the tree.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document template: %w", err)
	}
	Normalize(doc.Sections)
	return &doc, nil
}

// Load reads and parses a document template file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document template: %w", err)
	}
	return Parse(data)
}
