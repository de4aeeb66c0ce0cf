// Package toc assigns hierarchical numbers to the section tree and
// collects the table-of-contents entries in a single pre-pass. The
// resulting Index is the join point between numbering and emission: both
// look up the same id to get the same number and anchor.
package toc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/promtec/gostdoc/internal/data"
	"github.com/promtec/gostdoc/internal/doctree"
)

// Document type identifiers. They drive the numbering and TOC eligibility
// of the introduction node.
const (
	DocTypeManual        = "re" // руководство по эксплуатации
	DocTypeSpecification = "tu" // технические условия
	DocTypePassport      = "ps" // паспорт изделия
)

// Options configures a collection pass.
type Options struct {
	// DocType selects the per-type eligibility of the intro node.
	DocType string
	// MaxDepth caps the TOC: a node enters it only when its nesting
	// level below the root is strictly less than MaxDepth.
	MaxDepth int
}

// Entry is one table-of-contents record. Entries also exist for nodes that
// are excluded from the TOC (InTOC false) so every heading has an anchor.
type Entry struct {
	AnchorID      string
	SectionID     string
	Depth         int
	Title         string
	DisplayNumber string
	Page          int
	Numbered      bool
	InTOC         bool
	IsIntro       bool
}

// Index holds the numbering and TOC state of one document build.
type Index struct {
	opts      Options
	res       *data.Resolver
	numbers   map[string][]int
	byID      map[string]Entry
	entries   []Entry
	bookmarks int
	sections  int // running depth-0 counter
}

// Collect walks the tree depth-first in array order and builds the Index.
// res resolves placeholders in display titles; it may be nil.
func Collect(doc *doctree.Document, res *data.Resolver, opts Options) *Index {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 2
	}
	idx := &Index{
		opts:    opts,
		res:     res,
		numbers: make(map[string][]int),
		byID:    make(map[string]Entry),
	}
	idx.walk(doc.Sections, nil, 0)
	return idx
}

// introFlags returns the numbering and TOC eligibility of the intro node
// for the given document type. The intro is the only node where the two
// flags differ across types.
func introFlags(docType string) (numbered, inTOC bool) {
	switch docType {
	case DocTypeManual:
		return false, false
	case DocTypeSpecification:
		return false, true
	default:
		return true, true
	}
}

func (idx *Index) walk(nodes []*doctree.Node, parentNum []int, level int) {
	local := 0
	for _, n := range nodes {
		// Service sections carry no number and no TOC entry, but their
		// children (if any) are still visited.
		if doctree.IsStructural(n.ID) {
			idx.walk(n.Children(), parentNum, level)
			continue
		}

		numbered, inTOC := true, true
		isIntro := n.ID == doctree.IDIntro
		if isIntro {
			numbered, inTOC = introFlags(idx.opts.DocType)
		}

		// Every numbered root node draws from the running section
		// counter, whatever its own nesting shape is.
		var num []int
		if numbered {
			if parentNum == nil {
				idx.sections++
				num = []int{idx.sections}
			} else {
				local++
				num = append(append([]int(nil), parentNum...), local)
			}
		}
		if n.ID != "" {
			idx.numbers[n.ID] = num
		}

		title := n.Name
		if idx.res != nil {
			title = idx.res.Resolve(title)
		}

		entry := Entry{
			SectionID:     n.ID,
			Depth:         level,
			Title:         title,
			DisplayNumber: joinNumber(num),
			Page:          1,
			Numbered:      numbered,
			IsIntro:       isIntro,
		}

		// Untitled anonymous nodes keep numbering consistent but are not
		// addressable and never show up in the TOC.
		addressable := n.ID != "" && strings.TrimSpace(title) != ""

		if inTOC && addressable && level < idx.opts.MaxDepth {
			idx.bookmarks++
			entry.AnchorID = fmt.Sprintf("toc_%s_%d", n.ID, idx.bookmarks)
			entry.InTOC = true
			idx.entries = append(idx.entries, entry)
		} else if n.ID != "" {
			entry.AnchorID = fmt.Sprintf("toc_%s_%s", n.ID, n.ID)
		}
		if n.ID != "" {
			idx.byID[n.ID] = entry
		}

		idx.walk(n.Children(), num, level+1)
	}
}

// NumberOf returns the display number ("2.3.1") for an id, or the empty
// string for unknown or unnumbered nodes. It never fails.
func (idx *Index) NumberOf(id string) string {
	return joinNumber(idx.numbers[id])
}

// AnchorFor returns the anchor id for a section id, or "".
func (idx *Index) AnchorFor(id string) string {
	return idx.byID[id].AnchorID
}

// EntryFor returns the full record for a section id.
func (idx *Index) EntryFor(id string) (Entry, bool) {
	e, ok := idx.byID[id]
	return e, ok
}

// Entries returns the ordered TOC entries.
func (idx *Index) Entries() []Entry {
	return idx.entries
}

func joinNumber(num []int) string {
	if len(num) == 0 {
		return ""
	}
	parts := make([]string, len(num))
	for i, v := range num {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}
