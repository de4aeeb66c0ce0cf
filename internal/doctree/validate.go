package doctree

import (
	"fmt"
	"strings"
)

// Report is the outcome of a structural validation pass. The validator
// reports everything it finds; deciding which errors abort a build is the
// caller's policy.
type Report struct {
	Errors   []string
	Warnings []string
}

// OK reports whether validation produced no errors.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate checks the document structure: non-empty titles (the intro and
// the service sections are exempt), unique ids, well-formed content
// blocks, single-child points.
// It does not mutate the tree and is idempotent.
func Validate(doc *Document) *Report {
	r := &Report{}
	if len(doc.Sections) == 0 {
		r.errorf("document has no sections")
		return r
	}
	seen := make(map[string]bool)
	for _, sec := range doc.Sections {
		walkValidate(sec, nil, 1, seen, r)
	}
	return r
}

func walkValidate(n *Node, path []string, level int, seen map[string]bool, r *Report) {
	if n.ID != "" {
		if seen[n.ID] {
			r.errorf("duplicate id: %s", n.ID)
		}
		seen[n.ID] = true
	}

	// Service sections and the intro are displayed without a title of
	// their own, so a bare id entry is fine for them.
	if n.ID != IDIntro && !IsStructural(n.ID) && strings.TrimSpace(n.Name) == "" {
		r.errorf("node %s has no title", fmtPath(path, n.ID))
	}

	children := n.Children()

	// A clause consisting of a single sub-clause is permitted by
	// GOST R 2.105-2019 (6.5.7) but usually indicates a structuring
	// mistake, so it is only a warning.
	if len(children) == 1 && level >= 2 {
		r.warnf("%q consists of a single point", nodeLabel(n))
	}

	next := path
	if label := nodeLabel(n); label != "" {
		next = append(append([]string(nil), path...), label)
	}
	for _, c := range children {
		walkValidate(c, next, level+1, seen, r)
	}

	for _, b := range n.Blocks {
		validateBlock(&b, n.ID, r)
	}
}

func validateBlock(b *Block, nodeID string, r *Report) {
	switch b.Kind() {
	case BlockInvalid:
		r.errorf("malformed content block in node %s", nodeID)
	case BlockText:
		if strings.TrimSpace(b.Text) == "" {
			r.warnf("empty text block in node %s", nodeID)
		}
	case BlockList:
		if len(b.List.Items) == 0 {
			r.warnf("empty list in node %s", nodeID)
		}
	case BlockTable:
		if b.Table.ColumnCount() == 0 {
			r.warnf("table with no columns in node %s", nodeID)
		}
	}
}

func nodeLabel(n *Node) string {
	if strings.TrimSpace(n.Name) != "" {
		return n.Name
	}
	return n.ID
}

func fmtPath(path []string, id string) string {
	if id == "" {
		id = "?"
	}
	if len(path) == 0 {
		return id
	}
	return strings.Join(path, " > ") + " > " + id
}
