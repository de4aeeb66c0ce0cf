package doctree

// Kind is the structural role of a node, derived once from which nesting
// array is present. It replaces repeated key sniffing during traversal.
type Kind int

const (
	KindSection    Kind = iota // has subsections
	KindSubsection             // has points
	KindPoint                  // has subpoints
	KindSubpoint               // leaf with blocks
	KindClause                 // bare leaf
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindSubsection:
		return "subsection"
	case KindPoint:
		return "point"
	case KindSubpoint:
		return "subpoint"
	default:
		return "clause"
	}
}

// Normalize assigns Kind and Depth to every node in the tree. Depth is the
// nesting level below the root, independent of which children array a node
// carries: a blocks-only top-level section is still depth 0. The TOC
// collector and the emitter both read these fields, which keeps their
// depth classification identical by construction.
func Normalize(sections []*Node) {
	for _, n := range sections {
		normalizeNode(n, 0)
	}
}

func normalizeNode(n *Node, depth int) {
	n.Kind = classify(n)
	n.Depth = depth
	for _, c := range n.Children() {
		normalizeNode(c, depth+1)
	}
}

func classify(n *Node) Kind {
	switch {
	case n.Subsections != nil:
		return KindSection
	case n.Points != nil:
		return KindSubsection
	case n.Subpoints != nil:
		return KindPoint
	case n.Blocks != nil:
		return KindSubpoint
	default:
		return KindClause
	}
}
