package ir

// Style names attached to emitted instructions. Renderers map them onto
// their own style vocabulary (ODF style names, CSS classes).
const (
	StyleHeading1  = "Heading1"
	StyleHeading2  = "Heading2"
	StyleClause    = "Clause"
	StyleSubclause = "Subclause"
	StyleNormal    = "Normal"

	StyleTableTitle   = "TableTitle"
	StyleImageCaption = "ImageCaption"

	// Title page styles, selected by title item id.
	StyleTitlePage    = "TitlePage"
	StyleTitleCompany = "TitleCompany"
	StyleTitleRight   = "TitleRight"
	StyleTitleLeft    = "TitleLeft"
	StyleTitleBottom  = "TitleBottom"
)

// StyleForDepth returns the heading style for a nesting depth.
func StyleForDepth(depth int) string {
	switch depth {
	case 0:
		return StyleHeading1
	case 1:
		return StyleHeading2
	case 2:
		return StyleClause
	case 3:
		return StyleSubclause
	default:
		return StyleNormal
	}
}
