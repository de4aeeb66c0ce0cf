package ir

// Heading is a section heading instruction. Text already joins the display
// number and the resolved title; Anchor matches the TOC entry for the same
// section (empty when the section has none).
type Heading struct {
	Anchor string
	Text   string
	Style  string
}

// Paragraph is a body text instruction. Text may contain newlines; the
// renderer turns them into explicit line breaks.
type Paragraph struct {
	Text  string
	Style string
}
