// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

// Document shell lines added by WrapDocument.
const (
	docDoctype   = "<!DOCTYPE html>"
	docHTMLOpen  = "<html>"
	docBodyOpen  = "<body>"
	docBodyClose = "</body>"
	docHTMLClose = "</html>"
)

// WrapDocument embeds the render in a minimal HTML document: doctype,
// <html> and <body> lines before the table markup, matching closing tags
// after it. The interior table lines are not altered. A table with an
// absent render is left untouched.
//
// Call at most once per table; a second call duplicates the wrapper
// lines.
func (t *Table) WrapDocument() {
	if t.render.Absent() {
		return
	}
	lines := make([]string, 0, len(t.render.lines)+5)
	lines = append(lines, docDoctype, docHTMLOpen, docBodyOpen)
	lines = append(lines, t.render.lines...)
	lines = append(lines, docBodyClose, docHTMLClose)
	t.render = Render{lines: lines, ok: true}
}
