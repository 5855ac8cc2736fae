// Package render turns a heading tree into an indented, box-drawn outline.
package render

import (
	"strings"

	"github.com/p5chmitz/mdtree/internal/toc"
)

// Style holds the connector glyphs. The shapes are presentation only; the
// walk itself never changes with the style.
type Style struct {
	Branch string // connector for a child with later siblings
	Last   string // connector for the final child
	Guide  string // vertical continuation under a Branch
	Indent string // blank continuation under a Last
}

var (
	Unicode = Style{Branch: "├── ", Last: "└── ", Guide: "│   ", Indent: "    "}
	ASCII   = Style{Branch: "|-- ", Last: "`-- ", Guide: "|   ", Indent: "    "}
)

// Line is one rendered node: the indentation accumulated from its ancestors,
// its own connector, and its display label.
type Line struct {
	Prefix    string
	Connector string
	Label     string
}

// Walk traverses tree in preorder and returns one Line per node below the
// root, children in stored order. The root itself is never emitted;
// placeholders are labelled "[]".
func Walk(tree *toc.Tree, style Style) []Line {
	var lines []Line
	var visit func(p toc.Pos, prefix string)
	visit = func(p toc.Pos, prefix string) {
		kids := tree.Children(p)
		for i, c := range kids {
			connector, continuation := style.Branch, style.Guide
			if i == len(kids)-1 {
				connector, continuation = style.Last, style.Indent
			}
			lines = append(lines, Line{Prefix: prefix, Connector: connector, Label: label(tree, c)})
			visit(c, prefix+continuation)
		}
	}
	visit(tree.Root(), "")
	return lines
}

func label(tree *toc.Tree, p toc.Pos) string {
	pl, ok := tree.Get(p)
	if !ok || pl.Kind == toc.KindPlaceholder {
		return "[]"
	}
	return pl.Title
}

// margin indents the outline under the name line.
const margin = "    "

// Render formats name and tree as a multi-line outline. A tree with a
// childless root renders as the name followed by an empty marker.
func Render(name string, tree *toc.Tree, style Style) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('\n')

	lines := Walk(tree, style)
	if len(lines) == 0 {
		b.WriteString(margin)
		b.WriteString("[]\n")
		return b.String()
	}
	for _, ln := range lines {
		b.WriteString(margin)
		b.WriteString(ln.Prefix)
		b.WriteString(ln.Connector)
		b.WriteString(ln.Label)
		b.WriteByte('\n')
	}
	return b.String()
}
