// Package markdown extracts the ordered heading sequence and front-matter
// title from a markdown document.
package markdown

import (
	"bytes"
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"
	"gopkg.in/yaml.v3"

	"github.com/p5chmitz/mdtree/internal/toc"
)

// Document is the extractor's view of one markdown file: the front-matter
// title (empty when absent) and every heading in document order.
type Document struct {
	Title    string
	Headings []toc.Heading
}

// Filtered returns the headings strictly below minLevel in the hierarchy,
// i.e. those with level > minLevel. This is the pre-filter the tree builder's
// contract assumes.
func (d Document) Filtered(minLevel int) []toc.Heading {
	var out []toc.Heading
	for _, h := range d.Headings {
		if h.Level > minLevel {
			out = append(out, h)
		}
	}
	return out
}

var frontMatterDelim = []byte("---")

// Extract parses src and collects its headings. A leading YAML front-matter
// block is decoded for a title and stripped before the markdown parse.
func Extract(src []byte) Document {
	var doc Document
	doc.Title, src = splitFrontMatter(src)

	root := gm.Parse(src, gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.Autolink,
	))

	ast.WalkFunc(root, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if h, ok := n.(*ast.Heading); ok {
			doc.Headings = append(doc.Headings, toc.Heading{
				Level: h.Level,
				Title: headingText(h),
			})
			return ast.SkipChildren
		}
		return ast.GoToNext
	})

	return doc
}

// splitFrontMatter strips a leading "---" delimited block from src and
// returns any title it declares. Malformed YAML is ignored rather than
// failing the whole document; the block is still stripped.
func splitFrontMatter(src []byte) (string, []byte) {
	rest, ok := bytes.CutPrefix(src, frontMatterDelim)
	if !ok || (len(rest) > 0 && rest[0] != '\n' && rest[0] != '\r') {
		return "", src
	}
	end, after := closingDelim(rest)
	if end < 0 {
		return "", src
	}
	block := rest[:end]
	body := after

	var meta struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return "", body
	}
	return strings.TrimSpace(meta.Title), body
}

// closingDelim finds the first "---" that sits alone on its line and returns
// the offset of its preceding newline plus the bytes after the delimiter, or
// -1 when none exists. "----" or "---text" lines do not close the block.
func closingDelim(rest []byte) (int, []byte) {
	for from := 0; ; {
		i := bytes.Index(rest[from:], []byte("\n---"))
		if i < 0 {
			return -1, nil
		}
		end := from + i
		after := rest[end+len("\n---"):]
		if len(after) == 0 || after[0] == '\n' || after[0] == '\r' {
			return end, after
		}
		from = end + 1
	}
}

// headingText collects the literal text of a heading's inline children,
// dropping formatting such as emphasis or code spans.
func headingText(h *ast.Heading) string {
	var b strings.Builder
	ast.WalkFunc(h, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if leaf := n.AsLeaf(); leaf != nil {
			b.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(b.String())
}
