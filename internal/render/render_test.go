package render

import (
	"strings"
	"testing"

	"github.com/p5chmitz/mdtree/internal/toc"
)

func build(t *testing.T, headings ...toc.Heading) *toc.Tree {
	t.Helper()
	tree, err := toc.Build(0, headings)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestRender_SingleHeading(t *testing.T) {
	t.Parallel()
	tree := build(t, toc.Heading{Level: 1, Title: "Intro"})
	got := Render("doc.md", tree, Unicode)
	want := "doc.md\n    └── Intro\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_EmptyTree(t *testing.T) {
	t.Parallel()
	got := Render("empty.md", build(t), Unicode)
	want := "empty.md\n    []\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_PlaceholderShown(t *testing.T) {
	t.Parallel()
	tree := build(t,
		toc.Heading{Level: 1, Title: "A"},
		toc.Heading{Level: 3, Title: "B"},
	)
	got := Render("gap.md", tree, Unicode)
	want := strings.Join([]string{
		"gap.md",
		"    └── A",
		"        └── []",
		"            └── B",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_BranchAndLastConnectors(t *testing.T) {
	t.Parallel()
	tree := build(t,
		toc.Heading{Level: 1, Title: "A"},
		toc.Heading{Level: 2, Title: "A1"},
		toc.Heading{Level: 2, Title: "A2"},
		toc.Heading{Level: 1, Title: "B"},
	)
	got := Render("doc.md", tree, Unicode)
	want := strings.Join([]string{
		"doc.md",
		"    ├── A",
		"    │   ├── A1",
		"    │   └── A2",
		"    └── B",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_ASCIIStyle(t *testing.T) {
	t.Parallel()
	tree := build(t,
		toc.Heading{Level: 1, Title: "A"},
		toc.Heading{Level: 1, Title: "B"},
	)
	got := Render("doc.md", tree, ASCII)
	want := "doc.md\n    |-- A\n    `-- B\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()
	tree := build(t,
		toc.Heading{Level: 1, Title: "A"},
		toc.Heading{Level: 2, Title: "B"},
		toc.Heading{Level: 1, Title: "C"},
	)
	first := Render("doc.md", tree, Unicode)
	second := Render("doc.md", tree, Unicode)
	if first != second {
		t.Error("rendering the same tree twice differed")
	}
}

func TestWalk_OneLinePerHeadingWithoutGaps(t *testing.T) {
	t.Parallel()
	headings := []toc.Heading{
		{Level: 1, Title: "A"},
		{Level: 2, Title: "B"},
		{Level: 2, Title: "C"},
		{Level: 1, Title: "D"},
	}
	tree, err := toc.Build(0, headings)
	if err != nil {
		t.Fatal(err)
	}
	lines := Walk(tree, Unicode)
	if len(lines) != len(headings) {
		t.Fatalf("walk produced %d lines, want %d", len(lines), len(headings))
	}
	for i, h := range headings {
		if lines[i].Label != h.Title {
			t.Errorf("line %d label = %q, want %q", i, lines[i].Label, h.Title)
		}
	}
}
