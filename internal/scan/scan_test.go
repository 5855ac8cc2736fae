package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/p5chmitz/mdtree/internal/render"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func defaultOpts() Options {
	return Options{
		Extensions: []string{".md", ".mdx"},
		Workers:    2,
		Style:      render.Unicode,
	}
}

func TestScan_WalkOrderAndFiltering(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "b.md", "# B\n")
	writeFile(t, dir, "a.md", "# A\n")
	writeFile(t, dir, "notes.txt", "# not markdown\n")
	writeFile(t, dir, filepath.Join("sub", "c.mdx"), "# C\n")

	results, err := Scan(context.Background(), dir, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, r := range results {
		names = append(names, filepath.Base(r.Path))
	}
	want := []string{"a.md", "b.md", "c.mdx"}
	if len(names) != len(want) {
		t.Fatalf("scanned %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("result %d = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestScan_SingleFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "# Top\n## Nested\n")

	results, err := Scan(context.Background(), path, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !strings.Contains(results[0].Outline, "└── Top") {
		t.Errorf("outline missing heading:\n%s", results[0].Outline)
	}
	if !strings.Contains(results[0].Outline, "    └── Nested") {
		t.Errorf("outline missing nested heading:\n%s", results[0].Outline)
	}
}

func TestFile_FrontMatterTitleWinsOverFilename(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "raw-name.md", "---\ntitle: Pretty Name\n---\n# H\n")

	outline, err := File(path, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(outline, "Pretty Name\n") {
		t.Errorf("outline should start with front-matter title:\n%s", outline)
	}
}

func TestFile_FilenameFallback(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "plain.md", "# H\n")

	outline, err := File(path, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(outline, "plain.md\n") {
		t.Errorf("outline should start with file name:\n%s", outline)
	}
}

func TestFile_EmptyDocument(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.md", "no headings here\n")

	outline, err := File(path, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}
	want := "empty.md\n    []\n"
	if outline != want {
		t.Errorf("outline = %q, want %q", outline, want)
	}
}

func TestFile_LevelFilter(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "# Skipped\n## Kept\n### Deeper\n")

	opts := defaultOpts()
	opts.Level = 1
	outline, err := File(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(outline, "Skipped") {
		t.Errorf("level-1 heading should be excluded:\n%s", outline)
	}
	if !strings.Contains(outline, "└── Kept") {
		t.Errorf("level-2 heading should sit at the top:\n%s", outline)
	}
}

func TestScan_UnreadableSubdirIsSkipped(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("directory permissions do not apply to root")
	}
	dir := t.TempDir()
	writeFile(t, dir, "ok.md", "# OK\n")
	locked := filepath.Join(dir, "aa-locked")
	writeFile(t, locked, "hidden.md", "# Hidden\n")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	results, err := Scan(context.Background(), dir, defaultOpts())
	if err != nil {
		t.Fatalf("scan aborted on unreadable subdirectory: %v", err)
	}
	if len(results) != 1 || filepath.Base(results[0].Path) != "ok.md" {
		t.Errorf("results = %v, want just ok.md", results)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	t.Parallel()
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), defaultOpts())
	if err == nil {
		t.Error("expected error for missing root")
	}
}
