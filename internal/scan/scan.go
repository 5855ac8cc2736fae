// Package scan discovers markdown documents under a path and produces a
// rendered outline for each.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/p5chmitz/mdtree/internal/markdown"
	"github.com/p5chmitz/mdtree/internal/render"
	"github.com/p5chmitz/mdtree/internal/toc"
)

type Options struct {
	// Level excludes headings at and above it before building the tree.
	Level int
	// Extensions the walk accepts, lower case with leading dot.
	Extensions []string
	// Workers bounds concurrent document processing. Values below 1 mean 1.
	Workers int
	// Style is the renderer glyph set.
	Style render.Style
}

// Result is the outcome for one document. Exactly one of Outline and Err is
// meaningful.
type Result struct {
	Path    string
	Outline string
	Err     error
}

// Scan walks root recursively, processes every file with a matching
// extension, and returns one Result per file in walk order. Documents are
// independent trees, so they are processed concurrently; a document that
// fails to build reports its error in its Result without disturbing the
// rest.
func Scan(ctx context.Context, root string, opts Options) ([]Result, error) {
	paths, err := discover(root, opts.Extensions)
	if err != nil {
		return nil, err
	}
	slog.Debug("scan", "root", root, "documents", len(paths))

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outline, err := File(path, opts)
			if err != nil {
				slog.Warn("outline failed", "path", path, "error", err)
			}
			results[i] = Result{Path: path, Outline: outline, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// File builds and renders the outline for a single document.
func File(path string, opts Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}

	doc := markdown.Extract(data)
	name := doc.Title
	if name == "" {
		name = filepath.Base(path)
	}

	tree, err := toc.Build(opts.Level, doc.Filtered(opts.Level))
	if err != nil {
		return "", fmt.Errorf("building outline: %w", err)
	}
	slog.Debug("outline", "path", path, "nodes", tree.Size())

	return render.Render(name, tree, opts.Style), nil
}

// discover returns the matching files under root in deterministic walk
// order. root may itself be a file; the extension filter still applies.
func discover(root string, extensions []string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable entry must not suppress the rest of the
			// walk; only a root that cannot be opened at all is fatal.
			if path == root {
				return err
			}
			slog.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if slices.Contains(extensions, ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return paths, nil
}
