package toc

import (
	"errors"
	"fmt"
)

// ErrAboveRoot reports a heading whose level would place it above the
// document root. The level sequence is malformed and construction stops;
// clamping instead would corrupt ancestry for every later heading.
var ErrAboveRoot = errors.New("heading level falls below the tree root")

// Build constructs a tree from headings in a single forward pass. baseLevel
// is the level treated as sitting at the root; callers are expected to have
// filtered out headings at or below it.
//
// The pass keeps a cursor on the most recently attached node and its level.
// Each heading relates to the cursor in exactly one of four ways: one level
// deeper (plain child), more than one level deeper (placeholder nodes bridge
// the gap), the same level (sibling), or shallower (ascend by the level
// difference before attaching). The cursor always moves to the node just
// attached, so every comparison is relative to the latest insertion.
func Build(baseLevel int, headings []Heading) (*Tree, error) {
	tree := NewTree()
	levelCursor := baseLevel
	positionCursor := tree.Root()

	for _, h := range headings {
		n := tree.NewNode(Payload{Kind: KindHeading, Level: h.Level, Title: h.Title})

		switch {
		case h.Level == levelCursor+1:
			if err := tree.AttachChild(positionCursor, n); err != nil {
				return nil, err
			}
			levelCursor = h.Level

		case h.Level > levelCursor+1:
			// Bridge each missing level with a placeholder, deepening
			// the cursor one step at a time.
			for levelCursor+1 < h.Level {
				ph := tree.NewNode(Payload{Kind: KindPlaceholder})
				if err := tree.AttachChild(positionCursor, ph); err != nil {
					return nil, err
				}
				positionCursor = ph
				levelCursor++
			}
			if err := tree.AttachChild(positionCursor, n); err != nil {
				return nil, err
			}
			levelCursor = h.Level

		case h.Level == levelCursor:
			// Sibling: attach one level up so it lands alongside the
			// cursor, not beneath it.
			parent := tree.Parent(positionCursor)
			if parent == NoPos {
				return nil, fmt.Errorf("heading %q (level %d): %w", h.Title, h.Level, ErrAboveRoot)
			}
			if err := tree.AttachChild(parent, n); err != nil {
				return nil, err
			}

		default: // h.Level < levelCursor
			diff := levelCursor - h.Level
			for i := 0; i <= diff; i++ {
				positionCursor = tree.Parent(positionCursor)
				if positionCursor == NoPos {
					return nil, fmt.Errorf("heading %q (level %d): %w", h.Title, h.Level, ErrAboveRoot)
				}
			}
			if err := tree.AttachChild(positionCursor, n); err != nil {
				return nil, err
			}
			levelCursor = h.Level
		}

		positionCursor = n
	}

	return tree, nil
}
