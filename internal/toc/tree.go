// Package toc builds a hierarchical table of contents from the flat
// sequence of heading levels found in a document.
package toc

import "fmt"

// Pos is a stable handle to a node in a Tree's arena.
type Pos int

// NoPos is the absent position, returned where a node has no parent.
const NoPos Pos = -1

// Kind discriminates node payloads.
type Kind int

const (
	// KindRoot marks the synthetic root present in every tree.
	KindRoot Kind = iota
	// KindHeading marks a real heading taken from the document.
	KindHeading
	// KindPlaceholder marks a synthetic node bridging a level gap.
	KindPlaceholder
)

// Payload is the data carried by one node.
type Payload struct {
	Kind  Kind
	Level int    // heading level as found in source; 0 for root and placeholders
	Title string // empty for root and placeholders
}

// Heading is one (level, title) pair in document order, as produced by the
// extractor.
type Heading struct {
	Level int
	Title string
}

type node struct {
	payload  Payload
	parent   Pos
	children []Pos
}

// Tree is a parent-linked multi-way tree of heading payloads. All nodes live
// in a single arena; freeing the Tree frees every node with it. Construction
// is single-writer, after which the tree is read-only.
type Tree struct {
	nodes []node
	size  int
}

// NewTree returns a tree containing only the synthetic root.
func NewTree() *Tree {
	return &Tree{
		nodes: []node{{payload: Payload{Kind: KindRoot}, parent: NoPos}},
		size:  1,
	}
}

// Root returns the position of the synthetic root. It is always present.
func (t *Tree) Root() Pos { return 0 }

// Size reports the number of attached nodes, root included.
func (t *Tree) Size() int { return t.size }

func (t *Tree) valid(p Pos) bool { return p >= 0 && int(p) < len(t.nodes) }

// NewNode allocates a detached node carrying payload and returns its
// position. The node counts toward Size only once attached.
func (t *Tree) NewNode(payload Payload) Pos {
	t.nodes = append(t.nodes, node{payload: payload, parent: NoPos})
	return Pos(len(t.nodes) - 1)
}

// Get returns the payload at p, reporting false when p is absent.
func (t *Tree) Get(p Pos) (Payload, bool) {
	if !t.valid(p) {
		return Payload{}, false
	}
	return t.nodes[p].payload, true
}

// Parent returns the parent of p, or NoPos when p is the root, detached, or
// absent.
func (t *Tree) Parent(p Pos) Pos {
	if !t.valid(p) {
		return NoPos
	}
	return t.nodes[p].parent
}

// Children returns p's children in attachment order. The caller must not
// modify the returned slice.
func (t *Tree) Children(p Pos) []Pos {
	if !t.valid(p) {
		return nil
	}
	return t.nodes[p].children
}

// AttachChild appends child to parent's children and sets the child's parent
// link. Size grows only on a successful attachment; attaching to an absent
// parent is an error and leaves the tree unchanged. A node must be attached
// at most once.
func (t *Tree) AttachChild(parent, child Pos) error {
	if !t.valid(parent) {
		return fmt.Errorf("attach child %d: parent position %d is absent", child, parent)
	}
	if !t.valid(child) {
		return fmt.Errorf("attach to %d: child position %d is absent", parent, child)
	}
	if t.nodes[child].parent != NoPos {
		return fmt.Errorf("attach to %d: node %d already has a parent", parent, child)
	}
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	t.nodes[child].parent = parent
	t.size++
	return nil
}

// Depth counts nodes on the path from the root to p inclusive, so the root
// has depth 1. Absent positions have depth 0.
func (t *Tree) Depth(p Pos) int {
	if !t.valid(p) {
		return 0
	}
	d := 1
	for cur := p; cur != t.Root(); d++ {
		cur = t.Parent(cur)
		if cur == NoPos {
			return 0 // detached node
		}
	}
	return d
}

// Height is 1 for a childless node and 1 plus the tallest child subtree
// otherwise. Absent positions have height 0.
func (t *Tree) Height(p Pos) int {
	if !t.valid(p) {
		return 0
	}
	h := 0
	for _, c := range t.nodes[p].children {
		if ch := t.Height(c); ch > h {
			h = ch
		}
	}
	return h + 1
}
