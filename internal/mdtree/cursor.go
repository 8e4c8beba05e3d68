package mdtree

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
)

// Cursor is a cheap-to-clone logical position: (tree, descendant index).
// It borrows from its Tree and must not outlive it.
type Cursor struct {
	tree *Tree
	node ast.Node
}

// Clone returns an independent copy of the cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{tree: c.tree, node: c.node}
}

// Node returns the underlying goldmark node.
func (c *Cursor) Node() ast.Node { return c.node }

// Tree returns the tree this cursor was cut from.
func (c *Cursor) Tree() *Tree { return c.tree }

// Index returns the cursor's pre-order descendant index within its tree.
func (c *Cursor) Index() int { return c.tree.indexOf(c.node) }

// Kind returns the structural kind of the current node.
func (c *Cursor) Kind() Kind { return KindOf(c.node) }

// ChildCount returns the number of direct children of the current node.
func (c *Cursor) ChildCount() int {
	n := 0
	for ch := c.node.FirstChild(); ch != nil; ch = ch.NextSibling() {
		n++
	}
	return n
}

// GotoFirstChild moves the cursor to its first child, if any.
func (c *Cursor) GotoFirstChild() bool {
	child := c.node.FirstChild()
	if child == nil {
		return false
	}
	c.node = child
	return true
}

// GotoNextSibling moves the cursor to its next sibling, if any.
func (c *Cursor) GotoNextSibling() bool {
	sib := c.node.NextSibling()
	if sib == nil {
		return false
	}
	c.node = sib
	return true
}

// GotoParent moves the cursor to its parent, if any.
func (c *Cursor) GotoParent() bool {
	parent := c.node.Parent()
	if parent == nil {
		return false
	}
	c.node = parent
	return true
}

// GotoDescendant jumps directly to a pre-order descendant index in the
// same tree.
func (c *Cursor) GotoDescendant(i int) bool {
	n := c.tree.At(i)
	if n == nil {
		return false
	}
	c.node = n.node
	return true
}

// Children returns cursors for every direct child, in document order.
func (c *Cursor) Children() []*Cursor {
	var out []*Cursor
	for ch := c.node.FirstChild(); ch != nil; ch = ch.NextSibling() {
		out = append(out, &Cursor{tree: c.tree, node: ch})
	}
	return out
}

// ByteRange returns the start/end byte offsets covered by the node's lines,
// when the node kind tracks lines (blocks); text leaves fall back to their
// segment bounds. Other nodes without lines return 0, 0.
func (c *Cursor) ByteRange() (start, end int) {
	type liner interface{ Lines() *ast.Segments }
	if l, ok := c.node.(liner); ok && l.Lines().Len() > 0 {
		first := l.Lines().At(0)
		last := l.Lines().At(l.Lines().Len() - 1)
		return first.Start, last.Stop
	}
	if t, ok := c.node.(*ast.Text); ok {
		return t.Segment.Start, t.Segment.Stop
	}
	return 0, 0
}

// Text returns the literal text content of a leaf node: a text run, the
// concatenated segments of a code span, or a heading/link's inline text.
func (c *Cursor) Text() []byte {
	return nodeText(c.node, c.tree.source)
}

// Destination returns the link/image destination bytes, or nil.
func (c *Cursor) Destination() []byte {
	switch n := c.node.(type) {
	case *ast.Link:
		return n.Destination
	case *ast.Image:
		return n.Destination
	default:
		return nil
	}
}

// InfoString returns a fenced code block's info string bytes.
func (c *Cursor) InfoString() []byte {
	n, ok := c.node.(*ast.FencedCodeBlock)
	if !ok || n.Info == nil {
		return nil
	}
	return n.Info.Segment.Value(c.tree.source)
}

// CodeBlockBody returns a fenced/indented code block's raw body, newlines
// preserved, trailing newline stripped.
func (c *Cursor) CodeBlockBody() []byte {
	type liner interface{ Lines() *ast.Segments }
	l, ok := c.node.(liner)
	if !ok {
		return nil
	}
	var buf bytes.Buffer
	lines := l.Lines()
	for i := 0; i < lines.Len(); i++ {
		buf.Write(lines.At(i).Value(c.tree.source))
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// HeadingLevel returns the ATX heading level (1-6), or 0 if not a heading.
func (c *Cursor) HeadingLevel() int {
	h, ok := c.node.(*ast.Heading)
	if !ok {
		return 0
	}
	return h.Level
}

// IsOrdered reports whether a list node is ordered.
func (c *Cursor) IsOrdered() bool {
	l, ok := c.node.(*ast.List)
	return ok && l.IsOrdered()
}

func nodeText(n ast.Node, source []byte) []byte {
	switch v := n.(type) {
	case *ast.Text:
		return v.Segment.Value(source)
	case *ast.String:
		return v.Value
	case *ast.CodeSpan:
		var buf bytes.Buffer
		for ch := v.FirstChild(); ch != nil; ch = ch.NextSibling() {
			if t, ok := ch.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return buf.Bytes()
	case *ast.AutoLink:
		return v.URL(source)
	default:
		var buf bytes.Buffer
		for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
			buf.Write(nodeText(ch, source))
		}
		return buf.Bytes()
	}
}
