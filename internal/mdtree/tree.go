package mdtree

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ErrInvalidUTF8 is returned by Parse when source contains a byte sequence
// that is not valid UTF-8 (spec.md §6.2/§7's InvalidUTF8 variant).
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// ErrParserFailed is returned by Parse when goldmark itself rejects the
// document (spec.md §7's ParserError variant).
var ErrParserFailed = errors.New("markdown parser rejected the document")

// md is the shared goldmark instance used to parse both schema and input
// documents. Schema and input are parsed identically so that matcher
// code spans and ordinary code spans are indistinguishable to the parser;
// only the validator tells them apart.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithParserOptions(
		gmparser.WithAutoHeadingID(),
	),
)

// Tree is an immutable, pre-order descendant-indexed view over a parsed
// goldmark document. Source outlives every Cursor borrowed from it.
type Tree struct {
	source []byte
	root   ast.Node
	nodes  []ast.Node
	index  map[ast.Node]int
}

// Parse parses Markdown source into a Tree. Returns ErrInvalidUTF8 if source
// isn't valid UTF-8, or an error wrapping ErrParserFailed if goldmark itself
// rejects the document; callers translate either into the corresponding
// ValidationError variant per spec.md §7 (validate.NewParseFailureError).
func Parse(source []byte) (tree *Tree, err error) {
	if !utf8.Valid(source) {
		return nil, ErrInvalidUTF8
	}

	defer func() {
		if r := recover(); r != nil {
			tree, err = nil, fmt.Errorf("%w: %v", ErrParserFailed, r)
		}
	}()

	reader := text.NewReader(source)
	root := md.Parser().Parse(reader)
	return newTree(root, source), nil
}

func newTree(root ast.Node, source []byte) *Tree {
	t := &Tree{
		source: source,
		root:   root,
		index:  make(map[ast.Node]int),
	}
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		t.index[n] = len(t.nodes)
		t.nodes = append(t.nodes, n)
		return ast.WalkContinue, nil
	})
	return t
}

// Source returns the document's raw bytes.
func (t *Tree) Source() []byte { return t.source }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns a cursor positioned at the document root.
func (t *Tree) Root() *Cursor {
	return &Cursor{tree: t, node: t.root}
}

// At returns a cursor positioned at the given pre-order descendant index,
// or nil if the index is out of range.
func (t *Tree) At(descendantIndex int) *Cursor {
	if descendantIndex < 0 || descendantIndex >= len(t.nodes) {
		return nil
	}
	return &Cursor{tree: t, node: t.nodes[descendantIndex]}
}

func (t *Tree) indexOf(n ast.Node) int {
	if n == nil {
		return -1
	}
	if i, ok := t.index[n]; ok {
		return i
	}
	return -1
}
