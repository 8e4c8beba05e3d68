// Package mdtree adapts a parsed goldmark AST into the immutable,
// descendant-indexed tree that the validator pair-walks.
//
// goldmark does not emit the tree-sitter-style node kinds spec.md §6.3
// enumerates (no standalone atx_h1_marker child, no heading_content
// wrapper around a heading's inline children, no list_marker node). We
// fold those into the nodes goldmark does give us: a Heading node
// carries its own Level and its inline children are walked directly as
// its textual-container content; a List node carries IsOrdered/IsTight
// instead of a separate marker child.
package mdtree

import (
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// Kind identifies the structural role of a node for validator dispatch.
// Names mirror spec.md §6.3 where goldmark has a direct equivalent.
type Kind int

const (
	KindUnknown Kind = iota
	KindDocument
	KindParagraph
	KindHeading
	KindTightList
	KindLooseList
	KindListItem
	KindBlockQuote
	KindFencedCodeBlock
	KindCodeBlock
	KindThematicBreak
	KindText
	KindEmphasis
	KindStrongEmphasis
	KindCodeSpan
	KindLink
	KindImage
	KindAutoLink
	KindRawHTML
	KindHTMLBlock
	KindTable
	KindSoftBreak
	KindHardBreak
)

// String returns the spec.md-shaped name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "atx_heading"
	case KindTightList:
		return "tight_list"
	case KindLooseList:
		return "loose_list"
	case KindListItem:
		return "list_item"
	case KindBlockQuote:
		return "block_quote"
	case KindFencedCodeBlock:
		return "fenced_code_block"
	case KindCodeBlock:
		return "code_block"
	case KindThematicBreak:
		return "thematic_break"
	case KindText:
		return "text"
	case KindEmphasis:
		return "emphasis"
	case KindStrongEmphasis:
		return "strong_emphasis"
	case KindCodeSpan:
		return "code_span"
	case KindLink:
		return "link"
	case KindImage:
		return "image"
	case KindAutoLink:
		return "auto_link"
	case KindRawHTML:
		return "raw_html"
	case KindHTMLBlock:
		return "html_block"
	case KindTable:
		return "table"
	case KindSoftBreak:
		return "soft_break"
	case KindHardBreak:
		return "hard_break"
	default:
		return "unknown"
	}
}

// KindOf classifies a goldmark AST node into a Kind.
func KindOf(n ast.Node) Kind {
	switch v := n.(type) {
	case *ast.Document:
		return KindDocument
	case *ast.Paragraph:
		return KindParagraph
	case *ast.Heading:
		return KindHeading
	case *ast.List:
		if v.IsTight {
			return KindTightList
		}
		return KindLooseList
	case *ast.ListItem:
		return KindListItem
	case *ast.Blockquote:
		return KindBlockQuote
	case *ast.FencedCodeBlock:
		return KindFencedCodeBlock
	case *ast.CodeBlock:
		return KindCodeBlock
	case *ast.ThematicBreak:
		return KindThematicBreak
	case *ast.Text:
		return KindText
	case *ast.Emphasis:
		if v.Level >= 2 {
			return KindStrongEmphasis
		}
		return KindEmphasis
	case *ast.CodeSpan:
		return KindCodeSpan
	case *ast.Link:
		return KindLink
	case *ast.Image:
		return KindImage
	case *ast.AutoLink:
		return KindAutoLink
	case *ast.RawHTML:
		return KindRawHTML
	case *ast.HTMLBlock:
		return KindHTMLBlock
	case *east.Table:
		return KindTable
	case *ast.TextBlock:
		return KindParagraph
	}
	if n.Kind() == ast.KindString {
		return KindText
	}
	return KindUnknown
}

// IsTextual reports whether a node kind belongs to an inline textual
// container's direct children (spec.md §4.1 dispatch row for
// `text`/`emphasis`/`strong_emphasis`/`code_span`).
func IsTextual(k Kind) bool {
	switch k {
	case KindText, KindEmphasis, KindStrongEmphasis, KindCodeSpan, KindAutoLink, KindRawHTML, KindSoftBreak, KindHardBreak:
		return true
	default:
		return false
	}
}

// IsContainer reports whether a node kind is walked as an ordered
// sequence of heterogeneous-kind children (spec.md §4.2).
func IsContainer(k Kind) bool {
	switch k {
	case KindDocument, KindListItem, KindBlockQuote:
		return true
	default:
		return false
	}
}

// IsTextualContainer reports whether a node kind's children are inline
// textual nodes (spec.md §4.3).
func IsTextualContainer(k Kind) bool {
	switch k {
	case KindParagraph, KindHeading:
		return true
	default:
		return false
	}
}
