package validate

import (
	"bytes"

	"github.com/404wolf/mdvalidate/internal/mdtree"
)

// validateTextual handles the leaf/simple-wrapper schema kinds that reach
// Validate directly rather than through a textual container's matcher-aware
// pairwise walk: plain text runs (literal comparison), code spans reached
// without surrounding context (compared literally), and emphasis/strong
// emphasis wrappers, whose children may themselves contain matchers and so
// are walked the same way a textual container is.
func validateTextual(schemaCursor, inputCursor *mdtree.Cursor, gotEOF bool) *Result {
	switch schemaCursor.Kind() {
	case mdtree.KindText:
		return validateLiteralText(schemaCursor, inputCursor)
	case mdtree.KindCodeSpan:
		return validateLiteralCodeSpan(schemaCursor, inputCursor)
	case mdtree.KindEmphasis, mdtree.KindStrongEmphasis:
		return validateTextualContainer(schemaCursor, inputCursor, gotEOF)
	default:
		return validateLiteralText(schemaCursor, inputCursor)
	}
}

func validateLiteralText(schemaCursor, inputCursor *mdtree.Cursor) *Result {
	result := Empty(schemaCursor.Index(), inputCursor.Index())
	expected := schemaCursor.Text()
	actual := inputCursor.Text()
	if !bytes.Equal(expected, actual) {
		result.AddError(newContentMismatch(schemaCursor.Index(), inputCursor.Index(), string(expected), string(actual), MismatchLiteral))
	}
	return result
}

func validateLiteralCodeSpan(schemaCursor, inputCursor *mdtree.Cursor) *Result {
	result := Empty(schemaCursor.Index(), inputCursor.Index())
	expected := schemaCursor.Text()
	actual := inputCursor.Text()
	if !bytes.Equal(expected, actual) {
		result.AddError(newContentMismatch(schemaCursor.Index(), inputCursor.Index(), string(expected), string(actual), MismatchLiteral))
	}
	return result
}
