package validate

import "github.com/404wolf/mdvalidate/internal/mdtree"

// Validate pair-walks schemaCursor and inputCursor, dispatching on the
// schema node's kind per spec §4.1's table. gotEOF signals whether the
// input's trailing byte is final. Validate never panics; every discovered
// problem is appended to the returned Result instead.
func Validate(schemaCursor, inputCursor *mdtree.Cursor, gotEOF bool) *Result {
	schemaKind := schemaCursor.Kind()
	inputKind := inputCursor.Kind()

	if !kindsCompatible(schemaKind, inputKind) {
		r := Empty(schemaCursor.Index(), inputCursor.Index())
		r.AddError(newTypeMismatch(schemaCursor.Index(), inputCursor.Index(), schemaKind.String(), inputKind.String()))
		return r
	}

	switch schemaKind {
	case mdtree.KindDocument, mdtree.KindListItem, mdtree.KindBlockQuote:
		return validateContainer(schemaCursor, inputCursor, gotEOF)
	case mdtree.KindHeading:
		return validateHeading(schemaCursor, inputCursor, gotEOF)
	case mdtree.KindTightList, mdtree.KindLooseList:
		return validateList(schemaCursor, inputCursor, gotEOF)
	case mdtree.KindFencedCodeBlock, mdtree.KindCodeBlock:
		return validateCodeBlock(schemaCursor, inputCursor)
	case mdtree.KindThematicBreak:
		return validateRuler(schemaCursor, inputCursor)
	case mdtree.KindParagraph:
		return validateTextualContainer(schemaCursor, inputCursor, gotEOF)
	case mdtree.KindLink, mdtree.KindImage:
		return validateLink(schemaCursor, inputCursor)
	default:
		return validateTextual(schemaCursor, inputCursor, gotEOF)
	}
}

// kindsCompatible reports whether schema and input node kinds belong to the
// same dispatch role. Tight and loose lists are interchangeable: a schema
// list's tightness is an artifact of its own markdown formatting, not a
// constraint on the input's.
func kindsCompatible(schemaKind, inputKind mdtree.Kind) bool {
	if isListKind(schemaKind) && isListKind(inputKind) {
		return true
	}
	return schemaKind == inputKind
}

func isListKind(k mdtree.Kind) bool {
	return k == mdtree.KindTightList || k == mdtree.KindLooseList
}
