package validate

import (
	"github.com/404wolf/mdvalidate/internal/matcher"
	"github.com/404wolf/mdvalidate/internal/mdtree"
)

// validateLink validates a link or image node: its description (delegated
// to the textual container walk over its own children) and its
// destination. Grounded on spec §4.8's LinkValidator, including the
// reverse "describe me" form supplemented from the original implementation.
func validateLink(schemaCursor, inputCursor *mdtree.Cursor) *Result {
	result := Empty(schemaCursor.Index(), inputCursor.Index())
	result.Join(validateTextualContainer(schemaCursor, inputCursor, true))

	schemaDest := string(schemaCursor.Destination())
	inputDest := string(inputCursor.Destination())

	if loc := leadingCurlyPattern.FindStringIndex(schemaDest); loc != nil {
		curly := schemaDest[loc[0]:loc[1]]
		suffix := schemaDest[loc[1]:]
		m, err := matcher.FromCurly(curly)
		if err != nil {
			result.AddError(newMatcherError(schemaCursor.Index(), inputCursor.Index(), err))
			return result
		}
		result.Join(validateMatcherVsText("", m, suffix, inputDest, schemaCursor.Index(), inputCursor.Index(), true))
		return result
	}

	if loc := leadingCurlyPattern.FindStringIndex(inputDest); loc != nil && len(loc) > 0 && loc[0] == 0 && loc[1] == len(inputDest) {
		m, err := matcher.FromCurly(inputDest)
		if err == nil {
			if matched, ok := m.Match(schemaDest); ok && matched == schemaDest {
				result.SetCapture(m.ID, schemaDest)
				return result
			}
		}
	}

	if schemaDest != inputDest {
		result.AddError(newContentMismatch(schemaCursor.Index(), inputCursor.Index(), schemaDest, inputDest, MismatchLiteral))
	}
	return result
}
