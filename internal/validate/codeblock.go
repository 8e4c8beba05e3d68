package validate

import (
	"regexp"

	"github.com/404wolf/mdvalidate/internal/matcher"
	"github.com/404wolf/mdvalidate/internal/mdtree"
)

// leadingCurlyPattern extracts a curly matcher from the start of a fenced
// code block's info string, leaving any trailing literal suffix in place.
var leadingCurlyPattern = regexp.MustCompile(`^\{[A-Za-z0-9_-]+(:/.+?/)?\}`)

// validateCodeBlock validates a fenced code block's info string and body.
// Grounded on spec §4.7's CodeBlockValidator.
func validateCodeBlock(schemaCursor, inputCursor *mdtree.Cursor) *Result {
	result := Empty(schemaCursor.Index(), inputCursor.Index())

	schemaInfo := string(schemaCursor.InfoString())
	inputInfo := string(inputCursor.InfoString())

	if loc := leadingCurlyPattern.FindStringIndex(schemaInfo); loc != nil {
		curly := schemaInfo[loc[0]:loc[1]]
		suffix := schemaInfo[loc[1]:]
		m, err := matcher.FromCurly(curly)
		if err != nil {
			result.AddError(newMatcherError(schemaCursor.Index(), inputCursor.Index(), err))
		} else {
			sub := validateMatcherVsText("", m, suffix, inputInfo, schemaCursor.Index(), inputCursor.Index(), true)
			result.Join(sub)
		}
	} else if schemaInfo != inputInfo {
		result.AddError(newContentMismatch(schemaCursor.Index(), inputCursor.Index(), schemaInfo, inputInfo, MismatchLiteral))
	}

	schemaBody := string(schemaCursor.CodeBlockBody())
	inputBody := string(inputCursor.CodeBlockBody())

	if matcher.LooksLikeCurly(schemaBody) {
		if m, err := matcher.FromCurly(schemaBody); err == nil && m.SourceLen == len(schemaBody) {
			result.SetCapture(m.ID, inputBody)
			return result
		}
	}
	if schemaBody != inputBody {
		result.AddError(newContentMismatch(schemaCursor.Index(), inputCursor.Index(), schemaBody, inputBody, MismatchLiteral))
	}

	return result
}
