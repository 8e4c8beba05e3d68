package validate

import "github.com/404wolf/mdvalidate/internal/mdtree"

// validateHeading checks that both headings share a level, then validates
// the heading's own children as a textual container. Goldmark headings
// carry their level directly and don't wrap inline content in a separate
// heading_content node, so there is no extra descent step here.
func validateHeading(schemaCursor, inputCursor *mdtree.Cursor, gotEOF bool) *Result {
	result := Empty(schemaCursor.Index(), inputCursor.Index())
	if schemaCursor.HeadingLevel() != inputCursor.HeadingLevel() {
		result.AddError(newTypeMismatch(
			schemaCursor.Index(), inputCursor.Index(),
			headingKindName(schemaCursor.HeadingLevel()), headingKindName(inputCursor.HeadingLevel()),
		))
		return result
	}
	result.Join(validateTextualContainer(schemaCursor, inputCursor, gotEOF))
	return result
}

func headingKindName(level int) string {
	switch level {
	case 1:
		return "atx_heading(atx_h1_marker)"
	case 2:
		return "atx_heading(atx_h2_marker)"
	case 3:
		return "atx_heading(atx_h3_marker)"
	case 4:
		return "atx_heading(atx_h4_marker)"
	case 5:
		return "atx_heading(atx_h5_marker)"
	case 6:
		return "atx_heading(atx_h6_marker)"
	default:
		return "atx_heading"
	}
}
