package validate

import (
	"bytes"

	"github.com/404wolf/mdvalidate/internal/matcher"
)

// validateMatcherVsText compares an input text run against a schema prefix,
// a matcher, and a schema suffix (either may be empty). Grounded on spec
// §4.4's MatcherVsTextValidator.
func validateMatcherVsText(prefix string, m *matcher.Matcher, suffix string, input string, schemaIdx, inputIdx int, gotEOF bool) *Result {
	result := Empty(schemaIdx, inputIdx)

	p := len(prefix)
	switch {
	case len(input) >= p:
		if input[:p] != prefix {
			result.AddError(newContentMismatch(schemaIdx, inputIdx, prefix, input[:p], MismatchPrefix))
			return result
		}
	default:
		// input is shorter than the schema prefix.
		if bytes.HasPrefix([]byte(prefix), []byte(input)) && !gotEOF {
			// as far as it goes it matches; defer judgment until more input arrives.
			return result
		}
		result.AddError(newContentMismatch(schemaIdx, inputIdx, prefix, input, MismatchPrefix))
		return result
	}

	rest := input[p:]
	matched, ok := m.Match(rest)
	if !ok {
		result.AddError(newContentMismatch(schemaIdx, inputIdx, matcherDescription(m), rest, MismatchMatcher))
		return result
	}
	result.SetCapture(m.ID, matched)
	p += len(matched)

	if suffix != "" {
		if len(input) < p+len(suffix) {
			if !gotEOF {
				return result
			}
			result.AddError(newContentMismatch(schemaIdx, inputIdx, suffix, safeSlice(input, p), MismatchSuffix))
			return result
		}
		if input[p:p+len(suffix)] != suffix {
			result.AddError(newContentMismatch(schemaIdx, inputIdx, suffix, input[p:p+len(suffix)], MismatchSuffix))
		}
	}

	return result
}

func safeSlice(s string, from int) string {
	if from >= len(s) {
		return ""
	}
	return s[from:]
}

func matcherDescription(m *matcher.Matcher) string {
	if m.Regex != nil {
		return m.Regex.String()
	}
	return "<capture>"
}
