package matcher

import (
	"errors"
	"regexp"
	"strconv"
)

// extrasPattern recognizes the text immediately following a matcher's
// code span: either a bare literal flag, or any run of range/filler
// characters. Grounded on original_source's
// `MATCHERS_EXTRA_PATTERN = r#"^((\!)|([+\{\},0-9]+))"#` — the `+`
// character is accepted but carries no meaning of its own; it is filler
// from an older matcher syntax that the newer range/literal grammar
// still tolerates between digits and braces (see test cases in
// original_source/src/mdschema/validator/matcher/matcher_extras.rs).
var extrasPattern = regexp.MustCompile(`^(!|[+{},0-9]+)`)

// rangePattern extracts {min,max} anywhere within the extras text.
var rangePattern = regexp.MustCompile(`\{(\d*),(\d*)\}`)

// ErrExtrasInvalid means the text following a matcher code span isn't a
// recognized extras sequence (maps to SchemaError.InvalidMatcherExtras).
var ErrExtrasInvalid = errors.New("invalid matcher extras")

// ErrMixedLiteralAndOthers means a `!` literal flag was combined with
// further text (the Matcher invariant in spec.md §3; reported as
// SchemaError.InvalidMatcherExtras).
var ErrMixedLiteralAndOthers = errors.New("cannot mix literal flag with other matcher extras")

// Bounds describes a matcher's repetition constraints. HasRange is false
// for "none" (exactly one occurrence, spec.md §3); true (even with both
// Min and Max nil) marks the matcher as repeating.
type Bounds struct {
	HasRange bool
	Min      *int
	Max      *int
}

// InRange reports whether n falls within [Min, Max] (open-ended bounds
// are treated as -Inf/+Inf).
func (b Bounds) InRange(n int) bool {
	if b.Min != nil && n < *b.Min {
		return false
	}
	if b.Max != nil && n > *b.Max {
		return false
	}
	return true
}

// Extras holds the parsed `{min,max}`/`!` suffix that follows a matcher's
// code span in the schema.
type Extras struct {
	Bounds        Bounds
	IsLiteralCode bool
}

// partitionAtSpecialChars splits text into its leading extras run and
// whatever follows. When nothing at the start matches, the whole text is
// returned as the remainder and extras is empty — mirroring
// original_source's `partition_at_special_chars`.
func partitionAtSpecialChars(text string) (extras, rest string) {
	loc := extrasPattern.FindStringIndex(text)
	if loc == nil {
		return "", text
	}
	return text[:loc[1]], text[loc[1]:]
}

// hasLiteralWithinExtras reports whether text both starts with `!` and
// carries further content after it — the condition under which a literal
// flag is illegally combined with other extras. Equivalent to
// original_source's mutually-recursive `has_literal_within_extras`: that
// recursion always bottoms out as soon as the leading `!` runs are
// exhausted, so the check reduces to "starts with `!` and has more than
// one byte".
func hasLiteralWithinExtras(text string) bool {
	return len(text) > 1 && text[0] == '!'
}

// GetAllExtras returns the leading extras run of text, or
// ErrMixedLiteralAndOthers if a literal flag is combined with anything else.
func GetAllExtras(text string) (string, error) {
	extras, _ := partitionAtSpecialChars(text)
	if hasLiteralWithinExtras(text) {
		return "", ErrMixedLiteralAndOthers
	}
	return extras, nil
}

// GetEverythingAfterExtras returns the text remaining after the leading
// extras run, or ErrMixedLiteralAndOthers under the same condition as
// GetAllExtras.
func GetEverythingAfterExtras(text string) (string, error) {
	_, rest := partitionAtSpecialChars(text)
	if hasLiteralWithinExtras(text) {
		return "", ErrMixedLiteralAndOthers
	}
	return rest, nil
}

func extractItemCountLimits(text string) (min, max *int, hadRange bool) {
	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil, false
	}
	if m[1] != "" {
		v, err := strconv.Atoi(m[1])
		if err == nil {
			min = &v
		}
	}
	if m[2] != "" {
		v, err := strconv.Atoi(m[2])
		if err == nil {
			max = &v
		}
	}
	return min, max, true
}

// ParseExtras parses the extras text following a matcher's code span.
// text is nil when there is no following text node at all (no extras).
func ParseExtras(text *string) (Extras, error) {
	if text == nil {
		return Extras{}, nil
	}
	if !extrasPattern.MatchString(*text) {
		return Extras{}, ErrExtrasInvalid
	}
	isLiteral := len(*text) > 0 && (*text)[0] == '!'
	min, max, hadRange := extractItemCountLimits(*text)
	return Extras{
		Bounds:        Bounds{HasRange: hadRange, Min: min, Max: max},
		IsLiteralCode: isLiteral,
	}, nil
}

// ParseExtrasFromSuffix parses extras out of the full text node that
// follows a matcher's code span, where that text node may continue on
// into ordinary literal content after the extras (e.g. "{,2} and more").
// It returns the parsed Extras and the byte length of the extras prefix
// consumed, so the caller can split the remaining text into "trailing
// literal text".
func ParseExtrasFromSuffix(text string) (Extras, int, error) {
	allExtras, err := GetAllExtras(text)
	if err != nil {
		return Extras{}, 0, err
	}
	if allExtras == "" {
		// Nothing at the start of text matched the extras grammar: the
		// matcher has no extras, and the text belongs entirely to whatever
		// follows (trailing literal content, if any).
		return Extras{}, 0, nil
	}
	extras, err := ParseExtras(&allExtras)
	if err != nil {
		return Extras{}, 0, err
	}
	return extras, len(allExtras), nil
}
