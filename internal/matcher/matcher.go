// Package matcher parses and compiles the matcher grammar spec.md §4.9
// describes: a backtick-delimited code span whose interior is either a
// named/anonymous regex (`id:/regex/` or `/regex/`) or a literal-code
// flag (`!`), optionally followed by `{min,max}` repetition extras; and
// the curly-brace variant used in link destinations and fenced code
// block info strings (`{id}` / `{id:/regex/}`).
package matcher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind distinguishes a regex matcher from a bare capture slot.
type Kind int

const (
	// KindRegex matchers run a compiled, start-anchored regex against the
	// input and capture whatever the regex consumed.
	KindRegex Kind = iota
	// KindLiteralCapture matchers (the curly `{id}` capture-slot form)
	// capture the entirety of the text they're matched against verbatim,
	// with no pattern constraint.
	KindLiteralCapture
)

// ErrWasLiteralCode signals that the code span's extras were a bare `!`
// flag: the caller should treat the code span as a literal comparison,
// not build a Matcher from it.
var ErrWasLiteralCode = errors.New("code span is a literal-code flag, not a matcher")

// ErrInteriorInvalid means the text inside the matcher's backticks/braces
// didn't parse as the matcher grammar.
var ErrInteriorInvalid = errors.New("invalid matcher interior")

// ErrInvalidUTF8 means the text inside the matcher's backticks/braces is not
// valid UTF-8 (spec.md §7's UTF8Error SchemaError variant). The document as
// a whole is already checked for UTF-8 validity at the mdtree.Parse
// boundary, so this only fires if a caller builds a Matcher from text
// sourced outside that check.
var ErrInvalidUTF8 = errors.New("matcher interior is not valid UTF-8")

// interiorPattern recognizes `(id:)?/regex/` inside a code span's
// backticks. The pattern is anchored at the end, so the regex body runs to
// the last slash of the interior (slashes inside the body are kept as part
// of the regex), per spec.md's `inner` production.
var interiorPattern = regexp.MustCompile(`^(((?P<id>[A-Za-z0-9_-]+)):)?/(?P<regex>.+?)/$`)

// curlyPattern recognizes the `{id}` / `{id:/regex/}` curly form used
// for link destinations and code-block info strings.
var curlyPattern = regexp.MustCompile(`^\{(?P<id>[A-Za-z0-9_-]+)(:/(?P<regex>.+?)/)?\}$`)

// Matcher is the immutable, compiled form of a schema matcher expression.
type Matcher struct {
	ID            string
	Kind          Kind
	Regex         *regexp.Regexp
	Bounds        Bounds
	IsLiteralCode bool
	SourceLen     int
}

// Repeating reports whether the matcher may consume more than one input
// position (list items, or coalesced textual chunks).
func (m *Matcher) Repeating() bool { return m.Bounds.HasRange }

// VariableLength reports whether a repeating matcher's count is an open
// range rather than a single fixed count. Non-repeating matchers are
// never variable length (spec.md's SUPPLEMENTED FEATURES note, ground on
// original_source's `variable_length`).
func (m *Matcher) VariableLength() bool {
	if !m.Bounds.HasRange {
		return false
	}
	if m.Bounds.Min != nil && m.Bounds.Max != nil {
		return *m.Bounds.Min != *m.Bounds.Max
	}
	return true
}

// Match runs the matcher against the start of s. For a KindRegex matcher
// this is the longest prefix the anchored regex accepts; for
// KindLiteralCapture it is the entirety of s.
func (m *Matcher) Match(s string) (matched string, ok bool) {
	switch m.Kind {
	case KindLiteralCapture:
		return s, true
	default:
		loc := m.Regex.FindStringIndex(s)
		if loc == nil {
			return "", false
		}
		return s[:loc[1]], true
	}
}

// FromCodeSpanInterior parses a code span's interior text (the raw
// content between its backticks, already trimmed) together with the
// extras text immediately following it (nil if no following text node
// exists). Returns ErrWasLiteralCode when the extras are a bare `!` flag.
func FromCodeSpanInterior(interior string, afterText *string) (*Matcher, error) {
	interior = strings.TrimSpace(interior)
	if !utf8.ValidString(interior) {
		return nil, ErrInvalidUTF8
	}

	var extras Extras
	var extrasLen int
	if afterText != nil {
		var err error
		extras, extrasLen, err = ParseExtrasFromSuffix(*afterText)
		if err != nil {
			return nil, fmt.Errorf("matcher extras: %w", err)
		}
	}
	if extras.IsLiteralCode {
		return nil, ErrWasLiteralCode
	}

	caps := interiorPattern.FindStringSubmatch(interior)
	if caps == nil {
		return nil, fmt.Errorf("%w: expected 'id:/regex/' or '/regex/', got %q", ErrInteriorInvalid, interior)
	}
	id := caps[interiorPattern.SubexpIndex("id")]
	pattern := caps[interiorPattern.SubexpIndex("regex")]

	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid regex %q: %v", ErrInteriorInvalid, pattern, err)
	}
	re.Longest()

	return &Matcher{
		ID:        id,
		Kind:      KindRegex,
		Regex:     re,
		Bounds:    extras.Bounds,
		SourceLen: len(interior) + 2 + extrasLen, // +2 for the surrounding backticks
	}, nil
}

// FromCurly parses the curly matcher/capture-slot form used by link
// destinations and fenced code block info strings:
// `{id}` (literal capture) or `{id:/regex/}` (regex capture).
func FromCurly(text string) (*Matcher, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	caps := curlyPattern.FindStringSubmatch(text)
	if caps == nil {
		return nil, fmt.Errorf("%w: expected '{id}' or '{id:/regex/}', got %q", ErrInteriorInvalid, text)
	}
	id := caps[curlyPattern.SubexpIndex("id")]
	pattern := caps[curlyPattern.SubexpIndex("regex")]

	if pattern == "" {
		return &Matcher{ID: id, Kind: KindLiteralCapture, SourceLen: len(text)}, nil
	}

	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid regex %q: %v", ErrInteriorInvalid, pattern, err)
	}
	re.Longest()
	return &Matcher{ID: id, Kind: KindRegex, Regex: re, SourceLen: len(text)}, nil
}

// LooksLikeCurly reports whether text is shaped like a curly matcher or
// capture slot, without fully validating its regex.
func LooksLikeCurly(text string) bool {
	return strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}")
}
