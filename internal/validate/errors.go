// Package validate pair-walks a schema tree and an input tree, producing a
// ValidationResult of captured matcher values and structured errors. The
// dispatch table and per-kind validators mirror the shape of the original
// node_walker validators, generalized from tree-sitter's node kinds to
// mdtree's goldmark-backed ones.
package validate

import (
	"errors"
	"fmt"

	"github.com/404wolf/mdvalidate/internal/matcher"
	"github.com/404wolf/mdvalidate/internal/mdtree"
)

// Kind names the variant of a ValidationError.
type Kind int

const (
	KindNodeTypeMismatch Kind = iota
	KindNodeContentMismatch
	KindChildrenLengthMismatch
	KindWrongListCount
	KindNonRepeatingMatcherInListContext
	KindNodeListTooDeep

	KindMatcherError
	KindInvalidMatcherExtras
	KindUnclosedMatcher
	KindMissingMatcher
	KindMultipleMatchersInNodeChildren
	KindBadListMatcher
	KindRepeatingMatcherUnbounded
	KindUTF8Error

	KindInvalidUTF8
	KindParserError

	KindInternalInvariantViolated
)

func (k Kind) String() string {
	switch k {
	case KindNodeTypeMismatch:
		return "NodeTypeMismatch"
	case KindNodeContentMismatch:
		return "NodeContentMismatch"
	case KindChildrenLengthMismatch:
		return "ChildrenLengthMismatch"
	case KindWrongListCount:
		return "WrongListCount"
	case KindNonRepeatingMatcherInListContext:
		return "NonRepeatingMatcherInListContext"
	case KindNodeListTooDeep:
		return "NodeListTooDeep"
	case KindMatcherError:
		return "MatcherError"
	case KindInvalidMatcherExtras:
		return "InvalidMatcherExtras"
	case KindUnclosedMatcher:
		return "UnclosedMatcher"
	case KindMissingMatcher:
		return "MissingMatcher"
	case KindMultipleMatchersInNodeChildren:
		return "MultipleMatchersInNodeChildren"
	case KindBadListMatcher:
		return "BadListMatcher"
	case KindRepeatingMatcherUnbounded:
		return "RepeatingMatcherUnbounded"
	case KindUTF8Error:
		return "UTF8Error"
	case KindInvalidUTF8:
		return "InvalidUTF8"
	case KindParserError:
		return "ParserError"
	case KindInternalInvariantViolated:
		return "InternalInvariantViolated"
	default:
		return "Unknown"
	}
}

// ContentMismatchKind distinguishes the region of a NodeContentMismatch.
type ContentMismatchKind int

const (
	MismatchPrefix ContentMismatchKind = iota
	MismatchMatcher
	MismatchSuffix
	MismatchLiteral
)

func (k ContentMismatchKind) String() string {
	switch k {
	case MismatchPrefix:
		return "prefix"
	case MismatchMatcher:
		return "matcher"
	case MismatchSuffix:
		return "suffix"
	case MismatchLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Error is a tagged ValidationError carrying the schema/input descendant
// indices at which it was discovered, per spec §7.
type Error struct {
	Kind         Kind
	SchemaIndex  int
	InputIndex   int
	Expected     string
	Actual       string
	MismatchKind ContentMismatchKind
	Min          *int
	Max          *int
	Received     int
	MaxDepth     int
	Cause        error
	Message      string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNodeTypeMismatch:
		return fmt.Sprintf("node type mismatch: expected %q, got %q", e.Expected, e.Actual)
	case KindNodeContentMismatch:
		return fmt.Sprintf("%s mismatch: expected %q, got %q", e.MismatchKind, e.Expected, e.Actual)
	case KindChildrenLengthMismatch:
		return fmt.Sprintf("children length mismatch: expected %s, got %s", e.Expected, e.Actual)
	case KindWrongListCount:
		return fmt.Sprintf("wrong list item count: %s, got %d", rangeDesc(e.Min, e.Max), e.Received)
	case KindNonRepeatingMatcherInListContext:
		return "non-repeating matcher used in a repeating list context"
	case KindNodeListTooDeep:
		return fmt.Sprintf("nested list exceeds max depth %d", e.MaxDepth)
	case KindMatcherError:
		return fmt.Sprintf("matcher error: %v", e.Cause)
	case KindInvalidMatcherExtras:
		return fmt.Sprintf("invalid matcher extras: %v", e.Cause)
	case KindUnclosedMatcher:
		return "unclosed matcher"
	case KindMissingMatcher:
		return "missing matcher in matcher group"
	case KindMultipleMatchersInNodeChildren:
		return fmt.Sprintf("multiple matchers (%d) found among node children", e.Received)
	case KindBadListMatcher:
		return "list template has no matcher"
	case KindRepeatingMatcherUnbounded:
		return "unbounded repeating matcher must be last among its siblings"
	case KindUTF8Error:
		return fmt.Sprintf("matcher is not valid UTF-8: %v", e.Cause)
	case KindInvalidUTF8:
		return fmt.Sprintf("document is not valid UTF-8: %v", e.Cause)
	case KindParserError:
		return fmt.Sprintf("markdown parser rejected the document: %v", e.Cause)
	case KindInternalInvariantViolated:
		return fmt.Sprintf("internal invariant violated: %s", e.Message)
	default:
		return "validation error"
	}
}

// IsFastFailTrigger reports whether this error's Kind counts as a
// SchemaViolation or SchemaError for the --fast-fail policy (spec.md §7:
// "the first SchemaViolation or SchemaError ends the run"). The
// parse-boundary kinds and InternalInvariantViolated are excluded: a
// parse failure already prevents the walk from reaching any
// SchemaViolation/SchemaError in the first place.
func (k Kind) IsFastFailTrigger() bool {
	switch k {
	case KindInternalInvariantViolated, KindInvalidUTF8, KindParserError:
		return false
	default:
		return true
	}
}

func rangeDesc(min, max *int) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("between %d and %d", *min, *max)
	case min != nil:
		return fmt.Sprintf("at least %d", *min)
	case max != nil:
		return fmt.Sprintf("at most %d", *max)
	default:
		return "any number of"
	}
}

func newTypeMismatch(schemaIdx, inputIdx int, expected, actual string) *Error {
	return &Error{Kind: KindNodeTypeMismatch, SchemaIndex: schemaIdx, InputIndex: inputIdx, Expected: expected, Actual: actual}
}

func newContentMismatch(schemaIdx, inputIdx int, expected, actual string, kind ContentMismatchKind) *Error {
	return &Error{Kind: KindNodeContentMismatch, SchemaIndex: schemaIdx, InputIndex: inputIdx, Expected: expected, Actual: actual, MismatchKind: kind}
}

func newChildrenLengthMismatch(schemaIdx, inputIdx int, expected, actual string) *Error {
	return &Error{Kind: KindChildrenLengthMismatch, SchemaIndex: schemaIdx, InputIndex: inputIdx, Expected: expected, Actual: actual}
}

func newWrongListCount(schemaIdx, inputIdx int, min, max *int, actual int) *Error {
	return &Error{Kind: KindWrongListCount, SchemaIndex: schemaIdx, InputIndex: inputIdx, Min: min, Max: max, Received: actual}
}

// newMatcherError wraps a matcher-construction failure. A matcher interior
// that isn't valid UTF-8 gets the dedicated UTF8Error variant spec.md §7
// lists among the SchemaError kinds; a failure of the extras that follow
// the matcher is InvalidMatcherExtras; anything else is a generic MatcherError.
func newMatcherError(schemaIdx, inputIdx int, cause error) *Error {
	if errors.Is(cause, matcher.ErrInvalidUTF8) {
		return &Error{Kind: KindUTF8Error, SchemaIndex: schemaIdx, InputIndex: inputIdx, Cause: cause}
	}
	if errors.Is(cause, matcher.ErrExtrasInvalid) || errors.Is(cause, matcher.ErrMixedLiteralAndOthers) {
		return newInvalidExtras(schemaIdx, inputIdx, cause)
	}
	return &Error{Kind: KindMatcherError, SchemaIndex: schemaIdx, InputIndex: inputIdx, Cause: cause}
}

func newInvalidExtras(schemaIdx, inputIdx int, cause error) *Error {
	return &Error{Kind: KindInvalidMatcherExtras, SchemaIndex: schemaIdx, InputIndex: inputIdx, Cause: cause}
}

func newInternalInvariant(schemaIdx, inputIdx int, message string) *Error {
	return &Error{Kind: KindInternalInvariantViolated, SchemaIndex: schemaIdx, InputIndex: inputIdx, Message: message}
}

// NewParseFailureError translates an error returned by mdtree.Parse into the
// ValidationError variant spec.md §7 assigns it: InvalidUTF8 for source that
// fails the UTF-8 check at the parse boundary, ParserError for anything else
// goldmark rejected outright.
func NewParseFailureError(schemaIdx, inputIdx int, err error) *Error {
	if errors.Is(err, mdtree.ErrInvalidUTF8) {
		return &Error{Kind: KindInvalidUTF8, SchemaIndex: schemaIdx, InputIndex: inputIdx, Cause: err}
	}
	return &Error{Kind: KindParserError, SchemaIndex: schemaIdx, InputIndex: inputIdx, Cause: err}
}
