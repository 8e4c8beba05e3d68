package validate

import (
	"errors"
	"testing"

	"github.com/404wolf/mdvalidate/internal/matcher"
	"github.com/404wolf/mdvalidate/internal/mdtree"
)

func TestNewParseFailureErrorClassifiesUTF8(t *testing.T) {
	e := NewParseFailureError(0, 0, mdtree.ErrInvalidUTF8)
	if e.Kind != KindInvalidUTF8 {
		t.Errorf("Kind = %v, want KindInvalidUTF8", e.Kind)
	}
}

func TestNewParseFailureErrorClassifiesOtherFailures(t *testing.T) {
	e := NewParseFailureError(0, 0, errors.New("boom"))
	if e.Kind != KindParserError {
		t.Errorf("Kind = %v, want KindParserError", e.Kind)
	}
}

func TestNewMatcherErrorClassifiesUTF8Error(t *testing.T) {
	e := newMatcherError(0, 0, matcher.ErrInvalidUTF8)
	if e.Kind != KindUTF8Error {
		t.Errorf("Kind = %v, want KindUTF8Error", e.Kind)
	}
}

func TestNewMatcherErrorClassifiesGenericMatcherError(t *testing.T) {
	e := newMatcherError(0, 0, errors.New("boom"))
	if e.Kind != KindMatcherError {
		t.Errorf("Kind = %v, want KindMatcherError", e.Kind)
	}
}

func TestTruncateAfterFirstFastFailTrigger(t *testing.T) {
	r := Empty(0, 0)
	r.AddError(&Error{Kind: KindNodeContentMismatch})
	r.AddError(&Error{Kind: KindChildrenLengthMismatch})
	r.TruncateAfterFirstFastFailTrigger()

	if len(r.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(r.Errors))
	}
	if r.Errors[0].Kind != KindNodeContentMismatch {
		t.Errorf("Errors[0].Kind = %v, want KindNodeContentMismatch", r.Errors[0].Kind)
	}
}

func TestTruncateAfterFirstFastFailTriggerSkipsInternalInvariant(t *testing.T) {
	r := Empty(0, 0)
	r.AddError(&Error{Kind: KindInternalInvariantViolated})
	r.AddError(&Error{Kind: KindWrongListCount})
	r.TruncateAfterFirstFastFailTrigger()

	if len(r.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2 (InternalInvariantViolated doesn't trigger fast-fail)", len(r.Errors))
	}
}
