package matcher

import (
	"errors"
	"testing"
)

func TestFromCodeSpanInteriorRegex(t *testing.T) {
	m, err := FromCodeSpanInterior("name:/[A-Z][a-z]+/", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != "name" {
		t.Errorf("ID = %q, want %q", m.ID, "name")
	}
	if m.Kind != KindRegex {
		t.Errorf("Kind = %v, want KindRegex", m.Kind)
	}
	if matched, ok := m.Match("Wolf"); !ok || matched != "Wolf" {
		t.Errorf("Match(%q) = (%q, %v), want (%q, true)", "Wolf", matched, ok, "Wolf")
	}
	if _, ok := m.Match("wolf"); ok {
		t.Error("Match(\"wolf\") should not match an uppercase-anchored pattern")
	}
}

func TestFromCodeSpanInteriorInvalidUTF8(t *testing.T) {
	_, err := FromCodeSpanInterior("name:/[A-Z]\xff+/", nil)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("FromCodeSpanInterior: got %v, want ErrInvalidUTF8", err)
	}
}

func TestFromCurlyInvalidUTF8(t *testing.T) {
	_, err := FromCurly("{na\xffme}")
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("FromCurly: got %v, want ErrInvalidUTF8", err)
	}
}

func TestFromCodeSpanInteriorAnonymous(t *testing.T) {
	m, err := FromCodeSpanInterior("/\\d+/", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != "" {
		t.Errorf("ID = %q, want empty", m.ID)
	}
	matched, ok := m.Match("123abc")
	if !ok || matched != "123" {
		t.Errorf("Match() = (%q, %v), want (%q, true)", matched, ok, "123")
	}
}

func TestFromCodeSpanInteriorWithRepeatingExtras(t *testing.T) {
	after := "{,2} trailing"
	m, err := FromCodeSpanInterior("item:/\\d+/", &after)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Repeating() {
		t.Error("expected a repeating matcher")
	}
	if m.Bounds.Max == nil || *m.Bounds.Max != 2 {
		t.Errorf("Bounds.Max = %v, want 2", m.Bounds.Max)
	}
}

func TestFromCodeSpanInteriorLiteralFlag(t *testing.T) {
	after := "!"
	_, err := FromCodeSpanInterior("fn main() {}", &after)
	if !errors.Is(err, ErrWasLiteralCode) {
		t.Errorf("expected ErrWasLiteralCode, got %v", err)
	}
}

func TestFromCodeSpanInteriorMixedLiteralAndRange(t *testing.T) {
	after := "!{1,2}"
	_, err := FromCodeSpanInterior("id:/x/", &after)
	if !errors.Is(err, ErrMixedLiteralAndOthers) {
		t.Errorf("expected ErrMixedLiteralAndOthers, got %v", err)
	}
}

func TestFromCodeSpanInteriorInvalid(t *testing.T) {
	_, err := FromCodeSpanInterior("not a matcher", nil)
	if !errors.Is(err, ErrInteriorInvalid) {
		t.Errorf("expected ErrInteriorInvalid, got %v", err)
	}
}

func TestVariableLength(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		want   bool
	}{
		{"non-repeating", Bounds{}, false},
		{"unbounded", Bounds{HasRange: true}, true},
		{"fixed count", Bounds{HasRange: true, Min: intPtr(2), Max: intPtr(2)}, false},
		{"open range", Bounds{HasRange: true, Min: intPtr(2), Max: intPtr(5)}, true},
		{"min only", Bounds{HasRange: true, Min: intPtr(2)}, true},
	}

	for _, tc := range tests {
		m := &Matcher{Bounds: tc.bounds}
		if got := m.VariableLength(); got != tc.want {
			t.Errorf("%s: VariableLength() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFromCurlyCaptureSlot(t *testing.T) {
	m, err := FromCurly("{code}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != KindLiteralCapture || m.ID != "code" {
		t.Errorf("FromCurly(%q) = %+v", "{code}", m)
	}
	if matched, ok := m.Match("anything at all"); !ok || matched != "anything at all" {
		t.Errorf("Match() = (%q, %v)", matched, ok)
	}
}

func TestFromCurlyRegex(t *testing.T) {
	m, err := FromCurly("{lang:/go|rust/}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != KindRegex || m.ID != "lang" {
		t.Errorf("FromCurly(%q) = %+v", "{lang:/go|rust/}", m)
	}
	if matched, ok := m.Match("rust"); !ok || matched != "rust" {
		t.Errorf("Match(%q) = (%q, %v)", "rust", matched, ok)
	}
}

func TestFromCurlyInvalid(t *testing.T) {
	_, err := FromCurly("not curly")
	if !errors.Is(err, ErrInteriorInvalid) {
		t.Errorf("expected ErrInteriorInvalid, got %v", err)
	}
}
