package validate

import (
	"testing"

	"github.com/404wolf/mdvalidate/internal/mdtree"
)

func mustParse(t *testing.T, src string) *mdtree.Tree {
	t.Helper()
	tree, err := mdtree.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return tree
}

func run(t *testing.T, schemaSrc, inputSrc string, gotEOF bool) *Result {
	t.Helper()
	schema := mustParse(t, schemaSrc)
	input := mustParse(t, inputSrc)
	return Validate(schema.Root(), input.Root(), gotEOF)
}

func TestScenarioNamedHeadingMatcher(t *testing.T) {
	r := run(t, "# Hi `name:/[A-Z][a-z]+/`", "# Hi Wolf", true)
	if !r.OK() {
		t.Fatalf("unexpected errors: %v", r.Errors)
	}
	if got := r.Captures["name"]; got != "Wolf" {
		t.Errorf("captures[name] = %v, want %q", got, "Wolf")
	}
}

func TestScenarioHeadingMatcherMismatch(t *testing.T) {
	r := run(t, "# Hi `name:/[A-Z][a-z]+/`", "# Hi wolf", true)
	if r.OK() {
		t.Fatal("expected a matcher mismatch error")
	}
	if r.Errors[0].Kind != KindNodeContentMismatch || r.Errors[0].MismatchKind != MismatchMatcher {
		t.Errorf("got %+v, want NodeContentMismatch(Matcher)", r.Errors[0])
	}
}

func TestScenarioRepeatingListCapture(t *testing.T) {
	r := run(t, "- `item:/\\d+/`{,}", "- 1\n- 2\n- 3", true)
	if !r.OK() {
		t.Fatalf("unexpected errors: %v", r.Errors)
	}
	items, ok := r.Captures["item"].([]any)
	if !ok || len(items) != 3 {
		t.Fatalf("captures[item] = %v, want 3-element array", r.Captures["item"])
	}
	want := []any{"1", "2", "3"}
	for i, v := range want {
		if items[i] != v {
			t.Errorf("item[%d] = %v, want %v", i, items[i], v)
		}
	}
}

func TestScenarioBoundedListCountExceeded(t *testing.T) {
	r := run(t, "- `item:/\\d+/`{,2}", "- 1\n- 2\n- 3", true)
	if r.OK() {
		t.Fatal("expected WrongListCount error")
	}
	if r.Errors[0].Kind != KindWrongListCount {
		t.Fatalf("got %+v, want WrongListCount", r.Errors[0])
	}
	if r.Errors[0].Received != 3 {
		t.Errorf("Received = %d, want 3", r.Errors[0].Received)
	}
	if r.Errors[0].Max == nil || *r.Errors[0].Max != 2 {
		t.Errorf("Max = %v, want 2", r.Errors[0].Max)
	}
}

func TestScenarioMultipleMatchersInNodeChildren(t *testing.T) {
	r := run(t, "`id:/test/` `id:/ex/`", "test ex", true)
	if r.OK() {
		t.Fatal("expected MultipleMatchersInNodeChildren error")
	}
	if r.Errors[0].Kind != KindMultipleMatchersInNodeChildren {
		t.Fatalf("got %+v, want MultipleMatchersInNodeChildren", r.Errors[0])
	}
	if r.Errors[0].Received != 2 {
		t.Errorf("Received = %d, want 2", r.Errors[0].Received)
	}
}

func TestScenarioCodeBlockBodyCapture(t *testing.T) {
	schema := "```rust\n{code}\n```"
	input := "```rust\nfn main(){}\n```"
	r := run(t, schema, input, true)
	if !r.OK() {
		t.Fatalf("unexpected errors: %v", r.Errors)
	}
	if got := r.Captures["code"]; got != "fn main(){}" {
		t.Errorf("captures[code] = %v, want %q", got, "fn main(){}")
	}
}

func TestScenarioEmptyInputAgainstRuler(t *testing.T) {
	r := run(t, "---", "", true)
	if r.OK() {
		t.Fatal("expected ChildrenLengthMismatch error")
	}
	if r.Errors[0].Kind != KindChildrenLengthMismatch {
		t.Fatalf("got %+v, want ChildrenLengthMismatch", r.Errors[0])
	}
}

func TestLiteralIdempotence(t *testing.T) {
	src := "# Title\n\nA plain paragraph with **bold** and _em_ text.\n\n- one\n- two\n"
	r := run(t, src, src, true)
	if !r.OK() {
		t.Fatalf("expected no errors validating a schema with no matchers against itself, got: %v", r.Errors)
	}
	if len(r.Captures) != 0 {
		t.Errorf("expected no captures, got %v", r.Captures)
	}
}

func TestStreamingDefersShortPrefix(t *testing.T) {
	schema := "# Hi `name:/[A-Z][a-z]+/`"
	r := run(t, schema, "# Hi", false)
	if !r.OK() {
		t.Fatalf("partial input with gotEOF=false should defer, not error: %v", r.Errors)
	}
}
