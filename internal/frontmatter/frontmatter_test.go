package frontmatter

import "testing"

func TestParseFrontMatter(t *testing.T) {
	src := []byte("---\nfast_fail: true\nmax_list_depth: 4\n---\n\n# Hi `name:/[A-Z][a-z]+/`\n")
	opts, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !opts.FastFail {
		t.Error("expected FastFail = true")
	}
	if opts.MaxListDepth != 4 {
		t.Errorf("MaxListDepth = %d, want 4", opts.MaxListDepth)
	}
	if opts.Quiet {
		t.Error("expected Quiet = false (unset)")
	}
}

func TestParseNoFrontMatter(t *testing.T) {
	opts, err := Parse([]byte("# Hi `name:/[A-Z][a-z]+/`\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts != (Options{}) {
		t.Errorf("expected zero Options, got %+v", opts)
	}
}
