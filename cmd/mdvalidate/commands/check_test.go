package commands

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/404wolf/mdvalidate/internal/validate"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunCheckSucceeds(t *testing.T) {
	dir := t.TempDir()
	schema := writeTemp(t, dir, "schema.md", "# Hi `name:/[A-Z][a-z]+/`")
	input := writeTemp(t, dir, "input.md", "# Hi Wolf")
	output := filepath.Join(dir, "out.txt")

	cfg := &Config{Format: "text"}
	if err := runCheck(cfg, []string{schema, input, output}); err != nil {
		t.Fatalf("runCheck: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty report output")
	}
}

func TestRunCheckReportsViolations(t *testing.T) {
	dir := t.TempDir()
	schema := writeTemp(t, dir, "schema.md", "# Hi `name:/[A-Z][a-z]+/`")
	input := writeTemp(t, dir, "input.md", "# Hi wolf")
	output := filepath.Join(dir, "out.json")

	cfg := &Config{Format: "json", Quiet: true}
	err := runCheck(cfg, []string{schema, input, output})
	if !errors.Is(err, ErrViolationsFound) {
		t.Fatalf("runCheck: got %v, want ErrViolationsFound", err)
	}
}

func TestRunCheckStreaming(t *testing.T) {
	dir := t.TempDir()
	schema := writeTemp(t, dir, "schema.md", "- `item:/\\d+/`{,}")
	input := writeTemp(t, dir, "input.md", "- 1\n- 2\n- 3")
	output := filepath.Join(dir, "out.txt")

	cfg := &Config{Format: "text", ChunkSize: 3}
	if err := runCheck(cfg, []string{schema, input, output}); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
}

func TestRunCheckFastFailStopsAtFirstViolation(t *testing.T) {
	dir := t.TempDir()
	schema := writeTemp(t, dir, "schema.md", "# Hi `name:/[A-Z][a-z]+/`\n\nBye `name2:/[A-Z][a-z]+/`")
	input := writeTemp(t, dir, "input.md", "# Hi wolf\n\nBye wolf")
	output := filepath.Join(dir, "out.json")

	cfg := &Config{Format: "json", FastFail: true, Quiet: true}
	err := runCheck(cfg, []string{schema, input, output})
	if !errors.Is(err, ErrViolationsFound) {
		t.Fatalf("runCheck: got %v, want ErrViolationsFound", err)
	}

	data, rerr := os.ReadFile(output)
	if rerr != nil {
		t.Fatalf("ReadFile: %v", rerr)
	}

	var rep struct {
		Errors []struct {
			Kind string `json:"kind"`
		} `json:"errors"`
	}
	if jerr := json.Unmarshal(data, &rep); jerr != nil {
		t.Fatalf("Unmarshal: %v", jerr)
	}
	if len(rep.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1 with --fast-fail", len(rep.Errors))
	}
}

func TestRunCheckSchemaFrontMatterSetsMaxListDepth(t *testing.T) {
	original := validate.MaxListDepth
	defer func() { validate.MaxListDepth = original }()

	dir := t.TempDir()
	schema := writeTemp(t, dir, "schema.md", "---\nmax_list_depth: 1\n---\n\n- a\n  - `n:/\\d+/`")
	input := writeTemp(t, dir, "input.md", "- a\n  - 1")
	output := filepath.Join(dir, "out.json")

	cfg := &Config{Format: "json", Quiet: true}
	err := runCheck(cfg, []string{schema, input, output})
	if !errors.Is(err, ErrViolationsFound) {
		t.Fatalf("runCheck: got %v, want ErrViolationsFound (NodeListTooDeep)", err)
	}

	data, rerr := os.ReadFile(output)
	if rerr != nil {
		t.Fatalf("ReadFile: %v", rerr)
	}
	if !strings.Contains(string(data), "NodeListTooDeep") {
		t.Errorf("expected NodeListTooDeep in report, got %s", data)
	}
}
