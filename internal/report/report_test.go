package report

import (
	"strings"
	"testing"

	"github.com/404wolf/mdvalidate/internal/validate"
)

func TestFromResultOK(t *testing.T) {
	result := validate.Empty(0, 0)
	result.SetCapture("name", "Wolf")

	rep := FromResult(result)
	if !rep.OK() {
		t.Fatal("expected OK report")
	}
	if rep.Captures["name"] != "Wolf" {
		t.Errorf("captures[name] = %v, want Wolf", rep.Captures["name"])
	}
}

func TestFromResultWithErrors(t *testing.T) {
	result := validate.Empty(0, 0)
	result.AddError(&validate.Error{Kind: validate.KindChildrenLengthMismatch, Expected: "1", Actual: "0"})

	rep := FromResult(result)
	if rep.OK() {
		t.Fatal("expected a non-OK report")
	}
	if rep.Errors[0].Kind != "ChildrenLengthMismatch" {
		t.Errorf("Kind = %q, want ChildrenLengthMismatch", rep.Errors[0].Kind)
	}
}

func TestReportJSON(t *testing.T) {
	rep := &Report{Captures: map[string]any{"name": "Wolf"}}
	b, err := rep.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(string(b), `"name": "Wolf"`) {
		t.Errorf("expected marshaled JSON to contain the capture, got %s", b)
	}
}

func TestGenerateJSONSchema(t *testing.T) {
	b, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(string(b), `"captures"`) {
		t.Errorf("expected generated JSON Schema to mention captures, got %s", b)
	}
}
