// Package report turns a validate.Result into the wire-format Report
// spec.md §6.4 describes ({errors, captures}), and renders it as text or
// JSON. Grounded on the teacher's internal/reporter package: same
// Reporter/Format split, generalized from a []rules.Violation slice to the
// core walker's Result.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/404wolf/mdvalidate/internal/validate"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ReportedError is the JSON-serializable form of a validate.Error: the same
// fields, with Kind/MismatchKind rendered as their string names so the
// report is stable wire format independent of the internal enum's integer
// values.
type ReportedError struct {
	Kind         string `json:"kind" jsonschema:"description=Validation error variant name"`
	SchemaIndex  int    `json:"schema_index" jsonschema:"description=Descendant index in the schema tree where the error was discovered"`
	InputIndex   int    `json:"input_index" jsonschema:"description=Descendant index in the input tree where the error was discovered"`
	Expected     string `json:"expected,omitempty"`
	Actual       string `json:"actual,omitempty"`
	MismatchKind string `json:"mismatch_kind,omitempty" jsonschema:"enum=prefix,enum=matcher,enum=suffix,enum=literal"`
	Min          *int   `json:"min,omitempty"`
	Max          *int   `json:"max,omitempty"`
	Received     int    `json:"received,omitempty"`
	MaxDepth     int    `json:"max_depth,omitempty"`
	Message      string `json:"message"`
}

// Report is the validation outcome: every accumulated error plus the
// capture map, as spec.md §6.4 defines it.
type Report struct {
	Errors   []ReportedError `json:"errors"`
	Captures map[string]any  `json:"captures"`
}

// JSONSchema customizes the reflected schema for ReportedError, grounded on
// the teacher's internal/schema/schema.go StructureElement.JSONSchema():
// same orderedmap-backed property-set construction, here describing a fixed
// JSON wire shape instead of a union YAML syntax.
func (ReportedError) JSONSchema() *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("kind", &jsonschema.Schema{Type: "string", Description: "Validation error variant name"})
	props.Set("schema_index", &jsonschema.Schema{Type: "integer"})
	props.Set("input_index", &jsonschema.Schema{Type: "integer"})
	props.Set("expected", &jsonschema.Schema{Type: "string"})
	props.Set("actual", &jsonschema.Schema{Type: "string"})
	props.Set("mismatch_kind", &jsonschema.Schema{
		Type: "string",
		Enum: []any{"prefix", "matcher", "suffix", "literal"},
	})
	props.Set("min", &jsonschema.Schema{Type: "integer"})
	props.Set("max", &jsonschema.Schema{Type: "integer"})
	props.Set("received", &jsonschema.Schema{Type: "integer"})
	props.Set("max_depth", &jsonschema.Schema{Type: "integer"})
	props.Set("message", &jsonschema.Schema{Type: "string"})

	return &jsonschema.Schema{
		Type:        "object",
		Properties:  props,
		Required:    []string{"kind", "schema_index", "input_index", "message"},
		Description: "A single structured validation error, per spec §7",
	}
}

// FromResult converts a core validate.Result into the wire-format Report.
func FromResult(result *validate.Result) *Report {
	rep := &Report{Captures: map[string]any{}}
	for id, value := range result.Captures {
		rep.Captures[id] = value
	}
	for _, e := range result.Errors {
		rep.Errors = append(rep.Errors, ReportedError{
			Kind:         e.Kind.String(),
			SchemaIndex:  e.SchemaIndex,
			InputIndex:   e.InputIndex,
			Expected:     e.Expected,
			Actual:       e.Actual,
			MismatchKind: mismatchKindString(e),
			Min:          e.Min,
			Max:          e.Max,
			Received:     e.Received,
			MaxDepth:     e.MaxDepth,
			Message:      e.Error(),
		})
	}
	return rep
}

func mismatchKindString(e *validate.Error) string {
	if e.Kind != validate.KindNodeContentMismatch {
		return ""
	}
	return e.MismatchKind.String()
}

// OK reports whether the report carries no errors.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return b, nil
}
