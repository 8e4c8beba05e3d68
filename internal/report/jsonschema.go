package report

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// lookupComment reads descriptions from the `jsonschema:"description=..."`
// struct tag; the teacher's equivalent (internal/jsonschema/generator.go)
// reads lc:/hc: tags instead because its reflected type is the YAML Schema
// DSL. Report has no such DSL to annotate, so the tag convention moves to
// invopop/jsonschema's own `description=` keyword instead of a custom tag.
func lookupComment(t reflect.Type, fieldName string) string {
	if fieldName == "" {
		return ""
	}
	f, found := t.FieldByName(fieldName)
	if !found {
		return ""
	}
	tag := f.Tag.Get("jsonschema")
	for _, part := range strings.Split(tag, ",") {
		if desc, ok := strings.CutPrefix(part, "description="); ok {
			return desc
		}
	}
	return ""
}

// Generate reflects the Report wire format into a JSON Schema document, for
// editor autocomplete/validation of `mdvalidate check --format json` output
// consumers. Grounded on the teacher's internal/jsonschema/generator.go
// Generate(): same Reflector setup, here reflecting the output contract
// (Report) instead of the input contract (the old YAML Schema DSL), since
// that DSL no longer exists.
func Generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: false,
		LookupComment:  lookupComment,
	}

	s := r.Reflect(&Report{})
	s.ID = "https://raw.githubusercontent.com/404wolf/mdvalidate/main/report.schema.json"
	s.Title = "mdvalidate report"
	s.Description = "Wire format emitted by `mdvalidate check --format json` (spec §6.4)"

	return json.MarshalIndent(s, "", "  ")
}
