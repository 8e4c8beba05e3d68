// Package policy compiles and runs the expr-lang expression that shapes a
// validation report after the core walker has produced it: a CLI capture
// filter evaluated once per reported capture. Grounded on the teacher's
// internal/vast/pattern.go, which compiles a boolean expr-lang expression
// against a small helper-function environment to decide whether a heading
// matches; here the environment holds a capture id/value pair instead of
// heading text, and the decision shapes the report instead of gating tree
// dispatch.
package policy

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// Select compiles a boolean expression evaluated once per capture id/value
// pair (env keys "id" and "value") and reports whether that capture should
// survive into the final report. Used by the CLI's --select flag to shrink
// a large capture map down to the ids a caller cares about.
type Select struct {
	program *expr.Program
}

// CompileSelect compiles expression for later use by Select.Keep. An empty
// expression compiles to an always-true selector.
func CompileSelect(expression string) (*Select, error) {
	if strings.TrimSpace(expression) == "" {
		return &Select{}, nil
	}
	env := map[string]any{
		"id":          "",
		"value":       any(nil),
		"hasPrefix":   strings.HasPrefix,
		"hasSuffix":   strings.HasSuffix,
		"strContains": strings.Contains,
	}
	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling select expression %q: %w", expression, err)
	}
	return &Select{program: program}, nil
}

// Keep reports whether the capture (id, value) should be kept in the report.
func (s *Select) Keep(id string, value any) (bool, error) {
	if s == nil || s.program == nil {
		return true, nil
	}
	env := map[string]any{
		"id":          id,
		"value":       value,
		"hasPrefix":   strings.HasPrefix,
		"hasSuffix":   strings.HasSuffix,
		"strContains": strings.Contains,
	}
	result, err := expr.Run(s.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating select expression for %q: %w", id, err)
	}
	kept, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("select expression for %q did not evaluate to a boolean", id)
	}
	return kept, nil
}
