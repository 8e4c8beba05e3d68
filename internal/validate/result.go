package validate

// Result accumulates captures, errors, and the farthest-reached descendant
// index pair across a (possibly nested) validation. Grounded on
// node_walker/validation_result.rs's ValidationResult: a JSON-like captures
// map in place of serde_json::Value, joined the same way (max of the two
// descendant index pairs, errors appended in order).
type Result struct {
	Captures      map[string]any
	Errors        []*Error
	SchemaReached int
	InputReached  int
}

// Empty returns a Result with no captures or errors, positioned at the given
// descendant indices.
func Empty(schemaIdx, inputIdx int) *Result {
	return &Result{Captures: map[string]any{}, SchemaReached: schemaIdx, InputReached: inputIdx}
}

// AddError appends an error to the result.
func (r *Result) AddError(err *Error) {
	if err == nil {
		return
	}
	r.Errors = append(r.Errors, err)
}

// SetCapture records a value under id, overwriting any previous value.
func (r *Result) SetCapture(id string, value any) {
	if id == "" {
		return
	}
	if r.Captures == nil {
		r.Captures = map[string]any{}
	}
	r.Captures[id] = value
}

// AppendCapture appends value to the array capture under id, creating it if
// necessary. Used by repeating list matchers to preserve input order.
func (r *Result) AppendCapture(id string, value any) {
	if id == "" {
		return
	}
	if r.Captures == nil {
		r.Captures = map[string]any{}
	}
	existing, _ := r.Captures[id].([]any)
	r.Captures[id] = append(existing, value)
}

// Join merges other into r: captures overlay (with array captures under the
// same id concatenated), errors are appended in order, and the reached pair
// becomes the max of the two.
func (r *Result) Join(other *Result) {
	if other == nil {
		return
	}
	for id, value := range other.Captures {
		if arr, ok := value.([]any); ok {
			if existing, ok := r.Captures[id].([]any); ok {
				r.Captures[id] = append(existing, arr...)
				continue
			}
		}
		r.SetCapture(id, value)
	}
	r.Errors = append(r.Errors, other.Errors...)
	if other.SchemaReached > r.SchemaReached {
		r.SchemaReached = other.SchemaReached
	}
	if other.InputReached > r.InputReached {
		r.InputReached = other.InputReached
	}
}

// ReachedPair returns the (schema, input) descendant index high-water mark.
func (r *Result) ReachedPair() (int, int) { return r.SchemaReached, r.InputReached }

// OK reports whether the result carries no errors.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

// TruncateAfterFirstFastFailTrigger drops every error after the first
// SchemaViolation/SchemaError-kind one, implementing the --fast-fail policy
// spec.md §7 describes ("the first SchemaViolation or SchemaError ends the
// run"). A no-op if no such error is present.
func (r *Result) TruncateAfterFirstFastFailTrigger() {
	for i, e := range r.Errors {
		if e.Kind.IsFastFailTrigger() {
			r.Errors = r.Errors[:i+1]
			return
		}
	}
}
