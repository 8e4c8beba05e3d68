// Package stream implements the streaming validation driver described in
// spec.md §4.10: the core walker is a pure function, so incremental input
// is handled by re-parsing and re-validating the whole buffer from the root
// on every chunk. Errors already reported for an earlier chunk are dropped
// by structural identity; the confirmed watermark is recorded, but no part
// of the walk before it is skipped.
package stream

import (
	"fmt"

	"github.com/404wolf/mdvalidate/internal/mdtree"
	"github.com/404wolf/mdvalidate/internal/validate"
)

// errorKey identifies a ValidationError by structural identity (kind plus
// the descendant indices it was raised at) rather than by message text, so
// the same schema violation reported again on a later, larger input prefix
// is recognized as a repeat rather than a new finding.
type errorKey struct {
	kind        validate.Kind
	schemaIndex int
	inputIndex  int
}

func keyOf(e *validate.Error) errorKey {
	return errorKey{kind: e.Kind, schemaIndex: e.SchemaIndex, inputIndex: e.InputIndex}
}

// Driver drives repeated validate.Validate calls over a growing input
// buffer. Grounded on original_source's state.rs StreamingDriver: it keeps
// a confirmed_pos watermark (reported by ConfirmedPos) and a dedup set of
// reported errors. Every Read walks the whole buffer from the root, so the
// cost of a Read grows with the size of the buffer, not of the new chunk.
type Driver struct {
	schemaTree *mdtree.Tree

	buffer   []byte
	done     bool
	fastFail bool

	confirmedSchemaIdx int
	confirmedInputIdx  int

	seen     map[errorKey]struct{}
	errors   []*validate.Error
	captures map[string]any
}

// New parses the schema document once and returns a Driver ready to accept
// input chunks via Read.
func New(schemaSource []byte) (*Driver, error) {
	tree, err := mdtree.Parse(schemaSource)
	if err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	return &Driver{
		schemaTree: tree,
		seen:       make(map[errorKey]struct{}),
		captures:   make(map[string]any),
	}, nil
}

// SetFastFail enables or disables the --fast-fail policy (spec.md §7): once
// a fresh error counts as a SchemaViolation/SchemaError (Kind.IsFastFailTrigger),
// the driver reports it and then refuses further Read calls, same as
// reaching eof.
func (d *Driver) SetFastFail(v bool) { d.fastFail = v }

// Read appends chunk to the input buffer, re-parses the input document, and
// re-validates from the root. eof signals that chunk is the final piece of
// input. The returned Result carries only newly-discovered errors and the
// captures accumulated so far; Done reports whether eof (or a fast-fail
// trigger) has ended the stream.
func (d *Driver) Read(chunk []byte, eof bool) (*validate.Result, error) {
	if d.done {
		return nil, fmt.Errorf("stream already closed (eof reached or fast-fail triggered)")
	}
	d.buffer = append(d.buffer, chunk...)

	inputTree, perr := mdtree.Parse(d.buffer)
	if perr != nil {
		fresh := validate.Empty(0, len(d.buffer))
		fresh.AddError(validate.NewParseFailureError(0, len(d.buffer), perr))
		d.done = true
		return fresh, nil
	}

	result := validate.Validate(d.schemaTree.Root(), inputTree.Root(), eof)

	fresh := validate.Empty(result.SchemaReached, result.InputReached)
	for _, e := range result.Errors {
		k := keyOf(e)
		if _, ok := d.seen[k]; ok {
			continue
		}
		d.seen[k] = struct{}{}
		d.errors = append(d.errors, e)
		fresh.AddError(e)
		if d.fastFail && e.Kind.IsFastFailTrigger() {
			d.done = true
			break
		}
	}

	for id, value := range result.Captures {
		d.captures[id] = value
		fresh.SetCapture(id, value)
	}

	if result.SchemaReached > d.confirmedSchemaIdx {
		d.confirmedSchemaIdx = result.SchemaReached
	}
	if result.InputReached > d.confirmedInputIdx {
		d.confirmedInputIdx = result.InputReached
	}

	if eof {
		d.done = true
	}

	return fresh, nil
}

// Done reports whether the driver has observed eof=true or a fast-fail
// trigger.
func (d *Driver) Done() bool { return d.done }

// ConfirmedPos returns the monotone (schema, input) descendant-index
// high-water mark reached across all Read calls so far.
func (d *Driver) ConfirmedPos() (int, int) {
	return d.confirmedSchemaIdx, d.confirmedInputIdx
}

// Errors returns every distinct error observed across the whole stream, in
// discovery order.
func (d *Driver) Errors() []*validate.Error { return d.errors }

// Captures returns every capture observed across the whole stream.
func (d *Driver) Captures() map[string]any { return d.captures }
