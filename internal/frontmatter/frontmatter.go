// Package frontmatter reads the optional YAML front matter block at the top
// of a schema document and decodes it into document-level validation
// options. The schema format is itself Markdown (spec.md §6.1), so unlike
// the teacher's side-file .mdschema.yml, global options travel inside the
// schema document's own front matter.
package frontmatter

import (
	"fmt"

	"github.com/yuin/goldmark"
	gmmeta "github.com/yuin/goldmark-meta"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// md is a dedicated goldmark instance with the meta extension enabled.
// internal/mdtree's own instance omits it deliberately: schema and input
// documents must parse identically so a leading "---" block in the input
// is never mistaken for meta rather than a thematic break (spec.md §6.3).
var md = goldmark.New(goldmark.WithExtensions(gmmeta.Meta))

// Options holds document-level validation options read from a schema's
// front matter. Zero values mean "unset"; callers apply their own defaults.
type Options struct {
	// FastFail stops the run at the first SchemaViolation or SchemaError
	// instead of collecting every error (spec.md §7 propagation policy).
	FastFail bool

	// MaxListDepth overrides the nested-list recursion guard
	// (internal/validate's NodeListTooDeep threshold). Zero means "use the
	// validator's built-in default".
	MaxListDepth int

	// Quiet suppresses the text reporter's "no violations" success line.
	Quiet bool
}

// Parse extracts Options from a schema document's front matter. A schema
// with no front matter block returns the zero Options and a nil error.
func Parse(schemaSource []byte) (Options, error) {
	ctx := gmparser.NewContext()
	reader := text.NewReader(schemaSource)
	md.Parser().Parse(reader, gmparser.WithContext(ctx))

	raw := gmmeta.Get(ctx)
	if raw == nil {
		return Options{}, nil
	}

	opts := Options{}
	if v, ok := raw["fast_fail"].(bool); ok {
		opts.FastFail = v
	}
	if v, ok := raw["quiet"].(bool); ok {
		opts.Quiet = v
	}
	switch v := raw["max_list_depth"].(type) {
	case int:
		opts.MaxListDepth = v
	case uint64:
		opts.MaxListDepth = int(v)
	case float64:
		opts.MaxListDepth = int(v)
	case nil:
	default:
		return opts, fmt.Errorf("frontmatter: max_list_depth has unsupported type %T", v)
	}

	return opts, nil
}
