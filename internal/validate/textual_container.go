package validate

import (
	"errors"
	"strings"

	"github.com/404wolf/mdvalidate/internal/matcher"
	"github.com/404wolf/mdvalidate/internal/mdtree"
)

type textChunkKind int

const (
	chunkPlain textChunkKind = iota
	chunkText
	chunkMatcher
	chunkLiteralCode
)

// textChunk is one expected input sibling slot, derived from a run of
// schema children per spec §4.3's chunk-count table.
type textChunk struct {
	kind          textChunkKind
	schemaChild   *mdtree.Cursor
	schemaIdxHint int
	literalText   string
	prefix        string
	suffix        string
	m             *matcher.Matcher
	err           error
}

type codeSpanClassification struct {
	m        *matcher.Matcher
	err      error
	afterPtr *string
}

// classifyCodeSpans looks ahead at each code_span child and determines
// whether it parses as a non-literal matcher, a literal-code flag, or a
// schema error, also recording the following text node (if any) that
// supplies its extras.
func classifyCodeSpans(schemaChildren []*mdtree.Cursor) []*codeSpanClassification {
	out := make([]*codeSpanClassification, len(schemaChildren))
	for i, ch := range schemaChildren {
		if ch.Kind() != mdtree.KindCodeSpan {
			continue
		}
		interior := strings.TrimSpace(string(ch.Text()))
		var afterPtr *string
		if i+1 < len(schemaChildren) && schemaChildren[i+1].Kind() == mdtree.KindText {
			s := string(schemaChildren[i+1].Text())
			afterPtr = &s
		}
		m, err := matcher.FromCodeSpanInterior(interior, afterPtr)
		out[i] = &codeSpanClassification{m: m, err: err, afterPtr: afterPtr}
	}
	return out
}

// planTextChunks derives the ordered sequence of expected input chunks from
// a schema textual container's direct children.
func planTextChunks(schemaChildren []*mdtree.Cursor) []textChunk {
	classes := classifyCodeSpans(schemaChildren)
	var plan []textChunk

	for i, ch := range schemaChildren {
		switch ch.Kind() {
		case mdtree.KindText:
			if i+1 < len(schemaChildren) {
				if cls := classes[i+1]; cls != nil && cls.err == nil {
					continue // prefix of the next matcher chunk
				}
			}
			if i > 0 {
				if cls := classes[i-1]; cls != nil && cls.afterPtr != nil {
					continue // extras/trailing text already folded into the previous code span's chunk
				}
			}
			plan = append(plan, textChunk{kind: chunkText, schemaChild: ch})

		case mdtree.KindCodeSpan:
			cls := classes[i]
			switch {
			case errors.Is(cls.err, matcher.ErrWasLiteralCode):
				plan = append(plan, textChunk{kind: chunkLiteralCode, schemaChild: ch})
				if cls.afterPtr != nil {
					_, extrasLen, _ := matcher.ParseExtrasFromSuffix(*cls.afterPtr)
					if trailing := (*cls.afterPtr)[extrasLen:]; trailing != "" {
						plan = append(plan, textChunk{kind: chunkText, schemaIdxHint: ch.Index(), literalText: trailing})
					}
				}
			case cls.err != nil:
				plan = append(plan, textChunk{kind: chunkMatcher, schemaChild: ch, err: cls.err})
			default:
				prefix := ""
				if i > 0 && schemaChildren[i-1].Kind() == mdtree.KindText {
					prefix = string(schemaChildren[i-1].Text())
				}
				suffix := ""
				if cls.afterPtr != nil {
					_, extrasLen, _ := matcher.ParseExtrasFromSuffix(*cls.afterPtr)
					suffix = (*cls.afterPtr)[extrasLen:]
				}
				plan = append(plan, textChunk{kind: chunkMatcher, schemaChild: ch, prefix: prefix, suffix: suffix, m: cls.m})
			}

		default:
			plan = append(plan, textChunk{kind: chunkPlain, schemaChild: ch})
		}
	}

	return plan
}

// validateTextualContainer validates a paragraph / heading / list-item
// content region, where matchers may coalesce with surrounding literal
// text. Grounded on spec §4.3's TextualContainerValidator.
func validateTextualContainer(schemaCursor, inputCursor *mdtree.Cursor, gotEOF bool) *Result {
	schemaChildren := schemaCursor.Children()
	inputChildren := inputCursor.Children()
	result := Empty(schemaCursor.Index(), inputCursor.Index())

	plan := planTextChunks(schemaChildren)

	nonRepeating := 0
	for _, entry := range plan {
		if entry.kind == chunkMatcher && entry.err == nil && !entry.m.Repeating() {
			nonRepeating++
		}
	}
	if nonRepeating > 1 {
		result.AddError(&Error{
			Kind:        KindMultipleMatchersInNodeChildren,
			SchemaIndex: schemaCursor.Index(),
			InputIndex:  inputCursor.Index(),
			Received:    nonRepeating,
		})
		return result
	}

	switch {
	case gotEOF && len(plan) != len(inputChildren):
		result.AddError(newChildrenLengthMismatch(schemaCursor.Index(), inputCursor.Index(), formatCount(len(plan)), formatCount(len(inputChildren))))
		return result
	case !gotEOF && len(inputChildren) > len(plan):
		result.AddError(newChildrenLengthMismatch(schemaCursor.Index(), inputCursor.Index(), formatCount(len(plan)), formatCount(len(inputChildren))))
		return result
	}

	n := len(plan)
	if len(inputChildren) < n {
		n = len(inputChildren)
	}

	for idx := 0; idx < n; idx++ {
		entry := plan[idx]
		ic := inputChildren[idx]
		isLast := idx == n-1
		pairEOF := gotEOF || !isLast

		switch entry.kind {
		case chunkPlain:
			result.Join(Validate(entry.schemaChild, ic, pairEOF))

		case chunkText:
			if entry.schemaChild != nil {
				result.Join(validateLiteralText(entry.schemaChild, ic))
				continue
			}
			actual := string(ic.Text())
			if actual != entry.literalText {
				result.AddError(newContentMismatch(entry.schemaIdxHint, ic.Index(), entry.literalText, actual, MismatchLiteral))
			}

		case chunkLiteralCode:
			result.Join(validateLiteralCodeSpan(entry.schemaChild, ic))

		case chunkMatcher:
			if entry.err != nil {
				result.AddError(newMatcherError(entry.schemaChild.Index(), ic.Index(), entry.err))
				continue
			}
			result.Join(validateMatcherVsText(entry.prefix, entry.m, entry.suffix, string(ic.Text()), entry.schemaChild.Index(), ic.Index(), pairEOF))
		}
	}

	return result
}
