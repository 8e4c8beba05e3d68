package validate

import (
	"errors"

	"github.com/404wolf/mdvalidate/internal/matcher"
	"github.com/404wolf/mdvalidate/internal/mdtree"
)

// MaxListDepth bounds nested list recursion; validation is single-threaded
// and synchronous (spec §5), so a package-level depth counter needs no
// locking. Overridable by a schema document's front-matter
// `max_list_depth` option (internal/frontmatter.Options.MaxListDepth),
// applied by the CLI before validation starts.
var MaxListDepth = 8

var currentListDepth int

// firstMatcherInListItem returns the first non-literal matcher found among
// a list item template's content, or nil if the template carries no
// matcher at all.
func firstMatcherInListItem(item *mdtree.Cursor) (*matcher.Matcher, error) {
	children := item.Children()
	if len(children) == 0 {
		return nil, nil
	}
	content := children[0].Children()
	classes := classifyCodeSpans(content)
	for i, ch := range content {
		if ch.Kind() != mdtree.KindCodeSpan {
			continue
		}
		cls := classes[i]
		if cls == nil || errors.Is(cls.err, matcher.ErrWasLiteralCode) {
			continue
		}
		if cls.err != nil {
			return nil, cls.err
		}
		return cls.m, nil
	}
	return nil, nil
}

// validateList validates a schema list (one or more list-item templates)
// against an input list, greedily assigning input items to templates in
// order. Grounded on spec §4.5's ListValidator / MatcherVsListValidator.
func validateList(schemaCursor, inputCursor *mdtree.Cursor, gotEOF bool) *Result {
	templates := schemaCursor.Children()
	inputItems := inputCursor.Children()
	result := Empty(schemaCursor.Index(), inputCursor.Index())

	if len(templates) == 0 {
		result.AddError(newInternalInvariant(schemaCursor.Index(), inputCursor.Index(), "schema list has no template item"))
		return result
	}

	currentListDepth++
	defer func() { currentListDepth-- }()
	if currentListDepth > MaxListDepth {
		result.AddError(&Error{Kind: KindNodeListTooDeep, SchemaIndex: schemaCursor.Index(), InputIndex: inputCursor.Index(), MaxDepth: MaxListDepth})
		return result
	}

	type templateInfo struct {
		cursor *mdtree.Cursor
		m      *matcher.Matcher
	}

	infos := make([]templateInfo, len(templates))
	for i, tmpl := range templates {
		m, err := firstMatcherInListItem(tmpl)
		if err != nil {
			result.AddError(&Error{Kind: KindBadListMatcher, SchemaIndex: tmpl.Index(), InputIndex: inputCursor.Index()})
			return result
		}
		infos[i] = templateInfo{cursor: tmpl, m: m}
	}

	for i := 0; i < len(infos)-1; i++ {
		m := infos[i].m
		if m != nil && m.Repeating() && m.Bounds.Max == nil {
			result.AddError(&Error{Kind: KindRepeatingMatcherUnbounded, SchemaIndex: infos[i].cursor.Index(), InputIndex: inputCursor.Index()})
			return result
		}
	}

	if len(infos) == 1 && infos[0].m != nil && !infos[0].m.Repeating() && len(inputItems) > 1 {
		result.AddError(&Error{Kind: KindNonRepeatingMatcherInListContext, SchemaIndex: infos[0].cursor.Index(), InputIndex: inputCursor.Index()})
		return result
	}

	pos := 0
	for i, info := range infos {
		isLastTemplate := i == len(infos)-1
		remainingTemplates := len(infos) - i - 1

		if info.m == nil || !info.m.Repeating() {
			if pos >= len(inputItems) {
				if gotEOF {
					result.AddError(newChildrenLengthMismatch(info.cursor.Index(), inputCursor.Index(), formatCount(len(infos)), formatCount(len(inputItems))))
				}
				return result
			}
			item := inputItems[pos]
			result.Join(validateContainer(info.cursor, item, gotEOF || !isLastTemplate))
			pos++
			continue
		}

		remainingAfterThis := len(inputItems) - pos
		var available int

		if isLastTemplate {
			// The last template must account for every remaining item, so
			// its bounds are checked against the full remainder, not a
			// greedily-truncated slice.
			if !info.m.Bounds.InRange(remainingAfterThis) {
				min := info.m.Bounds.Min
				if min == nil {
					zero := 0
					min = &zero
				}
				result.AddError(newWrongListCount(info.cursor.Index(), inputCursor.Index(), min, info.m.Bounds.Max, remainingAfterThis))
				return result
			}
			available = remainingAfterThis
		} else {
			available = remainingAfterThis - remainingTemplates
			if available < 0 {
				available = 0
			}
			if info.m.Bounds.Max != nil && *info.m.Bounds.Max < available {
				available = *info.m.Bounds.Max
			}
			if info.m.Bounds.Min != nil && available < *info.m.Bounds.Min {
				result.AddError(newWrongListCount(info.cursor.Index(), inputCursor.Index(), info.m.Bounds.Min, info.m.Bounds.Max, available))
				return result
			}
		}

		for k := 0; k < available; k++ {
			item := inputItems[pos]
			isLastOverall := isLastTemplate && k == available-1
			sub := validateContainer(info.cursor, item, gotEOF || !isLastOverall)
			if info.m.ID != "" {
				if v, ok := sub.Captures[info.m.ID]; ok {
					delete(sub.Captures, info.m.ID)
					result.AppendCapture(info.m.ID, v)
				}
			}
			result.Join(sub)
			pos++
		}
	}

	if pos < len(inputItems) && gotEOF {
		result.AddError(newChildrenLengthMismatch(schemaCursor.Index(), inputCursor.Index(), formatCount(pos), formatCount(len(inputItems))))
	}

	return result
}
