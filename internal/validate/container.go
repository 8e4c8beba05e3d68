package validate

import (
	"strconv"

	"github.com/404wolf/mdvalidate/internal/mdtree"
)

// validateContainer walks an ordered sequence of heterogeneous children
// (document, list item interior, block quote interior) pairwise, delegating
// each pair to Validate. Grounded on spec §4.2's ContainerValidator.
func validateContainer(schemaCursor, inputCursor *mdtree.Cursor, gotEOF bool) *Result {
	schemaChildren := schemaCursor.Children()
	inputChildren := inputCursor.Children()

	result := Empty(schemaCursor.Index(), inputCursor.Index())

	switch {
	case gotEOF && len(schemaChildren) != len(inputChildren):
		result.AddError(newChildrenLengthMismatch(
			schemaCursor.Index(), inputCursor.Index(),
			formatCount(len(schemaChildren)), formatCount(len(inputChildren)),
		))
		return result
	case !gotEOF && len(inputChildren) > len(schemaChildren):
		result.AddError(newChildrenLengthMismatch(
			schemaCursor.Index(), inputCursor.Index(),
			formatCount(len(schemaChildren)), formatCount(len(inputChildren)),
		))
		return result
	}

	n := len(schemaChildren)
	if len(inputChildren) < n {
		n = len(inputChildren)
	}

	for i := 0; i < n; i++ {
		isLastPair := i == n-1
		pairEOF := gotEOF || !isLastPair
		result.Join(Validate(schemaChildren[i], inputChildren[i], pairEOF))
	}

	return result
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}
