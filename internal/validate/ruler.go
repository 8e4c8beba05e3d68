package validate

import "github.com/404wolf/mdvalidate/internal/mdtree"

// validateRuler confirms both cursors are thematic breaks. Rulers have no
// children and capture nothing. Grounded on spec §4.6's RulerValidator.
func validateRuler(schemaCursor, inputCursor *mdtree.Cursor) *Result {
	return Empty(schemaCursor.Index(), inputCursor.Index())
}
