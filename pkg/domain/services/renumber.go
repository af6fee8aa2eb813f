package services

import (
	"github.com/bomworks/bomview/pkg/domain/entities"
)

// RenumberLevels assigns each record a small non-negative depth relative to
// the most recent root in the subset, 0 marking a fresh root. A record
// belongs to the current root while its tokens, truncated to the root's
// length, equal the root's tokens; the comparison is always against the
// current root, never the immediately preceding record. A record shallower
// than the root can never match the prefix test, so it always starts a new
// root. Returns one depth per record, in order.
func RenumberLevels(records []entities.PartRecord) []int {
	depths := make([]int, len(records))
	var anchor entities.LevelCode
	anchorDepth := 0
	for i, rec := range records {
		if i == 0 || !rec.Tokens.HasPrefix(anchor, anchorDepth+1) {
			anchor = rec.Tokens
			anchorDepth = len(rec.Tokens) - 1
			depths[i] = 0
			continue
		}
		depths[i] = len(rec.Tokens) - (anchorDepth + 1)
	}
	return depths
}
