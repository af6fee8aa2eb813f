package services

import (
	"github.com/bomworks/bomview/pkg/domain/entities"
)

// The five selection policies. Each is a pure, order-preserving function
// over a record sequence; none mutates its input.

// DropFamilySubtrees removes every record inside a family region while
// keeping the region anchors and all out-of-family records. The
// continuation test compares only the first level token, so same-depth
// siblings of the anchor are removed along with deeper descendants.
func DropFamilySubtrees(records []entities.PartRecord, families entities.SubstringSet) []entities.PartRecord {
	scanner := NewRegionScanner(families)
	out := make([]entities.PartRecord, 0, len(records))
	for _, rec := range records {
		if scanner.Next(rec) == RegionInside {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// DropMatching removes records whose Number contains any configured
// substring. Stateless; no region tracking.
func DropMatching(records []entities.PartRecord, subs entities.SubstringSet) []entities.PartRecord {
	out := make([]entities.PartRecord, 0, len(records))
	for _, rec := range records {
		if subs.MatchesAny(rec.Number) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// fixedNotationDashIndex is where the vendor-code convention AA-A####-#
// places its second dash.
const fixedNotationDashIndex = 8

// DropFixedNotation removes vendor sub-components whose Number carries a
// '-' exactly at index 8. Numbers shorter than nine characters are never
// dropped.
func DropFixedNotation(records []entities.PartRecord) []entities.PartRecord {
	out := make([]entities.PartRecord, 0, len(records))
	for _, rec := range records {
		if len(rec.Number) > fixedNotationDashIndex && rec.Number[fixedNotationDashIndex] == '-' {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// KeepFamilySubtrees keeps matching anchor records and the records beneath
// them. Depth comparison uses the raw dot count of the Level text, not the
// canonical token form: a record stays in the family while its dot count
// strictly exceeds the anchor's. The record that ends a family is
// re-evaluated as a fresh candidate anchor.
func KeepFamilySubtrees(records []entities.PartRecord, families entities.SubstringSet) []entities.PartRecord {
	out := make([]entities.PartRecord, 0, len(records))
	active := false
	anchorDepth := 0
	for _, rec := range records {
		if active {
			if entities.DotDepth(rec.Level) > anchorDepth {
				out = append(out, rec)
				continue
			}
			active = false
		}
		if families.MatchesAny(rec.Number) {
			active = true
			anchorDepth = entities.DotDepth(rec.Level)
			out = append(out, rec)
		}
	}
	return out
}

// KeepMatching keeps only records whose Number contains any configured
// substring. No ordering dependency.
func KeepMatching(records []entities.PartRecord, subs entities.SubstringSet) []entities.PartRecord {
	out := make([]entities.PartRecord, 0, len(records))
	for _, rec := range records {
		if subs.MatchesAny(rec.Number) {
			out = append(out, rec)
		}
	}
	return out
}
