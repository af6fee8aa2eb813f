package services

import (
	"github.com/shopspring/decimal"

	"github.com/bomworks/bomview/pkg/domain/entities"
)

// groupKey identifies duplicate occurrences of the same part.
type groupKey struct {
	Number      string
	Revision    string
	Description string
	State       string
}

// MBOMColumns is the fixed column order of the aggregated view.
var MBOMColumns = []string{
	entities.ColNumber,
	entities.ColRevision,
	entities.ColDescription,
	entities.ColQty,
	entities.ColState,
	entities.ColMaterial,
	entities.ColFinish,
}

// Aggregate merges duplicate parts: records sharing (Number, Revision,
// Description, State) collapse to one row with their quantities summed,
// in first-appearance order. Material and Finish are then attached per
// Number as the first usable value found across all input records with that
// Number, regardless of which Revision/State produced the row.
func Aggregate(records []entities.PartRecord) entities.Table {
	type group struct {
		rec entities.PartRecord
		qty decimal.Decimal
	}
	groups := make(map[groupKey]*group, len(records))
	order := make([]groupKey, 0, len(records))

	materials := make(map[string]string)
	finishes := make(map[string]string)

	for _, rec := range records {
		key := groupKey{
			Number:      rec.Number,
			Revision:    rec.Revision,
			Description: rec.Description,
			State:       rec.State,
		}
		if g, ok := groups[key]; ok {
			g.qty = g.qty.Add(rec.Qty)
		} else {
			groups[key] = &group{rec: rec, qty: rec.Qty}
			order = append(order, key)
		}
		if _, ok := materials[rec.Number]; !ok {
			if v := CleanValue(rec.Material); v != "" {
				materials[rec.Number] = v
			}
		}
		if _, ok := finishes[rec.Number]; !ok {
			if v := CleanValue(rec.Finish); v != "" {
				finishes[rec.Number] = v
			}
		}
	}

	out := entities.Table{
		Columns: append([]string(nil), MBOMColumns...),
		Records: make([]entities.PartRecord, 0, len(order)),
	}
	for _, key := range order {
		g := groups[key]
		out.Records = append(out.Records, entities.PartRecord{
			Number:      key.Number,
			Revision:    key.Revision,
			Description: key.Description,
			State:       key.State,
			Qty:         g.qty,
			Material:    materials[key.Number],
			Finish:      finishes[key.Number],
		})
	}
	return out
}
