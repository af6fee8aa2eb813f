package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Canonical column names recognized by the pipeline.
const (
	ColNumber      = "Number"
	ColLevel       = "Level"
	ColDescription = "Description"
	ColRevision    = "Revision"
	ColState       = "State"
	ColQty         = "Qty"
	ColFileName    = "File Name"
	ColMaterial    = "Material"
	ColFinish      = "Finish"
)

// PartRecord is one row of the parts list. The typed fields are parsed once
// at ingestion; Attrs keeps every source column so passthrough attributes
// survive into the tabular views. Stages never mutate a record shared with
// another view; each view works on a cloned table.
type PartRecord struct {
	Number      string
	Level       string // raw level text as read
	Tokens      LevelCode
	Description string
	Revision    string
	State       string
	Qty         decimal.Decimal
	FileName    string
	Material    string
	Finish      string
	Attrs       map[string]string
}

// Clone returns a deep copy of the record.
func (r PartRecord) Clone() PartRecord {
	out := r
	out.Tokens = append(LevelCode(nil), r.Tokens...)
	if r.Attrs != nil {
		out.Attrs = make(map[string]string, len(r.Attrs))
		for k, v := range r.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

// Value returns the record's value for a named column. Number, Level,
// Material and Finish read from the typed fields because stages rewrite
// them; everything else reads from the raw attribute map first.
func (r PartRecord) Value(col string) string {
	switch col {
	case ColNumber:
		return r.Number
	case ColLevel:
		return r.Level
	case ColMaterial:
		return r.Material
	case ColFinish:
		return r.Finish
	}
	if v, ok := r.Attrs[col]; ok {
		return v
	}
	switch col {
	case ColDescription:
		return r.Description
	case ColRevision:
		return r.Revision
	case ColState:
		return r.State
	case ColQty:
		return r.Qty.String()
	case ColFileName:
		return r.FileName
	}
	return ""
}

// Table is an ordered parts list together with its column order.
type Table struct {
	Columns []string
	Records []PartRecord
}

// Clone returns an independent snapshot of the table. Each derived view is
// computed from its own clone so one view's filtering cannot leak into
// another's input.
func (t Table) Clone() Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Records: make([]PartRecord, len(t.Records)),
	}
	for i, rec := range t.Records {
		out.Records[i] = rec.Clone()
	}
	return out
}

// DropColumns returns the table without the named columns. Names that do not
// exist are ignored. Record data is untouched; only the column order that
// drives tabular output changes.
func (t Table) DropColumns(names []string) Table {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	kept := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		if _, ok := drop[col]; !ok {
			kept = append(kept, col)
		}
	}
	t.Columns = kept
	return t
}

// EnsureColumn appends col to the column order if it is not already present.
func (t *Table) EnsureColumn(col string) {
	for _, c := range t.Columns {
		if c == col {
			return
		}
	}
	t.Columns = append(t.Columns, col)
}

// SubstringSet is an unordered set of case-sensitive, unanchored substrings
// identifying part-number families. The empty set matches nothing, so no
// family ever starts.
type SubstringSet []string

// MatchesAny reports whether s contains any substring in the set. Blank
// entries are ignored rather than matching everything.
func (set SubstringSet) MatchesAny(s string) bool {
	for _, sub := range set {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
