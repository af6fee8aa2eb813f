package services

import (
	"regexp"
	"strings"

	"github.com/bomworks/bomview/pkg/domain/entities"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeColumn lowercases a column name and strips everything that is not
// a letter or digit, so "SW-Material", "SW Material" and "swmaterial" all
// collide.
func normalizeColumn(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "")
}

// CleanValue trims a cell value and blanks the textual null artifacts
// ("nan", "none", "null", case-insensitive) that spreadsheet round-trips
// leave behind.
func CleanValue(v string) string {
	s := strings.TrimSpace(v)
	switch strings.ToLower(s) {
	case "nan", "none", "null":
		return ""
	}
	return s
}

// FindBestSourceColumn picks the existing column that best matches the
// ordered candidate names: an exact normalized match wins, otherwise the
// first column (in table order) whose normalized name starts with or
// contains a normalized candidate. Returns "" when nothing matches.
func FindBestSourceColumn(columns []string, candidates []string) string {
	type normCol struct {
		norm, orig string
	}
	normCols := make([]normCol, 0, len(columns))
	normMap := make(map[string]string, len(columns))
	for _, col := range columns {
		n := normalizeColumn(col)
		normCols = append(normCols, normCol{norm: n, orig: col})
		if _, ok := normMap[n]; !ok {
			normMap[n] = col
		}
	}
	for _, cand := range candidates {
		if orig, ok := normMap[normalizeColumn(cand)]; ok {
			return orig
		}
	}
	for _, cand := range candidates {
		nc := normalizeColumn(cand)
		if nc == "" {
			continue
		}
		for _, col := range normCols {
			if strings.HasPrefix(col.norm, nc) || strings.Contains(col.norm, nc) {
				return col.orig
			}
		}
	}
	return ""
}

// ResolveSources builds the per-record lookup order for an attribute: the
// best-matching existing column prepended to the candidate list, duplicates
// removed, original order otherwise preserved.
func ResolveSources(columns []string, candidates []string) []string {
	best := FindBestSourceColumn(columns, candidates)
	seen := make(map[string]struct{}, len(candidates)+1)
	out := make([]string, 0, len(candidates)+1)
	for _, col := range append([]string{best}, candidates...) {
		if col == "" {
			continue
		}
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		out = append(out, col)
	}
	return out
}

// FirstUsableValue returns the record's first cleaned non-empty value across
// the source columns, or "" when every source is blank or a null artifact.
// Sources absent from the record degrade to "" rather than erroring.
func FirstUsableValue(rec entities.PartRecord, sources []string) string {
	for _, col := range sources {
		if v := CleanValue(rec.Attrs[col]); v != "" {
			return v
		}
	}
	return ""
}
