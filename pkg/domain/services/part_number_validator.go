package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bomworks/bomview/pkg/domain/entities"
)

// PartNumberMismatch records one disagreement between a record's Number and
// its file-name base.
type PartNumberMismatch struct {
	Index    int // zero-based position in the input table
	Number   string
	FileName string
}

// PartNumberMismatchError reports every record whose Number does not match
// its file-name base. The whole table is checked before the error is built,
// so the list is always complete, never a fail-fast prefix.
type PartNumberMismatchError struct {
	Mismatches []PartNumberMismatch
}

func (e *PartNumberMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d record(s) have part numbers that do not match their file names:", len(e.Mismatches))
	for _, m := range e.Mismatches {
		fmt.Fprintf(&b, "\n  row %d: Number %q, File Name %q", m.Index+1, m.Number, m.FileName)
	}
	return b.String()
}

// FileNameBase strips the extension and surrounding whitespace from a file
// name, yielding the part number it encodes.
func FileNameBase(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimSpace(base)
}

// FindPartNumberMismatches checks every record's Number against its
// file-name base and returns all violations, in table order.
func FindPartNumberMismatches(records []entities.PartRecord) []PartNumberMismatch {
	var mismatches []PartNumberMismatch
	for i, rec := range records {
		if FileNameBase(rec.FileName) != rec.Number {
			mismatches = append(mismatches, PartNumberMismatch{
				Index:    i,
				Number:   rec.Number,
				FileName: rec.FileName,
			})
		}
	}
	return mismatches
}
