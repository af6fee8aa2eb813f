package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/bomworks/bomview/pkg/domain/entities"
)

// Loader reads a parts-list CSV export into a Table.
type Loader struct {
	encoding string
}

// NewLoader creates a loader for the given character encoding. PDM exports
// are UTF-16 by default; any IANA encoding name is accepted, and the empty
// string means plain UTF-8.
func NewLoader(encoding string) *Loader {
	return &Loader{encoding: encoding}
}

// Load reads the file into a Table, preserving the source column order.
// Number and Level are required columns; every other attribute degrades to
// the empty string when absent. Rows shorter than the header are padded.
func (l *Loader) Load(filename string) (entities.Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return entities.Table{}, fmt.Errorf("failed to open parts list %s: %w", filename, err)
	}
	defer file.Close()

	decoded, err := l.decodingReader(file)
	if err != nil {
		return entities.Table{}, err
	}

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return entities.Table{}, fmt.Errorf("failed to read parts list CSV: %w", err)
	}
	if len(rows) < 2 {
		return entities.Table{}, fmt.Errorf("parts list CSV must have a header and at least one data row")
	}

	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = strings.TrimSpace(col)
	}
	for _, required := range []string{entities.ColNumber, entities.ColLevel} {
		if !containsColumn(header, required) {
			return entities.Table{}, fmt.Errorf("required column %q missing from %s", required, filename)
		}
	}

	records := make([]entities.PartRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, buildRecord(header, row))
	}
	return entities.Table{Columns: header, Records: records}, nil
}

func buildRecord(header []string, row []string) entities.PartRecord {
	attrs := make(map[string]string, len(header))
	for i, col := range header {
		if i < len(row) {
			attrs[col] = row[i]
		} else {
			attrs[col] = ""
		}
	}
	rawLevel := attrs[entities.ColLevel]
	return entities.PartRecord{
		Number:      attrs[entities.ColNumber],
		Level:       rawLevel,
		Tokens:      entities.ParseLevel(rawLevel),
		Description: attrs[entities.ColDescription],
		Revision:    attrs[entities.ColRevision],
		State:       attrs[entities.ColState],
		Qty:         parseQty(attrs[entities.ColQty]),
		FileName:    attrs[entities.ColFileName],
		Attrs:       attrs,
	}
}

// parseQty parses a quantity cell. Blank or malformed quantities degrade to
// zero; they must never fail the load.
func parseQty(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func containsColumn(header []string, name string) bool {
	for _, col := range header {
		if col == name {
			return true
		}
	}
	return false
}

func (l *Loader) decodingReader(file io.Reader) (io.Reader, error) {
	name := strings.TrimSpace(l.encoding)
	switch {
	case name == "" || strings.EqualFold(name, "utf-8"):
		return file, nil
	case strings.EqualFold(name, "utf-16"):
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
		return transform.NewReader(file, enc.NewDecoder()), nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return transform.NewReader(file, enc.NewDecoder()), nil
}
