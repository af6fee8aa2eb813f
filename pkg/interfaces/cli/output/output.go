package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/bomworks/bomview/pkg/application/services"
	"github.com/bomworks/bomview/pkg/domain/entities"
)

// indentUnit is the fixed indent of the plain-text views.
const indentUnit = "    "

// Config controls where and how the derived views are written.
type Config struct {
	// OutputDir receives all generated files. Created if absent.
	OutputDir string
	// BaseName prefixes every file name, e.g. "<BaseName>_EBOM.xlsx".
	BaseName string
	// Format of the tabular views: "xlsx" (default) or "csv".
	Format string
}

// Write serializes the four views: EBOM, WBOM and MBOM as spreadsheets (or
// CSV), plus the indented WBOM and ASMtree text renderings.
func Write(out *services.Outputs, config Config) error {
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", config.OutputDir, err)
	}

	tables := []struct {
		suffix string
		table  entities.Table
	}{
		{"EBOM", out.EBOM},
		{"WBOM", out.WBOM},
		{"MBOM", out.MBOM},
	}
	for _, t := range tables {
		path := filepath.Join(config.OutputDir, config.BaseName+"_"+t.suffix)
		if err := writeTable(t.table, path, config.Format); err != nil {
			return fmt.Errorf("failed to write %s: %w", t.suffix, err)
		}
	}

	texts := []struct {
		suffix string
		lines  []services.TextLine
	}{
		{"WBOM", out.WBOMText},
		{"ASMtree", out.ASMTreeText},
	}
	for _, t := range texts {
		path := filepath.Join(config.OutputDir, config.BaseName+"_"+t.suffix+".txt")
		if err := writeText(t.lines, path); err != nil {
			return fmt.Errorf("failed to write %s text view: %w", t.suffix, err)
		}
	}
	return nil
}

func writeTable(t entities.Table, path string, format string) error {
	switch strings.ToLower(format) {
	case "", "xlsx":
		return writeXLSX(t, path+".xlsx")
	case "csv":
		return writeCSV(t, path+".csv")
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeXLSX(t entities.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, rec := range t.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(t.Columns))
		for j, col := range t.Columns {
			row[j] = rec.Value(col)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeCSV(t entities.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	row := make([]string, len(t.Columns))
	for _, rec := range t.Records {
		for j, col := range t.Columns {
			row[j] = rec.Value(col)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeText(lines []services.TextLine, path string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strings.Repeat(indentUnit, line.Indent))
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
