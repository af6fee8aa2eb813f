package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bomworks/bomview/pkg/application/services"
	"github.com/bomworks/bomview/pkg/domain/entities"
)

func testOutputs() *services.Outputs {
	table := entities.Table{
		Columns: []string{entities.ColNumber, entities.ColDescription, entities.ColQty},
		Records: []entities.PartRecord{
			{Number: "P-1", Description: "Plate", Qty: decimal.NewFromInt(2)},
			{Number: "P-2", Description: "Gusset", Qty: decimal.RequireFromString("0.5")},
		},
	}
	return &services.Outputs{
		EBOM: table,
		WBOM: table,
		MBOM: table,
		WBOMText: []services.TextLine{
			{Text: "BS-W100    Welded base", Indent: 0},
			{Text: "P-1    Plate    Steel", Indent: 1},
		},
		ASMTreeText: []services.TextLine{
			{Text: "TS-A100    Top assembly", Indent: 0},
		},
	}
}

func TestWrite_XLSX(t *testing.T) {
	dir := t.TempDir()
	err := Write(testOutputs(), Config{OutputDir: dir, BaseName: "parts"})
	require.NoError(t, err)

	for _, name := range []string{"parts_EBOM.xlsx", "parts_WBOM.xlsx", "parts_MBOM.xlsx"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, name)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, "parts_EBOM.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, entities.ColNumber, header)
	number, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "P-1", number)
	qty, err := f.GetCellValue(sheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "0.5", qty)
}

func TestWrite_TextViews(t *testing.T) {
	dir := t.TempDir()
	err := Write(testOutputs(), Config{OutputDir: dir, BaseName: "parts"})
	require.NoError(t, err)

	wbom, err := os.ReadFile(filepath.Join(dir, "parts_WBOM.txt"))
	require.NoError(t, err)
	assert.Equal(t, "BS-W100    Welded base\n    P-1    Plate    Steel\n", string(wbom))

	asm, err := os.ReadFile(filepath.Join(dir, "parts_ASMtree.txt"))
	require.NoError(t, err)
	assert.Equal(t, "TS-A100    Top assembly\n", string(asm))
}

func TestWrite_CSVFormat(t *testing.T) {
	dir := t.TempDir()
	err := Write(testOutputs(), Config{OutputDir: dir, BaseName: "parts", Format: "csv"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "parts_MBOM.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Number,Description,Qty\nP-1,Plate,2\nP-2,Gusset,0.5\n", string(data))
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	err := Write(testOutputs(), Config{OutputDir: t.TempDir(), BaseName: "parts", Format: "pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
