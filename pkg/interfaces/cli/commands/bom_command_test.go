package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Number,Level,Description,Revision,State,Qty,File Name,SW-Material
TS-A100,10,Top assembly,A,Released,1,TS-A100.SLDASM,
BS-W200,10.1,Welded base,A,Released,1,BS-W200.SLDASM,
P-10,10.1.1,Plate,A,Released,2,P-10.SLDPRT,Steel
P-20,20,Handle,A,Released,1,P-20.SLDPRT,Aluminum
`

func writeSampleInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestBOMCommand_Execute_WritesAllViews(t *testing.T) {
	input := writeSampleInput(t)
	outDir := t.TempDir()

	cmd := NewBOMCommand(Config{
		InputFile:        input,
		Encoding:         "utf-8",
		OutputDir:        outDir,
		Format:           "csv",
		CheckPartNumbers: true,
	})
	require.NoError(t, cmd.Execute(context.Background()))

	for _, name := range []string{
		"export_EBOM.csv", "export_WBOM.csv", "export_MBOM.csv",
		"export_WBOM.txt", "export_ASMtree.txt",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestBOMCommand_Execute_DefaultOutputDir(t *testing.T) {
	input := writeSampleInput(t)

	cmd := NewBOMCommand(Config{
		InputFile:        input,
		Encoding:         "utf-8",
		Format:           "csv",
		CheckPartNumbers: true,
	})
	require.NoError(t, cmd.Execute(context.Background()))

	_, err := os.Stat(filepath.Join(filepath.Dir(input), "export BOMs", "export_EBOM.csv"))
	assert.NoError(t, err)
}

func TestBOMCommand_Execute_ValidationFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.csv")
	bad := `Number,Level,Description,Qty,File Name
WRONG,10,Part,1,P-1.SLDPRT
ALSO-WRONG,20,Part,1,P-2.SLDPRT
`
	require.NoError(t, os.WriteFile(input, []byte(bad), 0o644))
	outDir := t.TempDir()

	cmd := NewBOMCommand(Config{
		InputFile:        input,
		Encoding:         "utf-8",
		OutputDir:        outDir,
		Format:           "csv",
		CheckPartNumbers: true,
	})
	err := cmd.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 record(s)")

	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestBOMCommand_Execute_RequiresInput(t *testing.T) {
	cmd := NewBOMCommand(Config{})
	require.Error(t, cmd.Execute(context.Background()))
}

func TestResolveRules_FileOverridesDefaults(t *testing.T) {
	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	rulesYAML := `columns_to_drop:
  - File Name
welded_substrings:
  - XX-W
`
	require.NoError(t, os.WriteFile(rulesPath, []byte(rulesYAML), 0o644))

	cmd := NewBOMCommand(Config{RulesFile: rulesPath, CheckPartNumbers: false})
	rules, err := cmd.resolveRules()
	require.NoError(t, err)

	assert.Equal(t, []string{"File Name"}, rules.ColumnsToDrop)
	assert.Equal(t, []string{"XX-W"}, []string(rules.WeldedSubstrings))
	// Lists absent from the file keep their defaults.
	assert.NotEmpty(t, rules.AssemblySubstrings)
	assert.NotEmpty(t, rules.MaterialCandidates)
	// The CLI flag wins over the file for the check toggle.
	assert.False(t, rules.CheckPartNumberMatchesFileName)
}

func TestResolveRules_MissingFile(t *testing.T) {
	cmd := NewBOMCommand(Config{RulesFile: filepath.Join(t.TempDir(), "absent.yaml")})
	_, err := cmd.resolveRules()
	require.Error(t, err)
}

func TestInputBaseName(t *testing.T) {
	assert.Equal(t, "export", inputBaseName("/data/export.csv"))
	assert.Equal(t, "export.v2", inputBaseName("export.v2.csv"))
}
