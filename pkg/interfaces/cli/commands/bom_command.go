package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/bomworks/bomview/pkg/application/services"
	"github.com/bomworks/bomview/pkg/domain/entities"
	"github.com/bomworks/bomview/pkg/infrastructure/repositories/csv"
	"github.com/bomworks/bomview/pkg/interfaces/cli/output"
)

// Config holds configuration for the BOM command.
type Config struct {
	InputFile        string
	RulesFile        string
	Encoding         string
	OutputDir        string
	Format           string
	CheckPartNumbers bool
	Verbose          bool
	Help             bool
}

// BOMCommand derives and writes the four BOM views for one parts-list CSV.
type BOMCommand struct {
	config Config
}

// NewBOMCommand creates a new BOM command with the given configuration.
func NewBOMCommand(config Config) *BOMCommand {
	return &BOMCommand{config: config}
}

// Execute runs the BOM command.
func (c *BOMCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if c.config.InputFile == "" {
		return fmt.Errorf("an input parts-list CSV is required (-input)")
	}

	logger, err := newLogger(c.config.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	rules, err := c.resolveRules()
	if err != nil {
		return err
	}

	loader := csv.NewLoader(c.config.Encoding)
	table, err := loader.Load(c.config.InputFile)
	if err != nil {
		return fmt.Errorf("error loading parts list: %w", err)
	}
	logger.Info("parts list loaded",
		zap.String("file", c.config.InputFile),
		zap.Int("rows", len(table.Records)),
		zap.Int("columns", len(table.Columns)))

	pipeline := services.NewPipeline(rules, logger)
	outputs, err := pipeline.Run(table)
	if err != nil {
		return fmt.Errorf("failed to derive BOM views: %w", err)
	}

	outDir := c.config.OutputDir
	base := inputBaseName(c.config.InputFile)
	if outDir == "" {
		outDir = filepath.Join(filepath.Dir(c.config.InputFile), base+" BOMs")
	}
	if err := output.Write(outputs, output.Config{
		OutputDir: outDir,
		BaseName:  base,
		Format:    c.config.Format,
	}); err != nil {
		return fmt.Errorf("failed to write BOM views: %w", err)
	}

	logger.Info("BOM views written", zap.String("dir", outDir))
	return nil
}

// resolveRules loads the YAML rules file over the defaults. The
// check-part-numbers CLI flag always wins over the file value.
func (c *BOMCommand) resolveRules() (entities.Rules, error) {
	rules := entities.DefaultRules()
	if c.config.RulesFile != "" {
		data, err := os.ReadFile(c.config.RulesFile)
		if err != nil {
			return entities.Rules{}, fmt.Errorf("failed to read rules file %s: %w", c.config.RulesFile, err)
		}
		if err := yaml.Unmarshal(data, &rules); err != nil {
			return entities.Rules{}, fmt.Errorf("failed to parse rules file %s: %w", c.config.RulesFile, err)
		}
	}
	rules.CheckPartNumberMatchesFileName = c.config.CheckPartNumbers
	return rules, nil
}

// inputBaseName returns the input file name without directory or extension.
func inputBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// newLogger builds the command logger: JSON at info level by default,
// console output when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

func (c *BOMCommand) showHelp() {
	fmt.Println(`bomview - derive EBOM, WBOM, ASMtree and MBOM views from a parts-list CSV

Usage:
  bomview -input <parts.csv> [options]

Options:
  -input string
        Path to the parts-list CSV export (required)
  -rules string
        Path to a YAML rules file (columns to drop, family substrings,
        material/finish candidates); defaults cover the standard naming
        conventions
  -encoding string
        Character encoding of the CSV (IANA name; default "utf-16")
  -output string
        Output directory (default "<input base> BOMs" next to the input)
  -format string
        Tabular output format: xlsx or csv (default "xlsx")
  -check-part-numbers
        Validate that every Number matches its File Name base (default true);
        when false, Number is overwritten from the File Name base
  -verbose
        Console logging
  -help
        Show this message

Outputs:
  <base>_EBOM.xlsx     full enriched parts list minus dropped columns
  <base>_WBOM.xlsx     welded families, levels renumbered per family root
  <base>_WBOM.txt      indented welded-family tree
  <base>_ASMtree.txt   indented assembly tree
  <base>_MBOM.xlsx     family-stripped, aggregated manufacturing view`)
}
