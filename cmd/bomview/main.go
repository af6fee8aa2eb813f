package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bomworks/bomview/pkg/interfaces/cli/commands"
)

func main() {
	var (
		inputFile = flag.String("input", "", "Path to the parts-list CSV export")
		rulesFile = flag.String("rules", "", "Path to a YAML rules file")
		encoding  = flag.String("encoding", "utf-16", "Character encoding of the CSV (IANA name)")
		outputDir = flag.String("output", "", "Output directory (default \"<input base> BOMs\" next to the input)")
		format    = flag.String("format", "xlsx", "Tabular output format: xlsx or csv")
		checkPN   = flag.Bool("check-part-numbers", true, "Validate that every Number matches its File Name base")
		verbose   = flag.Bool("verbose", false, "Enable console logging")
		help      = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		InputFile:        *inputFile,
		RulesFile:        *rulesFile,
		Encoding:         *encoding,
		OutputDir:        *outputDir,
		Format:           *format,
		CheckPartNumbers: *checkPN,
		Verbose:          *verbose,
		Help:             *help,
	}

	cmd := commands.NewBOMCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
