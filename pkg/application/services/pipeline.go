package services

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/bomworks/bomview/pkg/domain/entities"
	domain "github.com/bomworks/bomview/pkg/domain/services"
)

// TextLine is one rendered line of a plain-text view. Indent counts repeats
// of the writer's fixed indent unit.
type TextLine struct {
	Text   string
	Indent int
}

// Outputs holds the four derived views. Each is computed from its own clone
// of the enriched input table, so none observes another's filtering.
type Outputs struct {
	// EBOM is the full enriched table minus the configured dropped columns.
	EBOM entities.Table
	// WBOM keeps the welded families with levels renumbered relative to
	// each family root; WBOMText is its indented plain-text rendering.
	WBOM     entities.Table
	WBOMText []TextLine
	// ASMTree keeps only assembly records; ASMTreeDepths carries the
	// literal dot-count depth per record and ASMTreeText the rendering.
	ASMTree       entities.Table
	ASMTreeDepths []int
	ASMTreeText   []TextLine
	// MBOM is the family-stripped, aggregated manufacturing view.
	MBOM entities.Table
}

// Pipeline derives the EBOM, WBOM, ASMtree and MBOM views from one parts
// table. It is a pure orchestration of the domain services; stage order is
// fixed: enrich, validate or overwrite part numbers, then compute the four
// views independently.
type Pipeline struct {
	rules  entities.Rules
	logger *zap.Logger
}

// NewPipeline creates a pipeline for the given rules. A nil logger disables
// logging.
func NewPipeline(rules entities.Rules, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{rules: rules, logger: logger}
}

// Run enriches the table, applies the part-number policy, and computes the
// four views. When part-number validation fails, every offending record is
// reported and no view is produced.
func (p *Pipeline) Run(table entities.Table) (*Outputs, error) {
	t := table.Clone()
	p.enrich(&t)

	if p.rules.CheckPartNumberMatchesFileName {
		if mismatches := domain.FindPartNumberMismatches(t.Records); len(mismatches) > 0 {
			p.logger.Warn("part number validation failed",
				zap.Int("mismatches", len(mismatches)))
			return nil, &domain.PartNumberMismatchError{Mismatches: mismatches}
		}
	} else {
		for i := range t.Records {
			t.Records[i].Number = domain.FileNameBase(t.Records[i].FileName)
		}
	}

	out := &Outputs{}
	out.EBOM = p.buildEBOM(t)
	out.WBOM, out.WBOMText = p.buildWBOM(t)
	out.ASMTree, out.ASMTreeDepths, out.ASMTreeText = p.buildASMTree(t)
	out.MBOM = p.buildMBOM(t)

	p.logger.Info("views derived",
		zap.Int("input_rows", len(t.Records)),
		zap.Int("ebom_rows", len(out.EBOM.Records)),
		zap.Int("wbom_rows", len(out.WBOM.Records)),
		zap.Int("asmtree_rows", len(out.ASMTree.Records)),
		zap.Int("mbom_rows", len(out.MBOM.Records)))
	return out, nil
}

// enrich resolves Material and Finish for every record from the configured
// candidate columns and makes both part of the column order.
func (p *Pipeline) enrich(t *entities.Table) {
	matSources := domain.ResolveSources(t.Columns, p.rules.MaterialCandidates)
	finSources := domain.ResolveSources(t.Columns, p.rules.FinishCandidates)
	for i := range t.Records {
		rec := &t.Records[i]
		rec.Material = domain.FirstUsableValue(*rec, matSources)
		rec.Finish = domain.FirstUsableValue(*rec, finSources)
	}
	t.EnsureColumn(entities.ColMaterial)
	t.EnsureColumn(entities.ColFinish)
}

func (p *Pipeline) buildEBOM(t entities.Table) entities.Table {
	return t.Clone().DropColumns(p.rules.ColumnsToDrop)
}

func (p *Pipeline) buildWBOM(t entities.Table) (entities.Table, []TextLine) {
	w := t.Clone()
	w.Records = domain.KeepFamilySubtrees(w.Records, p.rules.WeldedSubstrings)
	depths := domain.RenumberLevels(w.Records)
	for i := range w.Records {
		w.Records[i].Level = strconv.Itoa(depths[i])
	}
	w = w.DropColumns(p.rules.ColumnsToDrop)

	lines := make([]TextLine, len(w.Records))
	for i, rec := range w.Records {
		lines[i] = TextLine{
			Text:   renderLine(strings.TrimSpace(rec.Number), rec.Description, rec.Material, rec.Finish),
			Indent: depths[i],
		}
	}
	return w, lines
}

func (p *Pipeline) buildASMTree(t entities.Table) (entities.Table, []int, []TextLine) {
	a := t.Clone()
	a.Records = domain.KeepMatching(a.Records, p.rules.AssemblySubstrings)

	depths := make([]int, len(a.Records))
	lines := make([]TextLine, len(a.Records))
	for i, rec := range a.Records {
		depths[i] = entities.DotDepth(rec.Level)
		lines[i] = TextLine{
			Text:   strings.TrimSpace(renderLine(rec.Number, rec.Description, rec.Material, rec.Finish)),
			Indent: depths[i],
		}
	}
	return a, depths, lines
}

func (p *Pipeline) buildMBOM(t entities.Table) entities.Table {
	records := t.Clone().Records
	records = domain.DropFixedNotation(records)
	records = domain.DropFamilySubtrees(records, p.rules.WeldedSubstrings)
	records = domain.DropMatching(records, p.rules.AssemblySubstrings)
	return domain.Aggregate(records)
}

// renderLine joins the display fields with the four-space separator of the
// text views. Material and Finish have already been scrubbed of null
// artifacts during enrichment.
func renderLine(fields ...string) string {
	return strings.Join(fields, "    ")
}
