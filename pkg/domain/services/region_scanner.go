package services

import (
	"github.com/bomworks/bomview/pkg/domain/entities"
)

// RegionEvent classifies a record relative to the scanner's active family
// region.
type RegionEvent int

const (
	// RegionOutside marks a record that belongs to no active region.
	RegionOutside RegionEvent = iota
	// RegionStart marks a record that anchors a new region. The anchor
	// itself is never inside its own region.
	RegionStart
	// RegionInside marks a record that continues the active region.
	RegionInside
)

// RegionScanner walks records in document order and tracks the active family
// region: a maximal run of records belonging to one family instance and its
// descendants. A region opens on a record whose Number matches the family
// set and closes when the anchor's exact level code re-occurs or the first
// token changes. Single pass, no lookahead.
type RegionScanner struct {
	families entities.SubstringSet
	active   bool
	parent   entities.LevelCode
}

// NewRegionScanner creates a scanner for the given family substring set.
func NewRegionScanner(families entities.SubstringSet) *RegionScanner {
	return &RegionScanner{families: families}
}

// Next advances the scanner by one record and classifies it. A record that
// closes the active region is immediately re-evaluated as a candidate anchor
// for a new one.
func (s *RegionScanner) Next(rec entities.PartRecord) RegionEvent {
	if s.active {
		switch {
		case rec.Tokens.Equal(s.parent):
			// Exact re-occurrence of the anchor position ends the region.
			s.reset()
		case rec.Tokens.Token0() == s.parent.Token0():
			return RegionInside
		default:
			s.reset()
		}
	}
	if s.families.MatchesAny(rec.Number) {
		s.active = true
		s.parent = rec.Tokens
		return RegionStart
	}
	return RegionOutside
}

func (s *RegionScanner) reset() {
	s.active = false
	s.parent = nil
}
