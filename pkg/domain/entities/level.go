package entities

import "strings"

// LevelCode is the canonical token form of a record's hierarchical level
// value. Records arrive in pre-order document order, so a shared token
// prefix denotes an ancestor relationship and the first token identifies
// top-level family membership. An identical token sequence occurring twice
// denotes two occurrences of the same tree position.
type LevelCode []string

// ParseLevel normalizes a raw level value into its token sequence.
// Blank, missing, and literal "nan" values (spreadsheet round-trip
// artifacts) normalize to the single token "0". Embedded spaces and
// leading/trailing dots are stripped before splitting, so "10.0",
// " 10.0 " and "10. 0" all tokenize to ["10" "0"].
func ParseLevel(raw string) LevelCode {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return LevelCode{"0"}
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Trim(s, ".")
	if s == "" {
		return LevelCode{"0"}
	}
	return LevelCode(strings.Split(s, "."))
}

// Depth is the zero-based tree depth encoded by the token sequence.
func (lc LevelCode) Depth() int {
	return len(lc) - 1
}

// Token0 returns the top-level family token.
func (lc LevelCode) Token0() string {
	return lc[0]
}

// Equal reports whether two codes denote the same tree position.
func (lc LevelCode) Equal(other LevelCode) bool {
	if len(lc) != len(other) {
		return false
	}
	for i := range lc {
		if lc[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether the first n tokens of lc equal the first n
// tokens of anchor. Codes with fewer than n tokens never match, so a record
// shallower than the anchor always fails the test.
func (lc LevelCode) HasPrefix(anchor LevelCode, n int) bool {
	if len(lc) < n || len(anchor) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if lc[i] != anchor[i] {
			return false
		}
	}
	return true
}

func (lc LevelCode) String() string {
	return strings.Join([]string(lc), ".")
}

// DotDepth counts the '.' separators in the raw level text. The keep-subtree
// filter and the assembly tree compare this literal count rather than the
// canonical token form.
func DotDepth(raw string) int {
	return strings.Count(raw, ".")
}
