package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel_Normalization(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want LevelCode
	}{
		{"simple", "10", LevelCode{"10"}},
		{"dotted", "10.1", LevelCode{"10", "1"}},
		{"float_style", "10.0", LevelCode{"10", "0"}},
		{"deep", "10.2.3", LevelCode{"10", "2", "3"}},
		{"blank", "", LevelCode{"0"}},
		{"whitespace_only", "   ", LevelCode{"0"}},
		{"nan_lower", "nan", LevelCode{"0"}},
		{"nan_mixed_case", "NaN", LevelCode{"0"}},
		{"surrounding_whitespace", " 10.1 ", LevelCode{"10", "1"}},
		{"embedded_space", "10. 0", LevelCode{"10", "0"}},
		{"leading_trailing_dots", ".10.1.", LevelCode{"10", "1"}},
		{"only_dots", "...", LevelCode{"0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.raw))
		})
	}
}

func TestParseLevel_IsTotal(t *testing.T) {
	// Every input yields a non-empty token sequence.
	for _, raw := range []string{"", "nan", ".", "..", "a.b.c", "10", " "} {
		assert.NotEmpty(t, ParseLevel(raw), "raw=%q", raw)
	}
}

func TestLevelCode_Depth(t *testing.T) {
	assert.Equal(t, 0, ParseLevel("10").Depth())
	assert.Equal(t, 1, ParseLevel("10.0").Depth())
	assert.Equal(t, 2, ParseLevel("10.2.3").Depth())
	assert.Equal(t, 0, ParseLevel("").Depth())
}

func TestLevelCode_Equal(t *testing.T) {
	assert.True(t, ParseLevel("10.0").Equal(ParseLevel(" 10.0 ")))
	assert.False(t, ParseLevel("10.0").Equal(ParseLevel("10")))
	assert.False(t, ParseLevel("10.0").Equal(ParseLevel("10.1")))
}

func TestLevelCode_HasPrefix(t *testing.T) {
	anchor := ParseLevel("10.1")

	assert.True(t, ParseLevel("10.1").HasPrefix(anchor, 2))
	assert.True(t, ParseLevel("10.1.4").HasPrefix(anchor, 2))
	assert.False(t, ParseLevel("10.2").HasPrefix(anchor, 2))
	// Shallower codes never match the prefix test.
	assert.False(t, ParseLevel("10").HasPrefix(anchor, 2))
}

func TestDotDepth(t *testing.T) {
	assert.Equal(t, 0, DotDepth("10"))
	assert.Equal(t, 1, DotDepth("10.0"))
	assert.Equal(t, 2, DotDepth("10.1.2"))
	assert.Equal(t, 0, DotDepth(""))
}
