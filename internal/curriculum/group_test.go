package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalGroupBlank(t *testing.T) {
	assert.Equal(t, GroupOther, CanonicalGroup(""))
	assert.Equal(t, GroupOther, CanonicalGroup("   "))
	assert.Equal(t, GroupOther, CanonicalGroup("\t\n"))
}

func TestCanonicalGroupAliasClosure(t *testing.T) {
	// Every configured alias must collapse to the single merged label.
	for _, alias := range DefaultAliases {
		assert.Equal(t, GroupMergedElectives, CanonicalGroup(alias), "alias %q", alias)
	}
}

func TestCanonicalGroupAliasVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"interpunct variant", "기술ㆍ가정/제2외국어/한문/교양"},
		{"internal spaces", "기술 · 가정 / 제2외국어 / 한문 / 교양"},
		{"fullwidth slash", "제2외국어／한문"},
		{"single category", "한문"},
		{"spaced single category", " 교 양 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, GroupMergedElectives, CanonicalGroup(tt.in))
		})
	}
}

func TestCanonicalGroupPassthrough(t *testing.T) {
	// Aliasing is all-or-nothing: non-aliases pass through normalized but
	// otherwise unchanged, whitespace preserved.
	assert.Equal(t, "국어", CanonicalGroup("국어"))
	assert.Equal(t, "과학", CanonicalGroup(" 과학 "))
	assert.Equal(t, "체육 예술", CanonicalGroup("체육 예술"))
	// A label merely containing an alias as a substring is not merged.
	assert.Equal(t, "한문학개론", CanonicalGroup("한문학개론"))
}
