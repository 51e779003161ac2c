package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain hangul untouched", "물리학", "물리학"},
		{"fullwidth letters collapse", "ＡＢＣ１２３", "ABC123"},
		{"fullwidth slash", "한문／교양", "한문/교양"},
		{"hangul interpunct", "기술ㆍ가정", "기술·가정"},
		{"katakana middle dot", "기술・가정", "기술·가정"},
		{"halfwidth katakana middle dot", "기술･가정", "기술·가정"},
		{"bullet", "기술•가정", "기술·가정"},
		{"space around separator", "기술 · 가정", "기술·가정"},
		{"space around slash", "제2외국어 / 한문", "제2외국어/한문"},
		{"paren interior whitespace", "교과 (군 별)", "교과 (군별)"},
		{"fullwidth parens via NFKC", "교과（군 별）", "교과(군별)"},
		{"other whitespace untouched", "심화 국어", "심화 국어"},
		{"ideographic space around slash", "한문　/　교양", "한문/교양"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"기술ㆍ가정 / 제2외국어／한문",
		"물리학Ⅰ",
		"수학 ( 상 )",
		"ＫＯＲＥＡＮ・ＨＩＳＴＯＲＹ",
		"   공백   유지   ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "한국사I", NormalizeName("  한국사Ⅰ  "))
	assert.Equal(t, "", NormalizeName("   "))
	// Whitespace is removed inside the parentheses only; the space before
	// the opening paren is outside the span and survives.
	assert.Equal(t, "수학 (상)", NormalizeName("수학 ( 상 )"))
}

func TestStripSpace(t *testing.T) {
	assert.Equal(t, "기술·가정", StripSpace("기 술 · 가 정"))
	assert.Equal(t, "abc", StripSpace("a b\tc\n"))
}
