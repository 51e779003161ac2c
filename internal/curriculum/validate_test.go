package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
)

func TestValidatorEmptyInput(t *testing.T) {
	v := NewValidator(NewPrereqTable(nil))
	assert.Equal(t, "", v.Check(nil))
	assert.Equal(t, "", v.Check([]string{}))
}

func TestValidatorSequenceGap(t *testing.T) {
	v := NewValidator(NewPrereqTable(nil))

	// Levels {1,3} attained for 화학: exactly level 2 is missing.
	got := v.Check([]string{"화학Ⅰ", "화학Ⅲ"})
	assert.Equal(t, "화학: 하위 단계 미이수 → Ⅱ", got)

	// No gap, no finding.
	assert.Equal(t, "", v.Check([]string{"화학Ⅰ", "화학Ⅱ", "화학Ⅲ"}))

	// Level 1 alone has nothing below it to miss.
	assert.Equal(t, "", v.Check([]string{"화학Ⅰ"}))
}

func TestValidatorSequenceMultipleGaps(t *testing.T) {
	v := NewValidator(NewPrereqTable(nil))
	// Max attained level is 4, so every absent level in [1,3] is reported.
	got := v.Check([]string{"물리학Ⅳ"})
	assert.Equal(t, "물리학: 하위 단계 미이수 → Ⅰ, Ⅱ, Ⅲ", got)
}

func TestValidatorSequenceMixedAlphabets(t *testing.T) {
	v := NewValidator(NewPrereqTable(nil))
	// "물리학VIII" must parse as level 8, not level 1, so levels {1,8}
	// report 2..7 as missing.
	got := v.Check([]string{"물리학Ⅰ", "물리학VIII"})
	assert.Equal(t, "물리학: 하위 단계 미이수 → Ⅱ, Ⅲ, Ⅳ, Ⅴ, Ⅵ, Ⅶ", got)
}

func TestValidatorPrereqMissing(t *testing.T) {
	table := NewPrereqTable([]model.PrereqRule{
		{CourseName: "미적분", Requires: []string{"수학Ⅰ", "수학Ⅱ"}},
	})
	v := NewValidator(table)

	got := v.Check([]string{"미적분", "수학Ⅰ"})
	assert.Equal(t, "미적분: missing → 수학II", got)

	// All requirements held: nothing to report.
	assert.Equal(t, "", v.Check([]string{"미적분", "수학Ⅰ", "수학Ⅱ"}))

	// The course with prerequisites is absent: rule does not fire.
	assert.Equal(t, "", v.Check([]string{"수학Ⅰ"}))
}

func TestValidatorBothClauses(t *testing.T) {
	table := NewPrereqTable([]model.PrereqRule{
		{CourseName: "미적분", Requires: []string{"수학Ⅰ", "수학Ⅱ"}},
	})
	v := NewValidator(table)

	got := v.Check([]string{"화학Ⅰ", "화학Ⅲ", "미적분"})
	assert.Equal(t, "화학: 하위 단계 미이수 → Ⅱ / 미적분: missing → 수학I, 수학II", got)
}

func TestValidatorNormalizesNames(t *testing.T) {
	table := NewPrereqTable([]model.PrereqRule{
		{CourseName: "미적분", Requires: []string{"수학Ⅰ"}},
	})
	v := NewValidator(table)

	// Fullwidth and padded spellings still satisfy the requirement.
	assert.Equal(t, "", v.Check([]string{" 미적분 ", "수학Ｉ"}))
}
