package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
)

func TestPrereqTableNormalizesOnLoad(t *testing.T) {
	table := NewPrereqTable([]model.PrereqRule{
		{CourseName: " 미적분 ", Requires: []string{"수학Ⅰ", " 수학Ⅱ"}},
	})

	require.Equal(t, 1, table.Len())
	requires, ok := table.RequirementsOf("미적분")
	require.True(t, ok)
	// NFKC folds Ⅰ/Ⅱ to ASCII I/II on load.
	assert.Equal(t, []string{"수학I", "수학II"}, requires)
}

func TestPrereqTableDropsEmptyKeys(t *testing.T) {
	table := NewPrereqTable([]model.PrereqRule{
		{CourseName: "   ", Requires: []string{"수학Ⅰ"}},
		{CourseName: "", Requires: []string{"수학Ⅰ"}},
	})
	assert.Equal(t, 0, table.Len())
}

func TestPrereqTableLastWriteWins(t *testing.T) {
	// Two spellings of the same key collide after normalization; the later
	// entry overwrites the earlier one.
	table := NewPrereqTable([]model.PrereqRule{
		{CourseName: "기하", Requires: []string{"수학Ⅰ"}},
		{CourseName: " 기하 ", Requires: []string{"미적분"}},
	})

	require.Equal(t, 1, table.Len())
	requires, ok := table.RequirementsOf("기하")
	require.True(t, ok)
	assert.Equal(t, []string{"미적분"}, requires)
}

func TestPrereqTableMissingCourse(t *testing.T) {
	table := NewPrereqTable(nil)
	_, ok := table.RequirementsOf("미적분")
	assert.False(t, ok)
}
