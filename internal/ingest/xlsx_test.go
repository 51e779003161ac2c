package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
)

func workbookBytes(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, record := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", axis, &record))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

var header = []interface{}{"학년", "반", "번호", "성명", "이수학년", "이수학기", "교과(군)", "과목명", "학점"}

func TestReadRows(t *testing.T) {
	r := workbookBytes(t, [][]interface{}{
		header,
		{1, 2, 3, "김하늘", 1, 1, "국어", "문학", 4},
		{1, 2, 4, "박바다", 1, 2, "과학", "물리학Ⅰ", 3.5},
	})

	rows, err := ReadRows(r)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	key, ok := first.Key()
	require.True(t, ok)
	assert.Equal(t, model.StudentKey{Grade: 1, Class: 2, Number: 3}, key)
	assert.Equal(t, "김하늘", first.StudentNameValue())
	assert.Equal(t, "국어", first.SubjectGroupValue())
	assert.Equal(t, "문학", first.CourseNameValue())
	assert.Equal(t, 4.0, first.CreditValue())
	require.NotNil(t, first.CourseGrade)
	assert.Equal(t, 1, *first.CourseGrade)

	assert.Equal(t, 3.5, rows[1].CreditValue())
}

func TestReadRowsCoercion(t *testing.T) {
	r := workbookBytes(t, [][]interface{}{
		header,
		// Blank student number, non-numeric credit, padded name.
		{1, 2, "", "  김하늘  ", "x", 1, "   ", "문학", "없음"},
	})

	rows, err := ReadRows(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	_, ok := row.Key()
	assert.False(t, ok, "row without student number is unattributable")
	assert.Nil(t, row.StudentNo)
	assert.Nil(t, row.CourseGrade, "non-numeric cell coerces to absent")
	assert.Nil(t, row.Credit, "non-numeric credit coerces to absent")
	assert.Nil(t, row.SubjectGroup, "whitespace-only cell coerces to absent")
	assert.Equal(t, "김하늘", row.StudentNameValue())
	assert.Equal(t, 0.0, row.CreditValue())
}

func TestReadRowsFloatStoredIntegers(t *testing.T) {
	r := workbookBytes(t, [][]interface{}{
		header,
		{"1.0", "2.0", "3.0", "김하늘", 1, 1, "국어", "문학", 4},
	})

	rows, err := ReadRows(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	key, ok := rows[0].Key()
	require.True(t, ok)
	assert.Equal(t, model.StudentKey{Grade: 1, Class: 2, Number: 3}, key)
}

func TestReadRowsSkipsEmptyRows(t *testing.T) {
	r := workbookBytes(t, [][]interface{}{
		header,
		{1, 2, 3, "김하늘", 1, 1, "국어", "문학", 4},
		{"", "", "", "", "", "", "", "", ""},
	})

	rows, err := ReadRows(r)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReadRowsMissingColumnsStayAbsent(t *testing.T) {
	r := workbookBytes(t, [][]interface{}{
		{"학년", "반", "번호", "과목명"},
		{1, 2, 3, "문학"},
	})

	rows, err := ReadRows(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].SubjectGroup)
	assert.Nil(t, rows[0].Credit)
	assert.Equal(t, "문학", rows[0].CourseNameValue())
}

func TestReadRowsHeaderOnly(t *testing.T) {
	r := workbookBytes(t, [][]interface{}{header})

	rows, err := ReadRows(r)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRowsNotAWorkbook(t *testing.T) {
	_, err := ReadRows(bytes.NewReader([]byte("not a spreadsheet")))
	assert.Error(t, err)
}
