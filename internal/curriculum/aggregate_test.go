package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
)

func intp(v int) *int         { return &v }
func strp(v string) *string   { return &v }
func fltp(v float64) *float64 { return &v }

func row(grade, class, number int, name, group, course string, credit float64) model.CourseRow {
	return model.CourseRow{
		StudentGrade: intp(grade),
		ClassNo:      intp(class),
		StudentNo:    intp(number),
		StudentName:  strp(name),
		SubjectGroup: strp(group),
		CourseName:   strp(course),
		Credit:       fltp(credit),
	}
}

func TestGroupByStudentOrdering(t *testing.T) {
	rows := []model.CourseRow{
		row(2, 1, 5, "나", "수학", "수학Ⅰ", 4),
		row(1, 3, 1, "다", "국어", "문학", 4),
		row(1, 1, 9, "가", "영어", "영어Ⅰ", 4),
		row(1, 1, 2, "라", "과학", "물리학Ⅰ", 3),
	}
	students, conflicts := GroupByStudent(rows)
	require.Len(t, students, 4)
	assert.Empty(t, conflicts)

	keys := make([]model.StudentKey, 0, len(students))
	for _, s := range students {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []model.StudentKey{
		{Grade: 1, Class: 1, Number: 2},
		{Grade: 1, Class: 1, Number: 9},
		{Grade: 1, Class: 3, Number: 1},
		{Grade: 2, Class: 1, Number: 5},
	}, keys)
}

func TestGroupByStudentExcludesKeylessRows(t *testing.T) {
	noKey := row(1, 1, 1, "가", "국어", "문학", 4)
	noKey.StudentNo = nil

	students, _ := GroupByStudent([]model.CourseRow{noKey})
	assert.Empty(t, students)
}

func TestGroupByStudentFirstSeenNameWins(t *testing.T) {
	rows := []model.CourseRow{
		row(1, 1, 1, "김하늘", "국어", "문학", 4),
		row(1, 1, 1, "김한을", "수학", "수학Ⅰ", 4),
		row(1, 1, 1, "김하늘", "영어", "영어Ⅰ", 4),
	}
	students, conflicts := GroupByStudent(rows)
	require.Len(t, students, 1)
	assert.Equal(t, "김하늘", students[0].Name)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "김하늘", conflicts[0].Kept)
	assert.Equal(t, "김한을", conflicts[0].Seen)
}

func TestAggregateSums(t *testing.T) {
	student := StudentCourses{
		Key: model.StudentKey{Grade: 1, Class: 1, Number: 1},
		Rows: []model.CourseRow{
			row(1, 1, 1, "가", "국어", "문학", 3),
			row(1, 1, 1, "가", "국어", "독서", 2),
			row(1, 1, 1, "가", "과학", "물리학Ⅰ", 4),
		},
	}
	totals := Aggregate(student)
	assert.Equal(t, 9.0, totals.Total)
	assert.Equal(t, 5.0, totals.ByGroup["국어"])
	assert.Equal(t, 4.0, totals.ByGroup["과학"])
}

func TestAggregateMissingCreditCountsAsZero(t *testing.T) {
	noCredit := row(1, 1, 1, "가", "국어", "문학", 0)
	noCredit.Credit = nil

	totals := Aggregate(StudentCourses{Rows: []model.CourseRow{
		noCredit,
		row(1, 1, 1, "가", "국어", "독서", 2),
	}})
	assert.Equal(t, 2.0, totals.Total)
	assert.Equal(t, 2.0, totals.ByGroup["국어"])
}

func TestAggregateBlankGroupIsOther(t *testing.T) {
	blank := row(1, 1, 1, "가", "", "교양입문", 2)
	blank.SubjectGroup = nil

	totals := Aggregate(StudentCourses{Rows: []model.CourseRow{blank}})
	assert.Equal(t, 2.0, totals.ByGroup[GroupOther])
}

func TestAggregateFoundationAndKoreanHistory(t *testing.T) {
	totals := Aggregate(StudentCourses{Rows: []model.CourseRow{
		row(1, 1, 1, "가", "국어", "문학", 10),
		row(1, 1, 1, "가", "수학", "수학Ⅰ", 20),
		row(1, 1, 1, "가", "영어", "영어Ⅰ", 15),
		row(1, 1, 1, "가", "사회", "한국사Ⅰ", 6),
		row(1, 1, 1, "가", "과학", "물리학Ⅰ", 49),
	}})
	assert.Equal(t, 100.0, totals.Total)
	assert.Equal(t, 45.0, totals.Foundation)
	assert.Equal(t, 6.0, totals.KoreanHistory)
	assert.Equal(t, 51.0, totals.Ratio)
}

func TestAggregateKoreanHistoryVariantSpellings(t *testing.T) {
	// The ASCII spelling matches the numeral variant after NFKC.
	totals := Aggregate(StudentCourses{Rows: []model.CourseRow{
		row(1, 1, 1, "가", "사회", "한국사I", 3),
		row(1, 1, 1, "가", "사회", " 한국사 ", 3),
	}})
	assert.Equal(t, 6.0, totals.KoreanHistory)

	// Hierarchy-unaware: other 한국사-prefixed names do not count.
	other := Aggregate(StudentCourses{Rows: []model.CourseRow{
		row(1, 1, 1, "가", "사회", "한국사 탐구", 3),
	}})
	assert.Equal(t, 0.0, other.KoreanHistory)
}

func TestAggregateRatioRounding(t *testing.T) {
	// 50/100 stays exactly at the threshold.
	atThreshold := Aggregate(StudentCourses{Rows: []model.CourseRow{
		row(1, 1, 1, "가", "국어", "문학", 50),
		row(1, 1, 1, "가", "과학", "물리학Ⅰ", 50),
	}})
	assert.Equal(t, 50.0, atThreshold.Ratio)
	assert.False(t, atThreshold.Ratio > RatioThreshold)

	// One third rounds to one decimal place.
	third := Aggregate(StudentCourses{Rows: []model.CourseRow{
		row(1, 1, 1, "가", "국어", "문학", 1),
		row(1, 1, 1, "가", "과학", "물리학Ⅰ", 2),
	}})
	assert.Equal(t, 33.3, third.Ratio)
}

func TestAggregateZeroTotal(t *testing.T) {
	noCredit := row(1, 1, 1, "가", "국어", "문학", 0)
	noCredit.Credit = nil

	totals := Aggregate(StudentCourses{Rows: []model.CourseRow{noCredit}})
	assert.Equal(t, 0.0, totals.Ratio)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 51.0, Round1(50.951))
	assert.Equal(t, 33.3, Round1(33.3333))
	assert.Equal(t, 12.35, Round2(12.346))
	assert.Equal(t, 12.34, Round2(12.344))
}
