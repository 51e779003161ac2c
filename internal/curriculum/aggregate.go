package curriculum

import (
	"math"
	"slices"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
	"github.com/hakjeomlab/curricheck-backend/internal/textnorm"
)

// FoundationGroups is the fixed subject-group subset tracked for the
// foundation-credit ratio.
var FoundationGroups = []string{"국어", "수학", "영어"}

// koreanHistoryVariants are the course-name spellings counted as Korean
// History, compared by exact identity after name normalization (NFKC folds
// the numeral spellings "한국사Ⅰ"/"한국사I" together).
var koreanHistoryVariants = []string{"한국사", "한국사Ⅰ", "한국사Ⅱ"}

var (
	foundationSet = func() map[string]bool {
		m := make(map[string]bool, len(FoundationGroups))
		for _, g := range FoundationGroups {
			m[g] = true
		}
		return m
	}()
	koreanHistorySet = func() map[string]bool {
		m := make(map[string]bool, len(koreanHistoryVariants))
		for _, v := range koreanHistoryVariants {
			m[textnorm.NormalizeName(v)] = true
		}
		return m
	}()
)

// StudentCourses is one student's bucket of rows after grouping.
type StudentCourses struct {
	Key  model.StudentKey
	Name string
	Rows []model.CourseRow
}

// NameConflict records a student key seen with more than one distinct name.
// The first-seen name wins; the conflict is a data-quality signal, not an
// error.
type NameConflict struct {
	Key  model.StudentKey
	Kept string
	Seen string
}

// GroupByStudent buckets rows by student key, ordered by key ascending. Rows
// missing any key component are skipped. Within a bucket the first-seen
// non-blank name wins; divergent later names are reported as conflicts.
func GroupByStudent(rows []model.CourseRow) ([]StudentCourses, []NameConflict) {
	buckets := make(map[model.StudentKey]*StudentCourses)
	var conflicts []NameConflict

	for _, row := range rows {
		key, ok := row.Key()
		if !ok {
			continue
		}
		bucket := buckets[key]
		if bucket == nil {
			bucket = &StudentCourses{Key: key}
			buckets[key] = bucket
		}
		name := textnorm.NormalizeName(row.StudentNameValue())
		if name != "" {
			switch {
			case bucket.Name == "":
				bucket.Name = name
			case bucket.Name != name:
				conflicts = append(conflicts, NameConflict{Key: key, Kept: bucket.Name, Seen: name})
			}
		}
		bucket.Rows = append(bucket.Rows, row)
	}

	students := make([]StudentCourses, 0, len(buckets))
	for _, bucket := range buckets {
		students = append(students, *bucket)
	}
	slices.SortFunc(students, func(a, b StudentCourses) int {
		if a.Key.Less(b.Key) {
			return -1
		}
		if b.Key.Less(a.Key) {
			return 1
		}
		return 0
	})
	return students, conflicts
}

// StudentTotals holds one student's credit sums and ratio.
type StudentTotals struct {
	Total         float64
	ByGroup       map[string]float64
	Foundation    float64
	KoreanHistory float64
	// Ratio is (Foundation + KoreanHistory) / Total as a percentage rounded
	// to one decimal, 0 when the student has no credits.
	Ratio float64
}

// Aggregate sums one student's credits: total, per canonical group, the
// foundation subset and the Korean-History subset. Missing credits count
// as 0.
func Aggregate(courses StudentCourses) StudentTotals {
	totals := StudentTotals{ByGroup: make(map[string]float64)}
	for _, row := range courses.Rows {
		credit := row.CreditValue()
		group := CanonicalGroup(row.SubjectGroupValue())

		totals.Total += credit
		totals.ByGroup[group] += credit
		if foundationSet[group] {
			totals.Foundation += credit
		}
		if koreanHistorySet[textnorm.NormalizeName(row.CourseNameValue())] {
			totals.KoreanHistory += credit
		}
	}
	if totals.Total > 0 {
		totals.Ratio = Round1((totals.Foundation + totals.KoreanHistory) / totals.Total * 100)
	}
	return totals
}

// Round1 rounds to one decimal place (ratio percentages).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places (average-credit KPIs). The two
// granularities are both part of the report contract and stay separate.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
