package curriculum

import (
	"fmt"
	"slices"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
)

// RatioThreshold is the percentage above which the foundation-credit ratio
// becomes a reportable condition (strictly greater than).
const RatioThreshold = 50.0

// BuildReport runs the full pipeline over a row set: canonical groups are
// discovered across every row (attributed or not), students are bucketed and
// summed, violations are checked, and the ratio flag is appended here rather
// than by the validator. Output order is student key ascending; group columns
// are sorted (Hangul code-point order matches dictionary order in UTF-8).
func BuildReport(rows []model.CourseRow, table *PrereqTable) (model.Report, []NameConflict) {
	groupSet := make(map[string]bool)
	for _, row := range rows {
		groupSet[CanonicalGroup(row.SubjectGroupValue())] = true
	}
	groups := make([]string, 0, len(groupSet))
	for g := range groupSet {
		groups = append(groups, g)
	}
	slices.Sort(groups)

	students, conflicts := GroupByStudent(rows)
	validator := NewValidator(table)

	summaries := make([]model.StudentSummary, 0, len(students))
	for _, student := range students {
		totals := Aggregate(student)

		names := make([]string, 0, len(student.Rows))
		for _, row := range student.Rows {
			if name := row.CourseNameValue(); name != "" {
				names = append(names, name)
			}
		}
		violations := validator.Check(names)
		if totals.Ratio > RatioThreshold {
			flag := fmt.Sprintf("기초교과 비율 초과(%.1f%%)", totals.Ratio)
			if violations == "" {
				violations = flag
			} else {
				violations += clauseSep + flag
			}
		}

		groupCredits := make(map[string]float64, len(groups))
		for _, g := range groups {
			groupCredits[g] = totals.ByGroup[g]
		}

		summaries = append(summaries, model.StudentSummary{
			Key:           student.Key,
			Name:          student.Name,
			GroupCredits:  groupCredits,
			TotalCredits:  totals.Total,
			Foundation:    totals.Foundation,
			KoreanHistory: totals.KoreanHistory,
			Ratio:         totals.Ratio,
			Violations:    violations,
		})
	}

	return model.Report{Groups: groups, Students: summaries}, conflicts
}
