package curriculum

import (
	"github.com/hakjeomlab/curricheck-backend/internal/model"
	"github.com/hakjeomlab/curricheck-backend/internal/textnorm"
)

// PrereqTable is the immutable prerequisite reference, built once per report
// run from the stored rules. Keys and required names are normalized at load
// time so later lookups are exact-identity comparisons.
type PrereqTable struct {
	rules map[string][]string
}

// NewPrereqTable builds the lookup table. Entries with an empty normalized
// key are dropped; on a normalized-key collision the later entry wins.
func NewPrereqTable(rules []model.PrereqRule) *PrereqTable {
	t := &PrereqTable{rules: make(map[string][]string, len(rules))}
	for _, rule := range rules {
		key := textnorm.NormalizeName(rule.CourseName)
		if key == "" {
			continue
		}
		requires := make([]string, 0, len(rule.Requires))
		for _, name := range rule.Requires {
			requires = append(requires, textnorm.NormalizeName(name))
		}
		t.rules[key] = requires
	}
	return t
}

// RequirementsOf returns the normalized required names for a normalized
// course name, or false when the course has no prerequisite entry.
func (t *PrereqTable) RequirementsOf(normalizedCourseName string) ([]string, bool) {
	requires, ok := t.rules[normalizedCourseName]
	return requires, ok
}

// Len reports the number of loaded rules.
func (t *PrereqTable) Len() int {
	return len(t.rules)
}
