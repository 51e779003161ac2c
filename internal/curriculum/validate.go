package curriculum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hakjeomlab/curricheck-backend/internal/textnorm"
)

const (
	// findingSep joins sub-findings inside one clause; clauseSep joins the
	// sequence clause, the prerequisite clause and the ratio flag.
	findingSep = "; "
	clauseSep  = " / "
)

// Validator detects hierarchy and prerequisite violations in one student's
// course list. It carries only the immutable prerequisite table and performs
// no mutation; an empty course list yields an empty violation string.
type Validator struct {
	table *PrereqTable
}

// NewValidator creates a Validator over the given prerequisite table.
func NewValidator(table *PrereqTable) *Validator {
	return &Validator{table: table}
}

// Check runs both checks over the student's raw course names and returns the
// combined violation description, "" when neither check fires.
func (v *Validator) Check(courseNames []string) string {
	var clauses []string
	if c := v.sequenceClause(courseNames); c != "" {
		clauses = append(clauses, c)
	}
	if c := v.prereqClause(courseNames); c != "" {
		clauses = append(clauses, c)
	}
	return strings.Join(clauses, clauseSep)
}

// sequenceClause reports gaps in leveled course sequences: for each base name
// with maximum attained level M, every level in [1, M-1] missing from the
// attained set is a finding.
func (v *Validator) sequenceClause(courseNames []string) string {
	attained := make(map[string]map[int]bool)
	for _, name := range courseNames {
		parsed, ok := ParseLevel(textnorm.NormalizeName(name))
		if !ok {
			continue
		}
		if attained[parsed.Base] == nil {
			attained[parsed.Base] = make(map[int]bool)
		}
		attained[parsed.Base][parsed.Level] = true
	}

	bases := make([]string, 0, len(attained))
	for base := range attained {
		bases = append(bases, base)
	}
	slices.Sort(bases)

	var findings []string
	for _, base := range bases {
		levels := attained[base]
		max := 0
		for level := range levels {
			if level > max {
				max = level
			}
		}
		var missing []string
		for level := 1; level < max; level++ {
			if !levels[level] {
				missing = append(missing, levelNumeral(level))
			}
		}
		if len(missing) > 0 {
			findings = append(findings, fmt.Sprintf("%s: 하위 단계 미이수 → %s", base, strings.Join(missing, ", ")))
		}
	}
	return strings.Join(findings, findingSep)
}

// prereqClause reports courses held by the student whose required
// predecessors are absent from the student's normalized name set.
func (v *Validator) prereqClause(courseNames []string) string {
	held := make(map[string]bool, len(courseNames))
	for _, name := range courseNames {
		if n := textnorm.NormalizeName(name); n != "" {
			held[n] = true
		}
	}

	names := make([]string, 0, len(held))
	for name := range held {
		names = append(names, name)
	}
	slices.Sort(names)

	var findings []string
	for _, name := range names {
		requires, ok := v.table.RequirementsOf(name)
		if !ok {
			continue
		}
		var missing []string
		for _, req := range requires {
			if !held[req] {
				missing = append(missing, req)
			}
		}
		if len(missing) > 0 {
			findings = append(findings, fmt.Sprintf("%s: missing → %s", name, strings.Join(missing, ", ")))
		}
	}
	return strings.Join(findings, findingSep)
}
