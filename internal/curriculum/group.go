// Package curriculum implements the compliance core: subject-group
// canonicalization, leveled-sequence parsing, prerequisite validation and
// per-student credit aggregation. Everything here is a pure function or an
// immutable value; re-running the pipeline on the same rows yields identical
// output.
package curriculum

import (
	"strings"

	"github.com/hakjeomlab/curricheck-backend/internal/textnorm"
)

const (
	// GroupOther buckets rows with a missing or blank subject-group.
	GroupOther = "기타"

	// GroupMergedElectives is the union target for the historically separate
	// elective categories (technology & home economics, second foreign
	// language, classical Chinese, liberal arts).
	GroupMergedElectives = "기술·가정/제2외국어/한문/교양"
)

// DefaultAliases is the fixed alias table behind GroupMergedElectives. The
// set is domain configuration handed down from the curriculum reference, not
// something inferred from data; near-variants are intentionally not added
// here. Matching is all-or-nothing on the whitespace-stripped normalized
// label.
var DefaultAliases = []string{
	"기술·가정/제2외국어/한문/교양",
	"기술·가정",
	"제2외국어",
	"한문",
	"교양",
	"기술·가정/제2외국어",
	"제2외국어/한문",
	"제2외국어/한문/교양",
}

var electiveAliases = func() map[string]struct{} {
	m := make(map[string]struct{}, len(DefaultAliases))
	for _, a := range DefaultAliases {
		m[textnorm.StripSpace(textnorm.Normalize(a))] = struct{}{}
	}
	return m
}()

// CanonicalGroup maps a raw subject-group label to its canonical form.
// Blank input maps to GroupOther; any alias of the merged elective category
// maps to GroupMergedElectives; everything else passes through normalized
// but otherwise unchanged, so the full set of canonical groups is discovered
// by scanning the dataset.
func CanonicalGroup(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return GroupOther
	}

	normalized := textnorm.NormalizeName(raw)
	if normalized == "" {
		return GroupOther
	}

	// The stripped form is used for equivalence only and never returned.
	if _, ok := electiveAliases[textnorm.StripSpace(normalized)]; ok {
		return GroupMergedElectives
	}
	return normalized
}
