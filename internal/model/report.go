package model

// StudentSummary is one output record of the compliance report: identity,
// per-group credit sums, the tracked subset sums, the foundation ratio and
// the combined violation string. Derived data only; recomputed from the row
// set every time, never persisted.
type StudentSummary struct {
	Key  StudentKey `json:"key"`
	Name string     `json:"name"`
	// GroupCredits has one entry per discovered canonical group,
	// zero-filled when the student has no credits in a group.
	GroupCredits  map[string]float64 `json:"group_credits"`
	TotalCredits  float64            `json:"total_credits"`
	Foundation    float64            `json:"foundation_credits"`
	KoreanHistory float64            `json:"korean_history_credits"`
	// Ratio is (foundation + korean history) / total as a percentage,
	// rounded to one decimal; 0 when the student has no credits.
	Ratio      float64 `json:"ratio"`
	Violations string  `json:"violations"`
}

// Report is the export-ready record set for one dataset. Groups is the full
// set of canonical subject-groups discovered across every row, sorted; the
// column order (identity, dynamic groups, four fixed trailing columns) is a
// compatibility contract every exporter reproduces exactly.
type Report struct {
	Groups   []string         `json:"groups"`
	Students []StudentSummary `json:"students"`
}
