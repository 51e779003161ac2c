package model

// PrereqRule maps a course name to the ordered list of course names that must
// also be present on a student's record. Names are stored as entered; the
// curriculum package normalizes both sides when the lookup table is built.
type PrereqRule struct {
	CourseName string   `json:"course_name"`
	Requires   []string `json:"requires"`
}

// PrereqRuleInput is one rule in a replace payload.
type PrereqRuleInput struct {
	CourseName string   `json:"course_name" binding:"required,min=1,max=100"`
	Requires   []string `json:"requires" binding:"required,min=1,dive,required,min=1,max=100"`
}

// ReplacePrereqRequest replaces the whole prerequisite reference table.
type ReplacePrereqRequest struct {
	Rules []PrereqRuleInput `json:"rules" binding:"required,dive"`
}
