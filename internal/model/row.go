package model

// StudentKey identifies a student within one dataset by the
// (grade, class, number) triple.
type StudentKey struct {
	Grade  int `json:"grade"`
	Class  int `json:"class"`
	Number int `json:"number"`
}

// Less orders keys by grade, then class, then number, each numeric ascending.
func (k StudentKey) Less(o StudentKey) bool {
	if k.Grade != o.Grade {
		return k.Grade < o.Grade
	}
	if k.Class != o.Class {
		return k.Class < o.Class
	}
	return k.Number < o.Number
}

// CourseRow is one course-taking record after boundary coercion. Every field
// is optional; blank or non-numeric cells become nil, never an error.
type CourseRow struct {
	StudentGrade *int     `json:"student_grade"`
	ClassNo      *int     `json:"class_no"`
	StudentNo    *int     `json:"student_no"`
	StudentName  *string  `json:"student_name"`
	CourseGrade  *int     `json:"course_grade"`
	CourseTerm   *int     `json:"course_term"`
	SubjectGroup *string  `json:"subject_group"`
	CourseName   *string  `json:"course_name"`
	Credit       *float64 `json:"credit"`
}

// Key returns the student key and whether the row can be attributed to a
// student. Rows missing any component are excluded from per-student grouping.
func (r CourseRow) Key() (StudentKey, bool) {
	if r.StudentGrade == nil || r.ClassNo == nil || r.StudentNo == nil {
		return StudentKey{}, false
	}
	return StudentKey{Grade: *r.StudentGrade, Class: *r.ClassNo, Number: *r.StudentNo}, true
}

// CreditValue treats a missing credit as 0 in every sum.
func (r CourseRow) CreditValue() float64 {
	if r.Credit == nil {
		return 0
	}
	return *r.Credit
}

// SubjectGroupValue returns the raw subject-group label, "" when absent.
func (r CourseRow) SubjectGroupValue() string {
	if r.SubjectGroup == nil {
		return ""
	}
	return *r.SubjectGroup
}

// CourseNameValue returns the raw course name, "" when absent.
func (r CourseRow) CourseNameValue() string {
	if r.CourseName == nil {
		return ""
	}
	return *r.CourseName
}

// StudentNameValue returns the raw student name, "" when absent.
func (r CourseRow) StudentNameValue() string {
	if r.StudentName == nil {
		return ""
	}
	return *r.StudentName
}
