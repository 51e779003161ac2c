// Package ingest is the spreadsheet boundary: it turns uploaded .xlsx
// workbooks into coerced course rows and writes computed reports back out.
// All cell coercion is best-effort; malformed cells become absent values,
// never errors.
package ingest

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
	"github.com/hakjeomlab/curricheck-backend/internal/textnorm"
)

// Sentinel errors for workbook-level problems. Row-level problems never error.
var (
	ErrNoSheet  = errors.New("workbook has no sheets")
	ErrNoHeader = errors.New("workbook has no header row")
)

// Column labels recognized in the header row, compared after name
// normalization so fullwidth or padded headers still match.
const (
	colStudentGrade = "학년"
	colClassNo      = "반"
	colStudentNo    = "번호"
	colStudentName  = "성명"
	colCourseGrade  = "이수학년"
	colCourseTerm   = "이수학기"
	colSubjectGroup = "교과(군)"
	colCourseName   = "과목명"
	colCredit       = "학점"
)

// ReadRows reads the first sheet of an .xlsx workbook. The first row is the
// header; every following row becomes one CourseRow with each cell coerced to
// an optional value. Columns missing from the header simply stay absent.
func ReadRows(r io.Reader) ([]model.CourseRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, ErrNoHeader
	}

	columns := make(map[string]int, len(cells[0]))
	for i, title := range cells[0] {
		if t := textnorm.NormalizeName(title); t != "" {
			columns[t] = i
		}
	}

	rows := make([]model.CourseRow, 0, len(cells)-1)
	for _, record := range cells[1:] {
		cell := func(label string) string {
			i, ok := columns[label]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		row := model.CourseRow{
			StudentGrade: cellInt(cell(colStudentGrade)),
			ClassNo:      cellInt(cell(colClassNo)),
			StudentNo:    cellInt(cell(colStudentNo)),
			StudentName:  cellString(cell(colStudentName)),
			CourseGrade:  cellInt(cell(colCourseGrade)),
			CourseTerm:   cellInt(cell(colCourseTerm)),
			SubjectGroup: cellString(cell(colSubjectGroup)),
			CourseName:   cellString(cell(colCourseName)),
			Credit:       cellFloat(cell(colCredit)),
		}
		if isEmptyRow(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellString coerces a cell to an optional string; blank becomes absent.
func cellString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// cellInt coerces a cell to an optional integer; blank or non-numeric
// content becomes absent, never an error.
func cellInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Spreadsheets sometimes store integers as "3.0".
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || fl != float64(int(fl)) {
			return nil
		}
		n = int(fl)
	}
	return &n
}

// cellFloat coerces a cell to an optional number with the same blank and
// non-numeric rules as cellInt.
func cellFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &fl
}

func isEmptyRow(row model.CourseRow) bool {
	return row.StudentGrade == nil && row.ClassNo == nil && row.StudentNo == nil &&
		row.StudentName == nil && row.CourseGrade == nil && row.CourseTerm == nil &&
		row.SubjectGroup == nil && row.CourseName == nil && row.Credit == nil
}
