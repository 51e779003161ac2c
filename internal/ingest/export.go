package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
)

const exportSheet = "이수 점검 결과"

// Fixed trailing columns after the dynamic group columns. Header order is a
// compatibility contract with the report consumers and must not change.
var exportTrailing = []string{"총 학점", "기초교과 학점", "한국사 학점", "기초교과 비율(%)", "위반 사항"}

var exportIdentity = []string{"학년", "반", "번호", "성명"}

// WriteReport renders a report to an .xlsx workbook: identity columns, one
// column per discovered canonical group (0 when the student has none), then
// the fixed trailing columns. Rows are emitted in the report's student order.
func WriteReport(w io.Writer, report model.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	header := make([]interface{}, 0, len(exportIdentity)+len(report.Groups)+len(exportTrailing))
	for _, col := range exportIdentity {
		header = append(header, col)
	}
	for _, group := range report.Groups {
		header = append(header, group)
	}
	for _, col := range exportTrailing {
		header = append(header, col)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, s := range report.Students {
		record := make([]interface{}, 0, len(header))
		record = append(record, s.Key.Grade, s.Key.Class, s.Key.Number, s.Name)
		for _, group := range report.Groups {
			record = append(record, s.GroupCredits[group])
		}
		record = append(record, s.TotalCredits, s.Foundation, s.KoreanHistory, s.Ratio, s.Violations)

		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row axis: %w", err)
		}
		if err := f.SetSheetRow(exportSheet, axis, &record); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
