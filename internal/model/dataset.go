package model

import (
	"time"

	"github.com/google/uuid"
)

// Dataset is one uploaded course-selection spreadsheet. Rows are stored
// verbatim (after boundary coercion) so the report is always recomputable
// from scratch; summaries are never mutated incrementally.
type Dataset struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	RowCount  int       `json:"row_count"`
	CreatedAt time.Time `json:"created_at"`
}

// DatasetSummary holds the dashboard KPIs for one dataset.
type DatasetSummary struct {
	DatasetID        uuid.UUID `json:"dataset_id"`
	RowCount         int       `json:"row_count"`
	UnattributedRows int       `json:"unattributed_rows"`
	StudentCount     int       `json:"student_count"`
	ViolationCount   int       `json:"violation_count"`
	GroupCount       int       `json:"group_count"`
	// AvgTotalCredits is the mean of per-student total credits,
	// rounded to two decimals.
	AvgTotalCredits float64 `json:"avg_total_credits"`
}
