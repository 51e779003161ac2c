package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
)

type DatasetRepository struct {
	pool *pgxpool.Pool
}

func NewDatasetRepository(pool *pgxpool.Pool) *DatasetRepository {
	return &DatasetRepository{pool: pool}
}

// Create inserts the dataset header and bulk-copies its rows in one
// transaction so a failed upload leaves nothing behind.
func (r *DatasetRepository) Create(ctx context.Context, ds *model.Dataset, rows []model.CourseRow) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO datasets (id, name, row_count) VALUES ($1, $2, $3) RETURNING created_at`,
		ds.ID, ds.Name, len(rows)).Scan(&ds.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert dataset: %w", err)
	}
	ds.RowCount = len(rows)

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"course_rows"},
		[]string{"dataset_id", "row_index", "student_grade", "class_no", "student_no",
			"student_name", "course_grade", "course_term", "subject_group", "course_name", "credit"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{ds.ID, i, row.StudentGrade, row.ClassNo, row.StudentNo,
				row.StudentName, row.CourseGrade, row.CourseTerm,
				row.SubjectGroup, row.CourseName, row.Credit}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy rows: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *DatasetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Dataset, error) {
	var ds model.Dataset
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, row_count, created_at FROM datasets WHERE id = $1`, id).
		Scan(&ds.ID, &ds.Name, &ds.RowCount, &ds.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ds, nil
}

func (r *DatasetRepository) GetAll(ctx context.Context) ([]model.Dataset, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, row_count, created_at FROM datasets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []model.Dataset
	for rows.Next() {
		var ds model.Dataset
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.RowCount, &ds.CreatedAt); err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, rows.Err()
}

// GetRows returns a dataset's rows in upload order so the pipeline sees the
// same sequence on every run.
func (r *DatasetRepository) GetRows(ctx context.Context, datasetID uuid.UUID) ([]model.CourseRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT student_grade, class_no, student_no, student_name,
		        course_grade, course_term, subject_group, course_name, credit
		   FROM course_rows WHERE dataset_id = $1 ORDER BY row_index ASC`, datasetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courseRows []model.CourseRow
	for rows.Next() {
		var row model.CourseRow
		if err := rows.Scan(&row.StudentGrade, &row.ClassNo, &row.StudentNo, &row.StudentName,
			&row.CourseGrade, &row.CourseTerm, &row.SubjectGroup, &row.CourseName, &row.Credit); err != nil {
			return nil, err
		}
		courseRows = append(courseRows, row)
	}
	return courseRows, rows.Err()
}

// Delete removes a dataset and (via cascade) its rows. Returns false when the
// dataset does not exist.
func (r *DatasetRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM datasets WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
