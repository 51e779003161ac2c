package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
)

type PrereqRepository struct {
	pool *pgxpool.Pool
}

func NewPrereqRepository(pool *pgxpool.Pool) *PrereqRepository {
	return &PrereqRepository{pool: pool}
}

func (r *PrereqRepository) GetAll(ctx context.Context) ([]model.PrereqRule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT course_name, requires FROM prerequisite_rules ORDER BY course_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []model.PrereqRule
	for rows.Next() {
		var rule model.PrereqRule
		if err := rows.Scan(&rule.CourseName, &rule.Requires); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// ReplaceAll swaps the whole reference table atomically.
func (r *PrereqRepository) ReplaceAll(ctx context.Context, rules []model.PrereqRule) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM prerequisite_rules`); err != nil {
		return fmt.Errorf("clear rules: %w", err)
	}
	for _, rule := range rules {
		_, err := tx.Exec(ctx,
			`INSERT INTO prerequisite_rules (course_name, requires) VALUES ($1, $2)
			 ON CONFLICT (course_name) DO UPDATE SET requires = EXCLUDED.requires, updated_at = NOW()`,
			rule.CourseName, rule.Requires)
		if err != nil {
			return fmt.Errorf("insert rule %q: %w", rule.CourseName, err)
		}
	}

	return tx.Commit(ctx)
}

// Upsert inserts or overwrites a single rule. Used by the seeder.
func (r *PrereqRepository) Upsert(ctx context.Context, rule model.PrereqRule) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO prerequisite_rules (course_name, requires) VALUES ($1, $2)
		 ON CONFLICT (course_name) DO UPDATE SET requires = EXCLUDED.requires, updated_at = NOW()`,
		rule.CourseName, rule.Requires)
	return err
}
