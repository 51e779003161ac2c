package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hakjeomlab/curricheck-backend/internal/config"
	"github.com/hakjeomlab/curricheck-backend/internal/curriculum"
	"github.com/hakjeomlab/curricheck-backend/internal/ingest"
	"github.com/hakjeomlab/curricheck-backend/internal/model"
	"github.com/hakjeomlab/curricheck-backend/internal/repository"
)

// ReportService runs the compliance pipeline over a dataset's stored rows.
// The pipeline itself is pure; this service only adds loading, caching and
// logging around it. A cache hit returns the previously computed value of the
// same computation, never a mutated one.
type ReportService struct {
	cfg         *config.Config
	datasetRepo *repository.DatasetRepository
	prereqRepo  *repository.PrereqRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

func NewReportService(cfg *config.Config, datasetRepo *repository.DatasetRepository, prereqRepo *repository.PrereqRepository, rdb *redis.Client, log zerolog.Logger) *ReportService {
	return &ReportService{
		cfg:         cfg,
		datasetRepo: datasetRepo,
		prereqRepo:  prereqRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "report_service").Logger(),
	}
}

// Build returns the compliance report for a dataset, from cache when
// available.
func (s *ReportService) Build(ctx context.Context, datasetID uuid.UUID) (model.Report, error) {
	cacheKey := config.CacheKey.DatasetReportKey(datasetID)
	if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var report model.Report
		if err := json.Unmarshal(cached, &report); err == nil {
			return report, nil
		}
		// Unreadable cache entries are dropped and recomputed.
		s.rdb.Del(ctx, cacheKey)
	}

	report, err := s.compute(ctx, datasetID)
	if err != nil {
		return model.Report{}, err
	}

	if payload, err := json.Marshal(report); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, s.cfg.ReportCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("dataset_id", datasetID.String()).Msg("Report cache write failed")
		}
	}
	return report, nil
}

func (s *ReportService) compute(ctx context.Context, datasetID uuid.UUID) (model.Report, error) {
	if _, err := s.datasetRepo.GetByID(ctx, datasetID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Report{}, ErrDatasetNotFound
		}
		return model.Report{}, fmt.Errorf("load dataset: %w", err)
	}

	rows, err := s.datasetRepo.GetRows(ctx, datasetID)
	if err != nil {
		return model.Report{}, fmt.Errorf("load rows: %w", err)
	}
	rules, err := s.prereqRepo.GetAll(ctx)
	if err != nil {
		return model.Report{}, fmt.Errorf("load prerequisite rules: %w", err)
	}

	table := curriculum.NewPrereqTable(rules)
	report, conflicts := curriculum.BuildReport(rows, table)

	for _, c := range conflicts {
		s.log.Warn().
			Str("dataset_id", datasetID.String()).
			Int("grade", c.Key.Grade).
			Int("class", c.Key.Class).
			Int("number", c.Key.Number).
			Str("kept", c.Kept).
			Str("seen", c.Seen).
			Msg("Student key carries conflicting names; first-seen name kept")
	}

	s.log.Info().
		Str("dataset_id", datasetID.String()).
		Int("students", len(report.Students)).
		Int("groups", len(report.Groups)).
		Msg("Report computed")

	return report, nil
}

// Export writes the report as an .xlsx workbook to w.
func (s *ReportService) Export(ctx context.Context, datasetID uuid.UUID, w io.Writer) error {
	report, err := s.Build(ctx, datasetID)
	if err != nil {
		return err
	}
	return ingest.WriteReport(w, report)
}

// Summary returns the dashboard KPIs for a dataset, from cache when
// available. The cache entry shares the report's TTL and is dropped by
// Invalidate alongside it.
func (s *ReportService) Summary(ctx context.Context, datasetID uuid.UUID) (model.DatasetSummary, error) {
	cacheKey := config.CacheKey.DatasetSummaryKey(datasetID)
	if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var summary model.DatasetSummary
		if err := json.Unmarshal(cached, &summary); err == nil {
			return summary, nil
		}
		s.rdb.Del(ctx, cacheKey)
	}

	report, err := s.Build(ctx, datasetID)
	if err != nil {
		return model.DatasetSummary{}, err
	}
	rows, err := s.datasetRepo.GetRows(ctx, datasetID)
	if err != nil {
		return model.DatasetSummary{}, fmt.Errorf("load rows: %w", err)
	}

	summary := model.DatasetSummary{
		DatasetID:    datasetID,
		RowCount:     len(rows),
		StudentCount: len(report.Students),
		GroupCount:   len(report.Groups),
	}
	for _, row := range rows {
		if _, ok := row.Key(); !ok {
			summary.UnattributedRows++
		}
	}
	var creditSum float64
	for _, student := range report.Students {
		creditSum += student.TotalCredits
		if student.Violations != "" {
			summary.ViolationCount++
		}
	}
	if len(report.Students) > 0 {
		summary.AvgTotalCredits = curriculum.Round2(creditSum / float64(len(report.Students)))
	}

	if payload, err := json.Marshal(summary); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, s.cfg.ReportCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("dataset_id", datasetID.String()).Msg("Summary cache write failed")
		}
	}
	return summary, nil
}

// Invalidate drops a dataset's cached report. Called whenever the source row
// set changes; the next Build recomputes from scratch.
func (s *ReportService) Invalidate(ctx context.Context, datasetID uuid.UUID) {
	keys := []string{
		config.CacheKey.DatasetReportKey(datasetID),
		config.CacheKey.DatasetSummaryKey(datasetID),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Str("dataset_id", datasetID.String()).Msg("Report cache invalidation failed")
	}
}
