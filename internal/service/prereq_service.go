package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
	"github.com/hakjeomlab/curricheck-backend/internal/repository"
)

// PrereqService manages the prerequisite reference table. Rules are stored as
// entered; normalization happens when the lookup table is built per report
// run, so edits here never leave stale normalized forms behind.
type PrereqService struct {
	prereqRepo  *repository.PrereqRepository
	datasetRepo *repository.DatasetRepository
	reports     *ReportService
	log         zerolog.Logger
}

func NewPrereqService(prereqRepo *repository.PrereqRepository, datasetRepo *repository.DatasetRepository, reports *ReportService, log zerolog.Logger) *PrereqService {
	return &PrereqService{
		prereqRepo:  prereqRepo,
		datasetRepo: datasetRepo,
		reports:     reports,
		log:         log.With().Str("component", "prereq_service").Logger(),
	}
}

func (s *PrereqService) GetAll(ctx context.Context) ([]model.PrereqRule, error) {
	return s.prereqRepo.GetAll(ctx)
}

// Replace swaps the whole rule set and drops every cached report, since
// violation strings embed the old rules.
func (s *PrereqService) Replace(ctx context.Context, rules []model.PrereqRule) error {
	if err := s.prereqRepo.ReplaceAll(ctx, rules); err != nil {
		return err
	}

	datasets, err := s.datasetRepo.GetAll(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Could not list datasets for cache invalidation")
	} else {
		for _, ds := range datasets {
			s.reports.Invalidate(ctx, ds.ID)
		}
	}

	s.log.Info().Int("rules", len(rules)).Msg("Prerequisite rules replaced")
	return nil
}
