package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/hakjeomlab/curricheck-backend/internal/config"
	"github.com/hakjeomlab/curricheck-backend/internal/ingest"
	"github.com/hakjeomlab/curricheck-backend/internal/model"
	"github.com/hakjeomlab/curricheck-backend/internal/repository"
)

// Sentinel errors for dataset uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrEmptyWorkbook       = errors.New("workbook contains no rows")
	ErrDatasetNotFound     = errors.New("dataset not found")
)

// Accepted workbook MIME types. Browsers are inconsistent here, so the
// extension check is the one that matters.
var allowedMIMETypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/octet-stream": true,
	"": true,
}

// DatasetService handles workbook uploads and dataset lifecycle.
type DatasetService struct {
	cfg         *config.Config
	datasetRepo *repository.DatasetRepository
	reports     *ReportService
	log         zerolog.Logger
}

func NewDatasetService(cfg *config.Config, datasetRepo *repository.DatasetRepository, reports *ReportService, log zerolog.Logger) *DatasetService {
	return &DatasetService{
		cfg:         cfg,
		datasetRepo: datasetRepo,
		reports:     reports,
		log:         log.With().Str("component", "dataset_service").Logger(),
	}
}

// Upload validates, parses and stores one uploaded .xlsx workbook and returns
// the created dataset.
func (s *DatasetService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.Dataset, error) {
	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, header.Filename)
	}
	if contentType := header.Header.Get("Content-Type"); !allowedMIMETypes[contentType] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}
	if header.Size > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	rows, err := ingest.ReadRows(file)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	ds := &model.Dataset{
		ID:   uuid.New(),
		Name: strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
	}
	if err := s.datasetRepo.Create(ctx, ds, rows); err != nil {
		return nil, fmt.Errorf("store dataset: %w", err)
	}

	s.log.Info().
		Str("dataset_id", ds.ID.String()).
		Str("name", ds.Name).
		Int("rows", len(rows)).
		Msg("Dataset uploaded")

	return ds, nil
}

func (s *DatasetService) GetAll(ctx context.Context) ([]model.Dataset, error) {
	return s.datasetRepo.GetAll(ctx)
}

func (s *DatasetService) GetByID(ctx context.Context, id uuid.UUID) (*model.Dataset, error) {
	ds, err := s.datasetRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDatasetNotFound
	}
	return ds, err
}

// Delete removes a dataset and drops its cached report.
func (s *DatasetService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.datasetRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDatasetNotFound
	}
	s.reports.Invalidate(ctx, id)
	return nil
}
