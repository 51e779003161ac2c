package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hakjeomlab/curricheck-backend/internal/response"
	"github.com/hakjeomlab/curricheck-backend/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport godoc
// GET /api/v1/datasets/:id/report
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	report, err := h.reportService.Build(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDatasetNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"report": report})
}

// ExportReport godoc
// GET /api/v1/datasets/:id/report/export
func (h *ReportHandler) ExportReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	// Build first so a missing dataset still gets a JSON error envelope;
	// the export below hits the cache the build just filled.
	if _, err := h.reportService.Build(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDatasetNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, id))

	if err := h.reportService.Export(c.Request.Context(), id, c.Writer); err != nil {
		// Headers are already out; nothing sensible left to send but a status.
		c.Status(http.StatusInternalServerError)
	}
}

// GetSummary godoc
// GET /api/v1/datasets/:id/summary
func (h *ReportHandler) GetSummary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDatasetNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}
