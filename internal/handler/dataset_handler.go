package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
	"github.com/hakjeomlab/curricheck-backend/internal/response"
	"github.com/hakjeomlab/curricheck-backend/internal/service"
)

type DatasetHandler struct {
	datasetService *service.DatasetService
}

func NewDatasetHandler(datasetService *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{datasetService: datasetService}
}

// Upload godoc
// POST /api/v1/datasets
func (h *DatasetHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	ds, err := h.datasetService.Upload(c.Request.Context(), file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		case errors.Is(err, service.ErrEmptyWorkbook):
			response.Fail(c, http.StatusBadRequest, response.ErrEmptyWorkbook)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"dataset": ds})
}

// List godoc
// GET /api/v1/datasets
func (h *DatasetHandler) List(c *gin.Context) {
	datasets, err := h.datasetService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if datasets == nil {
		datasets = []model.Dataset{}
	}

	response.Success(c, http.StatusOK, gin.H{"datasets": datasets})
}

// Delete godoc
// DELETE /api/v1/datasets/:id
func (h *DatasetHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.datasetService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDatasetNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "dataset deleted successfully"})
}
