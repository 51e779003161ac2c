package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hakjeomlab/curricheck-backend/internal/model"
	"github.com/hakjeomlab/curricheck-backend/internal/response"
	"github.com/hakjeomlab/curricheck-backend/internal/service"
	"github.com/hakjeomlab/curricheck-backend/internal/validator"
)

type PrereqHandler struct {
	prereqService *service.PrereqService
}

func NewPrereqHandler(prereqService *service.PrereqService) *PrereqHandler {
	return &PrereqHandler{prereqService: prereqService}
}

// List godoc
// GET /api/v1/prerequisites
func (h *PrereqHandler) List(c *gin.Context) {
	rules, err := h.prereqService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if rules == nil {
		rules = []model.PrereqRule{}
	}

	response.Success(c, http.StatusOK, gin.H{"rules": rules})
}

// Replace godoc
// PUT /api/v1/prerequisites
func (h *PrereqHandler) Replace(c *gin.Context) {
	var req model.ReplacePrereqRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	rules := make([]model.PrereqRule, 0, len(req.Rules))
	for _, rule := range req.Rules {
		rules = append(rules, model.PrereqRule{CourseName: rule.CourseName, Requires: rule.Requires})
	}

	if err := h.prereqService.Replace(c.Request.Context(), rules); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "prerequisite rules replaced successfully", "count": len(rules)})
}
