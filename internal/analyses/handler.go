package analyses

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resume-intel/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.GET("/analyses/:id/quick", h.quickAnalysis)
	rg.POST("/analyses/compare", h.compare)
}

type createAnalysisRequest struct {
	Text           string `json:"text"`
	Format         string `json:"format"`
	DocumentID     string `json:"documentId"`
	JobDescription string `json:"jobDescription"`
}

type compareRequest struct {
	Text           string `json:"text"`
	JobDescription string `json:"jobDescription"`
}

type analysisSummary struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"documentId,omitempty"`
	SourceFormat string    `json:"sourceFormat"`
	OverallScore float64   `json:"overallScore"`
	Grade        string    `json:"grade"`
	CareerLevel  string    `json:"careerLevel"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toSummary(analysis Analysis) analysisSummary {
	return analysisSummary{
		ID:           analysis.ID,
		DocumentID:   analysis.DocumentID,
		SourceFormat: analysis.SourceFormat,
		OverallScore: analysis.OverallScore,
		Grade:        analysis.Grade,
		CareerLevel:  analysis.CareerLevel,
		CreatedAt:    analysis.CreatedAt,
	}
}

func (h *Handler) createAnalysis(c *gin.Context) {
	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Text == "" && req.DocumentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "either text or documentId is required", nil)
		return
	}
	if req.Text != "" && req.DocumentID != "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text and documentId are mutually exclusive", nil)
		return
	}

	var (
		analysis Analysis
		err      error
	)
	if req.DocumentID != "" {
		analysis, err = h.Svc.AnalyzeDocument(c.Request.Context(), req.DocumentID, req.JobDescription)
	} else {
		analysis, err = h.Svc.AnalyzeText(c.Request.Context(), req.Text, req.Format, req.JobDescription)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusCreated, gin.H{
		"id":      analysis.ID,
		"summary": toSummary(analysis),
		"report":  analysis.Report,
	})
}

func (h *Handler) getAnalysis(c *gin.Context) {
	c.Set("analysisId", c.Param("id"))
	analysis, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondGetError(c, err)
		return
	}

	respond.OK(c, gin.H{
		"summary": toSummary(analysis),
		"report":  analysis.Report,
	})
}

func (h *Handler) quickAnalysis(c *gin.Context) {
	c.Set("analysisId", c.Param("id"))
	quick, err := h.Svc.Quick(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondGetError(c, err)
		return
	}
	respond.OK(c, quick)
}

func (h *Handler) compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	cmp, err := h.Svc.CompareText(c.Request.Context(), req.Text, req.JobDescription)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "comparison failed", nil)
		return
	}
	respond.OK(c, cmp)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	summaries := make([]analysisSummary, 0, len(list))
	for _, analysis := range list {
		summaries = append(summaries, toSummary(analysis))
	}
	respond.OK(c, gin.H{"analyses": summaries})
}

func (h *Handler) respondGetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
	}
}
