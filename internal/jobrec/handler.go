package jobrec

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-intel/internal/experience"
	"resume-intel/internal/knowledge"
	"resume-intel/internal/parser"
	"resume-intel/internal/shared/server/respond"
	"resume-intel/internal/skills"
)

// Handler exposes the job catalog, gap analysis and roadmap endpoints.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/roles", h.listRoles)
	rg.POST("/jobs/gap", h.skillGap)
	rg.POST("/jobs/roadmap", h.roadmap)
}

type roleEntry struct {
	JobID           string   `json:"job_id"`
	Title           string   `json:"title"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceLevel string   `json:"experience_level"`
}

func (h *Handler) listRoles(c *gin.Context) {
	roles := make([]roleEntry, 0, len(knowledge.Roles))
	for _, id := range knowledge.RoleIDs() {
		role := knowledge.Roles[id]
		roles = append(roles, roleEntry{
			JobID:           role.ID,
			Title:           role.Title,
			RequiredSkills:  role.RequiredSkills,
			ExperienceLevel: role.ExperienceLevel,
		})
	}
	respond.OK(c, gin.H{"roles": roles})
}

type gapRequest struct {
	Text       string `json:"text"`
	TargetRole string `json:"targetRole"`
}

func (h *Handler) skillGap(c *gin.Context) {
	var req gapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Text == "" || req.TargetRole == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text and targetRole are required", nil)
		return
	}

	resume := parser.Parse(req.Text, parser.FormatTXT)
	profile := skills.Analyze(resume)

	gap, err := AnalyzeGap(&profile, req.TargetRole)
	if err != nil {
		if errors.Is(err, ErrUnknownRole) {
			respond.Error(c, http.StatusNotFound, "not_found", "unknown target role", gin.H{
				"available_roles": knowledge.RoleIDs(),
			})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "gap analysis failed", nil)
		return
	}
	respond.OK(c, gap)
}

func (h *Handler) roadmap(c *gin.Context) {
	var req gapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Text == "" || req.TargetRole == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text and targetRole are required", nil)
		return
	}

	resume := parser.Parse(req.Text, parser.FormatTXT)
	profile := skills.Analyze(resume)
	expProfile := experience.Analyze(resume)

	roadmap, err := BuildRoadmap(&profile, expProfile, req.TargetRole)
	if err != nil {
		if errors.Is(err, ErrUnknownRole) {
			respond.Error(c, http.StatusNotFound, "not_found", "unknown target role", gin.H{
				"available_roles": knowledge.RoleIDs(),
			})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "roadmap generation failed", nil)
		return
	}
	respond.OK(c, roadmap)
}
