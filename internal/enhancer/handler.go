package enhancer

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/shared/server/respond"
)

// Handler wires HTTP routes to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches enhancer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/enhance", h.enhance)
}

type enhanceRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) enhance(c *gin.Context) {
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Please provide both resume text and job description.", nil)
		return
	}

	enhanced := h.Svc.Enhance(c.Request.Context(), req.ResumeText, req.JobDescription)
	respond.JSON(c, http.StatusOK, gin.H{"enhancedText": enhanced})
}
