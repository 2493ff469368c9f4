package zeroai

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

// RegisterRoutes attaches detector routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/zeroai/detect", h.detect)
	rg.POST("/zeroai/humanize", h.humanize)
}

type textRequest struct {
	Text string `json:"text"`
}

func (h *Handler) detect(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(strings.TrimSpace(req.Text)) < MinDetectLen {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Please enter at least 50 characters for accurate detection.", nil)
		return
	}

	score := h.Svc.Detect(c.Request.Context(), req.Text)
	respond.JSON(c, http.StatusOK, gin.H{
		"aiPercentage":      score.AIPercentage,
		"reasoning":         score.Reasoning,
		"verdict":           score.Verdict,
		"humanizeAvailable": score.HumanizeAvailable(),
	})
}

func (h *Handler) humanize(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	out := h.Svc.Humanize(c.Request.Context(), req.Text)
	respond.JSON(c, http.StatusOK, gin.H{"text": out})
}
