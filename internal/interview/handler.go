package interview

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

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interview/insights", h.insights)
}

type insightsRequest struct {
	Company        string `json:"company"`
	Role           string `json:"role"`
	Location       string `json:"location"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) insights(c *gin.Context) {
	var req insightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Company) == "" || strings.TrimSpace(req.Role) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Please enter at least Company Name and Job Role.", nil)
		return
	}

	insight := h.Svc.Insights(c.Request.Context(), req.Company, req.Role, req.Location, req.JobDescription)
	respond.JSON(c, http.StatusOK, gin.H{"insight": insight})
}
