package chat

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/llm"
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

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}

type chatRequest struct {
	History []llm.Turn `json:"history"`
	Message string     `json:"message"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}

	reply := h.Svc.Respond(c.Request.Context(), req.History, req.Message)
	respond.JSON(c, http.StatusOK, gin.H{"reply": reply})
}
