package usage

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/shared/server/middleware"
	"resumeai-backend/internal/shared/server/respond"
)

// Handler exposes usage endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches usage routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/usage", h.getUsage)
}

// RegisterDevRoutes attaches dev-only usage routes.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.POST("/usage/reset", h.resetUsage)
}

func (h *Handler) getUsage(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	u, err := h.Svc.EnsurePeriod(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to load usage", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, u)
}

func (h *Handler) resetUsage(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	u, err := h.Svc.Reset(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to reset usage", nil)
		return
	}
	respond.JSON(c, http.StatusOK, u)
}

// Quota returns middleware charging one AI call per request. Exhausted
// budgets get a 429 with code limit_reached.
func Quota(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserIDFromContext(c)
		if _, err := svc.Consume(c.Request.Context(), userID, 1); err != nil {
			if errors.Is(err, ErrLimitReached) {
				respond.Error(c, http.StatusTooManyRequests, "limit_reached", "Daily AI usage limit reached.", nil)
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to check usage", nil)
			return
		}
		c.Next()
	}
}
