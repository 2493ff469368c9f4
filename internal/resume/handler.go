package resume

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/shared/server/middleware"
	"resumeai-backend/internal/shared/server/respond"
)

// Handler wires HTTP routes to the editor.
type Handler struct {
	Editor *Editor
}

// NewHandler constructs a Handler.
func NewHandler(editor *Editor) *Handler {
	return &Handler{Editor: editor}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.get)
	rg.PATCH("/resume/personal", h.updatePersonal)
	rg.PATCH("/resume/summary", h.updateSummary)
	rg.PATCH("/resume/skills", h.updateSkills)
	rg.POST("/resume/education", h.addEducation)
	rg.POST("/resume/projects", h.addProject)
	rg.POST("/resume/experience", h.addExperience)
	rg.PATCH("/resume/:list/:id", h.updateEntry)
	rg.DELETE("/resume/:list/:id", h.removeEntry)
	rg.POST("/resume/summary/generate", h.generateSummary)
	rg.POST("/resume/:list/:id/polish", h.polishEntry)
	rg.POST("/resume/step", h.step)
	rg.GET("/resume/preview", h.preview)
	rg.DELETE("/resume/session", h.closeSession)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	state := h.Editor.Load(c.Request.Context(), userID)
	respond.JSON(c, http.StatusOK, state)
}

type fieldUpdateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *Handler) updatePersonal(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Editor.UpdatePersonal(c.Request.Context(), userID, req.Field, req.Value); err != nil {
		respondEditorError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

type summaryUpdateRequest struct {
	Summary string `json:"summary"`
}

func (h *Handler) updateSummary(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req summaryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Editor.UpdateSummary(c.Request.Context(), userID, req.Summary); err != nil {
		respondEditorError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) updateSkills(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Editor.UpdateSkills(c.Request.Context(), userID, req.Field, req.Value); err != nil {
		respondEditorError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

type addEducationRequest struct {
	Type string `json:"type"`
}

func (h *Handler) addEducation(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req addEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	entry, err := h.Editor.AddEducation(c.Request.Context(), userID, req.Type)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, entry)
}

func (h *Handler) addProject(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	entry, err := h.Editor.AddProject(c.Request.Context(), userID)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, entry)
}

func (h *Handler) addExperience(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	entry, err := h.Editor.AddExperience(c.Request.Context(), userID)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, entry)
}

func (h *Handler) updateEntry(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	list := c.Param("list")
	id := c.Param("id")

	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Editor.UpdateEntry(c.Request.Context(), userID, list, id, req.Field, req.Value); err != nil {
		respondEditorError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) removeEntry(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	list := c.Param("list")
	id := c.Param("id")

	if err := h.Editor.RemoveEntry(c.Request.Context(), userID, list, id); err != nil {
		respondEditorError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) generateSummary(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	summary, err := h.Editor.GenerateSummary(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrMissingRole) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Please enter a Desired Role first.", nil)
			return
		}
		respondEditorError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"summary": summary})
}

func (h *Handler) polishEntry(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	list := c.Param("list")
	id := c.Param("id")

	polished, err := h.Editor.PolishEntry(c.Request.Context(), userID, list, id)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"description": polished})
}

type stepRequest struct {
	Op   string `json:"op"`
	Step int    `json:"step"`
}

func (h *Handler) step(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	var step int
	switch {
	case req.Op == "next":
		step = h.Editor.StepNext(c.Request.Context(), userID)
	case req.Op == "prev":
		step = h.Editor.StepPrev(c.Request.Context(), userID)
	case req.Op == "" && req.Step > 0:
		step = h.Editor.StepGoto(c.Request.Context(), userID, req.Step)
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "op must be next or prev, or step must be set", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"step": step})
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	state := h.Editor.Load(c.Request.Context(), userID)

	html, err := RenderPreview(state.Document)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to render preview", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) closeSession(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	h.Editor.Close(userID)
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

func respondEditorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid field or list", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "entry not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "unexpected error", nil)
	}
}
