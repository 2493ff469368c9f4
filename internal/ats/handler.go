package ats

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/extract"
	"resumeai-backend/internal/shared/server/middleware"
	"resumeai-backend/internal/shared/server/respond"
	"resumeai-backend/internal/shared/util"
)

// Handler wires HTTP routes to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches ATS routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ats/check", h.check)
	rg.POST("/ats/extract", h.extract)
}

type checkRequest struct {
	ResumeText string `json:"resumeText"`
}

func (h *Handler) check(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Please enter resume text.", nil)
		return
	}

	analysis := h.Svc.Check(c.Request.Context(), req.ResumeText)
	respond.JSON(c, http.StatusOK, gin.H{"analysis": analysis})
}

func (h *Handler) extract(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	text, err := h.Svc.Extract(c.Request.Context(), userID, fileName, file)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF and DOCX files are supported", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to extract text", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"resumeText": text})
}
