package ats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"resumeai-backend/internal/extract"
	"resumeai-backend/internal/llm"
	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/storage/object"
	"resumeai-backend/internal/shared/telemetry"
)

const maxUploadBytes = 10 << 20

// Service runs ATS checks and resume-file extraction.
type Service struct {
	AI    llm.Client
	Store object.ObjectStore
}

// Check analyzes resume text for ATS compliance. Gateway failures yield
// a nil analysis, never an error.
func (s *Service) Check(ctx context.Context, resumeText string) *Analysis {
	metrics.IncAIRequest()
	start := time.Now()
	raw, err := s.AI.GenerateJSON(ctx, llm.ATSPrompt(resumeText), llm.ATSSchema())
	metrics.ObserveAIDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncAIFallback()
		if !errors.Is(err, llm.ErrNotConfigured) {
			telemetry.Error("ats.check_failed", map[string]any{"error": err.Error()})
		}
		return nil
	}

	var analysis Analysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		metrics.IncAIFallback()
		telemetry.Error("ats.check_failed", map[string]any{"error": err.Error()})
		return nil
	}
	return &analysis
}

// Extract saves an uploaded resume file under the user's namespace and
// returns its plain text.
func (s *Service) Extract(ctx context.Context, userID, fileName string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxUploadBytes))
	if err != nil {
		return "", err
	}

	key, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	telemetry.Info("ats.upload_saved", map[string]any{
		"user_id":    userID,
		"key":        key,
		"size_bytes": size,
		"mime_type":  mimeType,
	})

	return extract.TextFromBytes(ctx, data, mimeType, fileName)
}
