package enhancer

import (
	"context"
	"errors"
	"strings"
	"time"

	"resumeai-backend/internal/llm"
	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/telemetry"
)

// Service rewrites resume content against a job description.
type Service struct {
	AI llm.Client
}

// Enhance returns the rewritten text, or the original on any gateway
// failure.
func (s *Service) Enhance(ctx context.Context, resumeText, jobDescription string) string {
	metrics.IncAIRequest()
	start := time.Now()
	out, err := s.AI.GenerateText(ctx, llm.EnhancePrompt(resumeText, jobDescription))
	metrics.ObserveAIDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncAIFallback()
		if !errors.Is(err, llm.ErrNotConfigured) {
			telemetry.Error("enhancer.enhance_failed", map[string]any{"error": err.Error()})
		}
		return resumeText
	}
	if strings.TrimSpace(out) == "" {
		return resumeText
	}
	return out
}
