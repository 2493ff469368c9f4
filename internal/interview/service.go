package interview

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resumeai-backend/internal/llm"
	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/telemetry"
)

// Service produces interview preparation insights.
type Service struct {
	AI llm.Client
}

// Insights returns company and interview insights. Gateway failures
// yield nil, never an error.
func (s *Service) Insights(ctx context.Context, company, role, location, jobDescription string) *Insight {
	metrics.IncAIRequest()
	start := time.Now()
	raw, err := s.AI.GenerateJSON(ctx, llm.InterviewPrompt(company, role, location, jobDescription), llm.InterviewSchema())
	metrics.ObserveAIDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncAIFallback()
		if !errors.Is(err, llm.ErrNotConfigured) {
			telemetry.Error("interview.insights_failed", map[string]any{"error": err.Error()})
		}
		return nil
	}

	var insight Insight
	if err := json.Unmarshal(raw, &insight); err != nil {
		metrics.IncAIFallback()
		telemetry.Error("interview.insights_failed", map[string]any{"error": err.Error()})
		return nil
	}
	return &insight
}
