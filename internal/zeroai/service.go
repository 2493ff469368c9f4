package zeroai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"resumeai-backend/internal/llm"
	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/telemetry"
)

// MinDetectLen is the minimum input length for a reliable estimate.
const MinDetectLen = 50

// Service estimates AI-generation likelihood and rewrites flagged text.
type Service struct {
	AI llm.Client
}

// Detect returns the likelihood estimate for the text. Failures produce
// a zero score with a deterministic reasoning string.
func (s *Service) Detect(ctx context.Context, text string) Score {
	metrics.IncAIRequest()
	start := time.Now()
	raw, err := s.AI.GenerateJSON(ctx, llm.DetectPrompt(text), llm.DetectSchema())
	metrics.ObserveAIDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if errors.Is(err, llm.ErrNotConfigured) {
		metrics.IncAIFallback()
		return Score{AIPercentage: 0, Reasoning: "API unavailable", Verdict: VerdictHuman}
	}
	if err != nil {
		metrics.IncAIFallback()
		telemetry.Error("zeroai.detect_failed", map[string]any{"error": err.Error()})
		return Score{AIPercentage: 0, Reasoning: "Error analyzing content", Verdict: VerdictHuman}
	}

	var score Score
	if err := json.Unmarshal(raw, &score); err != nil {
		metrics.IncAIFallback()
		telemetry.Error("zeroai.detect_failed", map[string]any{"error": err.Error()})
		return Score{AIPercentage: 0, Reasoning: "Error analyzing content", Verdict: VerdictHuman}
	}
	return score
}

// Humanize rewrites the text to read as human-authored, or returns the
// original on any gateway failure.
func (s *Service) Humanize(ctx context.Context, text string) string {
	metrics.IncAIRequest()
	start := time.Now()
	out, err := s.AI.GenerateText(ctx, llm.HumanizePrompt(text))
	metrics.ObserveAIDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncAIFallback()
		if !errors.Is(err, llm.ErrNotConfigured) {
			telemetry.Error("zeroai.humanize_failed", map[string]any{"error": err.Error()})
		}
		return text
	}
	if strings.TrimSpace(out) == "" {
		return text
	}
	return out
}
