package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"resumeai-backend/internal/llm"
	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/telemetry"
)

// maxHistoryTurns bounds the conversation replayed on each call.
const maxHistoryTurns = 20

// Service answers resume questions under a fixed assistant persona.
type Service struct {
	AI llm.Client
}

// Respond continues the conversation with the given message. Every
// failure mode maps to a deterministic assistant reply.
func (s *Service) Respond(ctx context.Context, history []llm.Turn, message string) string {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	metrics.IncAIRequest()
	start := time.Now()
	reply, err := s.AI.Chat(ctx, llm.ChatSystemInstruction, history, message)
	metrics.ObserveAIDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if errors.Is(err, llm.ErrNotConfigured) {
		metrics.IncAIFallback()
		return "I'm sorry, I can't connect to the server right now."
	}
	if err != nil {
		metrics.IncAIFallback()
		telemetry.Error("chat.respond_failed", map[string]any{"error": err.Error()})
		return "I'm having trouble thinking right now. Please try again later."
	}
	if strings.TrimSpace(reply) == "" {
		return "I didn't catch that. Could you rephrase?"
	}
	return reply
}
