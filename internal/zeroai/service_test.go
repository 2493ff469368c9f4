package zeroai

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"resumeai-backend/internal/llm"
)

type stubLLM struct {
	textFn func(prompt string) (string, error)
	jsonFn func(prompt string) (json.RawMessage, error)
}

func (s stubLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.textFn == nil {
		return "", llm.ErrNotConfigured
	}
	return s.textFn(prompt)
}

func (s stubLLM) GenerateJSON(ctx context.Context, prompt string, schema *llm.Schema) (json.RawMessage, error) {
	if s.jsonFn == nil {
		return nil, llm.ErrNotConfigured
	}
	return s.jsonFn(prompt)
}

func (s stubLLM) Chat(ctx context.Context, system string, history []llm.Turn, message string) (string, error) {
	return "", llm.ErrNotConfigured
}

func TestDetectParsesScore(t *testing.T) {
	svc := &Service{AI: stubLLM{jsonFn: func(string) (json.RawMessage, error) {
		return json.RawMessage(`{"aiPercentage": 72.5, "reasoning": "uniform phrasing", "verdict": "Likely AI-Generated"}`), nil
	}}}

	score := svc.Detect(context.Background(), "some long enough text")
	if score.AIPercentage != 72.5 || score.Verdict != VerdictAI {
		t.Fatalf("unexpected score: %+v", score)
	}
	if !score.HumanizeAvailable() {
		t.Fatalf("expected humanize offer above threshold")
	}
}

func TestDetectFallbacks(t *testing.T) {
	svc := &Service{AI: llm.NotConfiguredClient{}}
	score := svc.Detect(context.Background(), "text")
	if score.AIPercentage != 0 || score.Reasoning != "API unavailable" || score.Verdict != VerdictHuman {
		t.Fatalf("unexpected no-key fallback: %+v", score)
	}

	svc = &Service{AI: stubLLM{jsonFn: func(string) (json.RawMessage, error) {
		return nil, errors.New("boom")
	}}}
	score = svc.Detect(context.Background(), "text")
	if score.AIPercentage != 0 || score.Reasoning != "Error analyzing content" || score.Verdict != VerdictHuman {
		t.Fatalf("unexpected error fallback: %+v", score)
	}
}

func TestHumanizeThresholdIsStrict(t *testing.T) {
	if (Score{AIPercentage: 20}).HumanizeAvailable() {
		t.Fatalf("exactly 20 must not offer humanize")
	}
	if !(Score{AIPercentage: 20.1}).HumanizeAvailable() {
		t.Fatalf("above 20 must offer humanize")
	}
	if (Score{AIPercentage: 0}).HumanizeAvailable() {
		t.Fatalf("zero must not offer humanize")
	}
}

func TestHumanizeFallsBackToOriginal(t *testing.T) {
	svc := &Service{AI: llm.NotConfiguredClient{}}
	if out := svc.Humanize(context.Background(), "original"); out != "original" {
		t.Fatalf("expected original without api key, got %q", out)
	}

	svc = &Service{AI: stubLLM{textFn: func(string) (string, error) {
		return "rewritten naturally", nil
	}}}
	if out := svc.Humanize(context.Background(), "original"); out != "rewritten naturally" {
		t.Fatalf("unexpected output: %q", out)
	}
}
