package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"moneytalk/internal/config"

	"google.golang.org/genai"
)

var (
	ErrEmptyQuestion  = errors.New("question is empty")
	ErrAdvisorFailure = errors.New("advisor request failed")
)

const advisorSystemPrompt = "You are a pragmatic personal finance assistant. " +
	"Answer the user's question in plain language, concisely. " +
	"Do not give regulated investment advice; suggest consulting a professional for anything beyond budgeting basics."

type advisorService struct {
	cfg     config.AdvisorConfig
	metrics MetricsRecorderInterface
}

func NewAdvisorService(cfg config.AdvisorConfig, metrics MetricsRecorderInterface) AdvisorServiceInterface {
	return &advisorService{
		cfg:     cfg,
		metrics: metrics,
	}
}

// Ask forwards the question to the model and returns its text answer
// unchanged. Credentials come from the environment (GEMINI_API_KEY, or the
// GOOGLE_GENAI_USE_VERTEXAI set of variables for Vertex).
func (s *advisorService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	answer, err := s.generate(ctx, question)
	s.metrics.RecordProcessingTime("advisor.request", time.Since(start))

	if err != nil {
		s.metrics.IncrementCounter("advisor.request", map[string]string{"status": "failed"})
		slog.Error("advisor request failed",
			"model", s.cfg.Model,
			"error", err)
		return "", fmt.Errorf("%w: %v", ErrAdvisorFailure, err)
	}

	s.metrics.IncrementCounter("advisor.request", map[string]string{"status": "success"})
	return answer, nil
}

func (s *advisorService) generate(ctx context.Context, question string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: advisorSystemPrompt + "\n\nQuestion: " + question},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, s.cfg.Model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	answer := resp.Text()
	if answer == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return answer, nil
}
