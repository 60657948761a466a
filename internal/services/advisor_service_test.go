package services

import (
	"context"
	"testing"
	"time"

	"moneytalk/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

// Network-bound behavior is not covered here; these tests pin down the input
// handling that happens before any model call.

func TestAdvisorAsk_EmptyQuestion(t *testing.T) {
	service := NewAdvisorService(config.AdvisorConfig{
		Model:   "gemini-2.0-flash",
		Timeout: time.Second,
	}, NewPrometheusMetrics(prometheus.NewRegistry()))

	_, err := service.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}

func TestAdvisorAsk_WhitespaceOnlyQuestion(t *testing.T) {
	service := NewAdvisorService(config.AdvisorConfig{
		Model:   "gemini-2.0-flash",
		Timeout: time.Second,
	}, NewPrometheusMetrics(prometheus.NewRegistry()))

	_, err := service.Ask(context.Background(), "\n\t")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}
