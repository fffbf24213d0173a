package chat

import (
	"context"
	"errors"
	"time"

	"companybot-backend/internal/n8n"
	"companybot-backend/internal/shared/metrics"
	"companybot-backend/internal/shared/telemetry"
)

// FallbackAnswer is returned to the caller when the RAG workflow cannot be
// reached. The chat endpoint never fails hard for a relay outage; the
// frontend renders this string like any other answer.
const FallbackAnswer = "I'm having trouble connecting to the AI right now. Please try again."

// ErrEmptyQuestion means the query had no question text.
var ErrEmptyQuestion = errors.New("empty question")

// Asker relays a question to the RAG workflow.
type Asker interface {
	Ask(ctx context.Context, query n8n.ChatQuery) (string, error)
}

// Service relays tenant-scoped chat questions.
type Service struct {
	Relay Asker
}

// NewService constructs a Service.
func NewService(relay Asker) *Service {
	return &Service{Relay: relay}
}

// Answer is the outcome of a query. Relayed is false when the fallback was
// served instead of a real workflow answer.
type Answer struct {
	Text    string
	Relayed bool
}

// Query sends the question to the workflow, scoped to the caller's company.
// Relay failures degrade to the canned fallback rather than an error.
func (s *Service) Query(ctx context.Context, companyID, question string, selectedDocIDs []string) (Answer, error) {
	if question == "" {
		return Answer{}, ErrEmptyQuestion
	}

	metrics.IncChatQuery()
	start := time.Now()
	text, err := s.Relay.Ask(ctx, n8n.ChatQuery{
		Question:       question,
		CompanyID:      companyID,
		SelectedDocIDs: selectedDocIDs,
	})
	metrics.ObserveChatRelayDurationMs(float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.IncChatRelayFailed()
		telemetry.Warn("chat relay failed", map[string]any{
			"company_id": companyID,
			"error":      err.Error(),
		})
		return Answer{Text: FallbackAnswer, Relayed: false}, nil
	}
	return Answer{Text: text, Relayed: true}, nil
}
