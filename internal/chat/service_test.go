package chat

import (
	"context"
	"errors"
	"testing"

	"companybot-backend/internal/n8n"
)

type fakeRelay struct {
	got    n8n.ChatQuery
	answer string
	err    error
}

func (f *fakeRelay) Ask(ctx context.Context, query n8n.ChatQuery) (string, error) {
	f.got = query
	return f.answer, f.err
}

func TestQueryScopesToCompany(t *testing.T) {
	relay := &fakeRelay{answer: "Here you go."}
	svc := NewService(relay)

	answer, err := svc.Query(context.Background(), "co-1", "What is the leave policy?", []string{"doc-1", "doc-2"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if !answer.Relayed || answer.Text != "Here you go." {
		t.Fatalf("answer = %+v", answer)
	}
	if relay.got.CompanyID != "co-1" {
		t.Fatalf("relay company = %q", relay.got.CompanyID)
	}
	if len(relay.got.SelectedDocIDs) != 2 {
		t.Fatalf("selected docs = %v", relay.got.SelectedDocIDs)
	}
}

func TestQueryFallsBackOnRelayFailure(t *testing.T) {
	relay := &fakeRelay{err: errors.New("connection refused")}
	svc := NewService(relay)

	answer, err := svc.Query(context.Background(), "co-1", "Hello?", nil)
	if err != nil {
		t.Fatalf("relay failure must not surface as error: %v", err)
	}
	if answer.Relayed {
		t.Fatal("expected relayed = false")
	}
	if answer.Text != FallbackAnswer {
		t.Fatalf("answer = %q, want fallback", answer.Text)
	}
}

func TestQueryRejectsEmptyQuestion(t *testing.T) {
	svc := NewService(&fakeRelay{})

	if _, err := svc.Query(context.Background(), "co-1", "", nil); !errors.Is(err, ErrEmptyQuestion) {
		t.Fatalf("got %v, want ErrEmptyQuestion", err)
	}
}
