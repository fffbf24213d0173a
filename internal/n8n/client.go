package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrNotConfigured means the webhook URL for the requested flow is unset.
var ErrNotConfigured = errors.New("n8n webhook not configured")

// Client posts to the two n8n workflow webhooks: document ingestion and
// chat RAG. Both flows are plain JSON-over-HTTP.
type Client struct {
	documentWebhookURL string
	chatWebhookURL     string
	httpClient         *http.Client
}

// NewClient constructs a Client. Either URL may be empty; the matching call
// then fails with ErrNotConfigured.
func NewClient(documentWebhookURL, chatWebhookURL string) *Client {
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("N8N_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		documentWebhookURL: documentWebhookURL,
		chatWebhookURL:     chatWebhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// DocumentEvent tells the ingestion workflow what to chunk and embed. It
// carries the document id so the workflow can report status back later.
type DocumentEvent struct {
	DocumentID string `json:"document_id"`
	CompanyID  string `json:"company_id"`
	FileURL    string `json:"file_url"`
	FileName   string `json:"file_name"`
}

// NotifyDocument posts a document event to the ingestion webhook.
func (c *Client) NotifyDocument(ctx context.Context, event DocumentEvent) error {
	if c.documentWebhookURL == "" {
		return ErrNotConfigured
	}
	_, err := c.post(ctx, c.documentWebhookURL, event)
	return err
}

// ChatQuery is the payload for the RAG workflow. CompanyID scopes retrieval
// to the caller's tenant and always comes from the authenticated principal.
type ChatQuery struct {
	Question       string   `json:"question"`
	CompanyID      string   `json:"company_id"`
	SelectedDocIDs []string `json:"selected_doc_ids"`
}

// Ask posts a question to the chat webhook and normalizes whatever shape the
// workflow answers with into plain text: an object's "output" field, then
// its "text" field, then the raw JSON; a bare JSON string is unwrapped; any
// other body passes through as-is.
func (c *Client) Ask(ctx context.Context, query ChatQuery) (string, error) {
	if c.chatWebhookURL == "" {
		return "", ErrNotConfigured
	}
	body, err := c.post(ctx, c.chatWebhookURL, query)
	if err != nil {
		return "", err
	}
	return normalizeAnswer(body), nil
}

func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode n8n payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call n8n: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read n8n response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("n8n returned status %d", resp.StatusCode)
	}
	return body, nil
}

func normalizeAnswer(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &asObject); err == nil {
		if text, ok := stringField(asObject, "output"); ok {
			return text
		}
		if text, ok := stringField(asObject, "text"); ok {
			return text
		}
		return string(trimmed)
	}

	var asString string
	if err := json.Unmarshal(trimmed, &asString); err == nil {
		return asString
	}
	return string(trimmed)
}

func stringField(obj map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok {
		return "", false
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil || text == "" {
		return "", false
	}
	return text, true
}
