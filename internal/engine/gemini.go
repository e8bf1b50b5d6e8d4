package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient implements ModelClient using the Google Generative AI REST API.
// Each Complete call is a single blocking attempt; fallback handling belongs
// to the pipeline, not the client.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// GeminiOption configures the Gemini client.
type GeminiOption func(*GeminiClient)

// WithGeminiBaseURL overrides the API endpoint.
func WithGeminiBaseURL(url string) GeminiOption {
	return func(c *GeminiClient) { c.baseURL = strings.TrimRight(url, "/") }
}

// NewGeminiClient creates a Gemini model client. It fails when the
// credential or model name is missing, before any generation call is made.
func NewGeminiClient(apiKey, model string, opts ...GeminiOption) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("gemini model name is required")
	}
	c := &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultGeminiBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GeminiFactory is the TextModelFactory for real Gemini clients.
func GeminiFactory(apiKey, model string) (ModelClient, error) {
	return NewGeminiClient(apiKey, model)
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// generateResponse covers the two shapes the API can answer with: a direct
// top-level text field, or candidates carrying content parts.
type generateResponse struct {
	Text       string            `json:"text,omitempty"`
	Candidates []geminiCandidate `json:"candidates,omitempty"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content struct {
		Parts []geminiPart `json:"parts"`
	} `json:"content"`
}

// responseText normalizes a generateResponse into plain text. The direct
// text field wins when non-blank; otherwise the text of every part across
// every candidate is concatenated in order. An empty result means the model
// produced nothing usable.
func responseText(resp *generateResponse) string {
	if strings.TrimSpace(resp.Text) != "" {
		return resp.Text
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// Complete sends a prompt to the Gemini API and returns the normalized
// response text. An empty string with a nil error means the model returned
// no usable text; the caller decides whether that is fatal.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: HTTP %d: %s", resp.StatusCode, respBody)
	}

	var geminiResp generateResponse
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("gemini: api error: %s", geminiResp.Error.Message)
	}

	return responseText(&geminiResp), nil
}
