package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "http://ai-service:8000"

var (
	// ErrNonJSON is returned when the ai-service output holds no JSON object.
	ErrNonJSON = errors.New("ai-service returned non-json content")
	// ErrStatus is returned for non-200 responses.
	ErrStatus = errors.New("ai-service returned non-200 status")
	// ErrUnavailable is returned when the ai-service cannot be reached or its
	// response cannot be read.
	ErrUnavailable = errors.New("ai-service unavailable")
)

// Client calls the internal ai-service to turn raw resume text into the
// loosely structured JSON the resume mapper understands.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Attempts int
	// Backoff is the delay before the second attempt; it doubles after.
	Backoff time.Duration
	log     *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		HTTP:     &http.Client{Timeout: 60 * time.Second},
		Attempts: 3,
		Backoff:  time.Second,
		log:      log,
	}
}

const parseInstructions = `Extract the resume below into EXACTLY one JSON object and NOTHING ELSE. No commentary, no markdown, no code fences.
Use these keys (omit any you cannot fill):
{
  "hero": {"title": "Full Name", "subtitle": "Headline", "tagline": "One line pitch"},
  "contact": {"email": "", "phone": "", "location": "City, State, Country", "linkedin": "", "github": "", "website": ""},
  "about": {"summary": "", "yearsOfExperience": 0, "interests": []},
  "experience": {"jobs": [{"company": "", "title": "", "location": "", "duration": "Jan 2020 - Present", "description": "• one bullet per line", "technologies": []}]},
  "education": {"degrees": [{"institution": "", "degree": "", "field": "", "gpa": "", "year": ""}]},
  "skills": {"technical": [], "soft": [], "languages": ["English (native)"]},
  "projects": {"items": [{"name": "", "description": "", "technologies": [], "url": "", "github": ""}]},
  "achievements": {"awards": [], "certifications": [], "publications": []}
}`

type chatRequest struct {
	Agent string `json:"agent"`
	Input string `json:"input"`
}

type chatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

// ParseResume sends resume text to the ai-service and returns the parsed
// object. portfolioType is passed along as a hint.
func (c *Client) ParseResume(ctx context.Context, text, portfolioType string) (map[string]interface{}, error) {
	userCtx, err := json.Marshal(map[string]interface{}{
		"portfolioType": portfolioType,
		"resume":        text,
	})
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(chatRequest{
		Agent: "auto",
		Input: parseInstructions + "\n\nContext:\n" + string(userCtx),
	})
	if err != nil {
		return nil, err
	}

	c.log.Debug("ai.client: POST /v1/chat", zap.String("base_url", c.BaseURL), zap.Int("bytes", len(b)))

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("ai.client: unexpected status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(respBytes, &chat); err != nil {
		return nil, fmt.Errorf("%w: decode chat response: %w", ErrUnavailable, err)
	}
	return ExtractJSON(chat.Output)
}

// ExtractJSON parses s as a JSON object, or failing that, the text between
// the first '{' and the last '}'. Models often wrap the object in prose.
func ExtractJSON(s string) (map[string]interface{}, error) {
	var out map[string]interface{}
	err := json.Unmarshal([]byte(s), &out)
	if err == nil && out != nil {
		return out, nil
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		if err2 := json.Unmarshal([]byte(s[start:end+1]), &out); err2 == nil {
			return out, nil
		}
	}
	if err == nil {
		err = errors.New("not an object")
	}
	return nil, fmt.Errorf("%w: %v", ErrNonJSON, err)
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := c.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		c.log.Warn("ai.client: request failed", zap.Int("attempt", i+1), zap.Error(err))
		// exponential backoff before retrying
		if i < attempts-1 {
			select {
			case <-time.After(c.Backoff << i):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %w", ErrUnavailable, ctx.Err())
			}
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrUnavailable, lastErr)
}
