package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    map[string]interface{}
		wantErr bool
	}{
		{"plain object", `{"hero": {"title": "Jane"}}`, map[string]interface{}{"hero": map[string]interface{}{"title": "Jane"}}, false},
		{"wrapped in prose", "Sure! Here it is:\n```json\n{\"a\": 1}\n```\nAnything else?", map[string]interface{}{"a": float64(1)}, false},
		{"no object", "I could not parse that resume.", nil, true},
		{"null", "null", nil, true},
		{"broken braces", "{ not json }", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNonJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseResume(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "auto", req.Agent)
		assert.Contains(t, req.Input, `"portfolioType":"designer"`)
		assert.Contains(t, req.Input, "Jane Doe")

		_ = json.NewEncoder(w).Encode(chatResponse{Agent: "parser", Output: "Here you go: {\"hero\": {\"title\": \"Jane Doe\"}}"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", zap.NewNop())
	out, err := c.ParseResume(context.Background(), "Jane Doe\nDesigner", "designer")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", out["hero"].(map[string]interface{})["title"])
}

func TestParseResumeStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).ParseResume(context.Background(), "text", "developer")
	assert.ErrorIs(t, err, ErrStatus)
	assert.Contains(t, err.Error(), "503")
}

func TestParseResumeNonJSONOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse{Output: "sorry"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).ParseResume(context.Background(), "text", "developer")
	assert.ErrorIs(t, err, ErrNonJSON)
}

func TestParseResumeUndecodableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).ParseResume(context.Background(), "text", "developer")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "decode chat response")
}

type flakyTransport struct {
	failures int32
	calls    atomic.Int32
}

func (f *flakyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if f.calls.Add(1) <= f.failures {
		return nil, errors.New("connection reset")
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"agent":"parser","output":"{\"about\":{\"summary\":\"hi\"}}"}`)),
		Request:    r,
	}, nil
}

func TestDoPostWithRetry(t *testing.T) {
	tr := &flakyTransport{failures: 2}
	c := NewClient("http://ai.test", zap.NewNop())
	c.HTTP = &http.Client{Transport: tr}
	c.Backoff = time.Millisecond

	out, err := c.ParseResume(context.Background(), "text", "developer")
	require.NoError(t, err)
	assert.EqualValues(t, 3, tr.calls.Load())
	assert.Equal(t, "hi", out["about"].(map[string]interface{})["summary"])
}

func TestDoPostWithRetryGivesUp(t *testing.T) {
	tr := &flakyTransport{failures: 10}
	c := NewClient("http://ai.test", zap.NewNop())
	c.HTTP = &http.Client{Transport: tr}
	c.Backoff = time.Millisecond
	c.Attempts = 2

	_, err := c.ParseResume(context.Background(), "text", "developer")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "connection reset")
	assert.EqualValues(t, 2, tr.calls.Load())
}

func TestDoPostWithRetryHonoursContext(t *testing.T) {
	tr := &flakyTransport{failures: 10}
	c := NewClient("http://ai.test", zap.NewNop())
	c.HTTP = &http.Client{Transport: tr}
	c.Backoff = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.ParseResume(ctx, "text", "developer")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.EqualValues(t, 1, tr.calls.Load())
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", nil)
	assert.Equal(t, defaultBaseURL, c.BaseURL)
	assert.Equal(t, 3, c.Attempts)
	assert.Equal(t, time.Second, c.Backoff)
}
