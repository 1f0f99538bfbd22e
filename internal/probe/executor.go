package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"servicemonitor/internal/domain"
)

// DefaultTimeout bounds each request so one hung endpoint cannot stall the
// whole run.
const DefaultTimeout = 60 * time.Second

const (
	userAgent   = "servicemonitor/1.0"
	maxBodySnip = 512
)

// HTTPExecutor executes tests with a shared HTTP client.
type HTTPExecutor struct {
	Client *http.Client
}

// NewHTTPExecutor builds an executor whose client times out after the given
// duration. Non-positive values fall back to DefaultTimeout.
func NewHTTPExecutor(timeout time.Duration) *HTTPExecutor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPExecutor{Client: &http.Client{Timeout: timeout}}
}

// Execute performs one request for the test and reports what came back. It
// never panics and never returns an error: every way the probe can go wrong
// is folded into the outcome's failure description.
func (e *HTTPExecutor) Execute(ctx context.Context, t domain.Test) Outcome {
	start := time.Now()

	req, err := e.buildRequest(ctx, t)
	if err != nil {
		return FailureOutcome(err.Error(), ms(start))
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return FailureOutcome(describeTransport(err, t.URL), ms(start))
	}
	defer resp.Body.Close()

	snip, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnip))
	return StatusOutcome(resp.StatusCode, ms(start), string(snip))
}

func (e *HTTPExecutor) buildRequest(ctx context.Context, t domain.Test) (*http.Request, error) {
	switch t.Method {
	case domain.MethodGet:
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		if len(t.QueryArgs) > 0 {
			q := req.URL.Query()
			for k, v := range t.QueryArgs {
				q.Set(k, fmt.Sprint(v))
			}
			req.URL.RawQuery = q.Encode()
		}
		req.Header.Set("User-Agent", userAgent)
		return req, nil

	case domain.MethodPost:
		var body io.Reader
		if t.Payload != nil {
			buf, err := json.Marshal(t.Payload)
			if err != nil {
				return nil, fmt.Errorf("encode payload: %w", err)
			}
			body = bytes.NewReader(buf)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL, body)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		if t.Payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("User-Agent", userAgent)
		return req, nil

	default:
		return nil, fmt.Errorf("unsupported method %q", t.Method)
	}
}

// describeTransport turns a client error into the failure description, with a
// DNS classification appended when the host can be extracted from the URL.
func describeTransport(err error, rawURL string) string {
	desc := err.Error()
	if host := extractHost(rawURL); host != "" {
		desc = fmt.Sprintf("%s dns=%s", desc, ClassifyDNS(host))
	}
	return desc
}

func extractHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func ms(start time.Time) float64 {
	return time.Since(start).Seconds() * 1000 // ms
}
