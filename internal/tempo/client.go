// Package tempo creates worklogs on a Tempo-style time-tracking service.
package tempo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

// Client provides HTTP access to the Tempo API
type Client struct {
	URL        string
	APIToken   string
	HTTPClient *http.Client
}

// NewClient creates a new Tempo client
func NewClient(baseURL, apiToken string, timeout time.Duration) *Client {
	return &Client{
		URL:      strings.TrimSuffix(baseURL, "/"),
		APIToken: apiToken,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Worklog is the request payload for creating a worklog
type Worklog struct {
	IssueKey         string             `json:"issueKey"`
	TimeSpentSeconds int                `json:"timeSpentSeconds"`
	StartDate        string             `json:"startDate"`
	Description      string             `json:"description,omitempty"`
	Attributes       []WorklogAttribute `json:"attributes,omitempty"`
}

// WorklogAttribute is a key/value pair attached to a worklog
type WorklogAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CreateWorklog logs hours against an issue on the given yyyy-mm-dd date.
// phase, when non-empty, is sent as a worklog attribute under attributeKey.
func (c *Client) CreateWorklog(ctx context.Context, issueKey string, hours float64, date, description, phase, attributeKey string) error {
	worklog := Worklog{
		IssueKey:         issueKey,
		TimeSpentSeconds: int(math.Round(hours * 3600)),
		StartDate:        date,
		Description:      description,
	}
	if phase != "" && attributeKey != "" {
		worklog.Attributes = []WorklogAttribute{{Key: attributeKey, Value: phase}}
	}

	data, err := json.Marshal(worklog)
	if err != nil {
		return fmt.Errorf("marshal worklog request: %w", err)
	}

	if _, err := c.doRequest(ctx, "POST", c.URL+"/worklogs", data); err != nil {
		return fmt.Errorf("create worklog for %s: %w", issueKey, err)
	}

	return nil
}

// doRequest executes an authenticated HTTP request and returns the response body
func (c *Client) doRequest(ctx context.Context, method, apiURL string, body []byte) ([]byte, error) {
	if c.URL == "" {
		return nil, fmt.Errorf("tempo URL not configured")
	}
	if c.APIToken == "" {
		return nil, fmt.Errorf("tempo API token not configured")
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.APIToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "trackhook/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

// APIError is a non-2xx response from the Tempo API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tempo API returned %d: %s", e.StatusCode, e.Body)
}

// HTTPStatus returns the response status code
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
