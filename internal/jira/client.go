// Package jira is a minimal Jira REST client covering what commit
// directives need: reading an issue, transitioning it, and commenting.
package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Issue represents a Jira issue from the REST API
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

// IssueFields contains the fields of a Jira issue
type IssueFields struct {
	Summary string       `json:"summary"`
	Status  *StatusField `json:"status"`
}

// StatusField represents a Jira issue status
type StatusField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Transition is one workflow transition available on an issue
type Transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client provides HTTP access to a Jira instance
type Client struct {
	URL        string
	Username   string
	APIToken   string
	HTTPClient *http.Client
}

// NewClient creates a new Jira client
func NewClient(baseURL, username, apiToken string, timeout time.Duration) *Client {
	return &Client{
		URL:      strings.TrimSuffix(baseURL, "/"),
		Username: username,
		APIToken: apiToken,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetIssue fetches a single Jira issue by key (e.g., "PROJ-123")
func (c *Client) GetIssue(ctx context.Context, key string) (*Issue, error) {
	apiURL := fmt.Sprintf("%s/rest/api/3/issue/%s?fields=summary,status", c.URL, url.PathEscape(key))

	body, err := c.doRequest(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("get issue %s: %w", key, err)
	}

	var issue Issue
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, fmt.Errorf("parse issue response: %w", err)
	}

	return &issue, nil
}

// ListTransitions fetches the workflow transitions currently available on an issue
func (c *Client) ListTransitions(ctx context.Context, key string) ([]Transition, error) {
	apiURL := fmt.Sprintf("%s/rest/api/3/issue/%s/transitions", c.URL, url.PathEscape(key))

	body, err := c.doRequest(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("list transitions for %s: %w", key, err)
	}

	var result struct {
		Transitions []Transition `json:"transitions"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse transitions response: %w", err)
	}

	return result.Transitions, nil
}

// FindTransition matches a requested status label against available
// transitions, case-insensitively. Returns nil when nothing matches.
func FindTransition(transitions []Transition, label string) *Transition {
	for i := range transitions {
		if strings.EqualFold(transitions[i].Name, strings.TrimSpace(label)) {
			return &transitions[i]
		}
	}
	return nil
}

// TransitionIssue moves an issue through the given workflow transition
func (c *Client) TransitionIssue(ctx context.Context, key, transitionID string) error {
	payload := map[string]interface{}{
		"transition": map[string]string{"id": transitionID},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal transition request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/rest/api/3/issue/%s/transitions", c.URL, url.PathEscape(key))

	if _, err := c.doRequest(ctx, "POST", apiURL, data); err != nil {
		return fmt.Errorf("transition issue %s: %w", key, err)
	}

	return nil
}

// AddComment posts a plain-text comment on an issue
func (c *Client) AddComment(ctx context.Context, key, text string) error {
	payload := map[string]interface{}{
		"body": PlainTextToADF(text),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal comment request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/rest/api/3/issue/%s/comment", c.URL, url.PathEscape(key))

	if _, err := c.doRequest(ctx, "POST", apiURL, data); err != nil {
		return fmt.Errorf("comment on issue %s: %w", key, err)
	}

	return nil
}

// doRequest executes an authenticated HTTP request and returns the response body
func (c *Client) doRequest(ctx context.Context, method, apiURL string, body []byte) ([]byte, error) {
	if c.URL == "" {
		return nil, fmt.Errorf("jira URL not configured")
	}
	if c.APIToken == "" {
		return nil, fmt.Errorf("jira API token not configured")
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.setAuth(req)
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

	// Transition and comment endpoints return 204 on success
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

// setAuth sets the appropriate authentication header on the request
func (c *Client) setAuth(req *http.Request) {
	if c.Username != "" {
		auth := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.APIToken))
		req.Header.Set("Authorization", "Basic "+auth)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.APIToken)
	}
}
