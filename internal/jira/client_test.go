package jira

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "user", "token", 5*time.Second)
}

func TestGetIssue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/ABC-1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		// Basic auth when a username is configured
		assert.Contains(t, r.Header.Get("Authorization"), "Basic ")

		_, _ = w.Write([]byte(`{"id":"10001","key":"ABC-1","fields":{"summary":"Fix parser","status":{"id":"3","name":"In Progress"}}}`))
	})

	issue, err := client.GetIssue(context.Background(), "ABC-1")
	require.NoError(t, err)

	assert.Equal(t, "ABC-1", issue.Key)
	assert.Equal(t, "Fix parser", issue.Fields.Summary)
	assert.Equal(t, "In Progress", issue.Fields.Status.Name)
}

func TestListTransitions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/ABC-1/transitions", r.URL.Path)
		_, _ = w.Write([]byte(`{"transitions":[{"id":"11","name":"To Do"},{"id":"21","name":"In Progress"},{"id":"31","name":"Done"}]}`))
	})

	transitions, err := client.ListTransitions(context.Background(), "ABC-1")
	require.NoError(t, err)
	require.Len(t, transitions, 3)
	assert.Equal(t, "In Progress", transitions[1].Name)
}

func TestFindTransition(t *testing.T) {
	transitions := []Transition{
		{ID: "11", Name: "To Do"},
		{ID: "21", Name: "In Progress"},
	}

	assert.Equal(t, "21", FindTransition(transitions, "in progress").ID)
	assert.Equal(t, "21", FindTransition(transitions, " In Progress ").ID)
	assert.Equal(t, "11", FindTransition(transitions, "TO DO").ID)
	assert.Nil(t, FindTransition(transitions, "Done"))
}

func TestTransitionIssue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/rest/api/3/issue/ABC-1/transitions", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Transition struct {
				ID string `json:"id"`
			} `json:"transition"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "21", payload.Transition.ID)

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.TransitionIssue(context.Background(), "ABC-1", "21")
	assert.NoError(t, err)
}

func TestAddComment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/ABC-1/comment", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Body json.RawMessage `json:"body"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Contains(t, string(payload.Body), `"type":"doc"`)
		assert.Contains(t, string(payload.Body), "Refactor")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"5"}`))
	})

	err := client.AddComment(context.Background(), "ABC-1", "Refactor")
	assert.NoError(t, err)
}

func TestBearerAuthWithoutUsername(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"key":"ABC-1","fields":{}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "pat-token", 5*time.Second)
	_, err := client.GetIssue(context.Background(), "ABC-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer pat-token", gotAuth)
}

func TestAPIErrorSurfacesStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"errorMessages":["down"]}`))
	})

	_, err := client.GetIssue(context.Background(), "ABC-1")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.HTTPStatus())
}

func TestPlainTextToADF(t *testing.T) {
	raw := PlainTextToADF("line one\n\nline two")

	var doc struct {
		Type    string `json:"type"`
		Version int    `json:"version"`
		Content []struct {
			Type string `json:"type"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "doc", doc.Type)
	assert.Equal(t, 1, doc.Version)
	assert.Len(t, doc.Content, 3)

	assert.Nil(t, PlainTextToADF(""))
}
