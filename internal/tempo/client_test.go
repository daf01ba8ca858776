package tempo

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

func TestCreateWorklog(t *testing.T) {
	var got Worklog
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/worklogs", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"tempoWorklogId":42}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok", 5*time.Second)
	err := client.CreateWorklog(context.Background(), "PAY-101", 2.5, "2025-10-01", "Refactor", "Development", "_WorkCategory_")
	require.NoError(t, err)

	assert.Equal(t, "PAY-101", got.IssueKey)
	assert.Equal(t, 9000, got.TimeSpentSeconds)
	assert.Equal(t, "2025-10-01", got.StartDate)
	assert.Equal(t, "Refactor", got.Description)
	require.Len(t, got.Attributes, 1)
	assert.Equal(t, "_WorkCategory_", got.Attributes[0].Key)
	assert.Equal(t, "Development", got.Attributes[0].Value)
}

func TestCreateWorklogFractionalMinutes(t *testing.T) {
	var got Worklog
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok", 5*time.Second)
	// 45m parses to 0.75h
	err := client.CreateWorklog(context.Background(), "ABC-1", 0.75, "2025-10-01", "", "", "")
	require.NoError(t, err)

	assert.Equal(t, 2700, got.TimeSpentSeconds)
	assert.Empty(t, got.Attributes)
}

func TestCreateWorklogAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok", 5*time.Second)
	err := client.CreateWorklog(context.Background(), "ABC-1", 1, "2025-10-01", "", "", "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus())
}
