package jira

import "fmt"

// APIError is a non-2xx response from the Jira API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira API returned %d: %s", e.StatusCode, e.Body)
}

// HTTPStatus returns the response status code. The runner uses it to decide
// whether an action is worth retrying.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
