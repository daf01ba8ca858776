package models

// Directives is the structured result of parsing one commit message line.
// Optional fields are nil when the corresponding token was absent.
type Directives struct {
	// Issue is the issue key (e.g., "PAY-101"). Always set on success.
	Issue string `json:"issue"`
	// Status is the requested status-transition label
	Status *string `json:"status,omitempty"`
	// LogHours is the duration to log, in fractional hours (always > 0)
	LogHours *float64 `json:"logHours,omitempty"`
	// LogDate is the yyyy-mm-dd date for the worklog; nil means "caller's default"
	LogDate *string `json:"logDate,omitempty"`
	// Comment is a free-text annotation to post on the issue
	Comment *string `json:"comment,omitempty"`
	// Phase is the category/phase label (PHASE token, or CAT when PHASE absent)
	Phase *string `json:"phase,omitempty"`
	// Ready is the tri-state readiness flag; nil when absent or unrecognized
	Ready *bool `json:"ready,omitempty"`
	// FirstLine is the sanitized first line of the commit message
	FirstLine string `json:"firstLine"`
}

// HasActions returns true if any downstream action was requested
func (d Directives) HasActions() bool {
	return d.Status != nil || d.LogHours != nil || d.Comment != nil
}
