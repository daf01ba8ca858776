package directive

// FormatError indicates the commit message does not conform to the
// directive mini-language (bad issue key, duplicate token, malformed LOG
// grammar, malformed date pattern, empty STATUS)
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "directive format: " + e.Reason
}

// CalendarError indicates a date that matches the yyyy-mm-dd pattern but
// does not denote a real calendar date (e.g., 2025-02-30). Kept distinct
// from FormatError so callers can word remediation differently.
type CalendarError struct {
	Reason string
}

func (e *CalendarError) Error() string {
	return "calendar date: " + e.Reason
}
