package directive

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Duration forms tried in order: decimal hours, hour:minute, minutes
var (
	hoursRe   = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)h$`)
	hhmmRe    = regexp.MustCompile(`^([0-9]+):([0-9]{1,2})$`)
	minutesRe = regexp.MustCompile(`^([0-9]+)m$`)
	dateRe    = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

// parseLogValue parses a LOG token value: a duration in one of three
// equivalent forms, optionally followed by @yyyy-mm-dd
func parseLogValue(value string) (float64, *string, error) {
	amount := value
	var datePart *string
	if idx := strings.Index(value, "@"); idx >= 0 {
		amount = strings.TrimSpace(value[:idx])
		dp := strings.TrimSpace(value[idx+1:])
		datePart = &dp
	}

	hours, err := parseDuration(amount)
	if err != nil {
		return 0, nil, err
	}
	if hours <= 0 {
		return 0, nil, &FormatError{Reason: "LOG hours must be a positive number."}
	}

	if datePart != nil {
		if err := validateDate(*datePart); err != nil {
			return 0, nil, err
		}
	}

	return hours, datePart, nil
}

// parseDuration resolves a duration string to fractional hours.
// First matching form wins.
func parseDuration(amount string) (float64, error) {
	if m := hoursRe.FindStringSubmatch(amount); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, &FormatError{Reason: "LOG hours must be a positive number."}
		}
		return hours, nil
	}

	if m := hhmmRe.FindStringSubmatch(amount); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if minutes >= 60 {
			return 0, &FormatError{Reason: "LOG minutes must be < 60 for h:mm"}
		}
		return float64(hours) + float64(minutes)/60, nil
	}

	if m := minutesRe.FindStringSubmatch(amount); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return float64(minutes) / 60, nil
	}

	return 0, &FormatError{Reason: "LOG must be 2h@YYYY-MM-DD, 1.5h, 1:30, or 90m."}
}

// validateDate runs the two-stage date check: fixed-width yyyy-mm-dd
// pattern, then a parse-and-reformat round trip that rejects pattern-valid
// but nonexistent dates like 2025-02-30
func validateDate(date string) error {
	if !dateRe.MatchString(date) {
		return &FormatError{Reason: "date must be yyyy-mm-dd"}
	}

	t, err := time.Parse("2006-01-02", date)
	if err != nil || t.Format("2006-01-02") != date {
		return &CalendarError{Reason: "LOG date must be a valid calendar date"}
	}

	return nil
}
