// Package directive parses the commit-message mini-language: a single line
// starting with an issue key, followed by ordering-independent NAME:value
// tokens (STATUS, LOG, COMMENT, PHASE, DATE, CAT, READY).
//
// Parsing is a pure function over the input string. Values may contain
// colons and arbitrary text; only a reserved name followed by a colon, at
// the start of the line or after whitespace, opens a new token. Defaults
// (today's date, fallback category) are the caller's concern, not ours.
package directive

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ldenholm/trackhook/internal/models"
)

// tokenNames are the seven reserved directive names
var tokenNames = []string{"STATUS", "LOG", "COMMENT", "PHASE", "DATE", "CAT", "READY"}

// issueKeyRe anchors the issue key at the very start of the sanitized line:
// one uppercase letter, 1-9 more uppercase letters/digits, hyphen, digits
var issueKeyRe = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,9}-[0-9]+\b`)

// tokenMatch is one boundary occurrence of a reserved NAME: in the line
type tokenMatch struct {
	name       string
	start      int // index of the name itself
	valueStart int // index just past the colon
}

// Parse parses one commit message into its directives.
// It fails with *FormatError or *CalendarError; any error means the caller
// must not proceed with downstream actions for this message.
func Parse(message string) (models.Directives, error) {
	var d models.Directives

	line, err := sanitizeFirstLine(message)
	if err != nil {
		return d, err
	}

	issue := issueKeyRe.FindString(line)
	if issue == "" {
		return d, &FormatError{Reason: "missing or invalid issue key"}
	}

	tokens, err := extractTokens(line)
	if err != nil {
		return d, err
	}

	d.Issue = issue
	d.FirstLine = line

	if v, ok := tokens["STATUS"]; ok {
		if strings.TrimSpace(v) == "" {
			// Unreachable given the non-empty capture rule, checked anyway
			return models.Directives{}, &FormatError{Reason: "STATUS value cannot be empty."}
		}
		d.Status = &v
	}

	if v, ok := tokens["COMMENT"]; ok {
		d.Comment = &v
	}

	// PHASE wins over its CAT alias when both are present
	if v, ok := tokens["PHASE"]; ok {
		d.Phase = &v
	} else if v, ok := tokens["CAT"]; ok {
		d.Phase = &v
	}

	if v, ok := tokens["READY"]; ok {
		d.Ready = normalizeReady(v)
	}

	if v, ok := tokens["LOG"]; ok {
		hours, date, err := parseLogValue(v)
		if err != nil {
			return models.Directives{}, err
		}
		d.LogHours = &hours
		if date != nil {
			// Inline @date wins silently over a standalone DATE token
			d.LogDate = date
		} else if dv, ok := tokens["DATE"]; ok {
			if err := validateDate(dv); err != nil {
				return models.Directives{}, err
			}
			d.LogDate = &dv
		}
	} else if dv, ok := tokens["DATE"]; ok {
		// Date-only annotation: same two-stage validation, hours stay nil
		if err := validateDate(dv); err != nil {
			return models.Directives{}, err
		}
		d.LogDate = &dv
	}

	return d, nil
}

// extractTokens runs the single-pass boundary scan and returns each token's
// trimmed value. A token with nothing but whitespace after its colon does
// not match at all. A second match for any one name is a hard failure.
func extractTokens(line string) (map[string]string, error) {
	matches := scanTokens(line)

	values := make(map[string]string, len(matches))
	counts := make(map[string]int, len(matches))

	for i, m := range matches {
		end := len(line)
		if i+1 < len(matches) {
			end = matches[i+1].start
		}

		value := strings.TrimSpace(line[m.valueStart:end])
		if value == "" {
			continue
		}

		counts[m.name]++
		values[m.name] = value
	}

	// Check uniqueness per name in a fixed order so the reported token is
	// deterministic even when several names are duplicated
	for _, name := range tokenNames {
		if counts[name] > 1 {
			return nil, &FormatError{Reason: fmt.Sprintf("only one %s token is allowed.", name)}
		}
	}

	return values, nil
}

// scanTokens finds every occurrence of a reserved NAME: preceded by
// start-of-line or whitespace, in order of appearance
func scanTokens(line string) []tokenMatch {
	var matches []tokenMatch

	for i := 0; i < len(line); i++ {
		if i > 0 && line[i-1] != ' ' && line[i-1] != '\t' {
			continue
		}
		for _, name := range tokenNames {
			if strings.HasPrefix(line[i:], name) && len(line) > i+len(name) && line[i+len(name)] == ':' {
				matches = append(matches, tokenMatch{
					name:       name,
					start:      i,
					valueStart: i + len(name) + 1,
				})
				break
			}
		}
	}

	return matches
}

// Truthy and falsy vocabularies for the READY flag
var (
	readyTruthy = map[string]bool{"y": true, "yes": true, "true": true, "1": true}
	readyFalsy  = map[string]bool{"n": true, "no": true, "false": true, "0": true}
)

// normalizeReady maps a READY value to true/false, or nil when the value is
// not in either vocabulary. Unrecognized values are not an error: callers
// treat nil as "no change requested".
func normalizeReady(value string) *bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if readyTruthy[v] {
		t := true
		return &t
	}
	if readyFalsy[v] {
		f := false
		return &f
	}
	return nil
}
