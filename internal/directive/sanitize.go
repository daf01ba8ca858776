package directive

import "strings"

// Invisible characters that editors and copy-paste leave at the start of
// commit messages: BOM, zero-width space, zero-width non-joiner/joiner
const zeroWidth = "\uFEFF\u200B\u200C\u200D"

// sanitizeFirstLine extracts and normalizes the first line of a commit
// message: strips leading BOM/zero-width characters and horizontal
// whitespace, and trims trailing whitespace
func sanitizeFirstLine(message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", &FormatError{Reason: "commit message is empty."}
	}

	line := message
	if idx := strings.IndexAny(line, "\r\n"); idx >= 0 {
		line = line[:idx]
	}

	for len(line) > 0 {
		trimmed := strings.TrimLeft(line, zeroWidth)
		trimmed = strings.TrimLeft(trimmed, " \t")
		if trimmed == line {
			break
		}
		line = trimmed
	}

	return strings.TrimRight(line, " \t"), nil
}
