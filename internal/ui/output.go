package ui

import (
	"fmt"
	"strings"

	"github.com/ldenholm/trackhook/internal/models"

	"github.com/muesli/termenv"
)

// PlainMode reports whether styled output should be suppressed. Hook mode
// often runs without a real terminal attached.
func PlainMode() bool {
	return termenv.EnvColorProfile() == termenv.Ascii
}

// RenderResults renders apply results for headless output. Plain mode drops
// styling so hook logs stay readable.
func RenderResults(issue string, results []models.ActionResult, plain bool) string {
	if !plain {
		header := SectionHeader(issue, ColorCyan)
		return header + "\n" + strings.Join(ResultLines(results), "\n")
	}

	var lines []string
	for _, result := range results {
		marker := "ok"
		switch {
		case models.IsStatusSkipped(result.Status):
			marker = "skip"
		case models.IsStatusFailed(result.Status):
			marker = "fail"
		}

		line := fmt.Sprintf("%s: [%s] %s", issue, marker, result.Action.Display())
		if reason := models.GetStatusReason(result.Status); reason != "" {
			line += " (" + reason + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
