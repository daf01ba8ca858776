package ui

import (
	"fmt"
	"strings"

	"github.com/ldenholm/trackhook/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// YesNoButtons creates interactive Yes/No buttons
// selection: 0 for Yes, 1 for No
func YesNoButtons(selection int) string {
	var yesColor, noColor lipgloss.Color

	if selection == 0 {
		yesColor = ColorGreen
	} else {
		yesColor = ColorDarkGray
	}
	if selection == 1 {
		noColor = ColorRed
	} else {
		noColor = ColorDarkGray
	}

	yesStyle := lipgloss.NewStyle().Foreground(yesColor)
	yesTextStyle := lipgloss.NewStyle().Foreground(yesColor).Bold(true)
	noStyle := lipgloss.NewStyle().Foreground(noColor)
	noTextStyle := lipgloss.NewStyle().Foreground(noColor).Bold(true)

	var iconYes, iconNo string
	if selection == 0 {
		iconYes = ">"
	} else {
		iconYes = " "
	}
	if selection == 1 {
		iconNo = ">"
	} else {
		iconNo = " "
	}

	line1 := yesStyle.Render("  ┌────────┐") + " " + noStyle.Render("┌───────┐")
	line2 := fmt.Sprintf("%s%s%s %s%s%s",
		yesStyle.Render("  │"),
		yesTextStyle.Render(fmt.Sprintf(" %s  YES ", iconYes)),
		yesStyle.Render("│"),
		noStyle.Render("│"),
		noTextStyle.Render(fmt.Sprintf(" %s  NO ", iconNo)),
		noStyle.Render("│"),
	)
	line3 := yesStyle.Render("  └────────┘") + " " + noStyle.Render("└───────┘")

	return line1 + "\n" + line2 + "\n" + line3
}

// Spinner frames using braille characters
var SpinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner returns the spinner character at the given frame index
func Spinner(frame int) string {
	return string(SpinnerFrames[frame%len(SpinnerFrames)])
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// ActionStatusIcon returns the icon and color for an action outcome
func ActionStatusIcon(status models.ActionStatus) (string, lipgloss.Color) {
	switch {
	case models.IsStatusApplied(status):
		return "✓", ColorGreen
	case models.IsStatusSkipped(status):
		return "⊘", ColorYellow
	case models.IsStatusFailed(status):
		return "✗", ColorRed
	default:
		return "·", ColorWhite
	}
}

// DirectiveLines renders the parsed directives as labelled lines for the
// review screen
func DirectiveLines(d models.Directives) []string {
	labelStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	valueStyle := lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)

	row := func(token, value string) string {
		tokenStyle := lipgloss.NewStyle().Foreground(TokenColor(token)).Bold(true)
		return fmt.Sprintf("  %s %s", tokenStyle.Render(fmt.Sprintf("%-8s", token)), valueStyle.Render(value))
	}

	lines := []string{
		fmt.Sprintf("  %s %s", labelStyle.Render("issue   "), valueStyle.Render(d.Issue)),
	}
	if d.Status != nil {
		lines = append(lines, row("STATUS", *d.Status))
	}
	if d.LogHours != nil {
		value := fmt.Sprintf("%.2fh", *d.LogHours)
		if d.LogDate != nil {
			value += " @ " + *d.LogDate
		} else {
			value += " @ today"
		}
		lines = append(lines, row("LOG", value))
	} else if d.LogDate != nil {
		lines = append(lines, row("DATE", *d.LogDate))
	}
	if d.Comment != nil {
		lines = append(lines, row("COMMENT", *d.Comment))
	}
	if d.Phase != nil {
		lines = append(lines, row("PHASE", *d.Phase))
	}
	if d.Ready != nil {
		lines = append(lines, row("READY", fmt.Sprintf("%t", *d.Ready)))
	}

	return lines
}

// PlanLines renders the plan's actions as bullet lines
func PlanLines(plan models.Plan) []string {
	bulletStyle := lipgloss.NewStyle().Foreground(ColorCyan)
	textStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	if len(plan.Actions) == 0 {
		dim := lipgloss.NewStyle().Foreground(ColorDarkGray)
		return []string{dim.Render("  (no downstream actions requested)")}
	}

	var lines []string
	for _, action := range plan.Actions {
		lines = append(lines, fmt.Sprintf("  %s %s",
			bulletStyle.Render("•"),
			textStyle.Render(action.Display()),
		))
	}
	return lines
}

// ResultLines renders apply results with status icons
func ResultLines(results []models.ActionResult) []string {
	var lines []string
	for _, result := range results {
		icon, color := ActionStatusIcon(result.Status)
		iconStyle := lipgloss.NewStyle().Foreground(color)

		line := fmt.Sprintf("  %s %s", iconStyle.Render(icon), result.Action.Display())
		if reason := models.GetStatusReason(result.Status); reason != "" {
			reasonStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
			line += reasonStyle.Render(" - " + reason)
		}
		lines = append(lines, line)
	}
	return lines
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
