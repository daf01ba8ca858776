package app

import (
	"fmt"
	"strings"

	"github.com/ldenholm/trackhook/internal/ui"
	"github.com/ldenholm/trackhook/internal/update"

	"github.com/charmbracelet/lipgloss"
)

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	var sections []string

	sections = append(sections, ui.RenderBanner(m.dryRun))
	sections = append(sections, "")

	switch m.screen {
	case ScreenLoading:
		sections = append(sections, m.viewLoading())
	case ScreenReview:
		sections = append(sections, m.viewReview())
	case ScreenApplying:
		sections = append(sections, m.viewApplying())
	case ScreenComplete:
		sections = append(sections, m.viewComplete())
	case ScreenError:
		sections = append(sections, m.viewError())
	case ScreenUpdatePrompt:
		sections = append(sections, m.viewUpdatePrompt())
	case ScreenUpdating:
		sections = append(sections, m.viewUpdating())
	}

	sections = append(sections, "")
	sections = append(sections, m.viewKeyHints())

	return strings.Join(sections, "\n")
}

func (m Model) viewLoading() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
	textStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)

	return fmt.Sprintf("  %s %s",
		spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
		textStyle.Render("Reading HEAD commit..."),
	)
}

func (m Model) viewReview() string {
	var lines []string

	lines = append(lines, ui.SectionHeader("COMMIT", ui.ColorCyan))
	if m.commit != nil {
		hashStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
		msgStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		lines = append(lines, fmt.Sprintf("  %s %s",
			hashStyle.Render(m.commit.Hash),
			msgStyle.Render(m.commit.Message),
		))
	}

	lines = append(lines, "")
	lines = append(lines, ui.SectionHeader("DIRECTIVES", ui.ColorMagenta))
	lines = append(lines, ui.DirectiveLines(m.directives)...)

	lines = append(lines, "")
	lines = append(lines, ui.SectionHeader("PLAN", ui.ColorGreen))
	lines = append(lines, ui.PlanLines(m.plan)...)

	lines = append(lines, "")
	promptStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite).Bold(true)
	if len(m.plan.Actions) == 0 {
		lines = append(lines, promptStyle.Render("  Nothing to apply. Exit?"))
	} else {
		lines = append(lines, promptStyle.Render("  Apply these actions?"))
	}
	lines = append(lines, "")
	lines = append(lines, ui.YesNoButtons(m.confirmSelection))

	return strings.Join(lines, "\n")
}

func (m Model) viewApplying() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
	textStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)

	var lines []string
	lines = append(lines, ui.SectionHeader("APPLYING", ui.ColorYellow))
	lines = append(lines, fmt.Sprintf("  %s %s",
		spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
		textStyle.Render(fmt.Sprintf("Applying %d action(s) to %s...", len(m.plan.Actions), m.plan.Issue)),
	))
	return strings.Join(lines, "\n")
}

func (m Model) viewComplete() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("DONE", ui.ColorGreen))

	if len(m.results) == 0 {
		dim := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		lines = append(lines, dim.Render("  No actions were requested by this commit."))
	} else {
		lines = append(lines, ui.ResultLines(m.results)...)
	}

	return strings.Join(lines, "\n")
}

func (m Model) viewError() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("ERROR", ui.ColorRed))

	errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
	lines = append(lines, "  "+errStyle.Render(m.errorMessage))

	if m.commit != nil {
		lines = append(lines, "")
		dim := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		lines = append(lines, dim.Render("  commit: "+m.commit.Hash+" "+m.commit.Message))
	}

	return strings.Join(lines, "\n")
}

func (m Model) viewUpdatePrompt() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("UPDATE AVAILABLE", ui.ColorOrange))

	versionStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite).Bold(true)
	lines = append(lines, fmt.Sprintf("  %s → %s",
		versionStyle.Render(m.version),
		versionStyle.Render(update.VersionDisplay(m.updateAvailable.TagName)),
	))
	lines = append(lines, "")

	options := []string{"Update now", "Skip", "Skip this version"}
	for i, option := range options {
		style := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		arrow := "  "
		if i == m.updateSelection {
			style = style.Foreground(ui.ColorCyan).Bold(true)
			arrow = "▶ "
		}
		lines = append(lines, "  "+arrow+style.Render(option))
	}

	return strings.Join(lines, "\n")
}

func (m Model) viewUpdating() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
	textStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)

	return fmt.Sprintf("  %s %s",
		spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
		textStyle.Render("Downloading update..."),
	)
}

func (m Model) viewKeyHints() string {
	var hints []string

	switch m.screen {
	case ScreenReview:
		hints = []string{
			ui.KeyBinding("←/→", "select", ui.ColorCyan),
			ui.KeyBinding("enter", "confirm", ui.ColorCyan),
			ui.KeyBinding("q", "quit", ui.ColorCyan),
		}
	case ScreenComplete, ScreenError:
		hints = []string{
			ui.KeyBinding("enter", "exit", ui.ColorCyan),
		}
	case ScreenUpdatePrompt:
		hints = []string{
			ui.KeyBinding("↑/↓", "select", ui.ColorCyan),
			ui.KeyBinding("enter", "confirm", ui.ColorCyan),
		}
	default:
		hints = []string{
			ui.KeyBinding("ctrl+c", "quit", ui.ColorCyan),
		}
	}

	return "  " + strings.Join(hints, "   ")
}
