package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		return m, tickCmd()

	case commitLoadedResult:
		return m.handleCommitLoaded(msg)

	case applyCompleteResult:
		m.results = msg.results
		m.screen = ScreenComplete
		return m, nil

	case updateCheckResult:
		return m.handleUpdateCheck(msg)

	case updateDownloadResult:
		return m.handleUpdateDownload(msg)
	}

	return m, nil
}

func (m Model) handleCommitLoaded(msg commitLoadedResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.commit = msg.commit
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}

	m.commit = msg.commit
	m.directives = msg.directives
	m.plan = msg.plan
	m.confirmSelection = 0
	if m.screen != ScreenUpdatePrompt {
		m.screen = ScreenReview
	} else {
		m.returnScreen = ScreenReview
	}
	return m, nil
}

func (m Model) handleUpdateCheck(msg updateCheckResult) (tea.Model, tea.Cmd) {
	m.config.RecordUpdateCheck()
	_ = m.config.Save()

	// Update check failures are not worth interrupting the flow for
	if msg.err != nil || msg.release == nil {
		return m, nil
	}
	if msg.release.TagName == m.config.Update.SkippedVersion {
		return m, nil
	}

	m.updateAvailable = msg.release
	m.updateSelection = 0
	m.returnScreen = m.screen
	m.screen = ScreenUpdatePrompt
	return m, nil
}

func (m Model) handleUpdateDownload(msg updateDownloadResult) (tea.Model, tea.Cmd) {
	if !msg.success {
		m.errorMessage = "update failed: " + msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}
	// New binary is in place; quit so the next invocation picks it up
	m.shouldQuit = true
	return m, tea.Quit
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenReview:
		return m.handleReviewKey(msg)
	case ScreenComplete, ScreenError:
		return m.handleTerminalScreenKey(msg)
	case ScreenUpdatePrompt:
		return m.handleUpdatePromptKey(msg)
	}

	return m, nil
}

func (m Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "y":
		m.confirmSelection = 0
		if msg.String() == "y" {
			return m.confirmApply()
		}
	case "right", "l", "n":
		m.confirmSelection = 1
		if msg.String() == "n" {
			m.shouldQuit = true
			return m, tea.Quit
		}
	case "enter":
		if m.confirmSelection == 0 {
			return m.confirmApply()
		}
		m.shouldQuit = true
		return m, tea.Quit
	case "q", "esc":
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) confirmApply() (tea.Model, tea.Cmd) {
	if len(m.plan.Actions) == 0 {
		m.results = nil
		m.screen = ScreenComplete
		return m, nil
	}
	m.screen = ScreenApplying
	return m, applyPlanCmd(m.runner, m.plan)
}

func (m Model) handleTerminalScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "q", "esc":
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleUpdatePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.updateSelection > 0 {
			m.updateSelection--
		}
	case "down", "j":
		if m.updateSelection < 2 {
			m.updateSelection++
		}
	case "enter":
		switch m.updateSelection {
		case 0: // Update now
			m.screen = ScreenUpdating
			return m, downloadUpdateCmd(m.updateAvailable, m.config.Update.Repo)
		case 2: // Skip this version
			m.config.Update.SkippedVersion = m.updateAvailable.TagName
			_ = m.config.Save()
			fallthrough
		default: // Skip
			m.screen = m.resumeScreen()
		}
	case "q", "esc":
		m.screen = m.resumeScreen()
	}
	return m, nil
}

// resumeScreen returns where to go after dismissing the update prompt.
// returnScreen is kept current while the prompt is up, so a commit that
// finished loading in the background lands on Review, not Loading.
func (m Model) resumeScreen() Screen {
	return m.returnScreen
}
