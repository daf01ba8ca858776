package app

import (
	"time"

	"github.com/ldenholm/trackhook/internal/config"
	"github.com/ldenholm/trackhook/internal/models"
	"github.com/ldenholm/trackhook/internal/runner"
	"github.com/ldenholm/trackhook/internal/update"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the main application state
type Model struct {
	// Configuration
	config  *config.Config
	dryRun  bool
	version string

	// Navigation
	screen       Screen
	returnScreen Screen // Screen to resume after the update prompt
	shouldQuit   bool

	// Commit state
	repoPath   string
	commit     *models.CommitInfo
	directives models.Directives
	plan       models.Plan

	// Apply state
	runner  *runner.Runner
	results []models.ActionResult

	// UI state
	confirmSelection int // 0=Yes, 1=No
	errorMessage     string
	spinnerFrame     int

	// Update state
	updateAvailable *update.Release
	updateSelection int // 0=Update now, 1=Skip, 2=Skip this version

	// Window size
	width  int
	height int
}

// New creates a new application model
func New(cfg *config.Config, repoPath string, dryRun bool, version string) Model {
	return Model{
		config:   cfg,
		dryRun:   dryRun,
		version:  version,
		screen:   ScreenLoading,
		repoPath: repoPath,
		runner:   runner.New(cfg, dryRun),
		width:    80,
		height:   24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(),
		loadCommitCmd(m.repoPath),
	}
	if !m.dryRun && m.config.ShouldCheckForUpdate() {
		cmds = append(cmds, checkUpdateCmd(m.version, m.config.Update.Repo))
	}
	return tea.Batch(cmds...)
}

// tickMsg is sent on each tick for the spinner
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}
