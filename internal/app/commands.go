package app

import (
	"context"
	"time"

	"github.com/ldenholm/trackhook/internal/directive"
	"github.com/ldenholm/trackhook/internal/git"
	"github.com/ldenholm/trackhook/internal/models"
	"github.com/ldenholm/trackhook/internal/runner"
	"github.com/ldenholm/trackhook/internal/update"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type commitLoadedResult struct {
	commit     *models.CommitInfo
	directives models.Directives
	plan       models.Plan
	err        error
}

type applyCompleteResult struct {
	results []models.ActionResult
}

type updateCheckResult struct {
	release *update.Release
	err     error
}

type updateDownloadResult struct {
	success bool
	version string
	err     error
}

// loadCommitCmd reads HEAD and parses its directives in the background
func loadCommitCmd(repoPath string) tea.Cmd {
	return func() tea.Msg {
		commit, err := git.HeadCommit(repoPath)
		if err != nil {
			return commitLoadedResult{err: err}
		}

		directives, err := directive.Parse(commit.FullMessage)
		if err != nil {
			return commitLoadedResult{commit: commit, err: err}
		}

		plan := runner.BuildPlan(directives, time.Now())
		return commitLoadedResult{commit: commit, directives: directives, plan: plan}
	}
}

// applyPlanCmd executes the plan against the configured services
func applyPlanCmd(r *runner.Runner, plan models.Plan) tea.Cmd {
	return func() tea.Msg {
		results := r.Apply(context.Background(), plan)
		return applyCompleteResult{results: results}
	}
}

// checkUpdateCmd checks for available updates
func checkUpdateCmd(currentVersion, repo string) tea.Cmd {
	return func() tea.Msg {
		release, err := update.CheckForUpdate(currentVersion, repo)
		return updateCheckResult{release: release, err: err}
	}
}

// downloadUpdateCmd downloads and installs an update
func downloadUpdateCmd(release *update.Release, repo string) tea.Cmd {
	return func() tea.Msg {
		err := update.DownloadAndInstall(release, repo)
		if err != nil {
			return updateDownloadResult{success: false, err: err}
		}
		return updateDownloadResult{success: true, version: update.VersionDisplay(release.TagName)}
	}
}
