package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/ldenholm/trackhook/internal/termfix"

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ldenholm/trackhook/internal/app"
	"github.com/ldenholm/trackhook/internal/config"
	"github.com/ldenholm/trackhook/internal/directive"
	"github.com/ldenholm/trackhook/internal/git"
	"github.com/ldenholm/trackhook/internal/models"
	"github.com/ldenholm/trackhook/internal/runner"
	"github.com/ldenholm/trackhook/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

var dryRun bool

func main() {
	rootCmd := &cobra.Command{
		Use:     "trackhook",
		Short:   "TUI for turning commit message directives into tracker updates",
		Version: version,
		RunE:    runTUI,
	}

	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Simulate operations without making changes")

	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply directives from the HEAD commit without the TUI",
		RunE:  runApply,
	}
	applyCmd.Flags().StringP("message", "m", "", "Parse this message instead of the HEAD commit")

	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse directives and print them as JSON",
		RunE:  runParse,
	}
	parseCmd.Flags().StringP("message", "m", "", "Parse this message instead of the HEAD commit")

	installHookCmd := &cobra.Command{
		Use:   "install-hook",
		Short: "Install a post-commit hook that runs trackhook apply",
		RunE:  runInstallHook,
	}

	rootCmd.AddCommand(applyCmd, parseCmd, installHookCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repoPath, err := git.FindRepoRoot()
	if err != nil {
		return err
	}

	model := app.New(cfg, repoPath, dryRun, version)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

// messageFromFlagOrHead returns the --message flag value if set, otherwise
// the full message of the HEAD commit of the enclosing repository.
func messageFromFlagOrHead(cmd *cobra.Command) (string, error) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return "", err
	}
	if message != "" {
		return message, nil
	}

	repoPath, err := git.FindRepoRoot()
	if err != nil {
		return "", err
	}
	commit, err := git.HeadCommit(repoPath)
	if err != nil {
		return "", err
	}
	return commit.FullMessage, nil
}

func runApply(cmd *cobra.Command, args []string) error {
	message, err := messageFromFlagOrHead(cmd)
	if err != nil {
		return err
	}

	directives, err := directive.Parse(message)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	plan := runner.BuildPlan(directives, time.Now())
	if len(plan.Actions) == 0 {
		fmt.Printf("%s: no actions requested\n", directives.Issue)
		return nil
	}

	if !dryRun {
		if err := cfg.ValidateTracker(); err != nil {
			return err
		}
		if directives.LogHours != nil {
			if err := cfg.ValidateTempo(); err != nil {
				return err
			}
		}
	}

	r := runner.New(cfg, dryRun)
	results := r.Apply(context.Background(), plan)

	fmt.Print(ui.RenderResults(directives.Issue, results, ui.PlainMode()))

	for _, result := range results {
		if models.IsStatusFailed(result.Status) {
			return fmt.Errorf("one or more actions failed")
		}
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	message, err := messageFromFlagOrHead(cmd)
	if err != nil {
		return err
	}

	directives, err := directive.Parse(message)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(directives, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runInstallHook(cmd *cobra.Command, args []string) error {
	repoPath, err := git.FindRepoRoot()
	if err != nil {
		return err
	}

	hookPath, err := git.InstallHook(repoPath)
	if err != nil {
		return err
	}
	fmt.Printf("Installed post-commit hook at %s\n", hookPath)
	return nil
}
