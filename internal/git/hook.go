package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// hookMarker identifies hooks we wrote, so reinstalls are safe and foreign
// hooks are never clobbered
const hookMarker = "# managed by trackhook"

const hookScript = `#!/bin/sh
` + hookMarker + `
trackhook apply || true
`

// InstallHook writes a post-commit hook that runs trackhook apply.
// Returns the hook path. Fails if a hook not written by us already exists.
func InstallHook(repoPath string) (string, error) {
	hooksDir, err := hooksDir(repoPath)
	if err != nil {
		return "", err
	}

	hookPath := filepath.Join(hooksDir, "post-commit")

	existing, err := os.ReadFile(hookPath)
	if err == nil && !strings.Contains(string(existing), hookMarker) {
		return "", fmt.Errorf("a post-commit hook already exists at %s; remove it first", hookPath)
	}

	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(hookPath, []byte(hookScript), 0755); err != nil {
		return "", err
	}

	return hookPath, nil
}

// hooksDir resolves the hooks directory via git itself, which handles
// worktrees and gitfile redirects that plain path joins get wrong
func hooksDir(repoPath string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--git-path", "hooks")
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", &GitError{Command: "rev-parse", Output: strings.TrimSpace(string(output))}
	}

	dir := strings.TrimSpace(string(output))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(repoPath, dir)
	}
	return dir, nil
}
