package git

import (
	"strings"

	"github.com/ldenholm/trackhook/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// HeadCommit reads the commit at HEAD
func HeadCommit(repoPath string) (*models.CommitInfo, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, err
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}

	info := toCommitInfo(commit)
	return &info, nil
}

// RecentCommits lists up to limit commits reachable from HEAD, newest first
func RecentCommits(repoPath string, limit int) ([]models.CommitInfo, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, err
	}

	var commits []models.CommitInfo
	err = iter.ForEach(func(c *object.Commit) error {
		if len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, toCommitInfo(c))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return commits, nil
}

func toCommitInfo(c *object.Commit) models.CommitInfo {
	hash := c.Hash.String()[:7]
	message := strings.Split(c.Message, "\n")[0] // First line for display
	return models.NewCommitInfo(hash, message, c.Message, c.Author.Name)
}
