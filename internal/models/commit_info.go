package models

// CommitInfo contains information about a git commit
type CommitInfo struct {
	// Hash is the short commit hash (7 characters)
	Hash string
	// Message is the first line of the commit message
	Message string
	// FullMessage is the complete commit message
	FullMessage string
	// Author is the commit author name
	Author string
}

// NewCommitInfo creates a new CommitInfo
func NewCommitInfo(hash, message, fullMessage, author string) CommitInfo {
	return CommitInfo{
		Hash:        hash,
		Message:     message,
		FullMessage: fullMessage,
		Author:      author,
	}
}
