package run

import (
	"errors"

	"github.com/go-git/go-git/v5"
)

// detectBranch returns the branch currently checked out in the repository
// containing dir. Detection is best effort: callers treat any failure as
// "no branch", never as a command failure.
func detectBranch(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", err
	}
	if !head.Name().IsBranch() {
		return "", errors.New("HEAD is detached")
	}
	return head.Name().Short(), nil
}
