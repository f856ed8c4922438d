// Package fetch abstracts the remote-clone step used by config install.
//
// The core only needs "fetch a remote ref into a local directory, report
// success or failure"; the concrete tool is an implementation detail, and
// tests substitute a fake Fetcher.
package fetch

import (
	"fmt"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/conswap/conswap/internal/logging"
)

// Fetcher fetches a remote ref into a local target directory.
type Fetcher interface {
	// Name identifies the fetcher in logs.
	Name() string

	// Fetch materializes remoteRef at targetDir. targetDir must not exist;
	// on failure the fetcher must not be relied on to clean up targetDir.
	Fetch(remoteRef, targetDir string) error
}

// GitFetcher clones remote refs with the git CLI.
type GitFetcher struct{}

// Git returns a Fetcher backed by the git CLI.
func Git() Fetcher {
	return &GitFetcher{}
}

func (f *GitFetcher) Name() string {
	return "git"
}

func (f *GitFetcher) Fetch(remoteRef, targetDir string) error {
	args := []string{"clone", "--", remoteRef, targetDir}
	if logging.Verbose {
		logging.Debug("running git", "cmd", shellquote.Join(append([]string{"git"}, args...)...))
	}

	cmd := exec.Command("git", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone failed: %s: %w", string(output), err)
	}
	return nil
}
