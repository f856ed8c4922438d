package fetch

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conswap/conswap/internal/logging"
)

func TestGitFetcher_Name(t *testing.T) {
	if got := Git().Name(); got != "git" {
		t.Errorf("Name() = %q, want %q", got, "git")
	}
}

func TestGitFetcher_FetchFailure(t *testing.T) {
	target := filepath.Join(t.TempDir(), "clone")

	err := Git().Fetch("/nonexistent/repo", target)
	if err == nil {
		t.Fatal("expected error cloning a nonexistent ref")
	}
	if !strings.Contains(err.Error(), "git clone failed") {
		t.Errorf("error = %v, want clone failure", err)
	}
}

func TestGitFetcher_VerboseLogsCommand(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(true, false, &buf)
	t.Cleanup(func() { logging.Setup(false, false, &buf) })

	target := filepath.Join(t.TempDir(), "clone")
	_ = Git().Fetch("/nonexistent/repo", target)

	if !strings.Contains(buf.String(), "git clone") {
		t.Errorf("verbose mode should log the git command, got: %s", buf.String())
	}

	buf.Reset()
	logging.Setup(false, false, &buf)
	_ = Git().Fetch("/nonexistent/repo", target)

	if strings.Contains(buf.String(), "git clone") {
		t.Errorf("non-verbose mode should not render the git command, got: %s", buf.String())
	}
}
