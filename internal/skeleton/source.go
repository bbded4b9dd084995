package skeleton

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"acstools/internal/model"
)

// gitListArgs lists tracked files plus untracked ones that are not ignored,
// NUL-separated so names with newlines survive.
var gitListArgs = []string{"ls-files", "-z", "--cached", "--others", "--exclude-standard"}

// RunGitListing starts git ls-files in dir and returns its stdout.
// The caller must read until EOF before calling Close; Close waits for git
// and reports a failed exit together with git's stderr.
func RunGitListing(ctx context.Context, dir string) (io.ReadCloser, error) {
	cmd := exec.CommandContext(ctx, "git", gitListArgs...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start git: %w", err)
	}
	return &gitListing{ReadCloser: stdout, cmd: cmd, stderr: &stderr}, nil
}

type gitListing struct {
	io.ReadCloser
	cmd    *exec.Cmd
	stderr *bytes.Buffer
}

func (g *gitListing) Close() error {
	// Wait also closes the stdout pipe.
	if err := g.cmd.Wait(); err != nil {
		if msg := strings.TrimSpace(g.stderr.String()); msg != "" {
			return fmt.Errorf("git ls-files: %w: %s", err, msg)
		}
		return fmt.Errorf("git ls-files: %w", err)
	}
	return nil
}

// LoadGit builds the tree for the working copy at dir.
func LoadGit(ctx context.Context, dir string) (*model.TreeNode, error) {
	listing, err := RunGitListing(ctx, dir)
	if err != nil {
		return nil, err
	}
	root, readErr := Load(listing, true)
	// git blocks on a full pipe if we stopped early
	_, _ = io.Copy(io.Discard, listing)
	if err := listing.Close(); err != nil {
		return nil, err
	}
	if readErr != nil {
		return nil, readErr
	}
	return root, nil
}
