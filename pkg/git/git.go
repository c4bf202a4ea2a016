// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// History reads the change history of content files from the git
// repository the content tree is checked out in
type History struct {
	repository *gogit.Repository
	// prefix is the content root relative to the worktree root
	prefix string
}

// NewHistory opens the repository containing contentRoot. The
// repository may be rooted in any parent directory of contentRoot.
func NewHistory(contentRoot string) (*History, error) {
	abs, err := filepath.Abs(contentRoot)
	if err != nil {
		return nil, err
	}
	repository, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repository for %s failed: %w", contentRoot, err)
	}
	worktree, err := repository.Worktree()
	if err != nil {
		return nil, fmt.Errorf("repository of %s has no worktree: %w", contentRoot, err)
	}
	rel, err := filepath.Rel(worktree.Filesystem.Root(), abs)
	if err != nil {
		return nil, err
	}
	prefix := filepath.ToSlash(rel)
	if prefix == "." {
		prefix = ""
	}
	if strings.HasPrefix(prefix, "../") {
		return nil, fmt.Errorf("content root %s is outside of the worktree %s", contentRoot, worktree.Filesystem.Root())
	}
	return &History{repository: repository, prefix: prefix}, nil
}

// LastModified returns the committer time of the newest commit on HEAD
// touching file. Files without commits and repositories without HEAD
// yield zero time.
func (h *History) LastModified(ctx context.Context, file string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	head, err := h.repository.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	name := path.Join(h.prefix, file)
	iter, err := h.repository.Log(&gogit.LogOptions{From: head.Hash(), FileName: &name})
	if err != nil {
		return time.Time{}, fmt.Errorf("reading git log for %s failed: %w", name, err)
	}
	defer iter.Close()
	commit, err := iter.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("reading git log for %s failed: %w", name, err)
	}
	return commit.Committer.When, nil
}

// DateFormat is the layout last updated times are printed with
const DateFormat = "2006-01-02 15:04:05"
