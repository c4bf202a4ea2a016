// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// DefaultHost is the host of `owner/name` repository shorthands
const DefaultHost = "github.com"

// Repo identifies the source repository of a site
type Repo struct {
	Scheme string
	Host   string
	Owner  string
	Name   string
}

// ParseRepo parses the repo setting of a site theme, either an
// `owner/name` shorthand for a github.com repository or a full URL
func ParseRepo(repo string) (*Repo, error) {
	repo = strings.TrimSpace(repo)
	if len(repo) == 0 {
		return nil, fmt.Errorf("repository is not set")
	}
	if !strings.Contains(repo, "://") {
		parts := strings.Split(repo, "/")
		if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
			return nil, fmt.Errorf("repository %s is not in <owner>/<name> format", repo)
		}
		return &Repo{Scheme: "https", Host: DefaultHost, Owner: parts[0], Name: parts[1]}, nil
	}
	u, err := url.Parse(repo)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse url: %s", repo)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("repository URL %s must use http or https", repo)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return nil, fmt.Errorf("repository URL %s has no <owner>/<name> path", repo)
	}
	return &Repo{
		Scheme: u.Scheme,
		Host:   u.Host,
		Owner:  parts[0],
		Name:   strings.TrimSuffix(parts[1], ".git"),
	}, nil
}

// WebURL is the repository home page
func (r *Repo) WebURL() string {
	return fmt.Sprintf("%s://%s/%s/%s", r.Scheme, r.Host, r.Owner, r.Name)
}

// EditURL is the link for editing file on branch, where file is relative
// to the docs directory of the repository
func (r *Repo) EditURL(branch, docsDir, file string) string {
	return fmt.Sprintf("%s/edit/%s/%s", r.WebURL(), branch, strings.TrimPrefix(path.Join(docsDir, file), "/"))
}

func (r *Repo) String() string {
	if r.Host == DefaultHost {
		return r.Owner + "/" + r.Name
	}
	return r.WebURL()
}
