// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v43/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/perjor/sitecfg/pkg/metrics"
	"github.com/peterbourgon/diskv"
	"golang.org/x/oauth2"
	"k8s.io/klog/v2"
)

// NewHTTPClient creates an HTTP client authenticating with accessToken,
// when set, and caching responses on disk under cachePath. Requests
// answered from the cache are not metered.
func NewHTTPClient(ctx context.Context, accessToken string, cachePath string) *http.Client {
	base := metrics.InstrumentTransport(http.DefaultTransport)
	if len(accessToken) > 0 {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		if t, ok := oauth2.NewClient(ctx, ts).Transport.(*oauth2.Transport); ok {
			t.Base = base
			base = t
		}
	}
	if len(cachePath) == 0 {
		return &http.Client{Transport: base}
	}

	flatTransform := func(s string) []string { return []string{} }
	d := diskv.New(diskv.Options{
		BasePath:     cachePath,
		Transform:    flatTransform,
		CacheSizeMax: 100 * 1024 * 1024,
	})
	cacheTransport := &httpcache.Transport{
		Transport:           base,
		Cache:               diskcache.NewWithDiskv(d),
		MarkCachedResponses: true,
	}
	return cacheTransport.Client()
}

// NewGitHubClient creates a client for the GitHub instance hosting r
func NewGitHubClient(r *Repo, httpClient *http.Client) (*github.Client, error) {
	if r.Host == DefaultHost {
		return github.NewClient(httpClient), nil
	}
	instance := fmt.Sprintf("%s://%s", r.Scheme, r.Host)
	return github.NewEnterpriseClient(instance, instance, httpClient)
}

// RepositoriesService is the part of the GitHub repositories API a
// Checker needs
type RepositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
}

// Checker verifies that the repository of a site is reachable
type Checker struct {
	Repositories RepositoriesService
}

// NewChecker creates Checker using client
func NewChecker(client *github.Client) *Checker {
	return &Checker{Repositories: client.Repositories}
}

// Check fetches r and returns its default branch
func (c *Checker) Check(ctx context.Context, r *Repo) (string, error) {
	repo, resp, err := c.Repositories.Get(ctx, r.Owner, r.Name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("repository %s not found", r)
		}
		return "", fmt.Errorf("checking repository %s failed: %w", r, err)
	}
	if resp != nil && resp.Response != nil && resp.Header.Get(httpcache.XFromCache) != "" {
		klog.V(6).Infof("repository %s read from cache", r)
	}
	if repo.GetArchived() {
		klog.Warningf("repository %s is archived", r)
	}
	branch := repo.GetDefaultBranch()
	if len(branch) == 0 {
		branch = "master"
	}
	return branch, nil
}
