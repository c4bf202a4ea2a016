// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/perjor/sitecfg/pkg/content"
	"github.com/perjor/sitecfg/pkg/git"
	"github.com/perjor/sitecfg/pkg/metrics"
	"github.com/perjor/sitecfg/pkg/repository"
	"github.com/perjor/sitecfg/pkg/site"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const defaultLastUpdatedLabel = "Last Updated"

func newSidebarCmd(ctx context.Context, vip *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:   "sidebar",
		Short: "Resolve the sidebar against the documentation content",
		Long: `Maps every sidebar entry to its page in the documentation content and prints the
title the site engine shows for it. Entries without a page fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			o, err := getOptions(vip)
			if err != nil {
				return err
			}
			cfg, err := loadSite(o.SitePath)
			if err != nil {
				return err
			}
			klog.Infof("Content: %s", o.ContentPath)
			pages, resolveErr := content.NewResolver(o.ContentPath).Resolve(cfg)
			var errs *multierror.Error
			if resolveErr != nil {
				errs = multierror.Append(errs, resolveErr)
			}
			if o.Git {
				if err = annotate(ctx, o.ContentPath, pages); err != nil {
					errs = multierror.Append(errs, err)
				}
			}
			var editURL func(file string) string
			if o.CheckRepo {
				if editURL, err = checkRepo(ctx, cfg, o); err != nil {
					errs = multierror.Append(errs, err)
				}
			}
			printPages(cmd, cfg, pages, o.Git, editURL)
			return errs.ErrorOrNil()
		},
	}
	configureSidebarFlags(command, vip)
	return command
}

func annotate(ctx context.Context, contentPath string, pages []*content.Page) error {
	history, err := git.NewHistory(contentPath)
	if err != nil {
		return err
	}
	return content.Annotate(ctx, pages, history)
}

// checkRepo verifies the site repository and returns a function building
// edit links to content files
func checkRepo(ctx context.Context, cfg *site.SiteConfig, o *options) (func(string) string, error) {
	repo, err := repository.ParseRepo(cfg.Theme.Repo)
	if err != nil {
		return nil, err
	}
	cachePath := ""
	if len(o.CacheDir) > 0 {
		cachePath = filepath.Join(o.CacheDir, "diskv", repo.Host)
	}
	registry := prometheus.NewRegistry()
	metrics.RegisterClientMetrics(registry)
	client, err := repository.NewGitHubClient(repo, repository.NewHTTPClient(ctx, o.GitHubToken, cachePath))
	if err != nil {
		return nil, err
	}
	branch, err := repository.NewChecker(client).Check(ctx, repo)
	if err != nil {
		return nil, err
	}
	klog.Infof("Repository: %s (%s)", repo.WebURL(), branch)
	if sent, err := metrics.ClientRequests(registry); err == nil {
		klog.V(2).Infof("%s: %v", metrics.ClientRequestsTotal, sent)
	}
	return func(file string) string {
		return repo.EditURL(branch, o.DocsDir, file)
	}, nil
}

func printPages(cmd *cobra.Command, cfg *site.SiteConfig, pages []*content.Page, lastUpdated bool, editURL func(string) string) {
	label := cfg.Theme.LastUpdated
	if len(label) == 0 {
		label = defaultLastUpdatedLabel
	}
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	header := table.Row{"Path", "Title", "Title Source", "File"}
	if lastUpdated {
		header = append(header, label)
	}
	if editURL != nil {
		header = append(header, "Edit")
	}
	t.AppendHeader(header)
	for _, page := range pages {
		row := table.Row{page.Path, page.Title, string(page.TitleSource), page.File}
		if lastUpdated {
			updated := "-"
			if !page.LastUpdated.IsZero() {
				updated = page.LastUpdated.UTC().Format(git.DateFormat)
			}
			row = append(row, updated)
		}
		if editURL != nil {
			row = append(row, editURL(page.File))
		}
		t.AppendRow(row)
	}
	t.Render()
}
