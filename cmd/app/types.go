// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

// options encapsulates the parameters of the sitecfg commands, as
// decoded from flags, environment and configuration file by viper
type options struct {
	SitePath        string `mapstructure:"site"`
	CacheDir        string `mapstructure:"cache-dir"`
	Format          string `mapstructure:"format"`
	DestinationPath string `mapstructure:"destination"`
	DryRun          bool   `mapstructure:"dry-run"`
	ContentPath     string `mapstructure:"content"`
	Git             bool   `mapstructure:"git"`
	CheckRepo       bool   `mapstructure:"check-repo"`
	DocsDir         string `mapstructure:"docs-dir"`
	GitHubToken     string `mapstructure:"github-oauth-token"`
}
