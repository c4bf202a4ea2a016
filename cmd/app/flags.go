// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/perjor/sitecfg/cmd/configuration"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configurePersistentFlags(command *cobra.Command, vip *viper.Viper) {
	command.PersistentFlags().StringP("site", "s", "",
		"Site configuration file (.yaml, .json or the engine config.js). Uses the built-in site configuration when not set.")
	_ = vip.BindPFlag("site", command.PersistentFlags().Lookup("site"))

	cacheDir := ""
	userHomeDir, err := os.UserHomeDir()
	if err == nil {
		// default value $HOME/.sitecfg/cache
		cacheDir = filepath.Join(userHomeDir, configuration.SitecfgHomeDir, "cache")
	}
	command.PersistentFlags().String("cache-dir", cacheDir,
		"Cache directory, used for GitHub API responses.")
	_ = vip.BindPFlag("cache-dir", command.PersistentFlags().Lookup("cache-dir"))
}

func configureRenderFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().String("format", "js",
		"Output format, one of js (the engine .vuepress/config.js), json or yaml.")
	_ = vip.BindPFlag("format", command.Flags().Lookup("format"))

	command.Flags().StringP("destination", "d", "docs",
		"Destination path, the root of the documentation content.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().Bool("dry-run", false,
		"Instead of writing files, output the projected file hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))
}

func configureSidebarFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("content", "c", "docs",
		"Path of the documentation content the sidebar points to.")
	_ = vip.BindPFlag("content", command.Flags().Lookup("content"))

	command.Flags().Bool("git", false,
		"Read last updated times of the pages from the git repository of the content.")
	_ = vip.BindPFlag("git", command.Flags().Lookup("git"))

	command.Flags().Bool("check-repo", false,
		"Verify the site repository on GitHub and print page edit links.")
	_ = vip.BindPFlag("check-repo", command.Flags().Lookup("check-repo"))

	command.Flags().String("docs-dir", "docs",
		"Directory of the documentation content inside the site repository, used for edit links.")
	_ = vip.BindPFlag("docs-dir", command.Flags().Lookup("docs-dir"))

	command.Flags().String("github-oauth-token", "",
		"GitHub personal token authorizing read access to the site repository.")
	_ = vip.BindPFlag("github-oauth-token", command.Flags().Lookup("github-oauth-token"))
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}
