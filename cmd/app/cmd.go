// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/perjor/sitecfg/cmd/configuration"
	"github.com/perjor/sitecfg/cmd/gendocs"
	"github.com/perjor/sitecfg/pkg/site"
	"github.com/perjor/sitecfg/pkg/vuepress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// NewCommand creates a new root command and propagates
// the context to the Run callbacks of its subcommands
func NewCommand(ctx context.Context) *cobra.Command {
	return newCommand(ctx, new(configuration.DefaultConfigurationLoader))
}

func newCommand(ctx context.Context, loader configuration.Loader) *cobra.Command {
	vip := viper.New()
	vip.SetEnvPrefix("SITECFG")
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "sitecfg",
		Short: "Validate and render the documentation site configuration",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := loader.Load()
			if err != nil {
				return err
			}
			applyConfiguration(vip, config)
			return nil
		},
		SilenceErrors: true,
	}
	configurePersistentFlags(cmd, vip)

	cmd.AddCommand(newValidateCmd(vip))
	cmd.AddCommand(newRenderCmd(vip))
	cmd.AddCommand(newSidebarCmd(ctx, vip))
	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	AddFlags(cmd)
	return cmd
}

// applyConfiguration makes the configuration file values defaults, so
// flags and environment variables still override them
func applyConfiguration(vip *viper.Viper, config *configuration.Config) {
	if config == nil {
		return
	}
	defaults := map[string]*string{
		"site":               config.Site,
		"content":            config.Content,
		"docs-dir":           config.DocsDir,
		"cache-dir":          config.CacheDir,
		"github-oauth-token": config.GitHubOAuthToken,
	}
	for key, value := range defaults {
		if value != nil {
			vip.SetDefault(key, *value)
		}
	}
}

func getOptions(vip *viper.Viper) (*options, error) {
	o := &options{}
	if err := vip.Unmarshal(o); err != nil {
		return nil, err
	}
	return o, nil
}

// loadSite loads the site configuration from path, or the built-in one
// when path is empty. The result is always validated.
func loadSite(path string) (*site.SiteConfig, error) {
	if len(path) == 0 {
		klog.V(2).Info("using built-in site configuration")
		return site.Load()
	}
	klog.V(2).Infof("Site configuration: %s", path)
	if filepath.Ext(path) != ".js" {
		return site.LoadFile(path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := vuepress.ParseModule(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := site.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
