// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/perjor/sitecfg/pkg/site"
	"github.com/perjor/sitecfg/pkg/vuepress"
	"github.com/perjor/sitecfg/pkg/writers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func newRenderCmd(vip *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:   "render",
		Short: "Render the site configuration for the site engine",
		Args:  cobra.NoArgs,
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
			name, path, content, err := render(cfg, o.Format)
			if err != nil {
				return err
			}
			if o.DryRun {
				w := writers.NewDryRunWriter(cmd.OutOrStdout(), o.DestinationPath)
				if err = w.Write(name, path, content); err != nil {
					return err
				}
				return w.Flush()
			}
			w := &writers.FSWriter{Root: o.DestinationPath}
			if err = w.Write(name, path, content); err != nil {
				return err
			}
			klog.Infof("Output dir: %s", o.DestinationPath)
			return nil
		},
	}
	configureRenderFlags(command, vip)
	return command
}

// render encodes cfg in format and returns the file name and directory
// the result belongs to
func render(cfg *site.SiteConfig, format string) (string, string, []byte, error) {
	var (
		content []byte
		err     error
	)
	switch format {
	case "js":
		content, err = vuepress.Render(cfg)
		return vuepress.ConfigFile, vuepress.ConfigDir, content, err
	case "json":
		content, err = site.SerializeJSON(cfg)
		return "site.json", "", content, err
	case "yaml":
		content, err = site.Serialize(cfg)
		return "site.yaml", "", content, err
	}
	return "", "", nil, fmt.Errorf("unknown format '%s'. Must be one of %v", format, []string{"js", "json", "yaml"})
}
