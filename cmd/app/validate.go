// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCmd(vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the site configuration",
		Long: `Loads the site configuration and checks it against the rules of the site engine.
Every offending field is reported and the command exits with non-zero code.`,
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
			fmt.Fprintf(cmd.OutOrStdout(), "site configuration %q is valid: %d navigation entries, %d sidebar entries\n",
				cfg.Title, len(cfg.Theme.Nav), len(cfg.Theme.Sidebar))
			return nil
		},
	}
}
