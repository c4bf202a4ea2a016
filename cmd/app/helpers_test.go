// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"testing"

	"github.com/perjor/sitecfg/pkg/site"
)

func validSite(t *testing.T) *site.SiteConfig {
	t.Helper()
	cfg, err := site.Load()
	if err != nil {
		t.Fatalf("loading built-in site configuration failed: %v", err)
	}
	return cfg
}
