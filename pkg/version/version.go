// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package version

// Version of the sitecfg binary, set at build time with
// -ldflags "-X github.com/perjor/sitecfg/pkg/version.Version=<version>"
var Version = "binary was not built properly"
