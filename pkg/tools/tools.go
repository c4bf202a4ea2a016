// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

//go:build tools
// +build tools

// Package tools pins the code generators used by go:generate, so that
// the fakes in pkg/content/contentfakes are regenerated with the same version.
package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
