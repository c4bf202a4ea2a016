// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/perjor/sitecfg/cmd/app"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.NewCommand(ctx).Execute(); err != nil {
		klog.Errorf("%v", err)
		cancel()
		os.Exit(1)
	}
}
