// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"context"
	"time"

	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// History knows when content files were last changed
//
//counterfeiter:generate . History
type History interface {
	// LastModified returns the time of the last change of file, or
	// zero time when file has no recorded change
	LastModified(ctx context.Context, file string) (time.Time, error)
}

// Annotate sets LastUpdated of every page from h
func Annotate(ctx context.Context, pages []*Page, h History) error {
	var errs *multierror.Error
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := h.LastModified(ctx, page.File)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if t.IsZero() {
			klog.Warningf("no history for %s", page.File)
		}
		page.LastUpdated = t
	}
	return errs.ErrorOrNil()
}
