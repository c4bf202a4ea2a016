// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
)

var repoSlug = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// ValidationError reports a site configuration field that breaks
// the rules of the site engine
type ValidationError struct {
	// Field is the wire path of the offending field, e.g. themeConfig.nav[1].link
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid site configuration field %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is or wraps a *ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ValidationErrors returns all *ValidationError values aggregated in err
func ValidationErrors(err error) []*ValidationError {
	var (
		vErrs []*ValidationError
		mErr  *multierror.Error
	)
	if errors.As(err, &mErr) {
		for _, e := range mErr.Errors {
			vErrs = append(vErrs, ValidationErrors(e)...)
		}
		return vErrs
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		vErrs = append(vErrs, vErr)
	}
	return vErrs
}

// Validate checks cfg and returns every violation found aggregated in
// a multierror, or nil when the configuration is valid
func Validate(cfg *SiteConfig) error {
	if cfg == nil {
		return &ValidationError{Field: "<root>", Reason: "site configuration is nil"}
	}
	var errs *multierror.Error
	if isBlank(cfg.Title) {
		errs = multierror.Append(errs, &ValidationError{Field: "title", Reason: "must not be empty"})
	}
	if isBlank(cfg.Description) {
		errs = multierror.Append(errs, &ValidationError{Field: "description", Reason: "must not be empty"})
	}
	errs = validateTheme(&cfg.Theme, errs)
	return errs.ErrorOrNil()
}

func validateTheme(theme *ThemeConfig, errs *multierror.Error) *multierror.Error {
	if len(theme.LastUpdated) > 0 && isBlank(theme.LastUpdated) {
		errs = multierror.Append(errs, &ValidationError{Field: "themeConfig.lastUpdated", Reason: "must not be blank"})
	}
	if len(theme.Repo) > 0 {
		if err := validateRepo(theme.Repo); err != nil {
			errs = multierror.Append(errs, &ValidationError{Field: "themeConfig.repo", Reason: err.Error()})
		}
	}
	for i, nav := range theme.Nav {
		field := fmt.Sprintf("themeConfig.nav[%d]", i)
		if isBlank(nav.Text) {
			errs = multierror.Append(errs, &ValidationError{Field: field + ".text", Reason: "must not be empty"})
		}
		if err := validateLink(nav.Link); err != nil {
			errs = multierror.Append(errs, &ValidationError{Field: field + ".link", Reason: err.Error()})
		}
	}
	for i, entry := range theme.Sidebar {
		field := fmt.Sprintf("themeConfig.sidebar[%d]", i)
		if err := validateContentPath(entry.Path()); err != nil {
			errs = multierror.Append(errs, &ValidationError{Field: field + ".path", Reason: err.Error()})
		}
		if entry.HasTitle() && isBlank(entry.Title()) {
			errs = multierror.Append(errs, &ValidationError{Field: field + ".title", Reason: "must not be empty"})
		}
	}
	return errs
}

func validateRepo(repo string) error {
	if repoSlug.MatchString(repo) {
		return nil
	}
	u, err := url.Parse(repo)
	if err != nil {
		return fmt.Errorf("unparsable repository %q: %v", repo, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || len(u.Host) == 0 {
		return fmt.Errorf("repository %q must be <owner>/<name> or an absolute http(s) URL", repo)
	}
	return nil
}

// validateLink accepts absolute http(s) URLs, mailto and tel links and
// root-relative paths
func validateLink(link string) error {
	if isBlank(link) {
		return fmt.Errorf("must not be empty")
	}
	if strings.IndexFunc(link, unicode.IsSpace) >= 0 {
		return fmt.Errorf("link %q contains whitespace", link)
	}
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("unparsable link %q: %v", link, err)
	}
	if u.IsAbs() {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			if len(u.Host) == 0 {
				return fmt.Errorf("link %q has no host", link)
			}
		case "mailto", "tel":
			if len(u.Opaque) == 0 {
				return fmt.Errorf("link %q has no %s address", link, u.Scheme)
			}
		default:
			return fmt.Errorf("link %q has unsupported scheme %s", link, u.Scheme)
		}
		return nil
	}
	if !strings.HasPrefix(link, "/") || strings.HasPrefix(link, "//") {
		return fmt.Errorf("link %q must be an absolute URL or start with /", link)
	}
	return nil
}

func validateContentPath(p string) error {
	if len(p) == 0 {
		return fmt.Errorf("must not be empty")
	}
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path %q must start with /", p)
	}
	if strings.IndexFunc(p, unicode.IsSpace) >= 0 {
		return fmt.Errorf("path %q contains whitespace", p)
	}
	if strings.ContainsAny(p, "?#") {
		return fmt.Errorf("path %q must not contain a query or a fragment", p)
	}
	for _, segment := range strings.Split(p, "/") {
		if segment == ".." || segment == "." {
			return fmt.Errorf("path %q must not contain relative segments", p)
		}
	}
	return nil
}

func isBlank(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}
