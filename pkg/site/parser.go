// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML site configuration. Unknown fields and
// additional documents are rejected.
func Parse(b []byte) (*SiteConfig, error) {
	cfg := &SiteConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("site configuration is empty")
		}
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("site configuration must be a single YAML document, found another at line %d", extra.Line)
	}
	normalize(cfg)
	return cfg, nil
}

// Serialize encodes a site configuration as YAML
func Serialize(cfg *SiteConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseJSON decodes a JSON site configuration. Unknown fields and
// data after the configuration object are rejected.
func ParseJSON(b []byte) (*SiteConfig, error) {
	cfg := &SiteConfig{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("site configuration is empty")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the site configuration at offset %d", dec.InputOffset())
	}
	normalize(cfg)
	return cfg, nil
}

// normalize drops empty lists, the wire forms omit them
func normalize(cfg *SiteConfig) {
	if len(cfg.Theme.Nav) == 0 {
		cfg.Theme.Nav = nil
	}
	if len(cfg.Theme.Sidebar) == 0 {
		cfg.Theme.Sidebar = nil
	}
}

// SerializeJSON encodes a site configuration as indented JSON
func SerializeJSON(cfg *SiteConfig) ([]byte, error) {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// LoadFile reads, parses and validates a site configuration file. Files
// with .json extension are decoded as JSON, everything else as YAML.
func LoadFile(path string) (*SiteConfig, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for site configuration %s: %w", path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the site configuration path %s is directory, instead of file", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg *SiteConfig
	if strings.EqualFold(filepath.Ext(path), ".json") {
		cfg, err = ParseJSON(b)
	} else {
		cfg, err = Parse(b)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse site configuration %s: %w", path, err)
	}
	if err = Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
