// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package vuepress

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/perjor/sitecfg/pkg/site"
)

const (
	// ConfigDir is the directory of the engine configuration inside the docs root
	ConfigDir = ".vuepress"
	// ConfigFile is the engine configuration file name
	ConfigFile = "config.js"
)

var modulePrefixes = [][]byte{
	[]byte("module.exports"),
	[]byte("export default"),
}

// Render writes cfg as the CommonJS module the site engine reads
// at build time
func Render(cfg *site.SiteConfig) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("site configuration is nil")
	}
	var buf bytes.Buffer
	buf.WriteString("module.exports = ")
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseModule reads back an engine configuration module. The exported
// value must be an object literal; comments, unquoted keys, single
// quoted strings and trailing commas are accepted.
func ParseModule(src []byte) (*site.SiteConfig, error) {
	body, err := exportedValue(src)
	if err != nil {
		return nil, err
	}
	js, err := toJSON(body)
	if err != nil {
		return nil, err
	}
	cfg, err := site.ParseJSON(js)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ConfigFile, err)
	}
	return cfg, nil
}

func exportedValue(src []byte) ([]byte, error) {
	s := &scanner{src: src}
	s.skipSpaceAndComments()
	rest := src[s.pos:]
	for _, prefix := range modulePrefixes {
		if !bytes.HasPrefix(rest, prefix) {
			continue
		}
		rest = bytes.TrimSpace(rest[len(prefix):])
		if bytes.Equal(prefix, modulePrefixes[0]) {
			if len(rest) == 0 || rest[0] != '=' {
				return nil, fmt.Errorf("expected = after %s", prefix)
			}
			rest = rest[1:]
		}
		return bytes.TrimSpace(rest), nil
	}
	return nil, fmt.Errorf("%s must export the configuration with module.exports or export default", ConfigFile)
}
