// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileName is the name of the configuration file in SitecfgHomeDir
	DefaultConfigFileName = "config"
	// SitecfgHomeDir is the sitecfg directory in the user home
	SitecfgHomeDir = ".sitecfg"
	// SitecfgConfigEnv overrides the configuration file path
	SitecfgConfigEnv = "SITECFG_CONFIG"
)

// Config holds the user defaults of the sitecfg commands. Unset
// properties leave the flag defaults in place.
type Config struct {
	Site             *string `yaml:"site,omitempty"`
	Content          *string `yaml:"content,omitempty"`
	DocsDir          *string `yaml:"docsDir,omitempty"`
	CacheDir         *string `yaml:"cacheDir,omitempty"`
	GitHubOAuthToken *string `yaml:"githubOAuthToken,omitempty"`
}

// Loader loads the sitecfg configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader reads the file named by SitecfgConfigEnv,
// or $HOME/.sitecfg/config when the variable is not set
type DefaultConfigurationLoader struct{}

// Load implements Loader.Load. A missing default configuration file
// yields an empty configuration.
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(SitecfgConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", SitecfgConfigEnv)
		}
		return load(configFilePath)
	}

	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}
	configFilePath := filepath.Join(userHomeDir, SitecfgHomeDir, DefaultConfigFileName)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return load(configFilePath)
}

func load(configFilePath string) (*Config, error) {
	stat, err := os.Stat(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %v", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %v", configFilePath, err)
	}
	return config, nil
}
