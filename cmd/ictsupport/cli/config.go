// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultAPIBaseURL is the backend used when neither the config file
// nor the environment names one. Matches the development server.
const DefaultAPIBaseURL = "http://localhost:5000/api"

// Config holds the client's persistent configuration, read from
// ~/.config/ictsupport/config.yaml.
type Config struct {
	// APIBaseURL is the base URL of the ticketing backend, up to and
	// including the /api prefix.
	APIBaseURL string `yaml:"api_base_url"`
}

// ConfigFilePath returns the path to the config file. Checks the
// ICT_SUPPORT_CONFIG environment variable first, then falls back to
// ~/.config/ictsupport/config.yaml.
func ConfigFilePath() string {
	if envPath := os.Getenv("ICT_SUPPORT_CONFIG"); envPath != "" {
		return envPath
	}
	return filepath.Join(configDirectory(), "ictsupport", "config.yaml")
}

// LoadConfig reads the config file and applies environment and
// built-in defaults. Resolution order for the API base URL:
//
//  1. ICT_SUPPORT_API_URL environment variable
//  2. api_base_url in the config file
//  3. DefaultAPIBaseURL
//
// A missing config file is not an error; a malformed one is.
func LoadConfig() (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(ConfigFilePath())
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", ConfigFilePath(), err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", ConfigFilePath(), err)
	}

	if envURL := os.Getenv("ICT_SUPPORT_API_URL"); envURL != "" {
		config.APIBaseURL = envURL
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = DefaultAPIBaseURL
	}
	config.APIBaseURL = strings.TrimRight(config.APIBaseURL, "/")

	return config, nil
}
