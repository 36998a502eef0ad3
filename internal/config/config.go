// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config provides configuration for the whoknows binary.
// Precedence: CLI flags > config file > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the config file looked up in the user's home
// directory when no explicit path is given.
const DefaultFileName = ".whoknows.toml"

// Config holds file-sourced defaults for the CLI.
type Config struct {
	// Source is the path to the directory CSV file.
	Source string `toml:"source"`

	// Department is the default department filter. Empty means all
	// departments.
	Department string `toml:"department"`

	// AI configures the optional re-ranking model.
	AI AIConfig `toml:"ai"`
}

// AIConfig mirrors ai.Config for file-based configuration. The API
// credential is deliberately not a file field; it arrives via flag or
// environment so config files stay shareable.
type AIConfig struct {
	Host  string `toml:"host"`
	Model string `toml:"model"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: "directory.csv",
	}
}

// LoadFile reads a config file from an explicit path. A missing file is
// an error here, unlike LoadDefault.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads the config file from the user's home directory,
// falling back to built-in defaults when the file does not exist.
func LoadDefault() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(home, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}
