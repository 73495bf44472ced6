/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads CLI settings from defaults, ~/.dataquery/config.yaml
// and DATAQUERY_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. DATAQUERY_LOG_LEVEL
const EnvPrefix = "DATAQUERY"

// Global is the effective CLI configuration
type Global struct {
	// LogLevel is one of debug, info, warn, error, off
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Output is the default result format: text, json, yaml or table
	Output string `mapstructure:"output" yaml:"output"`
	// Mode is the dialect used when --mode is not given
	Mode             string `mapstructure:"mode" yaml:"mode"`
	CompositeGroupBy bool   `mapstructure:"composite_group_by" yaml:"composite_group_by"`
	// Locale is a BCP 47 tag used to order text in ORDER BY
	Locale   string `mapstructure:"locale" yaml:"locale"`
	PageSize int    `mapstructure:"page_size" yaml:"page_size"`
	// Delimiter is the CSV field separator
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// Defaults returns the built-in configuration
func Defaults() *Global {
	return &Global{
		LogLevel:  "warn",
		Output:    "text",
		Mode:      "natural",
		Locale:    "en",
		PageSize:  10,
		Delimiter: ",",
	}
}

// DefaultPath returns ~/.dataquery/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".dataquery", "config.yaml"), nil
}

// Load reads the configuration.
// Precedence: env > config file > defaults. A missing config file is not an error.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("output", d.Output)
	v.SetDefault("mode", d.Mode)
	v.SetDefault("composite_group_by", d.CompositeGroupBy)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("page_size", d.PageSize)
	v.SetDefault("delimiter", d.Delimiter)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Dir(path))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the values that have a closed set of choices
func (c *Global) Validate() error {
	switch c.Output {
	case "text", "json", "yaml", "table":
	default:
		return fmt.Errorf("invalid output %q (use text, json, yaml or table)", c.Output)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("invalid page_size %d", c.PageSize)
	}
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
	return nil
}

// Save writes c as YAML to cfgFile, or to DefaultPath when cfgFile is
// empty, creating the directory if necessary.
func Save(c *Global, cfgFile string) (string, error) {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
