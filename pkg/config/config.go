// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the user's preferences for deskmate. Values come
// from, in order of priority, the environment, the configuration file,
// and the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"laptudirm.com/x/deskmate/pkg/layout"
)

// File is the default location of the configuration file.
var File = filepath.Join(xdg.ConfigHome, "deskmate", "config.yaml")

// EnvPrefix prefixes the environment variables which override the file,
// so data-dir is overridden by DESKMATE_DATA_DIR.
const EnvPrefix = "DESKMATE"

type Config struct {
	// DataDir is where the progress of the class is saved. It defaults to
	// the XDG data directory.
	DataDir string `mapstructure:"data-dir"`

	// Students and Rows configure a classroom which has never been set up.
	Students int `mapstructure:"students"`
	Rows     int `mapstructure:"rows"`

	// Optimize enables orienting benches for the best view.
	Optimize bool `mapstructure:"optimize"`

	// Color enables coloured terminal output.
	Color bool `mapstructure:"color"`
}

// Classroom returns the classroom configuration for a fresh class.
func (config Config) Classroom() layout.Config {
	return layout.Config{
		Students:      config.Students,
		Rows:          config.Rows,
		BenchCapacity: layout.BenchCapacity,
	}
}

func (config Config) Validate() error {
	if err := config.Classroom().Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// Load reads the configuration from the given file. An empty path means
// the default file, which need not exist.
func Load(path string) (Config, error) {
	if path == "" {
		return load(File, true)
	}

	return load(path, false)
}

func load(path string, optional bool) (Config, error) {
	v := viper.New()

	v.SetDefault("data-dir", "")
	v.SetDefault("students", layout.DefaultConfig.Students)
	v.SetDefault("rows", layout.DefaultConfig.Rows)
	v.SetDefault("optimize", true)
	v.SetDefault("color", true)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read configuration: %w", err)
		}

		logrus.WithField("file", path).Debug("no configuration file, using defaults")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("parse configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
