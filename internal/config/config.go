// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// Package config loads the settings of the fluent command.
package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding settings, as
// in FLUENT_URL.
const EnvPrefix = "FLUENT"

// Config holds the command's settings.
type Config struct {
	URL      string        `mapstructure:"url"`
	Prefix   string        `mapstructure:"prefix"`
	Driver   string        `mapstructure:"driver"`
	LogLevel string        `mapstructure:"log_level"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// flagKeys maps command line flags to the settings they override.
var flagKeys = map[string]string{
	"url":    "url",
	"prefix": "prefix",
	"driver": "driver",
}

// Load reads settings, in increasing priority, from defaults, the config
// file at path (if any), FLUENT_* environment variables, and flags.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "failed to bind flag --%s", name)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverHTTP, DriverKivik:
	default:
		return errors.Errorf("invalid driver: %q (valid options: %s, %s)", c.Driver, DriverHTTP, DriverKivik)
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return errors.Wrap(err, "invalid url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("invalid url %q: scheme must be http or https", c.URL)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	if c.Timeout < 0 {
		return errors.Errorf("timeout must be non-negative, got %s", c.Timeout)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
