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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5984/", cfg.URL)
	assert.Equal(t, "", cfg.Prefix)
	assert.Equal(t, DriverHTTP, cfg.Driver)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fluent.toml")
	content := `
url = "http://couch.example.com:5984/"
prefix = "test_"
driver = "kivik"
log_level = "debug"
timeout = "5s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://couch.example.com:5984/", cfg.URL)
	assert.Equal(t, "test_", cfg.Prefix)
	assert.Equal(t, DriverKivik, cfg.Driver)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FLUENT_PREFIX", "env_")
	t.Setenv("FLUENT_URL", "https://env.example.com/")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "env_", cfg.Prefix)
	assert.Equal(t, "https://env.example.com/", cfg.URL)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("FLUENT_PREFIX", "env_")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("prefix", "", "")
	flags.String("url", "", "")
	require.NoError(t, flags.Parse([]string{"--prefix", "flag_"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "flag_", cfg.Prefix)
	assert.Equal(t, "http://localhost:5984/", cfg.URL)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			URL:      "http://localhost:5984/",
			Driver:   DriverHTTP,
			LogLevel: "info",
			Timeout:  time.Second,
		}
	}
	tests := []struct {
		name   string
		modify func(*Config)
		err    string
	}{
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name:   "unknown driver",
			modify: func(c *Config) { c.Driver = "pouch" },
			err:    `invalid driver: "pouch" (valid options: http, kivik)`,
		},
		{
			name:   "bad scheme",
			modify: func(c *Config) { c.URL = "ftp://localhost/" },
			err:    `invalid url "ftp://localhost/": scheme must be http or https`,
		},
		{
			name:   "unparsable url",
			modify: func(c *Config) { c.URL = "http://[::1" },
			err:    "invalid url",
		},
		{
			name:   "bad log level",
			modify: func(c *Config) { c.LogLevel = "loud" },
			err:    "invalid log_level",
		},
		{
			name:   "negative timeout",
			modify: func(c *Config) { c.Timeout = -time.Second },
			err:    "timeout must be non-negative, got -1s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.err == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}
