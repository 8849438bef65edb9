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
	"time"

	"github.com/spf13/viper"
)

// Drivers select the transport used to reach the server.
const (
	DriverHTTP  = "http"
	DriverKivik = "kivik"
)

const (
	defaultURL     = "http://localhost:5984/"
	defaultTimeout = 30 * time.Second
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("url", defaultURL)
	v.SetDefault("prefix", "")
	v.SetDefault("driver", DriverHTTP)
	v.SetDefault("log_level", "info")
	v.SetDefault("timeout", defaultTimeout)
}
