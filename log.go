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

package fluent

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/go-kivik/fluent/chttp"
)

// slowRequest is the duration past which a request is logged as a warning.
const slowRequest = 5 * time.Second

func logTrace(log logrus.FieldLogger) *chttp.ClientTrace {
	return &chttp.ClientTrace{
		HTTPRequest: func(req *http.Request) {
			log.Debugf("request: %s %s", req.Method, req.URL.EscapedPath())
		},
		HTTPResponse: func(req *http.Request, resp *http.Response, err error, elapsed time.Duration) {
			entry := log.WithField("elapsed", elapsed)
			if err != nil {
				entry.WithError(err).Errorf("request failed: %s %s", req.Method, req.URL.EscapedPath())
				return
			}
			if elapsed >= slowRequest {
				entry.Warnf("slow request on %s %s", req.Method, req.URL.EscapedPath())
			}
			entry.Debugf("response: %d", resp.StatusCode)
		},
	}
}

func (c *Couch) dbLog(dbName string) logrus.FieldLogger {
	return c.log.WithField("db", dbName)
}
