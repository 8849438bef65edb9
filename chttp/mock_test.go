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

package chttp

import (
	"io"
	"net/http"
	"strings"
)

type customTransport func(*http.Request) (*http.Response, error)

var _ http.RoundTripper = customTransport(nil)

func (c customTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return c(req)
}

func newCustomClient(dsn string, fn func(*http.Request) (*http.Response, error)) *Client {
	if dsn == "" {
		dsn = "http://example.com/"
	}
	c, err := New(dsn)
	if err != nil {
		panic(err)
	}
	c.Client.Transport = customTransport(fn)
	return c
}

func newTestClient(resp *http.Response, err error) *Client {
	return newCustomClient("", func(req *http.Request) (*http.Response, error) {
		if resp != nil {
			resp.Request = req
		}
		return resp, err
	})
}

// Body returns a response body holding str.
func Body(str string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(str))
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       Body(body),
	}
}
