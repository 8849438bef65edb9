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
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type customTransport func(*http.Request) (*http.Response, error)

var _ http.RoundTripper = customTransport(nil)

func (t customTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t(req)
}

func newCustomTransport(fn func(*http.Request) (*http.Response, error)) *HTTPTransport {
	t, err := NewHTTPTransport("http://example.com/")
	if err != nil {
		panic(err)
	}
	t.Client.Client.Transport = customTransport(fn)
	return t
}

func newTestTransport(resp *http.Response, err error) *HTTPTransport {
	return newCustomTransport(func(req *http.Request) (*http.Response, error) {
		if req.Body != nil {
			defer req.Body.Close() // nolint: errcheck
			if _, e := io.ReadAll(req.Body); e != nil {
				return nil, e
			}
		}
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

// newTestCouch returns a Couch over t, logging to a discarded test logger.
func newTestCouch(t Transport, opts ...Option) (*Couch, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	c, err := New("", append([]Option{WithTransport(t), WithLogger(log)}, opts...)...)
	if err != nil {
		panic(err)
	}
	return c, hook
}
