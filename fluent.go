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

	"github.com/sirupsen/logrus"
)

// Couch is the entry point to every operation. A Couch is safe for
// concurrent use; operations share nothing but the transport.
type Couch struct {
	transport Transport
	resolver  Resolver
	log       logrus.FieldLogger
}

type settings struct {
	prefix     string
	log        logrus.FieldLogger
	transport  Transport
	httpClient *http.Client
}

// Option configures a Couch.
type Option func(*settings)

// WithPrefix sets the prefix prepended to every logical database name.
func WithPrefix(prefix string) Option {
	return func(s *settings) {
		s.prefix = prefix
	}
}

// WithLogger sets the logger used for diagnostic notices. It defaults to
// logrus' standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithTransport replaces the default HTTP transport. The URL passed to New
// is ignored when a transport is given.
func WithTransport(t Transport) Option {
	return func(s *settings) {
		s.transport = t
	}
}

// WithHTTPClient sets the *http.Client used by the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.httpClient = client
	}
}

// New returns a Couch talking to the server at url, or DefaultURL when url
// is empty.
func New(url string, opts ...Option) (*Couch, error) {
	s := &settings{
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	transport := s.transport
	if transport == nil {
		if url == "" {
			url = DefaultURL
		}
		ht, err := NewHTTPTransport(url)
		if err != nil {
			return nil, err
		}
		if s.httpClient != nil {
			ht.Client.Client = s.httpClient
		}
		ht.Trace = logTrace(s.log)
		transport = ht
	}
	return &Couch{
		transport: transport,
		resolver:  Resolver{Prefix: s.prefix},
		log:       s.log,
	}, nil
}

// ready reports ErrNotInitialized for a nil or zero Couch.
func (c *Couch) ready() error {
	if c == nil || c.transport == nil {
		return ErrNotInitialized
	}
	return nil
}

// Resolve returns the physical name of a logical database name.
func (c *Couch) Resolve(name string) string {
	if c == nil {
		return name
	}
	return c.resolver.Resolve(name)
}
