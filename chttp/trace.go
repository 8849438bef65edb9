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
	"context"
	"net/http"
	"time"
)

type clientTraceContextKey struct{}

// ContextClientTrace returns the ClientTrace associated with the
// provided context. If none, it returns nil.
func ContextClientTrace(ctx context.Context) *ClientTrace {
	trace, _ := ctx.Value(clientTraceContextKey{}).(*ClientTrace)
	return trace
}

// ClientTrace is a set of hooks to run at various stages of an outgoing
// HTTP request. Any particular hook may be nil. Functions may be
// called concurrently from different goroutines.
type ClientTrace struct {
	// HTTPRequest is called with the outbound request, just before it is
	// sent. The request must not be modified.
	HTTPRequest func(*http.Request)

	// HTTPResponse is called once the round trip completes. resp is nil when
	// err is not.
	HTTPResponse func(req *http.Request, resp *http.Response, err error, elapsed time.Duration)
}

// WithClientTrace returns a new context based on the provided parent
// ctx. HTTP client requests made with the returned context will use
// the provided trace hooks instead of the client's own.
func WithClientTrace(ctx context.Context, trace *ClientTrace) context.Context {
	if trace == nil {
		panic("nil trace")
	}
	return context.WithValue(ctx, clientTraceContextKey{}, trace)
}

func (c *Client) trace(ctx context.Context) *ClientTrace {
	if trace := ContextClientTrace(ctx); trace != nil {
		return trace
	}
	return c.Trace
}

func (t *ClientTrace) httpRequest(req *http.Request) {
	if t.HTTPRequest == nil {
		return
	}
	t.HTTPRequest(req)
}

func (t *ClientTrace) httpResponse(req *http.Request, resp *http.Response, err error, elapsed time.Duration) {
	if t.HTTPResponse == nil {
		return
	}
	t.HTTPResponse(req, resp, err, elapsed)
}
