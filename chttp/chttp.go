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

// Package chttp provides a minimal HTTP driver for CouchDB.
package chttp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const typeJSON = "application/json"

// Client represents a client connection. It embeds an *http.Client
type Client struct {
	*http.Client

	// UserAgents is joined to form the User-Agent header of every request.
	UserAgents []string

	// Trace, if set, receives hooks for every request that does not carry
	// its own trace in the request context.
	Trace *ClientTrace

	rawDSN string
	dsn    *url.URL
}

// New returns a connection to a remote CouchDB server. The DSN is the base
// URL of the server; a missing scheme defaults to http.
func New(dsn string) (*Client, error) {
	dsnURL, err := parseDSN(dsn)
	if err != nil {
		return nil, err
	}
	return &Client{
		Client: &http.Client{},
		rawDSN: dsn,
		dsn:    dsnURL,
	}, nil
}

func parseDSN(dsn string) (*url.URL, error) {
	if dsn == "" {
		return nil, StatusError(http.StatusBadRequest, errors.New("chttp: no URL specified"))
	}
	if !strings.HasPrefix(dsn, "http://") && !strings.HasPrefix(dsn, "https://") {
		dsn = "http://" + dsn
	}
	dsnURL, err := url.Parse(dsn)
	if err != nil {
		return nil, StatusError(http.StatusBadRequest, err)
	}
	if dsnURL.Path == "" {
		dsnURL.Path = "/"
	}
	return dsnURL, nil
}

// DSN returns the unparsed DSN used to connect.
func (c *Client) DSN() string {
	return c.rawDSN
}

// fullPath joins path to the path component of the DSN.
func (c *Client) fullPath(path string) string {
	return strings.TrimSuffix(c.dsn.Path, "/") + "/" + strings.TrimPrefix(path, "/")
}

// NewRequest returns a new *http.Request to the CouchDB server, and the
// specified path. The host, schema, etc, of the specified path are ignored.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	fullPath := c.fullPath(path)
	reqPath, err := url.Parse(fullPath)
	if err != nil {
		return nil, StatusError(http.StatusBadRequest, err)
	}
	u := *c.dsn // Make a copy
	u.Path = reqPath.Path
	u.RawPath = reqPath.RawPath
	u.RawQuery = reqPath.RawQuery
	req, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		return nil, StatusError(http.StatusBadRequest, err)
	}
	fixPath(req, fullPath)
	return req.WithContext(ctx), nil
}

// DoReq does an HTTP request. An error is returned only if there was an
// error processing the request. In particular, an error status code, such as
// 400 or 500, does _not_ cause an error to be returned.
func (c *Client) DoReq(ctx context.Context, method, path string, opts *Options) (*http.Response, error) {
	if method == "" {
		return nil, errors.New("chttp: method required")
	}
	var body io.Reader
	if opts != nil {
		body = opts.Body
	}
	req, err := c.NewRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	setHeaders(req, opts)
	setQuery(req, opts)
	if len(c.UserAgents) > 0 {
		req.Header.Set("User-Agent", strings.Join(c.UserAgents, " "))
	}

	trace := c.trace(ctx)
	if trace != nil {
		trace.httpRequest(req)
	}
	start := time.Now()
	resp, err := c.Do(req)
	if trace != nil {
		trace.httpResponse(req, resp, err, time.Since(start))
	}
	return resp, err
}

// DoError is the same as DoReq(), followed by checking the response for error
// status codes. The response body is closed.
func (c *Client) DoError(ctx context.Context, method, path string, opts *Options) (*http.Response, error) {
	resp, err := c.DoReq(ctx, method, path, opts)
	if err != nil {
		return resp, err
	}
	if resp.Body != nil {
		defer CloseBody(resp.Body)
	}
	return resp, ResponseError(resp)
}

// DoJSON combines DoReq() and, ResponseError(), and (*Response).DecodeJSON(), and
// closes the response body.
func (c *Client) DoJSON(ctx context.Context, method, path string, opts *Options, i interface{}) error {
	resp, err := c.DoReq(ctx, method, path, opts)
	if err != nil {
		return err
	}
	if resp.Body != nil {
		defer CloseBody(resp.Body)
	}
	if err = ResponseError(resp); err != nil {
		return err
	}
	if err = json.NewDecoder(resp.Body).Decode(i); err != nil {
		return StatusError(http.StatusBadGateway, errors.Wrap(err, "chttp: invalid response body"))
	}
	return nil
}

// DoBytes performs the request and returns the complete response body, which
// must come with a non-error status code.
func (c *Client) DoBytes(ctx context.Context, method, path string, opts *Options) ([]byte, error) {
	resp, err := c.DoReq(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}
	if resp.Body != nil {
		defer CloseBody(resp.Body)
	}
	if err = ResponseError(resp); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, StatusError(http.StatusBadGateway, err)
	}
	return buf.Bytes(), nil
}

// CloseBody drains and closes a response body.
func CloseBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

// fixPath sets the request's URL.RawPath to work with escaped characters in
// paths.
func fixPath(req *http.Request, path string) {
	// Remove any query parameters
	parts := strings.SplitN(path, "?", 2)
	req.URL.RawPath = "/" + strings.TrimPrefix(parts[0], "/")
}

func setHeaders(req *http.Request, opts *Options) {
	accept := typeJSON
	contentType := typeJSON
	if opts != nil {
		if opts.Accept != "" {
			accept = opts.Accept
		}
		if opts.ContentType != "" {
			contentType = opts.ContentType
		}
		if opts.FullCommit {
			req.Header.Add("X-Couch-Full-Commit", "true")
		}
		for key, values := range opts.Header {
			for _, value := range values {
				req.Header.Add(key, value)
			}
		}
	}
	req.Header.Add("Accept", accept)
	req.Header.Add("Content-Type", contentType)
}

func setQuery(req *http.Request, opts *Options) {
	if opts == nil || len(opts.Query) == 0 {
		return
	}
	if req.URL.RawQuery == "" {
		req.URL.RawQuery = opts.Query.Encode()
		return
	}
	req.URL.RawQuery = strings.Join([]string{req.URL.RawQuery, opts.Query.Encode()}, "&")
}

// EncodeBody JSON encodes i into a request body. []byte, json.RawMessage and
// string values are taken to be JSON already, and are sent unaltered.
func EncodeBody(i interface{}) (io.Reader, error) {
	switch t := i.(type) {
	case []byte:
		return bytes.NewReader(t), nil
	case json.RawMessage:
		return bytes.NewReader(t), nil
	case string:
		return bytes.NewReader([]byte(t)), nil
	}
	body, err := json.Marshal(i)
	if err != nil {
		return nil, StatusError(http.StatusBadRequest, err)
	}
	return bytes.NewReader(body), nil
}
