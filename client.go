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
	"context"
	"fmt"
	"net/http"

	"github.com/go-kivik/fluent/chttp"
)

// HTTPTransport is the default Transport. It speaks to CouchDB directly over
// HTTP.
type HTTPTransport struct {
	*chttp.Client
}

var _ Transport = &HTTPTransport{}

// NewHTTPTransport returns a transport for the server at dsn.
func NewHTTPTransport(dsn string) (*HTTPTransport, error) {
	chttpClient, err := chttp.New(dsn)
	if err != nil {
		return nil, err
	}
	chttpClient.UserAgents = []string{
		fmt.Sprintf("fluent/%s", Version),
	}
	return &HTTPTransport{Client: chttpClient}, nil
}

// AllDBs returns the list of all databases on the server.
func (t *HTTPTransport) AllDBs(ctx context.Context) ([]string, error) {
	var allDBs []string
	err := t.DoJSON(ctx, http.MethodGet, "/_all_dbs", nil, &allDBs)
	return allDBs, err
}

// CreateDB creates the named database.
func (t *HTTPTransport) CreateDB(ctx context.Context, dbName string) error {
	if dbName == "" {
		return missingArg("dbName")
	}
	_, err := t.DoError(ctx, http.MethodPut, chttp.EncodeDBName(dbName), nil)
	return err
}

// DestroyDB deletes the named database.
func (t *HTTPTransport) DestroyDB(ctx context.Context, dbName string) error {
	if dbName == "" {
		return missingArg("dbName")
	}
	_, err := t.DoError(ctx, http.MethodDelete, chttp.EncodeDBName(dbName), nil)
	return err
}
