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
	"encoding/json"
	"net/http"

	kivik "github.com/go-kivik/kivik/v4"
	_ "github.com/go-kivik/kivik/v4/couchdb" // The CouchDB driver
	"github.com/pkg/errors"

	"github.com/go-kivik/fluent/chttp"
)

// KivikTransport is a Transport backed by a kivik client. Any kivik driver
// will do, but only the CouchDB driver is registered by this package.
type KivikTransport struct {
	client *kivik.Client
}

var _ Transport = &KivikTransport{}

// NewKivikTransport wraps an existing kivik client.
func NewKivikTransport(client *kivik.Client) *KivikTransport {
	return &KivikTransport{client: client}
}

// DialKivik connects to the CouchDB server at dsn through kivik's "couch"
// driver.
func DialKivik(dsn string) (*KivikTransport, error) {
	client, err := kivik.New("couch", dsn)
	if err != nil {
		return nil, err
	}
	return NewKivikTransport(client), nil
}

// Close releases the underlying kivik client.
func (t *KivikTransport) Close() error {
	return t.client.Close()
}

// AllDBs returns the list of all databases on the server.
func (t *KivikTransport) AllDBs(ctx context.Context) ([]string, error) {
	return t.client.AllDBs(ctx)
}

// CreateDB creates the named database.
func (t *KivikTransport) CreateDB(ctx context.Context, dbName string) error {
	return t.client.CreateDB(ctx, dbName)
}

// DestroyDB deletes the named database.
func (t *KivikTransport) DestroyDB(ctx context.Context, dbName string) error {
	return t.client.DestroyDB(ctx, dbName)
}

// Get fetches the requested document.
func (t *KivikTransport) Get(ctx context.Context, dbName, docID string, params map[string]interface{}) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := t.client.DB(dbName).Get(ctx, docID, kivik.Params(params)).ScanDoc(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Insert creates or updates a document.
func (t *KivikTransport) Insert(ctx context.Context, dbName, docID string, doc interface{}) (*Result, error) {
	db := t.client.DB(dbName)
	if docID == "" {
		id, rev, err := db.CreateDoc(ctx, doc)
		if err != nil {
			return nil, err
		}
		return &Result{OK: true, ID: id, Rev: rev}, nil
	}
	rev, err := db.Put(ctx, docID, doc)
	if err != nil {
		return nil, err
	}
	return &Result{OK: true, ID: docID, Rev: rev}, nil
}

// Destroy deletes the given revision of a document.
func (t *KivikTransport) Destroy(ctx context.Context, dbName, docID, rev string) (*Result, error) {
	newRev, err := t.client.DB(dbName).Delete(ctx, docID, rev)
	if err != nil {
		return nil, err
	}
	return &Result{OK: true, ID: docID, Rev: newRev}, nil
}

// View queries a view.
func (t *KivikTransport) View(ctx context.Context, dbName, ddoc, view string, params map[string]interface{}) (*ViewResult, error) {
	rs := t.client.DB(dbName).Query(ctx, ddoc, view, kivik.Params(params))
	return collectRows(rs, includeDocs(params))
}

// AllDocs returns all of the documents in the database.
func (t *KivikTransport) AllDocs(ctx context.Context, dbName string, params map[string]interface{}) (*ViewResult, error) {
	rs := t.client.DB(dbName).AllDocs(ctx, kivik.Params(params))
	return collectRows(rs, includeDocs(params))
}

// RunList is not supported; kivik exposes no list function API.
func (t *KivikTransport) RunList(context.Context, string, string, string, string, map[string]interface{}) (json.RawMessage, error) {
	return nil, chttp.StatusError(http.StatusNotImplemented, errors.New("fluent: list functions are not supported by the kivik transport"))
}

func includeDocs(params map[string]interface{}) bool {
	include, _ := params["include_docs"].(bool)
	return include
}

func collectRows(rs *kivik.ResultSet, withDocs bool) (*ViewResult, error) {
	defer rs.Close() // nolint: errcheck
	result := &ViewResult{Rows: []Row{}}
	for rs.Next() {
		var row Row
		id, err := rs.ID()
		if err != nil {
			return nil, err
		}
		row.ID = id
		if err := rs.ScanKey(&row.Key); err != nil {
			return nil, err
		}
		if err := rs.ScanValue(&row.Value); err != nil {
			return nil, err
		}
		if withDocs {
			if err := rs.ScanDoc(&row.Doc); err != nil {
				return nil, err
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, err
	}
	meta, err := rs.Metadata()
	if err != nil {
		return nil, err
	}
	result.TotalRows = meta.TotalRows
	result.Offset = meta.Offset
	return result, nil
}
