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
)

// Transport is the set of primitive CouchDB calls the façade is built from.
// Database names passed to a Transport are physical names; no prefixing
// happens at this level. Errors are returned to the caller of the façade
// unaltered.
type Transport interface {
	// AllDBs returns the names of all databases on the server.
	AllDBs(ctx context.Context) ([]string, error)
	// CreateDB creates a database.
	CreateDB(ctx context.Context, dbName string) error
	// DestroyDB deletes a database and all of its documents.
	DestroyDB(ctx context.Context, dbName string) error
	// Get fetches a document. params are sent as query parameters.
	Get(ctx context.Context, dbName, docID string, params map[string]interface{}) (json.RawMessage, error)
	// Insert stores doc. An empty docID lets the server assign one.
	Insert(ctx context.Context, dbName, docID string, doc interface{}) (*Result, error)
	// Destroy deletes revision rev of a document.
	Destroy(ctx context.Context, dbName, docID, rev string) (*Result, error)
	// View queries a view of a design document.
	View(ctx context.Context, dbName, ddoc, view string, params map[string]interface{}) (*ViewResult, error)
	// AllDocs queries the database's built-in document listing.
	AllDocs(ctx context.Context, dbName string, params map[string]interface{}) (*ViewResult, error)
	// RunList runs a list function of a design document over a view.
	RunList(ctx context.Context, dbName, ddoc, list, view string, params map[string]interface{}) (json.RawMessage, error)
}

// Result is the server's reply to a document write.
type Result struct {
	OK  bool   `json:"ok"`
	ID  string `json:"id"`
	Rev string `json:"rev"`
}

// ViewResult is the body of a view or _all_docs query.
type ViewResult struct {
	TotalRows int64 `json:"total_rows"`
	Offset    int64 `json:"offset"`
	Rows      []Row `json:"rows"`
}

// Row is a single row of a ViewResult. Doc is only populated when the query
// asked for include_docs.
type Row struct {
	ID    string          `json:"id,omitempty"`
	Key   json.RawMessage `json:"key"`
	Value json.RawMessage `json:"value"`
	Doc   json.RawMessage `json:"doc,omitempty"`
}
