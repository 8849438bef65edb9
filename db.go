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
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-kivik/fluent/chttp"
)

// docPath returns the request path of a resource within a database.
func docPath(dbName, path string) string {
	return chttp.EncodeDBName(dbName) + "/" + strings.TrimPrefix(path, "/")
}

// keyParams are the query parameters CouchDB expects as JSON values.
var keyParams = map[string]bool{
	"key":       true,
	"keys":      true,
	"startkey":  true,
	"start_key": true,
	"endkey":    true,
	"end_key":   true,
}

func optionsToParams(opts ...map[string]interface{}) (url.Values, error) {
	params := url.Values{}
	for _, optsSet := range opts {
		keys := make([]string, 0, len(optsSet))
		for key := range optsSet {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			i := optsSet[key]
			if keyParams[key] {
				v, err := json.Marshal(i)
				if err != nil {
					return nil, chttp.StatusError(http.StatusBadRequest, err)
				}
				params.Add(key, string(v))
				continue
			}
			var values []string
			switch v := i.(type) {
			case string:
				values = []string{v}
			case []string:
				values = v
			case bool:
				values = []string{fmt.Sprintf("%t", v)}
			case int, uint, uint8, uint16, uint32, uint64, int8, int16, int32, int64:
				values = []string{fmt.Sprintf("%d", v)}
			case float32, float64:
				values = []string{fmt.Sprintf("%v", v)}
			default:
				return nil, chttp.StatusError(http.StatusBadRequest, errors.Errorf("fluent: invalid type %T for options", i))
			}
			for _, value := range values {
				params.Add(key, value)
			}
		}
	}
	return params, nil
}

// Get fetches the requested document.
func (t *HTTPTransport) Get(ctx context.Context, dbName, docID string, params map[string]interface{}) (json.RawMessage, error) {
	if dbName == "" {
		return nil, missingArg("dbName")
	}
	if docID == "" {
		return nil, missingArg("docID")
	}
	query, err := optionsToParams(params)
	if err != nil {
		return nil, err
	}
	body, err := t.DoBytes(ctx, http.MethodGet, docPath(dbName, chttp.EncodeDocID(docID)), &chttp.Options{Query: query})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Insert creates or updates a document. Without a docID the document is
// POSTed and the server assigns the ID.
func (t *HTTPTransport) Insert(ctx context.Context, dbName, docID string, doc interface{}) (*Result, error) {
	if dbName == "" {
		return nil, missingArg("dbName")
	}
	body, err := chttp.EncodeBody(doc)
	if err != nil {
		return nil, err
	}
	method, path := http.MethodPost, chttp.EncodeDBName(dbName)
	if docID != "" {
		method, path = http.MethodPut, docPath(dbName, chttp.EncodeDocID(docID))
	}
	result := &Result{}
	if err := t.DoJSON(ctx, method, path, &chttp.Options{Body: body}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Destroy deletes the given revision of a document.
func (t *HTTPTransport) Destroy(ctx context.Context, dbName, docID, rev string) (*Result, error) {
	if dbName == "" {
		return nil, missingArg("dbName")
	}
	if docID == "" {
		return nil, missingArg("docID")
	}
	if rev == "" {
		return nil, missingArg("rev")
	}
	opts := &chttp.Options{
		Query: url.Values{"rev": {rev}},
	}
	result := &Result{}
	if err := t.DoJSON(ctx, http.MethodDelete, docPath(dbName, chttp.EncodeDocID(docID)), opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// rowsQuery performs a query that returns view rows.
func (t *HTTPTransport) rowsQuery(ctx context.Context, dbName, path string, params map[string]interface{}) (*ViewResult, error) {
	if dbName == "" {
		return nil, missingArg("dbName")
	}
	query, err := optionsToParams(params)
	if err != nil {
		return nil, err
	}
	result := &ViewResult{}
	if err := t.DoJSON(ctx, http.MethodGet, docPath(dbName, path), &chttp.Options{Query: query}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AllDocs returns all of the documents in the database.
func (t *HTTPTransport) AllDocs(ctx context.Context, dbName string, params map[string]interface{}) (*ViewResult, error) {
	return t.rowsQuery(ctx, dbName, "_all_docs", params)
}

// View queries a view.
func (t *HTTPTransport) View(ctx context.Context, dbName, ddoc, view string, params map[string]interface{}) (*ViewResult, error) {
	if ddoc == "" {
		return nil, missingArg("ddoc")
	}
	if view == "" {
		return nil, missingArg("view")
	}
	return t.rowsQuery(ctx, dbName, fmt.Sprintf("_design/%s/_view/%s", url.PathEscape(ddoc), url.PathEscape(view)), params)
}

// RunList runs a list function over a view. List functions may produce any
// content type, so the body is returned as-is.
func (t *HTTPTransport) RunList(ctx context.Context, dbName, ddoc, list, view string, params map[string]interface{}) (json.RawMessage, error) {
	if dbName == "" {
		return nil, missingArg("dbName")
	}
	for _, arg := range [][2]string{{"ddoc", ddoc}, {"list", list}, {"view", view}} {
		if arg[1] == "" {
			return nil, missingArg(arg[0])
		}
	}
	query, err := optionsToParams(params)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("_design/%s/_list/%s/%s", url.PathEscape(ddoc), url.PathEscape(list), url.PathEscape(view))
	return t.DoBytes(ctx, http.MethodGet, docPath(dbName, path), &chttp.Options{Query: query, Accept: "*/*"})
}
