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
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/go-kivik/fluent/chttp"
)

// toJSON converts a string, []byte, json.RawMessage, or an arbitrary type into
// JSON. Strings and byte slices must already hold valid JSON.
func toJSON(i interface{}) (json.RawMessage, error) {
	var data []byte
	switch t := i.(type) {
	case string:
		data = []byte(t)
	case []byte:
		data = t
	case json.RawMessage:
		data = t
	default:
		encoded, err := json.Marshal(i)
		if err != nil {
			return nil, chttp.StatusError(http.StatusBadRequest, err)
		}
		return encoded, nil
	}
	if err := fastjson.ValidateBytes(data); err != nil {
		return nil, chttp.StatusError(http.StatusBadRequest, err)
	}
	return data, nil
}

// normalizeDocs turns a single document or a slice or array of documents
// into a batch. Raw JSON ([]byte, json.RawMessage, string) is a single
// document.
func normalizeDocs(docs interface{}) []interface{} {
	switch t := docs.(type) {
	case []byte, json.RawMessage, string:
		return []interface{}{docs}
	case []interface{}:
		return t
	}
	v := reflect.ValueOf(docs)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return []interface{}{docs}
	}
	batch := make([]interface{}, v.Len())
	for i := range batch {
		batch[i] = v.Index(i).Interface()
	}
	return batch
}

// keyValue returns the value of field in doc, for use as a document ID.
func keyValue(doc json.RawMessage, field string) (string, error) {
	v, err := fastjson.ParseBytes(doc)
	if err != nil {
		return "", err
	}
	if v.Type() != fastjson.TypeObject {
		return "", errors.Errorf("document is a JSON %s, not an object", v.Type())
	}
	key := v.Get(field)
	if key == nil {
		return "", errors.Errorf("key field %q missing", field)
	}
	switch key.Type() {
	case fastjson.TypeString:
		return string(key.GetStringBytes()), nil
	case fastjson.TypeNumber:
		return key.String(), nil
	}
	return "", errors.Errorf("key field %q must be a string or number, not %s", field, key.Type())
}

// latestRev extracts the current revision from a document fetched with
// revs_info.
func latestRev(doc json.RawMessage) (string, error) {
	v, err := fastjson.ParseBytes(doc)
	if err != nil {
		return "", chttp.StatusError(http.StatusBadGateway, errors.Wrap(err, "fluent: invalid document"))
	}
	if rev := v.GetStringBytes("_rev"); len(rev) > 0 {
		return string(rev), nil
	}
	if rev := v.GetStringBytes("_revs_info", "0", "rev"); len(rev) > 0 {
		return string(rev), nil
	}
	return "", chttp.StatusError(http.StatusBadGateway, errors.New("fluent: no revision in document"))
}
