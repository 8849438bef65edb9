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

package couchtest

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	errConflict = errors.New("Document update conflict.")
	errMissing  = errors.New("missing")
	errDeleted  = errors.New("deleted")
)

type document struct {
	revs    []string
	body    map[string]interface{}
	deleted bool
}

func (d *document) rev() string {
	if len(d.revs) == 0 {
		return ""
	}
	return d.revs[len(d.revs)-1]
}

// render returns the body with _id and _rev, plus _revs_info if requested.
func (d *document) render(revsInfo bool) map[string]interface{} {
	out := make(map[string]interface{}, len(d.body)+3)
	for k, v := range d.body {
		out[k] = v
	}
	out["_rev"] = d.rev()
	if revsInfo {
		info := make([]map[string]string, 0, len(d.revs))
		for i := len(d.revs) - 1; i >= 0; i-- {
			status := "missing"
			if i == len(d.revs)-1 {
				status = "available"
			}
			info = append(info, map[string]string{"rev": d.revs[i], "status": status})
		}
		out["_revs_info"] = info
	}
	return out
}

type database struct {
	docs map[string]*document
}

func newDatabase() *database {
	return &database{docs: make(map[string]*document)}
}

func nextRev(generation int, body map[string]interface{}) string {
	encoded, _ := json.Marshal(body)
	return fmt.Sprintf("%d-%x", generation, md5.Sum(encoded))
}

func newDocID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// put stores body as docID, which must carry the current revision when the
// document exists.
func (db *database) put(docID, rev string, body map[string]interface{}) (string, error) {
	delete(body, "_rev")
	body["_id"] = docID
	doc, ok := db.docs[docID]
	if !ok {
		if rev != "" {
			return "", errConflict
		}
		doc = &document{}
		db.docs[docID] = doc
	} else if !doc.deleted && rev != doc.rev() {
		return "", errConflict
	}
	doc.revs = append(doc.revs, nextRev(len(doc.revs)+1, body))
	doc.body = body
	doc.deleted = false
	return doc.rev(), nil
}

func (db *database) get(docID string) (*document, error) {
	doc, ok := db.docs[docID]
	if !ok {
		return nil, errMissing
	}
	if doc.deleted {
		return nil, errDeleted
	}
	return doc, nil
}

func (db *database) remove(docID, rev string) (string, error) {
	doc, err := db.get(docID)
	if err != nil {
		return "", err
	}
	if rev != doc.rev() {
		return "", errConflict
	}
	tombstone := map[string]interface{}{"_id": docID, "_deleted": true}
	doc.revs = append(doc.revs, nextRev(len(doc.revs)+1, tombstone))
	doc.body = tombstone
	doc.deleted = true
	return doc.rev(), nil
}

// ids returns the sorted IDs of all live documents.
func (db *database) ids() []string {
	ids := make([]string, 0, len(db.docs))
	for id, doc := range db.docs {
		if !doc.deleted {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
