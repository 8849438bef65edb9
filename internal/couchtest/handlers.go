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
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

const designPrefix = "_design/"

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, name, reason string) {
	writeJSON(w, status, map[string]string{"error": name, "reason": reason})
}

func writeDocError(w http.ResponseWriter, err error) {
	switch err {
	case errConflict:
		writeError(w, http.StatusConflict, "conflict", err.Error())
	case errMissing, errDeleted:
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "unknown_error", err.Error())
	}
}

func noDB(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not_found", "Database does not exist.")
}

// vars returns the unescaped route variables.
func vars(r *http.Request) map[string]string {
	out := make(map[string]string)
	for k, v := range mux.Vars(r) {
		if unescaped, err := url.PathUnescape(v); err == nil {
			v = unescaped
		}
		out[k] = v
	}
	return out
}

// docID returns the document ID addressed by the request, restoring the
// _design/ prefix stripped by the design routes.
func docID(r *http.Request) string {
	id := vars(r)["docid"]
	if strings.Contains(r.URL.EscapedPath(), "/"+designPrefix) {
		return designPrefix + id
	}
	return id
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*database, bool) {
	db, ok := s.dbs[vars(r)["db"]]
	if !ok {
		noDB(w)
	}
	return db, ok
}

func (s *Server) allDBs(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	names := s.dbNames()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) headDB(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	_, ok := s.dbs[vars(r)["db"]]
	s.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) putDB(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := vars(r)["db"]
	if _, ok := s.dbs[name]; ok {
		writeError(w, http.StatusPreconditionFailed, "file_exists", "The database could not be created, the file already exists.")
		return
	}
	s.dbs[name] = newDatabase()
	writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (s *Server) deleteDB(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := vars(r)["db"]
	if _, ok := s.dbs[name]; !ok {
		noDB(w)
		return
	}
	delete(s.dbs, name)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	var body map[string]interface{}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil || body == nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Request body must be a JSON object")
		return nil, false
	}
	return body, true
}

func writeSaved(w http.ResponseWriter, id, rev string) {
	w.Header().Set("ETag", strconv.Quote(rev))
	writeJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "id": id, "rev": rev})
}

func (s *Server) postDoc(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	db, ok := s.lookup(w, r)
	if !ok {
		return
	}
	id, _ := body["_id"].(string)
	if id == "" {
		id = newDocID()
	}
	rev, _ := body["_rev"].(string)
	newRev, err := db.put(id, rev, body)
	if err != nil {
		writeDocError(w, err)
		return
	}
	writeSaved(w, id, newRev)
}

func (s *Server) putDoc(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	db, ok := s.lookup(w, r)
	if !ok {
		return
	}
	rev, _ := body["_rev"].(string)
	if rev == "" {
		rev = r.URL.Query().Get("rev")
	}
	id := docID(r)
	newRev, err := db.put(id, rev, body)
	if err != nil {
		writeDocError(w, err)
		return
	}
	writeSaved(w, id, newRev)
}

func boolParam(q url.Values, name string) bool {
	v, _ := strconv.ParseBool(q.Get(name))
	return v
}

func (s *Server) getDoc(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, ok := s.lookup(w, r)
	if !ok {
		return
	}
	doc, err := db.get(docID(r))
	if err != nil {
		writeDocError(w, err)
		return
	}
	w.Header().Set("ETag", strconv.Quote(doc.rev()))
	writeJSON(w, http.StatusOK, doc.render(boolParam(r.URL.Query(), "revs_info")))
}

func (s *Server) deleteDoc(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, ok := s.lookup(w, r)
	if !ok {
		return
	}
	id := docID(r)
	rev, err := db.remove(id, r.URL.Query().Get("rev"))
	if err != nil {
		writeDocError(w, err)
		return
	}
	w.Header().Set("ETag", strconv.Quote(rev))
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "id": id, "rev": rev})
}

type rowsResponse struct {
	TotalRows int           `json:"total_rows"`
	Offset    int           `json:"offset"`
	Rows      []interface{} `json:"rows"`
}

// page applies skip and limit.
func page(rows []interface{}, q url.Values) ([]interface{}, int) {
	offset, _ := strconv.Atoi(q.Get("skip"))
	if offset > len(rows) {
		offset = len(rows)
	}
	rows = rows[offset:]
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, offset
}

func (s *Server) allDocs(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, ok := s.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	includeDocs := boolParam(q, "include_docs")
	ids := db.ids()
	rows := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		doc := db.docs[id]
		row := map[string]interface{}{
			"id":    id,
			"key":   id,
			"value": map[string]string{"rev": doc.rev()},
		}
		if includeDocs {
			row["doc"] = doc.render(false)
		}
		rows = append(rows, row)
	}
	total := len(rows)
	rows, offset := page(rows, q)
	writeJSON(w, http.StatusOK, rowsResponse{TotalRows: total, Offset: offset, Rows: rows})
}

func (s *Server) viewRows(w http.ResponseWriter, r *http.Request) ([]Row, bool) {
	if _, ok := s.lookup(w, r); !ok {
		return nil, false
	}
	v := vars(r)
	rows, ok := s.views[viewKey{v["db"], v["design"], v["view"]}]
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "missing_named_view")
	}
	return rows, ok
}

func (s *Server) view(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	viewRows, ok := s.viewRows(w, r)
	if !ok {
		return
	}
	rows := make([]interface{}, len(viewRows))
	for i, row := range viewRows {
		rows[i] = row
	}
	total := len(rows)
	rows, offset := page(rows, r.URL.Query())
	writeJSON(w, http.StatusOK, rowsResponse{TotalRows: total, Offset: offset, Rows: rows})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.viewRows(w, r)
	if !ok {
		return
	}
	v := vars(r)
	fn, ok := s.lists[viewKey{v["db"], v["design"], v["list"]}]
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "missing list function "+v["list"])
		return
	}
	contentType, body, err := fn(rows, r.URL.Query())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render_error", err.Error())
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
