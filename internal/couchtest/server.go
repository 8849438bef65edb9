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

// Package couchtest provides an in-memory server speaking the subset of the
// CouchDB HTTP API used by this module, for end-to-end tests.
package couchtest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzip"
)

// Route names, as counted by Hits.
const (
	RouteAllDBs       = "AllDBs"
	RouteHeadDB       = "HeadDB"
	RoutePutDB        = "PutDB"
	RouteDeleteDB     = "DeleteDB"
	RoutePostDoc      = "PostDoc"
	RouteAllDocs      = "AllDocs"
	RouteView         = "View"
	RouteList         = "List"
	RouteGetDesign    = "GetDesign"
	RoutePutDesign    = "PutDesign"
	RouteDeleteDesign = "DeleteDesign"
	RouteGetDoc       = "GetDoc"
	RoutePutDoc       = "PutDoc"
	RouteDeleteDoc    = "DeleteDoc"
)

// Row is one row of a registered view.
type Row struct {
	ID    string      `json:"id,omitempty"`
	Key   interface{} `json:"key"`
	Value interface{} `json:"value"`
}

// ListFunc renders the rows of a view as the body of a list function
// response.
type ListFunc func(rows []Row, query url.Values) (contentType string, body []byte, err error)

type viewKey struct {
	db, design, name string
}

// Server is an in-memory CouchDB. It is safe for concurrent use.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	dbs       map[string]*database
	views     map[viewKey][]Row
	lists     map[viewKey]ListFunc
	hits      map[string]int
	lastQuery url.Values
}

// New starts a Server. Callers must Close it.
func New() *Server {
	s := &Server{
		dbs:   make(map[string]*database),
		views: make(map[viewKey][]Row),
		lists: make(map[viewKey]ListFunc),
		hits:  make(map[string]int),
	}
	s.Server = httptest.NewServer(s.Router())
	return s
}

type route struct {
	name    string
	method  string
	pattern string
	handler http.HandlerFunc
}

// Router returns the request router, for use without a listener.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().UseEncodedPath()
	routes := []route{
		{RouteAllDBs, http.MethodGet, "/_all_dbs", s.allDBs},
		{RouteHeadDB, http.MethodHead, "/{db}", s.headDB},
		{RoutePutDB, http.MethodPut, "/{db}", s.putDB},
		{RouteDeleteDB, http.MethodDelete, "/{db}", s.deleteDB},
		{RoutePostDoc, http.MethodPost, "/{db}", s.postDoc},
		{RouteAllDocs, http.MethodGet, "/{db}/_all_docs", s.allDocs},
		{RouteView, http.MethodGet, "/{db}/_design/{design}/_view/{view}", s.view},
		{RouteList, http.MethodGet, "/{db}/_design/{design}/_list/{list}/{view}", s.list},
		{RouteGetDesign, http.MethodGet, "/{db}/_design/{docid}", s.getDoc},
		{RoutePutDesign, http.MethodPut, "/{db}/_design/{docid}", s.putDoc},
		{RouteDeleteDesign, http.MethodDelete, "/{db}/_design/{docid}", s.deleteDoc},
		{RouteGetDoc, http.MethodGet, "/{db}/{docid}", s.getDoc},
		{RoutePutDoc, http.MethodPut, "/{db}/{docid}", s.putDoc},
		{RouteDeleteDoc, http.MethodDelete, "/{db}/{docid}", s.deleteDoc},
	}
	for _, rt := range routes {
		router.
			Methods(rt.method).
			Path(rt.pattern).
			Name(rt.name).
			Handler(rt.handler)
	}
	router.Use(s.count, decompress)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "missing")
	})
	return router
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rt := mux.CurrentRoute(r); rt != nil {
			s.mu.Lock()
			s.hits[rt.GetName()]++
			s.lastQuery = r.URL.Query()
			s.mu.Unlock()
		}
		next.ServeHTTP(w, r)
	})
}

// decompress unpacks gzip request bodies, which CouchDB accepts and the kivik
// driver sends by default.
func decompress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.EqualFold(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}
		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "Invalid gzip request body")
			return
		}
		defer zr.Close() // nolint: errcheck
		r.Body = zr
		r.Header.Del("Content-Encoding")
		next.ServeHTTP(w, r)
	})
}

// Hits returns the number of requests served by the named route.
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

// LastQuery returns the query string of the most recent request.
func (s *Server) LastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

// AddDB creates empty databases.
func (s *Server) AddDB(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		if _, ok := s.dbs[name]; !ok {
			s.dbs[name] = newDatabase()
		}
	}
}

// DBNames returns the sorted names of all databases.
func (s *Server) DBNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dbNames()
}

func (s *Server) dbNames() []string {
	names := make([]string, 0, len(s.dbs))
	for name := range s.dbs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetView registers the rows returned by a view. The design document need
// not exist.
func (s *Server) SetView(db, design, view string, rows []Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[viewKey{db, design, view}] = rows
}

// SetList registers a list function.
func (s *Server) SetList(db, design, list string, fn ListFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[viewKey{db, design, list}] = fn
}

// Doc returns the current body of a document, or nil if it is missing or
// deleted.
func (s *Server) Doc(db, docID string) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dbs[db]
	if !ok {
		return nil
	}
	doc, ok := d.docs[docID]
	if !ok || doc.deleted {
		return nil
	}
	return doc.render(false)
}
