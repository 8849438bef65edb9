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
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"gitlab.com/flimzy/testy"

	"github.com/go-kivik/fluent/chttp"
)

var revsInfo = map[string]interface{}{"revs_info": true}

func TestDeleteDoc(t *testing.T) {
	ctrl := gomock.NewController(t)
	mt := NewMockTransport(ctrl)
	c, _ := newTestCouch(mt, WithPrefix("test_"))

	gomock.InOrder(
		mt.EXPECT().
			Get(gomock.Any(), "test_people", "bob", revsInfo).
			Return(json.RawMessage(`{"_id":"bob","_rev":"2-b","_revs_info":[{"rev":"2-b","status":"available"},{"rev":"1-a","status":"available"}]}`), nil),
		mt.EXPECT().
			Destroy(gomock.Any(), "test_people", "bob", "2-b").
			Return(&Result{OK: true, ID: "bob", Rev: "3-c"}, nil),
	)

	result, err := c.DeleteDoc("bob").From(context.Background(), "people")
	testy.Error(t, "", err)
	expected := &Result{OK: true, ID: "bob", Rev: "3-c"}
	if d := testy.DiffInterface(expected, result); d != nil {
		t.Error(d)
	}
}

func TestDeleteDocRevsInfoFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	mt := NewMockTransport(ctrl)
	c, _ := newTestCouch(mt)

	mt.EXPECT().
		Get(gomock.Any(), "people", "bob", revsInfo).
		Return(json.RawMessage(`{"_id":"bob","_revs_info":[{"rev":"5-e","status":"available"}]}`), nil)
	mt.EXPECT().
		Destroy(gomock.Any(), "people", "bob", "5-e").
		Return(&Result{OK: true, ID: "bob", Rev: "6-f"}, nil)

	_, err := c.DeleteDoc("bob").From(context.Background(), "people")
	testy.Error(t, "", err)
}

func TestDeleteDocGetFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mt := NewMockTransport(ctrl)
	c, hook := newTestCouch(mt)

	missing := &chttp.HTTPError{Code: http.StatusNotFound, ErrorName: "not_found", Reason: "missing"}
	mt.EXPECT().
		Get(gomock.Any(), "people", "bob", revsInfo).
		Return(nil, missing)

	result, err := c.DeleteDoc("bob").From(context.Background(), "people")
	if result != nil {
		t.Errorf("Expected no result, got %v", result)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.DebugLevel {
		t.Fatalf("Expected a debug entry, got %v", entry)
	}
	if state := entry.Data["state"]; state != awaitingRevision {
		t.Errorf("Unexpected state: %v", state)
	}
	testy.StatusError(t, "Not Found: missing", http.StatusNotFound, err)
}

func TestDeleteDocDestroyFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mt := NewMockTransport(ctrl)
	c, hook := newTestCouch(mt)

	conflict := &chttp.HTTPError{Code: http.StatusConflict, ErrorName: "conflict", Reason: "Document update conflict."}
	mt.EXPECT().
		Get(gomock.Any(), "people", "bob", revsInfo).
		Return(json.RawMessage(`{"_id":"bob","_rev":"1-a"}`), nil)
	mt.EXPECT().
		Destroy(gomock.Any(), "people", "bob", "1-a").
		Return(nil, conflict)

	_, err := c.DeleteDoc("bob").From(context.Background(), "people")
	if err != conflict {
		t.Errorf("Expected the conflict error verbatim, got %v", err)
	}
	if state := hook.LastEntry().Data["state"]; state != awaitingDestroyConfirmation {
		t.Errorf("Unexpected state: %v", state)
	}
}

func TestDeleteDocNoRevision(t *testing.T) {
	ctrl := gomock.NewController(t)
	mt := NewMockTransport(ctrl)
	c, _ := newTestCouch(mt)

	mt.EXPECT().
		Get(gomock.Any(), "people", "bob", revsInfo).
		Return(json.RawMessage(`{"_id":"bob"}`), nil)

	_, err := c.DeleteDoc("bob").From(context.Background(), "people")
	testy.StatusError(t, "fluent: no revision in document", http.StatusBadGateway, err)
}

func TestDeleteDocMissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mt := NewMockTransport(ctrl)
	c, _ := newTestCouch(mt)

	_, err := c.DeleteDoc("").From(context.Background(), "people")
	testy.StatusError(t, "fluent: docID required", http.StatusBadRequest, err)
}

func TestDeleteDocNotInitialized(t *testing.T) {
	var c *Couch
	if _, err := c.DeleteDoc("bob").From(context.Background(), "people"); err != ErrNotInitialized {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestDeleteStateString(t *testing.T) {
	tests := map[deleteState]string{
		awaitingRevision:            "awaiting revision",
		awaitingDestroyConfirmation: "awaiting destroy confirmation",
		deleteDone:                  "done",
		deleteState(7):              "deleteState(7)",
	}
	for state, expected := range tests {
		if s := state.String(); s != expected {
			t.Errorf("Unexpected string for %d: %s", int(state), s)
		}
	}
}
