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

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/go-kivik/fluent/chttp"
)

// InsertOp is a pending batch insert.
type InsertOp struct {
	c    *Couch
	docs []interface{}
	key  string
}

// Insert starts a batch insert. docs may be a single document or a slice of
// documents.
func (c *Couch) Insert(docs interface{}) *InsertOp {
	return &InsertOp{
		c:    c,
		docs: normalizeDocs(docs),
	}
}

// WithKey names the document field whose value is used as the ID of each
// document. Without it, the server assigns IDs.
func (op *InsertOp) WithKey(field string) *InsertOp {
	op.key = field
	return op
}

type insertItem struct {
	id  string
	doc json.RawMessage
}

// prepare encodes every document and extracts its key, so that a bad
// document fails the batch before anything is sent.
func (op *InsertOp) prepare() ([]insertItem, error) {
	items := make([]insertItem, len(op.docs))
	for i, doc := range op.docs {
		raw, err := toJSON(doc)
		if err != nil {
			return nil, err
		}
		items[i].doc = raw
		if op.key == "" {
			continue
		}
		if items[i].id, err = keyValue(raw, op.key); err != nil {
			return nil, chttp.StatusError(http.StatusBadRequest, errors.Wrapf(err, "fluent: document %d", i))
		}
	}
	return items, nil
}

// Into inserts every document into the named database. The results are in
// the order of the input documents. If any insert fails, that error is
// returned as soon as it occurs; the other inserts are left to complete on
// their own and their results are discarded.
func (op *InsertOp) Into(ctx context.Context, name string) ([]*Result, error) {
	if err := op.c.ready(); err != nil {
		return nil, err
	}
	items, err := op.prepare()
	if err != nil {
		return nil, err
	}
	dbName := op.c.resolver.Resolve(name)
	log := op.c.dbLog(dbName)

	results := make([]*Result, len(items))
	failed := make(chan error, 1)
	var g errgroup.Group
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			result, err := op.c.transport.Insert(ctx, dbName, item.id, item.doc)
			if err != nil {
				log.WithField("index", i).WithError(err).Debug("insert failed")
				select {
				case failed <- err:
				default:
				}
				return err
			}
			results[i] = result
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()
	select {
	case err := <-failed:
		return nil, err
	case err := <-done:
		if err != nil {
			return nil, err
		}
		return results, nil
	}
}
