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

	"github.com/sirupsen/logrus"
)

type deleteState int

const (
	awaitingRevision deleteState = iota
	awaitingDestroyConfirmation
	deleteDone
)

func (s deleteState) String() string {
	switch s {
	case awaitingRevision:
		return "awaiting revision"
	case awaitingDestroyConfirmation:
		return "awaiting destroy confirmation"
	case deleteDone:
		return "done"
	}
	return fmt.Sprintf("deleteState(%d)", int(s))
}

// deletion removes one document: it looks up the current revision, then
// destroys exactly that revision.
type deletion struct {
	t      Transport
	log    logrus.FieldLogger
	dbName string
	id     string

	state  deleteState
	rev    string
	result *Result
}

func (d *deletion) step(ctx context.Context) error {
	switch d.state {
	case awaitingRevision:
		doc, err := d.t.Get(ctx, d.dbName, d.id, map[string]interface{}{paramRevsInfo: true})
		if err != nil {
			return err
		}
		if d.rev, err = latestRev(doc); err != nil {
			return err
		}
		d.state = awaitingDestroyConfirmation
	case awaitingDestroyConfirmation:
		result, err := d.t.Destroy(ctx, d.dbName, d.id, d.rev)
		if err != nil {
			return err
		}
		d.result = result
		d.state = deleteDone
	}
	return nil
}

func (d *deletion) run(ctx context.Context) (*Result, error) {
	for d.state != deleteDone {
		from := d.state
		if err := d.step(ctx); err != nil {
			d.log.WithField("state", from).WithError(err).Debug("delete failed")
			return nil, err
		}
	}
	return d.result, nil
}

// DeleteOp is a pending document deletion.
type DeleteOp struct {
	c  *Couch
	id string
}

// DeleteDoc starts deleting the document with the given ID.
func (c *Couch) DeleteDoc(id string) *DeleteOp {
	return &DeleteOp{c: c, id: id}
}

// From deletes the document from the named database. The current revision
// is looked up first; the deletion carries that revision.
func (op *DeleteOp) From(ctx context.Context, name string) (*Result, error) {
	if err := op.c.ready(); err != nil {
		return nil, err
	}
	if op.id == "" {
		return nil, missingArg("docID")
	}
	dbName := op.c.resolver.Resolve(name)
	d := &deletion{
		t:      op.c.transport,
		log:    op.c.dbLog(dbName).WithField("doc", op.id),
		dbName: dbName,
		id:     op.id,
	}
	return d.run(ctx)
}
