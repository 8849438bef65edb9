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

import "context"

// View is a map function and an optional reduce function.
type View struct {
	Map    string `json:"map"`
	Reduce string `json:"reduce,omitempty"`
}

// DesignDoc is the body of a design document.
type DesignDoc struct {
	ID       string          `json:"_id"`
	Rev      string          `json:"_rev,omitempty"`
	Language string          `json:"language"`
	Views    map[string]View `json:"views"`
}

// NewDesignDoc builds the design document name holding views.
func NewDesignDoc(name string, views map[string]View) *DesignDoc {
	ddoc := &DesignDoc{
		ID:       DesignPrefix + name,
		Language: DesignLanguage,
		Views:    make(map[string]View, len(views)),
	}
	for viewName, view := range views {
		ddoc.Views[viewName] = view
	}
	return ddoc
}

// DesignOp is a pending design document registration.
type DesignOp struct {
	c    *Couch
	name string
	ddoc *DesignDoc
}

// AddDesign starts registering the design document name with the given
// views.
func (c *Couch) AddDesign(name string, views map[string]View) *DesignOp {
	return &DesignOp{
		c:    c,
		name: name,
		ddoc: NewDesignDoc(name, views),
	}
}

// WithRev sets the revision being replaced, for updating an existing design
// document.
func (op *DesignOp) WithRev(rev string) *DesignOp {
	op.ddoc.Rev = rev
	return op
}

// To stores the design document in the named database.
func (op *DesignOp) To(ctx context.Context, name string) (*Result, error) {
	if err := op.c.ready(); err != nil {
		return nil, err
	}
	if op.name == "" {
		return nil, missingArg("design name")
	}
	dbName := op.c.resolver.Resolve(name)
	op.c.dbLog(dbName).WithField("design", op.name).Info("registering design document")
	return op.c.transport.Insert(ctx, dbName, op.ddoc.ID, op.ddoc)
}
