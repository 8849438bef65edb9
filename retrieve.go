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

// GetOp is a pending document fetch.
type GetOp struct {
	c  *Couch
	id string
}

// Get starts fetching the document with the given ID.
func (c *Couch) Get(id string) *GetOp {
	return &GetOp{c: c, id: id}
}

// From fetches the document from the named database.
func (op *GetOp) From(ctx context.Context, name string) (json.RawMessage, error) {
	if err := op.c.ready(); err != nil {
		return nil, err
	}
	return op.c.transport.Get(ctx, op.c.resolver.Resolve(name), op.id, nil)
}

// ListOp is a pending _all_docs query.
type ListOp struct {
	c      *Couch
	params map[string]interface{}
}

// GetList starts a query of the database's built-in document listing.
func (c *Couch) GetList() *ListOp {
	return &ListOp{c: c}
}

// WithParams sets the query parameters sent with the listing request.
func (op *ListOp) WithParams(params map[string]interface{}) *ListOp {
	op.params = params
	return op
}

// From runs the query against the named database.
func (op *ListOp) From(ctx context.Context, name string) (*ViewResult, error) {
	if err := op.c.ready(); err != nil {
		return nil, err
	}
	return op.c.transport.AllDocs(ctx, op.c.resolver.Resolve(name), op.params)
}

// ViewOp is a pending view query.
type ViewOp struct {
	c            *Couch
	design, view string
	params       map[string]interface{}
}

// GetView starts a query of view in the design document design.
func (c *Couch) GetView(design, view string) *ViewOp {
	return &ViewOp{c: c, design: design, view: view}
}

// WithParams sets the query parameters sent with the view request.
func (op *ViewOp) WithParams(params map[string]interface{}) *ViewOp {
	op.params = params
	return op
}

// From runs the query against the named database.
func (op *ViewOp) From(ctx context.Context, name string) (*ViewResult, error) {
	if err := op.c.ready(); err != nil {
		return nil, err
	}
	return op.c.transport.View(ctx, op.c.resolver.Resolve(name), op.design, op.view, op.params)
}

// ListFuncOp is a pending list function call.
type ListFuncOp struct {
	c                  *Couch
	design, view, list string
	params             map[string]interface{}
}

// ViewWithList starts a call of list function list, from design document
// design, over view.
func (c *Couch) ViewWithList(design, view, list string) *ListFuncOp {
	return &ListFuncOp{c: c, design: design, view: view, list: list}
}

// WithParams sets the query parameters sent with the request.
func (op *ListFuncOp) WithParams(params map[string]interface{}) *ListFuncOp {
	op.params = params
	return op
}

// From runs the list function in the named database. The body is whatever
// the list function produced.
func (op *ListFuncOp) From(ctx context.Context, name string) (json.RawMessage, error) {
	if err := op.c.ready(); err != nil {
		return nil, err
	}
	return op.c.transport.RunList(ctx, op.c.resolver.Resolve(name), op.design, op.list, op.view, op.params)
}
