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

/*
Package fluent is a small, fluent access layer for CouchDB.

# General Usage

Create a Couch once, then chain calls off of it. Optional parameters are
collected by a builder, and the terminal call (Into, From or To) performs the
requests:

	couch, err := fluent.New("http://localhost:5984/", fluent.WithPrefix("dev_"))
	if err != nil {
	    panic(err)
	}
	results, err := couch.Insert(people).WithKey("name").Into(ctx, "people")
	doc, err := couch.Get("jeff").From(ctx, "people")
	rows, err := couch.GetView("people", "byAge").WithParams(map[string]interface{}{
	    "key": 42,
	}).From(ctx, "people")

# Database Names

Every operation except CheckDBExists passes the logical database name through
the configured prefix. CheckDBExists compares the names it is given against
the server's listing exactly as supplied.

# Batches

Insert fans out one request per document. The batch succeeds only if every
insert succeeds; the first failure is returned at once, and inserts still in
flight are neither cancelled nor reported.

# Deleting Documents

DeleteDoc first fetches the document with revs_info to learn its current
revision, then deletes exactly that revision.

# Transports

New talks to CouchDB over HTTP. A kivik client may be used instead through
WithTransport(NewKivikTransport(client)) or DialKivik; list functions
(ViewWithList) are only available over HTTP.

# Options

Params passed to WithParams become URL query parameters. Values of the
following types are converted to their string representation:

  - bool
  - string
  - []string
  - int, uint, uint8, uint16, uint32, uint64, int8, int16, int32, int64
  - float32, float64

The key, keys, startkey, start_key, endkey and end_key parameters are JSON
encoded, as CouchDB expects. Passing any other type returns an error.
*/
package fluent
