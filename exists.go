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
	"sync"

	"golang.org/x/sync/errgroup"
)

// dbListing fetches the server's database list at most once, however many
// goroutines ask for it.
type dbListing struct {
	t     Transport
	once  sync.Once
	names map[string]struct{}
	err   error
}

func (l *dbListing) load(ctx context.Context) {
	dbs, err := l.t.AllDBs(ctx)
	if err != nil {
		l.err = err
		return
	}
	l.names = make(map[string]struct{}, len(dbs))
	for _, db := range dbs {
		l.names[db] = struct{}{}
	}
}

func (l *dbListing) has(ctx context.Context, name string) (bool, error) {
	l.once.Do(func() { l.load(ctx) })
	if l.err != nil {
		return false, l.err
	}
	_, ok := l.names[name]
	return ok, nil
}

// CheckDBExists reports, for each name in order, whether a database with
// exactly that name exists. The prefix is not applied. The server listing is
// fetched once per call and never reused by later calls.
func (c *Couch) CheckDBExists(ctx context.Context, names ...string) ([]bool, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	exists := make([]bool, len(names))
	if len(names) == 0 {
		return exists, nil
	}
	listing := &dbListing{t: c.transport}
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			ok, err := listing.has(ctx, name)
			if err != nil {
				return err
			}
			exists[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return exists, nil
}
