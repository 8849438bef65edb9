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

// Create creates the database.
func (c *Couch) Create(ctx context.Context, name string) error {
	if err := c.ready(); err != nil {
		return err
	}
	dbName := c.resolver.Resolve(name)
	if err := c.transport.CreateDB(ctx, dbName); err != nil {
		return err
	}
	c.dbLog(dbName).Info("database created")
	return nil
}

// Destroy deletes the database and everything in it.
func (c *Couch) Destroy(ctx context.Context, name string) error {
	if err := c.ready(); err != nil {
		return err
	}
	dbName := c.resolver.Resolve(name)
	c.dbLog(dbName).Info("destroying database")
	return c.transport.DestroyDB(ctx, dbName)
}
