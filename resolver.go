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

// Resolver maps logical database names to the names sent to the server.
type Resolver struct {
	Prefix string
}

// Resolve returns Prefix + name.
func (r Resolver) Resolve(name string) string {
	if r.Prefix == "" {
		return name
	}
	return r.Prefix + name
}
