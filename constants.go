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

// Version is the current version of this package.
const Version = "0.1.0"

// DefaultURL is the server used when New is given no URL.
const DefaultURL = "http://localhost:5984/"

const (
	// DesignPrefix is the ID prefix reserved for design documents.
	DesignPrefix = "_design/"

	// DesignLanguage is the language of every design document registered
	// through AddDesign.
	DesignLanguage = "javascript"

	// paramRevsInfo asks the server for the revision history of a document.
	paramRevsInfo = "revs_info"
)
