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
	"net/http"

	"github.com/pkg/errors"

	"github.com/go-kivik/fluent/chttp"
)

// ErrNotInitialized is returned by every operation invoked on a Couch that
// was not obtained from New. It carries status 500.
var ErrNotInitialized = chttp.StatusError(http.StatusInternalServerError, errors.New("fluent: client not initialized, call fluent.New first"))

func missingArg(arg string) error {
	return chttp.StatusError(http.StatusBadRequest, errors.Errorf("fluent: %s required", arg))
}
