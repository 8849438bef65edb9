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

package cli

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/go-kivik/fluent"
)

// parseDocs returns the documents given as arguments. Array arguments are
// flattened one level.
func parseDocs(args []string) ([]interface{}, error) {
	var p fastjson.Parser
	docs := make([]interface{}, 0, len(args))
	for i, arg := range args {
		v, err := p.Parse(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "document %d", i+1)
		}
		if v.Type() != fastjson.TypeArray {
			docs = append(docs, json.RawMessage(arg))
			continue
		}
		for _, elem := range v.GetArray() {
			docs = append(docs, json.RawMessage(elem.MarshalTo(nil)))
		}
	}
	return docs, nil
}

// parseParams turns key=value pairs into query parameters. A value that is
// valid JSON is decoded, so limit=10 is a number and key="a" a string;
// anything else is taken as a plain string.
func parseParams(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("invalid parameter %q, expected key=value", pair)
		}
		var decoded interface{}
		if err := json.Unmarshal([]byte(value), &decoded); err != nil {
			params[key] = value
			continue
		}
		params[key] = decoded
	}
	return params, nil
}

// parseViews pairs name=function map and reduce definitions into views.
func parseViews(maps, reduces []string) (map[string]fluent.View, error) {
	if len(maps) == 0 {
		return nil, errors.New("at least one --map is required")
	}
	views := make(map[string]fluent.View, len(maps))
	for _, def := range maps {
		name, fn, ok := strings.Cut(def, "=")
		if !ok || name == "" || fn == "" {
			return nil, errors.Errorf("invalid map %q, expected name=function", def)
		}
		views[name] = fluent.View{Map: fn}
	}
	for _, def := range reduces {
		name, fn, ok := strings.Cut(def, "=")
		if !ok || name == "" || fn == "" {
			return nil, errors.Errorf("invalid reduce %q, expected name=function", def)
		}
		view, found := views[name]
		if !found {
			return nil, errors.Errorf("reduce for %q has no matching --map", name)
		}
		view.Reduce = fn
		views[name] = view
	}
	return views, nil
}
