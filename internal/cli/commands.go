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

import "github.com/spf13/cobra"

func (a *app) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.couch.Create(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.print(map[string]interface{}{"ok": true, "db": a.couch.Resolve(args[0])})
		},
	}
}

func (a *app) destroyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destroy NAME",
		Short: "Delete a database and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.couch.Destroy(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.print(map[string]interface{}{"ok": true, "db": a.couch.Resolve(args[0])})
		},
	}
}

func (a *app) insertCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "insert DB JSON...",
		Short: "Insert documents concurrently",
		Long: `Insert every document given on the command line. An argument holding a
JSON array contributes each of its elements as a document.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := parseDocs(args[1:])
			if err != nil {
				return err
			}
			results, err := a.couch.Insert(docs).WithKey(key).Into(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(results)
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "document field used as the document ID")
	return cmd
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get DB ID",
		Short: "Fetch a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.couch.Get(args[1]).From(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(doc)
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var params []string
	cmd := &cobra.Command{
		Use:   "list DB",
		Short: "List the documents of a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseParams(params)
			if err != nil {
				return err
			}
			rows, err := a.couch.GetList().WithParams(p).From(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(rows)
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "query parameter as key=value")
	return cmd
}

func (a *app) viewCmd() *cobra.Command {
	var params []string
	cmd := &cobra.Command{
		Use:   "view DB DESIGN VIEW",
		Short: "Query a view",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseParams(params)
			if err != nil {
				return err
			}
			rows, err := a.couch.GetView(args[1], args[2]).WithParams(p).From(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(rows)
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "query parameter as key=value")
	return cmd
}

func (a *app) listFuncCmd() *cobra.Command {
	var params []string
	cmd := &cobra.Command{
		Use:   "listfn DB DESIGN VIEW LIST",
		Short: "Run a list function over a view",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseParams(params)
			if err != nil {
				return err
			}
			body, err := a.couch.ViewWithList(args[1], args[2], args[3]).WithParams(p).From(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = a.out.Write(body)
			return err
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "query parameter as key=value")
	return cmd
}

func (a *app) designCmd() *cobra.Command {
	var (
		maps, reduces []string
		rev           string
	)
	cmd := &cobra.Command{
		Use:   "design DB NAME",
		Short: "Create or update a design document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := parseViews(maps, reduces)
			if err != nil {
				return err
			}
			result, err := a.couch.AddDesign(args[1], views).WithRev(rev).To(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(result)
		},
	}
	cmd.Flags().StringArrayVar(&maps, "map", nil, "view map function as name=function")
	cmd.Flags().StringArrayVar(&reduces, "reduce", nil, "view reduce function as name=function")
	cmd.Flags().StringVar(&rev, "rev", "", "revision of the design document being replaced")
	return cmd
}

func (a *app) existsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists NAME...",
		Short: "Report which databases exist",
		Long: `Report which databases exist. Names are matched exactly; the configured
prefix is not applied.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exists, err := a.couch.CheckDBExists(cmd.Context(), args...)
			if err != nil {
				return err
			}
			out := make(map[string]bool, len(args))
			for i, name := range args {
				out[name] = exists[i]
			}
			return a.print(out)
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DB ID",
		Short: "Delete the current revision of a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.couch.DeleteDoc(args[1]).From(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(result)
		},
	}
}
