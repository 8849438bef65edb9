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

// Package cli implements the fluent command.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-kivik/fluent"
	"github.com/go-kivik/fluent/internal/config"
)

type app struct {
	out, errOut io.Writer

	configFile string
	debug      bool
	quiet      bool

	cfg   *config.Config
	couch *fluent.Couch
	close func() error
}

// NewRootCmd returns the fluent command, writing results to out and logs to
// errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	return newRootCmd(&app{out: out, errOut: errOut})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "fluent",
		Short: "fluent - a command line client for CouchDB",
		Long: `fluent reads and writes CouchDB databases. Database names given on the
command line are logical names; the configured prefix is prepended to them.`,
		Version:           fluent.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "conf", "", "configuration file path")
	flags.String("url", "", "CouchDB server URL")
	flags.String("prefix", "", "prefix prepended to database names")
	flags.String("driver", "", "transport: http or kivik")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "log errors only")

	root.AddCommand(
		a.createCmd(),
		a.destroyCmd(),
		a.insertCmd(),
		a.getCmd(),
		a.listCmd(),
		a.viewCmd(),
		a.listFuncCmd(),
		a.designCmd(),
		a.existsCmd(),
		a.deleteCmd(),
	)
	for _, cmd := range root.Commands() {
		a.closeAfter(cmd)
	}
	return root
}

// closeAfter releases the transport once cmd has run, whether or not it
// failed. cobra skips post-run hooks after an error.
func (a *app) closeAfter(cmd *cobra.Command) {
	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if closeErr := a.teardown(); err == nil {
				err = closeErr
			}
		}()
		return run(cmd, args)
	}
}

// Execute runs the fluent command with the process arguments.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func (a *app) logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(a.errOut)
	log.SetLevel(a.cfg.Level())
	switch {
	case a.debug:
		log.SetLevel(logrus.DebugLevel)
	case a.quiet:
		log.SetLevel(logrus.ErrorLevel)
	}
	return log
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := []fluent.Option{
		fluent.WithPrefix(cfg.Prefix),
		fluent.WithLogger(a.logger()),
	}
	switch cfg.Driver {
	case config.DriverKivik:
		t, err := fluent.DialKivik(cfg.URL)
		if err != nil {
			return err
		}
		a.close = t.Close
		opts = append(opts, fluent.WithTransport(t))
	default:
		opts = append(opts, fluent.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	a.couch, err = fluent.New(cfg.URL, opts...)
	return err
}

func (a *app) teardown() error {
	if a.close == nil {
		return nil
	}
	closeFn := a.close
	a.close = nil
	return closeFn()
}

// print writes v to the output as indented JSON. Raw JSON is reindented.
func (a *app) print(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
