package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/google/subcommands"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/servo/webidl/idl"
)

type checkCmd struct {
	config   string
	separate bool
}

func (*checkCmd) Name() string { return "check" }

func (*checkCmd) Synopsis() string { return "validates WebIDL files" }

func (*checkCmd) Usage() string {
	return `check [-config file] [-separate] file...

Parses the files as one set of definitions and reports the first error.
With -separate, every file is validated on its own and all failures are
reported.
`
}

func (cmd *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.config, "config", "", "YAML file with the extended attribute table")
	f.BoolVar(&cmd.separate, "separate", false, "validate each file in its own session")
}

func (cmd *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err := cmd.run(ctx, os.Stdout, f.Args()); err != nil {
		for _, e := range multierr.Errors(err) {
			glog.Error(e)
			fmt.Fprintln(os.Stderr, e)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (cmd *checkCmd) run(ctx context.Context, w io.Writer, files []string) error {
	cfg, err := loadConfig(cmd.config)
	if err != nil {
		return err
	}
	srcs, err := loadFiles(ctx, files)
	if err != nil {
		return err
	}
	if !cmd.separate {
		defs, err := parseAll(cfg, srcs)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d files, %d definitions: ok\n", len(srcs), len(defs))
		return nil
	}

	// Sessions are independent, so each file gets its own Parser. A failing
	// file is recorded in errs and does not cancel the others.
	errs := make([]error, len(srcs))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range srcs {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, errs[i] = parseAll(cfg, []source{s})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, s := range srcs {
		status := "ok"
		if errs[i] != nil {
			status = idl.KindOf(errs[i]).String()
		}
		fmt.Fprintf(w, "%s: %s\n", s.name, status)
	}
	return multierr.Combine(errs...)
}
