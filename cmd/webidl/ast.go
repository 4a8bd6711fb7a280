package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/multierr"

	"github.com/servo/webidl/ast"
	"github.com/servo/webidl/parser"
)

type astCmd struct{}

func (*astCmd) Name() string             { return "ast" }
func (*astCmd) Synopsis() string         { return "prints the parse tree of WebIDL files" }
func (*astCmd) Usage() string            { return "ast file...\n" }
func (*astCmd) SetFlags(f *flag.FlagSet) {}

func (cmd *astCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	srcs, err := loadFiles(ctx, f.Args())
	if err == nil {
		err = dumpTrees(os.Stdout, srcs)
	}
	if err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(os.Stderr, e)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// dumpTrees prints every tree, including the ones with syntax errors, and
// returns the syntax errors.
func dumpTrees(w io.Writer, srcs []source) error {
	var errs error
	for _, s := range srcs {
		f := parser.Parse(s.text)
		fmt.Fprintf(w, "# %s\n", s.name)
		if err := parser.Dump(w, f); err != nil {
			return err
		}
		fmt.Fprintln(w)
		for _, e := range ast.Errors(f) {
			errs = multierr.Append(errs, fmt.Errorf("%s: offset %d: %s", s.name, e.Start, e.Message))
		}
	}
	return errs
}
