package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/servo/webidl/idl"
)

type dumpCmd struct {
	config string
}

func (*dumpCmd) Name() string     { return "dump" }
func (*dumpCmd) Synopsis() string { return "prints the validated definitions" }
func (*dumpCmd) Usage() string    { return "dump [-config file] file...\n" }

func (cmd *dumpCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.config, "config", "", "YAML file with the extended attribute table")
}

func (cmd *dumpCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig(cmd.config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	srcs, err := loadFiles(ctx, f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defs, err := parseAll(cfg, srcs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := idl.Dump(os.Stdout, defs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
