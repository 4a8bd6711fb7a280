package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type attrsCmd struct {
	config string
}

func (*attrsCmd) Name() string     { return "attrs" }
func (*attrsCmd) Synopsis() string { return "prints the extended attribute configuration as YAML" }
func (*attrsCmd) Usage() string {
	return "attrs [-config file]\n\nThe output can be edited and passed back with -config.\n"
}

func (cmd *attrsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.config, "config", "", "YAML file to merge over the defaults")
}

func (cmd *attrsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(cmd.config)
	if err == nil {
		err = cfg.WriteYAML(os.Stdout)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
