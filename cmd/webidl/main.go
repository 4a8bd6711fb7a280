// Command webidl parses and validates WebIDL files.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&checkCmd{}, "")
	subcommands.Register(&dumpCmd{}, "")
	subcommands.Register(&astCmd{}, "")
	subcommands.Register(&attrsCmd{}, "")

	flag.Parse()
	status := subcommands.Execute(context.Background())
	glog.Flush()
	os.Exit(int(status))
}
