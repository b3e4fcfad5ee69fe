// Command setup is the operator tool: it generates the .env file, converts
// the data file between plain and encrypted form, and mints API tokens.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"finalloc/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&keygenCmd{}, "setup")
	commander.Register(&convertCmd{encrypt: true}, "data")
	commander.Register(&convertCmd{encrypt: false}, "data")
	commander.Register(&tokenCmd{}, "auth")

	flag.Parse()
	status := commander.Execute(context.Background())
	logger.Sync()
	os.Exit(int(status))
}
