package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
)

var commandNames = map[string]bool{
	"help":     true,
	"flags":    true,
	"commands": true,
	"convert":  true,
	"stats":    true,
	"upload":   true,
}

func main() {
	os.Exit(int(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)))
}

// run executes the command line args, without the program name
func run(ctx context.Context, args []string, stdout, stderr io.Writer) subcommands.ExitStatus {
	topFlags := flag.NewFlagSet("act2gpx", flag.ContinueOnError)
	topFlags.SetOutput(stderr)

	cdr := subcommands.NewCommander(topFlags, "act2gpx")
	cdr.Output = stdout
	cdr.Error = stderr
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(&convertCmd{}, "")
	cdr.Register(&statsCmd{}, "")
	cdr.Register(&uploadCmd{}, "strava")

	if err := topFlags.Parse(defaultToConvert(args)); err != nil {
		if err == flag.ErrHelp {
			return subcommands.ExitSuccess
		}
		return subcommands.ExitUsageError
	}

	return cdr.Execute(ctx)
}

// defaultToConvert keeps the historical "act2gpx [options] filename" usage working
// by running the convert command when no command is given.
func defaultToConvert(args []string) []string {
	if len(args) == 0 || commandNames[args[0]] {
		return args
	}

	switch args[0] {
	case "-h", "-help", "--help":
		return args
	}

	return append([]string{"convert"}, args...)
}
