package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"acstools/internal/config"
	"acstools/internal/logging"
	"acstools/internal/model"
	"acstools/internal/update"

	"github.com/spf13/pflag"
)

// Exit statuses.
const (
	exitOK      = 0
	exitUsage   = 1
	exitConfig  = 2
	exitFailure = 3
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr, openDatabase))
}

// realMain runs grantrole with args (without the program name) and returns
// the process exit status.
func realMain(args []string, stdout, stderr io.Writer, open opener) int {
	flags := pflag.NewFlagSet("grantrole", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: grantrole [options] <email> <ROLE_NAME>\n\n")
		fmt.Fprintf(stderr, "grantrole gives an existing user a role in the ACS database.\n")
		fmt.Fprintf(stderr, "The connection string is read from %s (a .env file is honoured).\n\n", config.DatabaseURLEnv)
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExit status: 0 granted or already present, 1 usage, 2 missing %s, 3 failure.\n", config.DatabaseURLEnv)
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  grantrole alice@example.com ADMIN\n")
		fmt.Fprintf(stderr, "  DATABASE_URL=postgresql://app:secret@db:5432/acs?schema=public grantrole bob@example.com TREASURER\n")
	}

	envFileFlag := flags.String("env-file", ".env", "Optional env file loaded before reading the environment")
	timeoutFlag := flags.DurationP("timeout", "t", 30*time.Second, "Give up on the whole operation after this long")
	verboseFlag := flags.BoolP("verbose", "v", false, "Log debug details to stderr")
	versionFlag := flags.BoolP("version", "V", false, "Print version information")
	updateFlag := flags.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := flags.BoolP("help", "h", false, "Show this help message")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *helpFlag {
		flags.Usage()
		return exitOK
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "grantrole version %s\n", model.Version)
		return exitOK
	}

	if *updateFlag {
		update.Check(stdout, model.Version, true)
		return exitOK
	}

	rest := flags.Args()
	if len(rest) < 2 {
		fmt.Fprintln(stderr, "Usage: grantrole <email> <ROLE_NAME>")
		return exitUsage
	}

	logging.Setup(*verboseFlag)

	cfg, err := config.Load(*envFileFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()
	if err := run(ctx, cfg, rest[0], rest[1], open, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitOK
}
