// diagctl exercises the diag console facade from the command line.
//
// Usage:
//
//	diagctl [global options] <command> [arguments]
//
// Global options:
//
//	-c, --config   YAML or JSON configuration file
//	    --no-color disable ANSI coloring
//	    --level    minimum level printed (trace/debug/info/warn/error/disabled)
//
// Commands:
//
//	format <template> [args...]             render a "{}" template
//	escape [text...]                        escape bytes from args or stdin
//	print -s <severity> <template> [args]   print one line at a severity
//	check <bool> [template] [args...]       fail fast when the value is false
//	version                                 show version and build flavour
//
// Exit codes:
//
//	0: success
//	1: command failed
//	2: usage error
//	134: a check failed
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is injected with -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr, os.Exit))
}

// usageError marks bad arguments; run maps it to exit code 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, exit func(int)) int {
	app := createApp(exit)
	app.Reader = stdin
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		var uErr *usageError
		if errors.As(err, &uErr) {
			_, _ = fmt.Fprintf(stderr, "usage error: %v\n", uErr)
			return 2
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func createApp(exit func(int)) *cli.Command {
	return &cli.Command{
		Name:    "diagctl",
		Usage:   "format, escape and print diagnostics lines",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML or JSON configuration file",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable ANSI coloring",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "minimum level printed",
			},
		},
		Commands: createCommands(exit),
		ExitErrHandler: func(_ context.Context, _ *cli.Command, _ error) {
			// run maps errors to exit codes; never let cli call os.Exit.
		},
	}
}
