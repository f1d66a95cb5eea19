package main

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/Station-Manager/diag"
	"github.com/Station-Manager/diag/format"
	"github.com/Station-Manager/diag/internal/build"
	"github.com/urfave/cli/v3"
)

func createCommands(exit func(int)) []*cli.Command {
	return []*cli.Command{
		createFormatCommand(exit),
		createEscapeCommand(exit),
		createPrintCommand(exit),
		createCheckCommand(exit),
		createVersionCommand(exit),
	}
}

// newService builds a Service from the global flags, writing to the
// command's writer.
func newService(cmd *cli.Command, exit func(int)) (*diag.Service, error) {
	cfg := diag.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := diag.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Bool("no-color") {
		cfg.NoColor = true
	}
	if level := cmd.String("level"); level != "" {
		cfg.Level = level
	}

	svc := diag.NewService(cfg)
	svc.Out = cmd.Root().Writer
	svc.Exit = exit
	if err := svc.Initialize(); err != nil {
		return nil, err
	}
	return svc, nil
}

// templateArgs converts positional arguments to format arguments.
func templateArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func createFormatCommand(exit func(int)) *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "render a template, printing [invalid fmt] on a count mismatch",
		ArgsUsage: "<template> [args...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail instead of printing the sentinel",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 {
				return &usageError{msg: "format needs a template"}
			}
			svc, err := newService(cmd, exit)
			if err != nil {
				return err
			}
			template := cmd.Args().First()
			args := templateArgs(cmd.Args().Tail())

			if cmd.Bool("strict") {
				out, err := format.Render(template, args...)
				if err != nil {
					return err
				}
				svc.Println("{}", out)
				return nil
			}
			svc.Println("{}", format.Format(template, args...))
			return nil
		},
	}
}

func createEscapeCommand(exit func(int)) *cli.Command {
	return &cli.Command{
		Name:      "escape",
		Usage:     "print input with non-printable bytes as 0xHH",
		ArgsUsage: "[text...]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			svc, err := newService(cmd, exit)
			if err != nil {
				return err
			}
			var data []byte
			if cmd.NArg() > 0 {
				data = []byte(strings.Join(cmd.Args().Slice(), " "))
			} else {
				data, err = io.ReadAll(cmd.Root().Reader)
				if err != nil {
					return err
				}
			}
			svc.Println("{}", format.Escaped(data))
			return nil
		},
	}
}

func createPrintCommand(exit func(int)) *cli.Command {
	return &cli.Command{
		Name:      "print",
		Usage:     "print one line at a severity",
		ArgsUsage: "<template> [args...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "severity",
				Aliases: []string{"s"},
				Usage:   "debug, plain, log, success, warning or error",
				Value:   "log",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 {
				return &usageError{msg: "print needs a template"}
			}
			sev, ok := diag.ParseSeverity(cmd.String("severity"))
			if !ok {
				return &usageError{msg: "unknown severity " + strconv.Quote(cmd.String("severity"))}
			}
			svc, err := newService(cmd, exit)
			if err != nil {
				return err
			}
			svc.Emit(sev, cmd.Args().First(), templateArgs(cmd.Args().Tail())...)
			return nil
		},
	}
}

func createCheckCommand(exit func(int)) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "terminate with a located error line when the value is false",
		ArgsUsage: "<bool> [template] [args...]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 {
				return &usageError{msg: "check needs a boolean"}
			}
			ok, err := strconv.ParseBool(cmd.Args().First())
			if err != nil {
				return &usageError{msg: "not a boolean: " + strconv.Quote(cmd.Args().First())}
			}
			svc, err := newService(cmd, exit)
			if err != nil {
				return err
			}
			rest := cmd.Args().Tail()
			if len(rest) == 0 {
				svc.Check(ok)
				return nil
			}
			svc.Checkf(ok, rest[0], templateArgs(rest[1:])...)
			return nil
		},
	}
}

func createVersionCommand(exit func(int)) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "show version and build flavour",
		Action: func(_ context.Context, cmd *cli.Command) error {
			svc, err := newService(cmd, exit)
			if err != nil {
				return err
			}
			svc.Println("diagctl {} ({} build)", Version, build.Name())
			return nil
		},
	}
}
