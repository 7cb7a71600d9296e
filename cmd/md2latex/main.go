package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	md2latex "github.com/yehyu2004/go-md2latex"
	"github.com/yehyu2004/go-md2latex/internal/config"
	"github.com/yehyu2004/go-md2latex/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], defaultEnvironment()))
}

// run dispatches subcommands and maps errors to exit codes.
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "help", "--help", "-h":
		printUsage(env.Stdout)
		return ExitSuccess

	case "version", "--version":
		fmt.Fprintln(env.Stdout, "md2latex "+Version)
		return ExitSuccess

	case "doctor":
		if err := runDoctor(env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitCompiler
		}
		return ExitSuccess

	case "convert":
		return runConvertCommand(args[1:], env)

	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runConvertCommand parses convert flags and runs the conversion.
func runConvertCommand(args []string, env *Environment) int {
	var flags convertFlags
	fs := newConvertFlagSet(&flags)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := runConvert(context.Background(), fs.Args(), &flags, env); err != nil {
		fmt.Fprintln(env.Stderr, errorWithHint(err, &flags))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// errorWithHint appends an actionable hint to errors that have one.
func errorWithHint(err error, flags *convertFlags) string {
	msg := err.Error()
	switch {
	case errors.Is(err, md2latex.ErrEngineNotFound):
		engine := flags.engine
		if engine == "" {
			engine = md2latex.DefaultEngine
		}
		msg += hints.ForMissingEngine(engine)
	case errors.Is(err, context.DeadlineExceeded):
		msg += hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound(configSearchPaths(flags.common.config))
	case errors.Is(err, ErrWriteOutput):
		msg += hints.ForOutputDirectory()
	}
	return msg
}
