package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/smake/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("smake", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
SMake - a minimal declarative build tool.

Usage:
  smake [options] [TARGET...]

Arguments:
  TARGET
    Names of rules to report on. With no targets, every rule in the
    document is reported.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "", "Path to the rule document. Defaults to "+app.DefaultFile+".")
	fFlag := flagSet.String("f", "", "Path to the rule document (shorthand).")
	verboseFlag := flagSet.Bool("verbose", false, "Include one diagnostic line per output file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *fileFlag
	if path == "" {
		path = *fFlag
	}

	config, err := app.NewConfig(app.Config{
		FilePath:  path,
		Targets:   flagSet.Args(),
		Verbose:   *verboseFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
