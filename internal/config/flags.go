package config

import (
	"flag"
	"fmt"
	"io"
)

// Options holds the command line options. Running without any flags uses
// FileName in the working directory and does not write a debug log.
type Options struct {
	ConfigPath  string
	LogFile     string
	ShowVersion bool
}

// Usage describes every flag; cmd/gen-docs mirrors it.
const Usage = `Usage: wigglemouse [options]

Moves the mouse a few pixels and back whenever the user has been idle,
so the screensaver or lock screen never kicks in.

Options:
  -c, --config <path>  Config file to use (default "` + FileName + `")
  -l, --log <path>     Write a debug log to this file
  -v, --version        Show version information
  -h, --help           Show this help message
`

// ParseFlags parses args (without the program name). It returns
// flag.ErrHelp when help was requested.
func ParseFlags(args []string, output io.Writer) (*Options, error) {
	opts := &Options{}

	flags := flag.NewFlagSet("wigglemouse", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprint(output, Usage)
	}

	flags.StringVar(&opts.ConfigPath, "config", FileName, "Config file to use")
	flags.StringVar(&opts.ConfigPath, "c", FileName, "Config file to use")
	flags.StringVar(&opts.LogFile, "log", "", "Write a debug log to this file")
	flags.StringVar(&opts.LogFile, "l", "", "Write a debug log to this file")
	flags.BoolVar(&opts.ShowVersion, "version", false, "Show version information")
	flags.BoolVar(&opts.ShowVersion, "v", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config path must not be empty")
	}

	return opts, nil
}
