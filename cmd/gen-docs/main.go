package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stigoleg/wiggle-mouse/internal/config"
)

// Generates shell completions and a man page for wigglemouse. The flag list
// mirrors config.Usage.

const (
	appName        = "wigglemouse"
	appDescription = "Keeps the screensaver away by wiggling the mouse while the user is idle."
)

type flagDef struct {
	Short string
	Long  string
	Arg   string
	Desc  string
}

var flags = []flagDef{
	{Short: "-c", Long: "--config", Arg: "<path>", Desc: "Config file to use (default \"" + config.FileName + "\")"},
	{Short: "-l", Long: "--log", Arg: "<path>", Desc: "Write a debug log to this file"},
	{Short: "-v", Long: "--version", Desc: "Show version information"},
	{Short: "-h", Long: "--help", Desc: "Show help message"},
}

// configKeys documents the config file for the man page.
var configKeys = []struct {
	Key  string
	Desc string
}{
	{config.KeyTimeBetweenMovement, "Seconds without user movement before the mouse is wiggled (default 5.0)."},
	{config.KeyTimeSpentMoving, "Seconds one wiggle takes (default 1.0)."},
	{config.KeyTimeBetweenUserChecks, "Seconds between checks for user movement; must be less than " + config.KeyTimeBetweenMovement + " (default 0.5)."},
	{config.KeyDistance, "Pixels the mouse travels per wiggle (default 40)."},
}

func main() {
	if err := writeCompletions(filepath.Join("docs", "completions")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeMan("man"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeCompletions(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := map[string]string{
		appName + ".bash": bashCompletion(),
		"_" + appName:     zshCompletion(),
		appName + ".fish": fishCompletion(),
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func bashCompletion() string {
	var opts []string
	for _, f := range flags {
		opts = append(opts, f.Short, f.Long)
	}

	var b strings.Builder
	b.WriteString("_" + appName + "() {\n")
	b.WriteString("  local cur prev\n")
	b.WriteString("  cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("  prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("  case \"${prev}\" in\n")
	b.WriteString("    -c|--config|-l|--log)\n")
	b.WriteString("      COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
	b.WriteString("      return 0 ;;\n")
	b.WriteString("  esac\n")
	b.WriteString("  COMPREPLY=( $(compgen -W \"" + strings.Join(opts, " ") + "\" -- \"${cur}\") )\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _" + appName + " " + appName + "\n")
	return b.String()
}

func zshCompletion() string {
	var parts []string
	for _, f := range flags {
		form := fmt.Sprintf("'(%s %s)'{%s,%s}'[%s]", f.Short, f.Long, f.Short, f.Long, f.Desc)
		if f.Arg != "" {
			form += ":" + strings.Trim(f.Arg, "<>") + ":_files"
		}
		parts = append(parts, form+"'")
	}
	return "#compdef " + appName + "\n_arguments \\\n  " + strings.Join(parts, " \\\n  ") + "\n"
}

func fishCompletion() string {
	var b strings.Builder
	b.WriteString("complete -c " + appName + " -f\n")
	for _, f := range flags {
		fmt.Fprintf(&b, "complete -c %s -s %s -l %s", appName,
			strings.TrimPrefix(f.Short, "-"), strings.TrimPrefix(f.Long, "--"))
		if f.Arg != "" {
			b.WriteString(" -r -F")
		}
		fmt.Fprintf(&b, " -d \"%s\"\n", strings.ReplaceAll(f.Desc, "\"", "\\\""))
	}
	return b.String()
}

func writeMan(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, appName+".1"), []byte(manPage()), 0o644)
}

func manPage() string {
	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(appName) + "\" \"1\" \"\" \"wiggle-mouse\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + appName + " \\- " + appDescription + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + appName + "\n")
	b.WriteString("[\\-c|\\-\\-config <path>] [\\-l|\\-\\-log <path>] [\\-v|\\-\\-version] [\\-h|\\-\\-help]\n")
	b.WriteString(".SH DESCRIPTION\n" + appDescription + "\n")
	b.WriteString("After each wiggle the mouse is returned to where it started.\n")
	b.WriteString("Press Ctrl+C to stop.\n")
	b.WriteString(".SH OPTIONS\n")
	for _, f := range flags {
		names := f.Short + ", " + f.Long
		if f.Arg != "" {
			names += " " + f.Arg
		}
		b.WriteString(".TP\n\\fB" + names + "\\fR\n" + f.Desc + "\n")
	}
	b.WriteString(".SH CONFIGURATION\n")
	b.WriteString("Lines of the form KEY = VALUE. Text after # is a comment.\n")
	b.WriteString("A missing file is created with default values and the program exits.\n")
	for _, k := range configKeys {
		b.WriteString(".TP\n\\fB" + k.Key + "\\fR\n" + k.Desc + "\n")
	}
	b.WriteString(".SH EXAMPLES\n")
	b.WriteString(".TP\n\\fB" + appName + "\\fR\nRun with " + config.FileName + " from the current directory.\n")
	b.WriteString(".TP\n\\fB" + appName + " -c ~/wiggle.txt -l /tmp/wiggle.log\\fR\nUse another config file and keep a debug log.\n")
	return b.String()
}
