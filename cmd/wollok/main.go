// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"wollok/internal/config"
	"wollok/internal/errors"
	"wollok/internal/parser"
	"wollok/internal/pretty"
)

var log = commonlog.GetLogger("wollok.cli")

type opts struct {
	Config  string
	Tokens  bool
	Format  string
	NoColor bool
	Verbose int
	Explain string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	op := &opts{}
	flags := pflag.NewFlagSet("wollok", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&op.Config, "config", "", "Path to a wollok.toml configuration file.")
	flags.BoolVar(&op.Tokens, "tokens", false, "Print the token stream before the tree.")
	flags.StringVar(&op.Format, "format", "", "Tree output format: tree or source.")
	flags.BoolVar(&op.NoColor, "no-color", false, "Disable colored output.")
	flags.CountVarP(&op.Verbose, "verbose", "v", "Increase log verbosity (repeatable).")
	flags.StringVar(&op.Explain, "explain", "", "Describe an error code such as E0101 and exit.")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wollok [flags] <file.wlk>...")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if op.Explain != "" {
		fmt.Fprintf(stdout, "%s [%s]: %s\n", op.Explain, errors.GetErrorCategory(op.Explain), errors.GetErrorDescription(op.Explain))
		return 0
	}

	targets := flags.Args()
	if len(targets) == 0 {
		flags.Usage()
		return 2
	}

	cfg, err := config.Load(op.Config)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if flags.Changed("tokens") {
		cfg.Output.Tokens = op.Tokens
	}
	if flags.Changed("format") {
		cfg.Output.Format = op.Format
	}
	if op.NoColor {
		cfg.Output.Color = false
	}
	cfg.Log.Verbosity += op.Verbose
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	configureLogging(cfg)
	color.NoColor = !cfg.Output.Color

	failed := false
	for _, path := range targets {
		if !process(cfg, path, stdout, stderr) {
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

func configureLogging(cfg *config.Config) {
	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, path)
}

// process parses one file and prints the outcome. It reports whether the
// file parsed cleanly.
func process(cfg *config.Config, path string, stdout, stderr io.Writer) bool {
	startTime := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to read file: %v\n", color.RedString("error"), err)
		return false
	}

	result := parser.ParseSourceWithTokens(path, string(source))

	if cfg.Output.Tokens {
		for _, tok := range result.Tokens {
			fmt.Fprintln(stdout, tok)
		}
	}

	formattedDuration := formatDuration(time.Since(startTime))
	log.Debugf("%s: %d tokens in %s", path, len(result.Tokens), formattedDuration)

	if result.Failed() {
		reporter := errors.NewErrorReporter(path, string(source))
		fmt.Fprint(stderr, reporter.FormatError(result.Diagnostic))
		fmt.Fprintln(stderr, color.RedString("Parsing failed after %s", formattedDuration))
		return false
	}

	switch cfg.Output.Format {
	case config.FormatSource:
		fmt.Fprintln(stdout, result.Scope.String())
	default:
		fmt.Fprint(stdout, pretty.New(pretty.Config{UseColors: cfg.Output.Color}).Print(result.Scope))
	}
	fmt.Fprintln(stdout, color.GreenString("Successfully parsed %s in %s", path, formattedDuration))
	return true
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
