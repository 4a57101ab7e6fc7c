// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"genemap/internal/batch"
	"genemap/internal/cli"
	"genemap/internal/config"
	"genemap/internal/report"
	"genemap/internal/runner"
	"genemap/internal/version"
	"genemap/internal/writers"
)

// Run is the whole program behind cmd/genemap: parse flags, load the group
// configuration, run the mapping, print the summary. Returns the process
// exit code: 0 ok, 1 fatal run error, 2 usage/config error, 3 write error.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("genemap")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		_ = outw.Flush()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "genemap version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	r := runner.New(cfg, runner.StringTables(opts.StringDir, cfg), stderr, opts.Quiet)
	stats, err := r.Run(batch.Dir{Path: opts.InputDir}, writers.Dir{Path: opts.OutputDir})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	report.Summary(outw, cfg.Groups, stats)
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}
