// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"genemap/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	ConfigPath string
	InputDir   string
	StringDir  string
	OutputDir  string

	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: map gene IDs from experimental spreadsheets to STRING protein IDs

Version: %s

Usage of %s:
`, fs.Name(), version.Version, fs.Name())
		fs.PrintDefaults()
	}

	fs.StringVar(&opt.ConfigPath, "config", "", "JSON mapping-group configuration [*]")
	fs.StringVar(&opt.InputDir, "input", "input_data", "directory of input .xlsx/.tsv files [input_data]")
	fs.StringVar(&opt.StringDir, "string-dir", "string_data", "directory of STRING alias files [string_data]")
	fs.StringVar(&opt.OutputDir, "output", "mapped_data", "directory for mapped output files [mapped_data]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress per-file progress [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.ConfigPath == "" {
		return opt, errors.New("--config is required")
	}
	if opt.InputDir == "" || opt.StringDir == "" || opt.OutputDir == "" {
		return opt, errors.New("--input, --string-dir and --output must not be empty")
	}
	return opt, nil
}
