package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across operations.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	common        commonFlags
	output        string
	format        string
	workers       int
	timeout       string
	style         string
	css           string
	assetPath     string
	cdn           string
	widgetVersion string
	showVersion   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*exportFlags, []string, error) {
	fs := flag.NewFlagSet("nbexport", flag.ContinueOnError)
	f := &exportFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html, pdf (default: html)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.style, "style", "", "CSS style name")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended to the style sheet")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.cdn, "cdn", "", "base CDN for widget module fallback")
	fs.StringVar(&f.widgetVersion, "widget-version", "", "widget manager version pin")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
