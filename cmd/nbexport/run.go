package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	nbexport "github.com/nbexport/nbexport"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input notebooks given")
	ErrReadNotebook     = errors.New("failed to read notebook file")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .ipynb extension")
	ErrInvalidTimeout   = errors.New("invalid timeout")
)

// printUsage writes the usage summary.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: nbexport [flags] <notebook.ipynb> [more.ipynb ...]")
	fmt.Fprintln(w, "run 'nbexport --help' for flag details")
}

// run converts every input notebook using services from the pool.
func run(flags *exportFlags, inputs []string, pool *nbexport.ServicePool, cfg *Config) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}

	for _, input := range inputs {
		if filepath.Ext(input) != ".ipynb" {
			return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(input))
		}
	}

	extraCSS, err := readExtraCSS(flags.css)
	if err != nil {
		return err
	}

	format := firstNonEmpty(flags.format, cfg.Output.Format, nbexport.FormatHTML)
	style := firstNonEmpty(flags.style, cfg.CSS.Style)
	widgetVersion := firstNonEmpty(flags.widgetVersion, cfg.Widgets.Version)

	var wg sync.WaitGroup
	errs := make([]error, len(inputs))

	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			errs[i] = convertOne(flags, pool, input, format, style, extraCSS, widgetVersion, cfg)
		}(i, input)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// convertOne exports a single notebook file.
func convertOne(flags *exportFlags, pool *nbexport.ServicePool, input, format, style, extraCSS, widgetVersion string, cfg *Config) error {
	data, err := os.ReadFile(input) // #nosec G304 -- notebook path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadNotebook, err)
	}

	svc := pool.Acquire()
	defer pool.Release(svc)

	ctx := context.Background()
	result, err := svc.Convert(ctx, nbexport.Input{
		Notebook:      data,
		Format:        format,
		CSS:           extraCSS,
		Style:         style,
		Title:         strings.TrimSuffix(filepath.Base(input), ".ipynb"),
		WidgetVersion: widgetVersion,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	outPath := outputPath(flags.output, cfg.Output.DefaultDir, input, format)
	content := result.HTML
	if format == nbexport.FormatPDF {
		content = result.PDF
	}

	if err := os.WriteFile(outPath, content, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		fmt.Printf("Created %s\n", outPath)
	}
	return nil
}

// outputPath derives the output file path for an input notebook.
// An explicit --output wins for a single file; a directory (explicit or
// configured) receives the renamed input; otherwise the output lands next
// to the input.
func outputPath(output, defaultDir, input, format string) string {
	renamed := strings.TrimSuffix(filepath.Base(input), ".ipynb") + "." + format

	if output != "" {
		if info, err := os.Stat(output); err == nil && info.IsDir() {
			return filepath.Join(output, renamed)
		}
		return output
	}
	if defaultDir != "" {
		return filepath.Join(defaultDir, renamed)
	}
	return filepath.Join(filepath.Dir(input), renamed)
}

// readExtraCSS reads the optional extra CSS file.
func readExtraCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- CSS path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}

// parseTimeout parses the --timeout flag, defaulting when unset.
func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, s)
	}
	return d, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
