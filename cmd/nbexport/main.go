package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	nbexport "github.com/nbexport/nbexport"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}

	if flags.showVersion {
		fmt.Println("nbexport", Version)
		return ExitSuccess
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	cfg := DefaultConfig()
	if flags.common.config != "" {
		cfg, err = LoadConfig(flags.common.config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitCodeFor(err)
		}
	}

	opts, err := buildOptions(flags, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}

	poolSize := nbexport.ResolvePoolSize(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := nbexport.NewServicePool(poolSize, opts...)
	defer pool.Close()

	if err := run(flags, inputs, pool, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// buildOptions assembles service options from flags and config.
// Flags win over config values; config wins over built-in defaults.
func buildOptions(flags *exportFlags, cfg *Config) ([]nbexport.Option, error) {
	var opts []nbexport.Option

	timeout, err := parseTimeout(flags.timeout)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, nbexport.WithTimeout(timeout))
	}

	if cdn := firstNonEmpty(flags.cdn, cfg.Widgets.BaseCDN); cdn != "" {
		opts = append(opts, nbexport.WithBaseCDN(cdn))
	}

	if len(cfg.Priority) > 0 {
		opts = append(opts, nbexport.WithDisplayPriority(cfg.Priority))
	}

	if basePath := firstNonEmpty(flags.assetPath, cfg.Assets.BasePath); basePath != "" {
		loader, err := nbexport.NewAssetLoader(basePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nbexport.WithAssetLoader(loader))
	}

	if flags.common.verbose {
		opts = append(opts, nbexport.WithTrace(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	}

	return opts, nil
}
