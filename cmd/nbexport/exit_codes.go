package main

import (
	"errors"
	"os"

	nbexport "github.com/nbexport/nbexport"
)

// Exit codes for the nbexport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, nbexport.ErrBrowserConnect) ||
		errors.Is(err, nbexport.ErrPageCreate) ||
		errors.Is(err, nbexport.ErrPageLoad) ||
		errors.Is(err, nbexport.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadNotebook) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, nbexport.ErrEmptyNotebook) ||
		errors.Is(err, nbexport.ErrNotebookParse) ||
		errors.Is(err, nbexport.ErrUnsupportedNB) ||
		errors.Is(err, nbexport.ErrInvalidFormat) ||
		errors.Is(err, nbexport.ErrStyleNotFound) ||
		errors.Is(err, nbexport.ErrTemplateNotFound) ||
		errors.Is(err, nbexport.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
