package nbexport

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyNotebook  = errors.New("notebook content cannot be empty")
	ErrNotebookParse  = errors.New("failed to parse notebook")
	ErrUnsupportedNB  = errors.New("unsupported notebook format version")
	ErrHTMLRender     = errors.New("HTML rendering failed")
	ErrMarkdownRender = errors.New("markdown conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrInvalidFormat  = errors.New("invalid output format")

	// Resolver errors.
	ErrLoaderMissing   = errors.New("module loader is not configured")
	ErrEmptyModuleName = errors.New("module name cannot be empty")
	ErrEmptyVersion    = errors.New("module version cannot be empty")
	ErrModuleFetch     = errors.New("failed to fetch module")

	// Pandoc conversion errors.
	ErrEmptyContent = errors.New("content cannot be empty")
	ErrPandocRun    = errors.New("pandoc execution failed")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
