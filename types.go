package nbexport

import (
	"fmt"
	"strings"
	"time"
)

// Output format constants.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// Input contains conversion parameters.
type Input struct {
	Notebook      []byte // Raw nbformat 4 JSON (required)
	Format        string // "html" or "pdf" (default: "html")
	CSS           string // Custom CSS appended to the style sheet (optional)
	Title         string // Document title (default: "Notebook")
	Style         string // Style sheet name (default: DefaultStyle)
	WidgetVersion string // Widget manager version pin (optional)
}

// Validate checks that the input is complete and consistent.
func (in Input) Validate() error {
	if len(in.Notebook) == 0 {
		return ErrEmptyNotebook
	}
	switch strings.ToLower(in.Format) {
	case "", FormatHTML, FormatPDF:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be html or pdf)", ErrInvalidFormat, in.Format)
	}
}

// format returns the normalized output format.
func (in Input) format() string {
	if in.Format == "" {
		return FormatHTML
	}
	return strings.ToLower(in.Format)
}

// Result holds conversion output.
type Result struct {
	HTML []byte // Rendered HTML document (always set)
	PDF  []byte // PDF bytes (set only for FormatPDF)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout  time.Duration
	baseCDN  string
	priority []string
	trace    func(format string, args ...any)
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("nbexport: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithBaseCDN sets the base CDN used for widget module fallback URLs.
func WithBaseCDN(base string) Option {
	return func(s *Service) {
		s.cfg.baseCDN = base
	}
}

// WithModuleLoader injects the loader used for widget module resolution.
func WithModuleLoader(l ModuleLoader) Option {
	return func(s *Service) {
		s.loader = l
	}
}

// WithDisplayPriority overrides the ordered list of preferred output MIME
// types. The first type present in an output bundle wins.
func WithDisplayPriority(priority []string) Option {
	return func(s *Service) {
		s.cfg.priority = priority
	}
}

// WithAssetLoader overrides where styles and page templates come from.
func WithAssetLoader(l AssetLoader) Option {
	return func(s *Service) {
		s.assets = l
	}
}

// WithTrace sets a diagnostic trace function (e.g., for verbose CLI
// output). The trace is informational only and never affects behavior.
func WithTrace(fn func(format string, args ...any)) Option {
	return func(s *Service) {
		s.cfg.trace = fn
	}
}
