package nbexport

import (
	"context"
	"fmt"
)

// Service orchestrates the notebook export pipeline.
type Service struct {
	cfg      serviceConfig
	loader   ModuleLoader
	assets   AssetLoader
	exporter *htmlExporter
	pdf      pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithBaseCDN).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			baseCDN: DefaultBaseCDN,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.assets == nil {
		// Embedded-only loader; NewAssetLoader("") cannot fail.
		s.assets, _ = NewAssetLoader("")
	}
	if s.loader == nil {
		s.loader = NewScriptLoader(nil)
	}

	resolver, err := NewResolver(s.loader, s.cfg.baseCDN)
	if err == nil {
		resolver.SetTrace(s.cfg.trace)
		s.exporter = &htmlExporter{
			md:       newGoldmarkConverter(),
			assets:   s.assets,
			resolver: resolver,
			priority: s.cfg.priority,
		}
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Convert runs the export pipeline for one notebook.
// The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	nb, err := ParseNotebook(input.Notebook)
	if err != nil {
		return nil, err
	}

	htmlDoc, err := s.exporter.Export(ctx, nb, exportParams{
		title:         input.Title,
		css:           input.CSS,
		style:         input.Style,
		widgetVersion: input.WidgetVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("exporting HTML: %w", err)
	}

	result := &Result{HTML: []byte(htmlDoc)}
	if input.format() != FormatPDF {
		return result, nil
	}

	pdfBytes, err := s.pdf.ToPDF(ctx, htmlDoc)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	result.PDF = pdfBytes

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}
