// Package nbexport converts Jupyter notebooks to HTML and PDF.
//
// # Quick Start
//
// Create a service, convert a notebook, and close when done:
//
//	svc := nbexport.New()
//	defer svc.Close()
//
//	result, err := svc.Convert(ctx, nbexport.Input{
//	    Notebook: notebookJSON,
//	    Format:   nbexport.FormatHTML,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", result.HTML, 0644)
//
// With FormatPDF the result contains both the PDF bytes (result.PDF) and
// the intermediate HTML (result.HTML) for debugging.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Notebook parsing (nbformat 4 JSON)
//  2. Cell rendering: markdown via Goldmark (GFM, syntax highlighting),
//     code cells as highlighted blocks, outputs by display priority
//  3. Widget module resolution with CDN fallback (see Resolver)
//  4. CSS injection and page assembly
//  5. PDF rendering via headless Chrome (go-rod), when requested
//
// # Widget Resolution
//
// Notebooks containing Jupyter widget output need their front-end modules
// fetched at export time. Resolver wraps a ModuleLoader and retries a
// failed load once after pointing the loader at a CDN URL derived from
// the module name and version:
//
//	loader := nbexport.NewScriptLoader(nil)
//	res, err := nbexport.NewResolver(loader, nbexport.DefaultBaseCDN)
//	module, err := res.Resolve(ctx, "@jupyter-widgets/html-manager", "1.0.0")
//
// The base CDN can be discovered from a hosting HTML document with
// internal/scriptscan at startup, or injected directly.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := nbexport.New(
//	    nbexport.WithTimeout(2 * time.Minute),
//	    nbexport.WithBaseCDN("https://cdn.example.com/npm/"),
//	    nbexport.WithDisplayPriority([]string{"image/png", "text/plain"}),
//	)
//
// # Parallel Processing
//
// For batch conversion, use ServicePool to manage multiple browser
// instances:
//
//	pool := nbexport.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	result, err := svc.Convert(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package nbexport
