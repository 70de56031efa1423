package nbexport

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"strings"
)

// widgetManagerModule is the front-end module that renders widget views.
const widgetManagerModule = "@jupyter-widgets/html-manager"

// defaultWidgetManagerVersion is used when no pin is configured.
const defaultWidgetManagerVersion = "1.0.0"

// htmlExporter renders a parsed notebook into a standalone HTML document.
type htmlExporter struct {
	md       markdownConverter
	assets   AssetLoader
	resolver *Resolver // nil disables widget script embedding
	priority []string
}

// exportParams carries per-export settings.
type exportParams struct {
	title         string
	css           string // extra CSS appended after the style sheet
	style         string // style name, "" = DefaultStyle
	widgetVersion string // widget manager version pin, "" = default
}

// pageData feeds the page template.
type pageData struct {
	Title string
	Body  template.HTML
}

// Export renders the notebook to a complete HTML document.
func (e *htmlExporter) Export(ctx context.Context, nb *Notebook, params exportParams) (string, error) {
	var body strings.Builder

	for i, cell := range nb.Cells {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		rendered, err := e.renderCell(ctx, nb, cell)
		if err != nil {
			return "", fmt.Errorf("%w: cell %d: %v", ErrHTMLRender, i, err)
		}
		body.WriteString(rendered)
	}

	if nb.HasWidgets() {
		widgetHTML, err := e.renderWidgetSupport(ctx, nb, params.widgetVersion)
		if err != nil {
			return "", err
		}
		body.WriteString(widgetHTML)
	}

	return e.assemblePage(nb, body.String(), params)
}

// renderCell dispatches on the cell type.
func (e *htmlExporter) renderCell(ctx context.Context, nb *Notebook, cell Cell) (string, error) {
	switch cell.Type {
	case CellMarkdown:
		return e.renderMarkdownCell(ctx, cell)
	case CellCode:
		return e.renderCodeCell(ctx, nb, cell)
	case CellRaw:
		// Raw cells pass through untyped; render as preformatted text.
		return "<div class=\"cell cell-raw\"><pre>" + html.EscapeString(cell.Source.String()) + "</pre></div>\n", nil
	default:
		// Unknown cell types are skipped rather than failing the export.
		return "", nil
	}
}

// renderMarkdownCell converts markdown source through Goldmark, then
// gives each heading a self-referencing anchor link.
func (e *htmlExporter) renderMarkdownCell(ctx context.Context, cell Cell) (string, error) {
	fragment, err := e.md.ToHTML(ctx, cell.Source.String())
	if err != nil {
		return "", err
	}
	fragment, err = AddAnchor(fragment)
	if err != nil {
		return "", err
	}
	return "<div class=\"cell cell-markdown\">\n" + fragment + "</div>\n", nil
}

// renderCodeCell renders the input as a highlighted fenced block followed
// by the cell's outputs.
func (e *htmlExporter) renderCodeCell(ctx context.Context, nb *Notebook, cell Cell) (string, error) {
	fence := codeFence(cell.Source.String())
	fenced := fence + nb.Language() + "\n" + cell.Source.String() + "\n" + fence
	input, err := e.md.ToHTML(ctx, fenced)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("<div class=\"cell cell-code\">\n")
	sb.WriteString("<div class=\"input\">\n" + input + "</div>\n")
	for _, out := range cell.Outputs {
		sb.WriteString(e.renderOutput(out))
	}
	sb.WriteString("</div>\n")
	return sb.String(), nil
}

// codeFence returns a backtick fence longer than any run in the source,
// so source containing fences cannot terminate the block early.
func codeFence(source string) string {
	longest := 0
	run := 0
	for _, ch := range source {
		if ch == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < 3 {
		longest = 3
	}
	return strings.Repeat("`", longest+1)
}

// renderOutput renders a single cell output. Display outputs pick one
// MIME representation by priority; the rest of the bundle is discarded.
func (e *htmlExporter) renderOutput(out Output) string {
	switch out.Type {
	case OutputStream:
		class := "output output-stream-" + out.Name
		return "<div class=\"" + class + "\"><pre>" + html.EscapeString(StripANSI(out.Text.String())) + "</pre></div>\n"

	case OutputError:
		traceback := StripANSI(strings.Join(out.Traceback, "\n"))
		if traceback == "" {
			traceback = out.ErrName + ": " + out.ErrValue
		}
		return "<div class=\"output output-error\"><pre>" + html.EscapeString(traceback) + "</pre></div>\n"

	case OutputDisplayData, OutputExecuteResult:
		if out.Data.Has(WidgetViewMIME) {
			return renderWidgetView(out.Data[WidgetViewMIME])
		}
		return e.renderDisplayData(out.Data)

	default:
		return ""
	}
}

// renderDisplayData renders the highest-priority representation present.
func (e *htmlExporter) renderDisplayData(bundle MIMEBundle) string {
	mime := SelectDisplayData(bundle, e.priority)
	switch mime {
	case "":
		return ""
	case "text/html":
		// Trusted kernel HTML; only the stale files/ prefixes are fixed.
		return "<div class=\"output output-html\">\n" + StripFilesPrefix(bundle.Text(mime)) + "</div>\n"
	case "image/svg+xml":
		return "<div class=\"output output-svg\">\n" + bundle.Text(mime) + "</div>\n"
	case "image/png", "image/jpeg":
		data := strings.TrimSpace(bundle.Text(mime))
		return "<div class=\"output output-image\"><img src=\"data:" + mime + ";base64," + data + "\"/></div>\n"
	case "application/pdf":
		data := strings.TrimSpace(bundle.Text(mime))
		return "<div class=\"output output-pdf\"><object data=\"data:application/pdf;base64," + data + "\" type=\"application/pdf\"></object></div>\n"
	case "text/latex":
		return "<div class=\"output output-latex\">" + html.EscapeString(bundle.Text(mime)) + "</div>\n"
	default:
		return "<div class=\"output output-text\"><pre>" + html.EscapeString(StripANSI(bundle.Text(mime))) + "</pre></div>\n"
	}
}

// renderWidgetView emits the view spec for the widget manager to pick up.
func renderWidgetView(view json.RawMessage) string {
	return "<div class=\"output output-widget\"><script type=\"" + WidgetViewMIME + "\">" +
		sanitizeScriptJSON(view) + "</script></div>\n"
}

// renderWidgetSupport resolves the widget manager module and embeds it
// with the notebook's widget state. Without a resolver the views stay in
// the document but cannot render; a comment marks why.
func (e *htmlExporter) renderWidgetSupport(ctx context.Context, nb *Notebook, versionPin string) (string, error) {
	if e.resolver == nil {
		return "<!-- widget views present but no module resolver configured -->\n", nil
	}

	version := versionPin
	if version == "" {
		version = defaultWidgetManagerVersion
	}

	module, err := e.resolver.Resolve(ctx, widgetManagerModule, version)
	if err != nil {
		return "", fmt.Errorf("resolving widget manager: %w", err)
	}

	var sb strings.Builder
	if state := nb.WidgetState(); state != nil {
		sb.WriteString("<script type=\"" + WidgetStateMIME + "\">")
		sb.WriteString(sanitizeScriptJSON(state))
		sb.WriteString("</script>\n")
	}
	sb.WriteString("<script>" + sanitizeScript(module.Source) + "</script>\n")
	return sb.String(), nil
}

// sanitizeScriptJSON escapes sequences that would close a script element
// from inside embedded JSON.
func sanitizeScriptJSON(raw json.RawMessage) string {
	return sanitizeScript(string(raw))
}

// sanitizeScript escapes </ so embedded content cannot close the tag.
func sanitizeScript(s string) string {
	return strings.ReplaceAll(s, "</", `<\/`)
}

// assemblePage loads the style and page template and produces the final
// document with CSS injected into the head.
func (e *htmlExporter) assemblePage(nb *Notebook, body string, params exportParams) (string, error) {
	styleName := params.style
	if styleName == "" {
		styleName = DefaultStyle
	}
	css, err := e.assets.LoadStyle(styleName)
	if err != nil {
		return "", err
	}
	if params.css != "" {
		css += "\n" + params.css
	}

	tmplText, err := e.assets.LoadTemplate(DefaultTemplate)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New("page").Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	title := params.title
	if title == "" {
		title = "Notebook"
	}

	var page strings.Builder
	err = tmpl.Execute(&page, pageData{
		Title: title,
		Body:  template.HTML(body), // #nosec G203 -- body is assembled above with per-part escaping
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	return injectCSS(page.String(), css), nil
}

// injectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent breaking out of the style block.
func injectCSS(htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could close a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
