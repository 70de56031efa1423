package nbexport

// DefaultDisplayPriority is the ordered list of preferred output MIME
// types. When an output bundle carries several representations, the first
// type found here is rendered and the rest are discarded.
var DefaultDisplayPriority = []string{
	"text/html",
	"application/pdf",
	"text/latex",
	"image/svg+xml",
	"image/png",
	"image/jpeg",
	"text/plain",
}

// SelectDisplayData picks the MIME type to render from an output bundle.
// Returns the first entry of priority present in the bundle, or "" when
// none match. An empty priority list falls back to the default order.
func SelectDisplayData(bundle MIMEBundle, priority []string) string {
	if len(priority) == 0 {
		priority = DefaultDisplayPriority
	}
	for _, mime := range priority {
		if bundle.Has(mime) {
			return mime
		}
	}
	return ""
}
