// Package scriptscan discovers the base CDN for widget module fallback
// from a hosting HTML document.
//
// Discovery is a one-time startup step owned by the host environment: the
// result is injected into the resolver, which never touches the document
// itself.
package scriptscan

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// CDNAttr is the script-tag attribute naming the base CDN.
const CDNAttr = "data-nbexport-cdn"

// DefaultBaseCDN is returned when no script tag carries CDNAttr.
const DefaultBaseCDN = "https://cdn.jsdelivr.net/npm/"

// Discover scans all script elements in the document for CDNAttr.
// The scan is sequential and the last matching element wins; when no
// element matches, DefaultBaseCDN is returned. Unparseable input also
// yields the default: discovery is best-effort configuration, not
// validation.
func Discover(document io.Reader) string {
	doc, err := html.Parse(document)
	if err != nil {
		return DefaultBaseCDN
	}

	base := DefaultBaseCDN
	scan(doc, &base)
	return base
}

// scan walks the tree in document order, overwriting base on each match.
func scan(n *html.Node, base *string) {
	if n.Type == html.ElementNode && n.Data == "script" {
		for _, attr := range n.Attr {
			if attr.Key == CDNAttr && strings.TrimSpace(attr.Val) != "" {
				*base = strings.TrimSpace(attr.Val)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		scan(c, base)
	}
}
