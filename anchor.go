package nbexport

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// anchorMark is the visible anchor-link glyph appended to headings.
const anchorMark = "¶"

// InnerText extracts the concatenated text content of an HTML fragment.
// Analog of jQuery's $(element).text().
func InnerText(fragment string) (string, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range nodes {
		collectText(n, &sb)
	}
	return sb.String(), nil
}

// AddAnchor adds an anchor link to an HTML heading fragment. The heading
// id is derived from its text content with spaces replaced by hyphens.
// Non-heading fragments are returned unchanged.
func AddAnchor(fragment string) (string, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	for _, n := range nodes {
		if n.Type != html.ElementNode || !isHeading(n.Data) {
			continue
		}

		var sb strings.Builder
		collectText(n, &sb)
		id := strings.ReplaceAll(sb.String(), " ", "-")

		setAttr(n, "id", id)
		link := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.A,
			Data:     "a",
			Attr: []html.Attribute{
				{Key: "class", Val: "anchor-link"},
				{Key: "href", Val: "#" + id},
			},
		}
		link.AppendChild(&html.Node{Type: html.TextNode, Data: anchorMark})
		n.AppendChild(link)
	}

	return renderNodes(nodes)
}

// parseFragment parses an HTML fragment in body context.
func parseFragment(fragment string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// renderNodes renders fragment nodes back to a string.
func renderNodes(nodes []*html.Node) (string, error) {
	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// collectText appends the text content of n and its children to sb.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// isHeading reports whether tag is h1..h6.
func isHeading(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// setAttr sets or replaces an attribute on an element node.
func setAttr(n *html.Node, key, val string) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
