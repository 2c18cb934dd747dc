package extract

import (
	"bytes"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// htmlBaseURL is only used by readability to resolve relative links; the
// corpus is read from disk so any placeholder works.
var htmlBaseURL, _ = url.Parse("https://localhost/")

// extractHTML extracts article text from HTML. Readability strips boilerplate
// (navigation, footers, reference lists) and keeps the article body; when it
// yields no text, a naive tag-stripped walk of the whole document is used so
// unusual page layouts still produce something to segment.
func extractHTML(content []byte) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(content), htmlBaseURL)
	if err == nil {
		if text := strings.TrimSpace(article.TextContent); text != "" {
			return text, nil
		}
	}
	return stripTags(content)
}

// stripTags walks the HTML node tree collecting text nodes, skipping script
// and style subtrees, one line per text node.
func stripTags(content []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(b.String()), nil
}
