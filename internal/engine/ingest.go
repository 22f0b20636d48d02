package engine

import (
	"log/slog"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// PrepareInput converts pasted HTML to plain text when needed and caps the
// result at Cfg.MaxInputChars runes. Boundary concern: the analysis core
// itself takes any string and applies no cap.
func PrepareInput(text string) string {
	IncrIngestRequests()
	if LooksLikeHTML(text) {
		text = HTMLToText(text)
	}
	if cfg.MaxInputChars > 0 {
		text = TruncateRunes(text, cfg.MaxInputChars, "")
	}
	return strings.TrimSpace(text)
}

// HTMLToText converts an HTML fragment to plain text. Conversion goes
// through markdown to keep list/heading structure as line breaks; on
// conversion failure it falls back to a tree walk over text nodes.
func HTMLToText(src string) string {
	md, err := htmltomarkdown.ConvertString(src)
	if err == nil && strings.TrimSpace(md) != "" {
		return CollapseSpaces(stripMarkdown(md))
	}
	slog.Debug("ingest: markdown conversion failed, using tree walk", slog.Any("error", err))

	node, err := html.Parse(strings.NewReader(src))
	if err != nil {
		// Last resort: regex strip.
		return CollapseSpaces(CleanHTML(src))
	}
	var sb strings.Builder
	walkText(node, &sb)
	return CollapseSpaces(sb.String())
}

// walkText appends the text content of a parsed HTML tree, skipping
// script/style subtrees and inserting line breaks at block elements.
func walkText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		case "p", "div", "li", "br", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteByte('\n')
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, sb)
	}
}

var mdMarkers = strings.NewReplacer("**", "", "__", "", "# ", "", "## ", "", "### ", "", "`", "")

// stripMarkdown drops the markdown markers the converter introduces; the
// analyzer only needs words, not formatting.
func stripMarkdown(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimPrefix(strings.TrimSpace(line), "- ")
		line = strings.TrimPrefix(line, "* ")
		lines[i] = mdMarkers.Replace(line)
	}
	return strings.Join(lines, "\n")
}
