package parser

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CleanText collapses whitespace runs into single spaces and trims the result.
func CleanText(value string) string {
	collapsed := collapseSpaces(value)

	return strings.TrimSpace(collapsed)
}

// VisibleText returns the cleaned text of the selection, leaving out the
// contents of style and script elements.
func VisibleText(sel *goquery.Selection) string {
	var builder strings.Builder
	for _, node := range sel.Nodes {
		writeVisibleText(&builder, node)
	}

	return CleanText(builder.String())
}

// IsHidden reports whether node holds non-rendered text.
func IsHidden(node *html.Node) bool {
	return node.Type == html.ElementNode && (node.DataAtom == atom.Style || node.DataAtom == atom.Script)
}

func writeVisibleText(builder *strings.Builder, node *html.Node) {
	if node.Type == html.TextNode {
		builder.WriteString(node.Data)

		return
	}

	if IsHidden(node) {
		return
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeVisibleText(builder, child)
	}
}

func collapseSpaces(value string) string {
	var builder strings.Builder
	builder.Grow(len(value))

	previousSpace := false
	for _, r := range value {
		if unicode.IsSpace(r) {
			if previousSpace {
				continue
			}

			builder.WriteRune(' ')
			previousSpace = true

			continue
		}

		builder.WriteRune(r)
		previousSpace = false
	}

	return builder.String()
}
