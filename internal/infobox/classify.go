package infobox

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"wikiguess/internal/parser"
)

const (
	headerSelector = "th.infobox-header"
	labelSelector  = "th.infobox-label"

	// Economic sections are often marked up as plain label rows.
	headerKeyword = "GDP"
)

// classifyRow reports whether row opens a group and returns the group label.
// The structural header marker wins over the keyword heuristic.
func classifyRow(row *goquery.Selection) (string, bool) {
	if header := row.Find(headerSelector).First(); header.Length() > 0 {
		return parser.VisibleText(header), true
	}

	if header, ok := findKeywordHeader(row, headerKeyword); ok {
		return parser.VisibleText(header), true
	}

	return "", false
}

// findKeywordHeader finds the first text node in row containing keyword and
// returns its nearest th ancestor inside the row. A match without such an
// ancestor is not a header.
func findKeywordHeader(row *goquery.Selection, keyword string) (*goquery.Selection, bool) {
	if row.Length() == 0 {
		return nil, false
	}

	root := row.Get(0)

	text := firstTextNode(root, keyword)
	if text == nil {
		return nil, false
	}

	for node := text.Parent; node != nil && node != root; node = node.Parent {
		if node.Type == html.ElementNode && node.DataAtom == atom.Th {
			return row.FindNodes(node), true
		}
	}

	return nil, false
}

func firstTextNode(node *html.Node, keyword string) *html.Node {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode && strings.Contains(child.Data, keyword) {
			return child
		}

		if parser.IsHidden(child) {
			continue
		}

		if found := firstTextNode(child, keyword); found != nil {
			return found
		}
	}

	return nil
}

// labelCell returns the label-styled cell of the row. Only direct children
// count; labels of nested tables belong to those tables.
func labelCell(row *goquery.Selection) (*goquery.Selection, bool) {
	label := row.ChildrenFiltered(labelSelector).First()
	if label.Length() == 0 {
		return nil, false
	}

	return label, true
}
