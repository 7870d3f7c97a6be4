// Package infobox rebuilds the implicit grouping of an article infobox.
//
// Infobox tables mark sections with header rows followed by rows styled as
// continuations of that header. Normalize tags every row with the group it
// belongs to and renders a flat Group/Property/Value table.
package infobox

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"wikiguess/internal/wikierr"
)

const (
	infoboxSelector = "table.infobox"

	// NoGroup labels rows that no header covers.
	NoGroup = "No Group"
)

// Normalize locates the infobox in page markup and returns a sanitized table
// whose labelled rows start with a group cell.
func Normalize(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	table := doc.Find(infoboxSelector).First()
	if table.Length() == 0 {
		return "", fmt.Errorf("%w: no infobox table", wikierr.ErrMalformedPage)
	}

	StripReferences(table)

	rendered, err := renderTable(walkRows(tableRows(table)))
	if err != nil {
		return "", fmt.Errorf("render infobox: %w", err)
	}

	return ReplaceSymbols(rendered), nil
}

// tableRows returns the first row of table and its sibling rows.
func tableRows(table *goquery.Selection) []*goquery.Selection {
	first := table.Find("tr").First()
	if first.Length() == 0 {
		return nil
	}

	rows := []*goquery.Selection{first}
	first.NextAllFiltered("tr").Each(func(_ int, row *goquery.Selection) {
		rows = append(rows, row)
	})

	return rows
}

// walkRows visits every row once and resolves its group. Header rows are
// consumed by annotateGroup and do not appear in the result.
func walkRows(rows []*goquery.Selection) []taggedRow {
	tagged := make([]taggedRow, 0, len(rows))

	for cursor := 0; cursor < len(rows); {
		row := rows[cursor]

		if group, ok := classifyRow(row); ok {
			tagged, cursor = annotateGroup(rows, tagged, cursor, group)

			continue
		}

		tagged = append(tagged, tagRow(row, NoGroup))
		cursor++
	}

	return tagged
}

func renderTable(rows []taggedRow) (string, error) {
	var builder strings.Builder

	builder.WriteString("<table><tbody>")
	for _, row := range rows {
		if err := renderRow(&builder, row); err != nil {
			return "", err
		}
	}
	builder.WriteString("</tbody></table>")

	return builder.String(), nil
}

// renderRow writes the row with the group cell inserted right before the
// cell that holds the label.
func renderRow(builder *strings.Builder, row taggedRow) error {
	node := row.row.Get(0)

	builder.WriteString("<tr>")
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child == row.label {
			writeGroupCell(builder, row.group)
		}

		if err := html.Render(builder, child); err != nil {
			return err
		}
	}
	builder.WriteString("</tr>")

	return nil
}

func writeGroupCell(builder *strings.Builder, group string) {
	builder.WriteString("<th>")
	builder.WriteString(html.EscapeString(group))
	builder.WriteString("</th>")
}
