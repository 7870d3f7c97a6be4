package infobox

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var continuationClasses = []string{"mergedrow", "mergedbottomrow"}

// taggedRow is a table row with its resolved group. label is nil for rows
// without a property cell; those rows get no group column when rendered.
type taggedRow struct {
	row   *goquery.Selection
	group string
	label *html.Node
}

func tagRow(row *goquery.Selection, group string) taggedRow {
	tagged := taggedRow{row: row, group: group}
	if label, ok := labelCell(row); ok {
		tagged.label = label.Get(0)
	}

	return tagged
}

func isContinuation(row *goquery.Selection) bool {
	for _, class := range continuationClasses {
		if row.HasClass(class) {
			return true
		}
	}

	return false
}

// annotateGroup tags the run of continuation rows after rows[header] with
// group and returns the index of the first row past the run. The header row
// itself is consumed and never tagged.
func annotateGroup(rows []*goquery.Selection, tagged []taggedRow, header int, group string) ([]taggedRow, int) {
	next := header + 1
	for next < len(rows) && isContinuation(rows[next]) {
		tagged = append(tagged, tagRow(rows[next], group))
		next++
	}

	return tagged, next
}
