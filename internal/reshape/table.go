package reshape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wikiguess/internal/parser"
	"wikiguess/internal/wikierr"
)

const maxSpan = 1000

// Columns are the fixed column names of an annotated infobox table.
var Columns = [3]string{"Group", "Property", "Value"}

type cell struct {
	text   string
	header bool
}

type carriedCell struct {
	cell cell
	rows int
}

// ParseTable reads the first table in markup into a Group/Property/Value frame.
// Spanning cells are repeated across the columns and rows they cover, header
// rows are skipped and missing positions are left empty.
func ParseTable(markup string) (Frame, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return Frame{}, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return Frame{}, fmt.Errorf("%w: no table found", wikierr.ErrMalformedPage)
	}

	body := table.Find("tr").FilterFunction(func(_ int, row *goquery.Selection) bool {
		return row.Closest("table").IsSelection(table) && row.Closest("thead").Length() == 0
	})

	grid := expandSpans(body)
	for len(grid) > 0 && allHeader(grid[0]) {
		grid = grid[1:]
	}

	frame := Frame{Rows: make([]Row, 0, len(grid))}
	for _, cells := range grid {
		frame.Rows = append(frame.Rows, Row{
			Group:    textAt(cells, 0),
			Property: textAt(cells, 1),
			Value:    textAt(cells, 2),
		})
	}

	return frame, nil
}

func expandSpans(rows *goquery.Selection) [][]cell {
	grid := make([][]cell, 0, rows.Length())
	carried := map[int]carriedCell{}

	rows.Each(func(_ int, row *goquery.Selection) {
		cells := []cell{}
		next := map[int]carriedCell{}

		fillCarried := func() {
			for {
				carry, ok := carried[len(cells)]
				if !ok {
					return
				}

				if carry.rows > 1 {
					next[len(cells)] = carriedCell{cell: carry.cell, rows: carry.rows - 1}
				}
				cells = append(cells, carry.cell)
			}
		}

		row.ChildrenFiltered("th, td").Each(func(_ int, td *goquery.Selection) {
			fillCarried()

			current := cell{
				text:   parser.VisibleText(td),
				header: goquery.NodeName(td) == "th",
			}
			rowspan := spanAttr(td, "rowspan")

			for range spanAttr(td, "colspan") {
				if rowspan > 1 {
					next[len(cells)] = carriedCell{cell: current, rows: rowspan - 1}
				}
				cells = append(cells, current)
			}
		})
		fillCarried()

		grid = append(grid, cells)
		carried = next
	})

	return grid
}

func spanAttr(sel *goquery.Selection, name string) int {
	raw, ok := sel.Attr(name)
	if !ok {
		return 1
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 1 {
		return 1
	}

	return min(value, maxSpan)
}

func allHeader(cells []cell) bool {
	for _, c := range cells {
		if !c.header {
			return false
		}
	}

	return true
}

func textAt(cells []cell, idx int) string {
	if idx >= len(cells) {
		return ""
	}

	return cells[idx].text
}
