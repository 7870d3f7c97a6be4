package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wikiguess/internal/urlutil"
	"wikiguess/internal/wikierr"
)

// MemberTableCaption identifies the member-state listing table.
const MemberTableCaption = "UN member states"

// Country is one row of the member-state listing.
type Country struct {
	Name string `json:"name"`
	Page string `json:"page"`
}

// ParseCountries extracts the member-state listing from a rendered page.
// Countries are returned in table row order.
func ParseCountries(body []byte) ([]Country, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	table := findCountryTable(doc)
	if table == nil {
		return nil, fmt.Errorf("%w: no table captioned %q", wikierr.ErrMalformedPage, MemberTableCaption)
	}

	cells := table.Find(`th[scope="row"]`)
	countries := make([]Country, 0, cells.Length())

	var parseErr error
	cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		country, err := parseCountryCell(cell)
		if err != nil {
			parseErr = fmt.Errorf("country row %d: %w", i+1, err)

			return false
		}

		countries = append(countries, country)

		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}

	return countries, nil
}

func findCountryTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		caption := table.Find("caption").First()
		if caption.Length() == 0 {
			return true
		}

		if !strings.Contains(caption.Text(), MemberTableCaption) {
			return true
		}

		found = table

		return false
	})

	return found
}

func parseCountryCell(cell *goquery.Selection) (Country, error) {
	link := cell.Find("a").First()
	if link.Length() == 0 {
		return Country{}, fmt.Errorf("%w: country cell has no link", wikierr.ErrMalformedPage)
	}

	href, ok := link.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return Country{}, fmt.Errorf("%w: country link has no href", wikierr.ErrMalformedPage)
	}

	return Country{
		Name: VisibleText(link),
		Page: urlutil.PageFromHref(href),
	}, nil
}
