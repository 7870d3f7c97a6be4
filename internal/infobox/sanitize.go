package infobox

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const referenceSelector = "sup.reference"

// Substitutions run on serialized markup, in this order.
var symbolReplacer = strings.NewReplacer(
	"\u2022", "",   // bullet
	"\u00a0", " ",  // no-break space
	"\u00b7", ", ", // middle dot
	"\u2013", "-",  // en dash
)

// StripReferences removes citation markers from the selection, nodes included.
func StripReferences(sel *goquery.Selection) {
	sel.Find(referenceSelector).Remove()
}

// ReplaceSymbols normalizes typographic symbols in serialized markup.
// No other characters are touched.
func ReplaceSymbols(markup string) string {
	return symbolReplacer.Replace(markup)
}
