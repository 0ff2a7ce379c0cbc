package audittrail

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// plainText flattens a rich-text body (feedback and documentation are stored as HTML) to
// single-spaced text.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
