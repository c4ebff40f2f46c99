package domain

import (
	"errors"
	"regexp"
)

// htmlTagRe strips markup from product.php responses, which wrap the plain
// bulletin text in an HTML page. Dot matches newline so tags broken across
// lines are removed too.
var htmlTagRe = regexp.MustCompile(`(?s)<.*?>`)

// ErrZoneNotFound reports that a bulletin carries no header for the zone.
// Offices occasionally drop a zone between issuances, so callers treat
// this as a per-zone skip, not a failure of the run.
var ErrZoneNotFound = errors.New("zone header not found in bulletin")

// StripHTML removes HTML tags from a fetched product page, leaving the
// plain-text bulletin.
func StripHTML(page string) string {
	return htmlTagRe.ReplaceAllString(page, "")
}

// ExtractZoneBlock isolates the text belonging to one zone from a
// multi-zone bulletin: everything between the zone's header line and the
// closing marker line, or to end of text when no marker follows. Returns
// ErrZoneNotFound when the zone's header rule matches nothing.
func ExtractZoneBlock(bulletin string, zone Zone) (string, error) {
	m := zone.blockRe.FindStringSubmatch(bulletin)
	if m == nil {
		return "", ErrZoneNotFound
	}
	return m[1], nil
}
