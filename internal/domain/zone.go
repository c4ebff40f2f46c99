package domain

import (
	"fmt"
	"regexp"
)

// HeaderRule locates a zone's header line inside a bulletin. Implementations
// return a regular expression source matching the identifier portion of the
// header; which rule a zone uses is configuration, so new zones need a table
// entry, not new control flow.
type HeaderRule interface {
	headerPattern() string
}

// SoloHeader matches a zone bulletined under its own identifier.
type SoloHeader struct {
	ZoneID string
}

func (h SoloHeader) headerPattern() string {
	return regexp.QuoteMeta(h.ZoneID)
}

// CombinedHeader matches a zone bulletined under a combined range header.
// The range spells the full first identifier and the digits of the last,
// joined by "-" or ">" ("GMZ042-044", "GMZ042>044"); some issuances address
// the zone solo instead, so that spelling matches too.
type CombinedHeader struct {
	First string // first zone of the range, e.g. "GMZ042"
	Last  string // the zone this entry describes, e.g. "GMZ044"
}

func (h CombinedHeader) headerPattern() string {
	return fmt.Sprintf(`%s[>-]%s|%s`,
		regexp.QuoteMeta(h.First),
		regexp.QuoteMeta(zoneNumber(h.Last)),
		regexp.QuoteMeta(h.Last),
	)
}

// zoneNumber returns the trailing digit run of a zone identifier
// ("GMZ044" -> "044"), the form combined range headers use for the
// closing zone.
func zoneNumber(id string) string {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	return id[i:]
}

// Zone is one entry of the static zone table: identity, on-air city name,
// source product page, and the compiled header rule. Construct with NewZone;
// the block pattern is compiled once at configuration load.
type Zone struct {
	ID        string
	City      string
	SourceURL string

	blockRe *regexp.Regexp
}

// NewZone builds a zone entry and compiles its block-isolation pattern:
// from the end of the header line, lazily up to the line before the closing
// "$" marker, or to end of input for bulletins without one. Matching is
// case-sensitive and spans lines, so a header embedded mid-line still
// anchors the block.
func NewZone(id, city, sourceURL string, rule HeaderRule) Zone {
	return Zone{
		ID:        id,
		City:      city,
		SourceURL: sourceURL,
		blockRe:   regexp.MustCompile(`(?s)(?:` + rule.headerPattern() + `)[^\n]*\n(.*?)(?:\n\$|\z)`),
	}
}

// DefaultZones is the broadcast zone table: the Miami coastal waters zone
// and the Florida Keys zone, which the Key West office bulletins under a
// combined range header.
func DefaultZones() []Zone {
	return []Zone{
		NewZone("AMZ651", "Miami",
			"https://forecast.weather.gov/product.php?site=MFL&issuedby=MFL&product=CWF",
			SoloHeader{ZoneID: "AMZ651"}),
		NewZone("GMZ044", "Keys",
			"https://forecast.weather.gov/product.php?site=NWS&issuedby=KEY&product=CWF",
			CombinedHeader{First: "GMZ042", Last: "GMZ044"}),
	}
}
