package domain

import (
	"regexp"
	"strings"
)

var (
	// windRe captures the wind group of a forecast sentence: optional
	// direction (word or abbreviation, optionally ranged with "to"), the
	// word wind(s), an optional around/near qualifier, and a one- or
	// two-digit speed or speed range, all anchored by a knot unit.
	// "NORTHEAST WINDS 10 TO 15 KNOTS" -> "NORTHEAST WINDS 10 TO 15".
	windRe = regexp.MustCompile(`(?i)\b((?:north|northeast|east|southeast|south|southwest|west|northwest|N|NE|E|SE|S|SW|W|NW)(?:\s*to\s*(?:north|northeast|east|southeast|south|southwest|west|northwest|N|NE|E|SE|S|SW|W|NW))?\s*winds?\s*(?:around\s*|near\s*)?\d{1,2}(?:\s*(?:to|-)\s*\d{1,2})?)\s*(?:kt|kts|knots)`)

	// gustRe finds a gust value anywhere in the period text; the unit is
	// optional because gusts often close a sentence without one.
	// "WITH GUSTS UP TO 25 KT" -> "25".
	gustRe = regexp.MustCompile(`(?i)gusts?\s*(?:up to\s*)?(\d{1,2})\s*(?:kt|kts|knots)?`)

	// seasRe captures the significant wave height range and an optional
	// occasional peak. "SEAS 4 TO 6 FEET, OCCASIONALLY TO 8 FEET" ->
	// groups "4 TO 6" and "8". Decimals appear in calm-water bulletins.
	seasRe = regexp.MustCompile(`(?i)Seas\s+(?:around\s+)?([\d.]+(?:\s*(?:to|-)\s*[\d.]+)?)\s*(?:feet|ft)(?:,\s*occasionally\s*(?:to\s*)?([\d.]+)\s*(?:feet|ft))?`)

	// seasAroundRe detects the "Seas around" phrasing, which the short
	// form preserves as an "around " prefix.
	seasAroundRe = regexp.MustCompile(`(?i)\bSeas\s+around\s+`)

	// inshoreRe captures the sheltered-water condition sentence up to its
	// closing period. "INTRACOASTAL WATERS A MODERATE CHOP." ->
	// "A MODERATE CHOP".
	inshoreRe = regexp.MustCompile(`(?i)(?:Intracoastal|Nearshore)\s+waters\s+(?:will be\s+|are\s+)?([^.]+)`)

	// inshoreCutRe trims the condition at a trailing clause; only the
	// leading state matters for the graphic.
	inshoreCutRe = regexp.MustCompile(`,|becoming`)

	// directionTokenRe matches a standalone compass token in either its
	// full-word or abbreviated spelling, any case.
	directionTokenRe = regexp.MustCompile(`(?i)\b(?:north|northeast|east|southeast|south|southwest|west|northwest|n|ne|e|se|s|sw|w|nw)\b`)

	windWordRe  = regexp.MustCompile(`(?i)\bwinds?\b`)
	qualifierRe = regexp.MustCompile(`(?i)\b(?:around|near)\b\s*`)
	rangeSepRe  = regexp.MustCompile(`(?i)\s*(?:\bto\b|-)\s*`)
	unitRe      = regexp.MustCompile(`(?i)\b(?:knots?|kts?)\b`)
)

// directionAbbrev maps full compass words to the abbreviations used on air.
var directionAbbrev = map[string]string{
	"north":     "N",
	"northeast": "NE",
	"east":      "E",
	"southeast": "SE",
	"south":     "S",
	"southwest": "SW",
	"west":      "W",
	"northwest": "NW",
}

// NormalizeWind rewrites a wind phrase into its short broadcast form:
// compass words become uppercase abbreviations, "to" ranges become hyphens,
// the words wind/winds/around/near drop out, and any knot spelling becomes
// "kts". Idempotent on its own output.
func NormalizeWind(text string) string {
	if text == "" {
		return ""
	}

	text = directionTokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		if abbr, ok := directionAbbrev[strings.ToLower(tok)]; ok {
			return abbr
		}
		return strings.ToUpper(tok)
	})
	text = windWordRe.ReplaceAllString(text, "")
	text = qualifierRe.ReplaceAllString(text, "")
	text = rangeSepRe.ReplaceAllString(text, "-")
	text = unitRe.ReplaceAllString(text, "kts")

	return collapseSpaces(text)
}

// ExtractWind pulls the wind group out of period text and normalizes it,
// appending any gust parenthetically: "N WIND 15 TO 20 KT WITH GUSTS UP TO
// 25 KT" -> "N 15-20 (25) kts". Empty when no wind group parses.
func ExtractWind(text string) string {
	m := windRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	wind := NormalizeWind(m[1])
	if g := gustRe.FindStringSubmatch(text); g != nil {
		wind += " (" + g[1] + ")"
	}
	return wind + " kts"
}

// ExtractSeas pulls the wave-height range out of period text:
// "SEAS 4 TO 6 FEET" -> "4-6 ft", "SEAS AROUND 3 FEET, OCCASIONALLY TO
// 5 FEET" -> "around 3 (5) ft". Empty when no seas group parses.
func ExtractSeas(text string) string {
	m := seasRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	rng := rangeSepRe.ReplaceAllString(strings.TrimSpace(m[1]), "-")
	if seasAroundRe.MatchString(text) {
		rng = "around " + rng
	}
	if m[2] != "" {
		rng += " (" + m[2] + ")"
	}
	return collapseSpaces(rng) + " ft"
}

// inshoreSeverity orders the qualitative vocabulary from worst to calmest;
// the first term present in the description wins.
var inshoreSeverity = []struct {
	term  string
	label string
}{
	{"rough", "rough"},
	{"choppy", "choppy"},
	{"moderate", "mod chop"},
	{"light", "light chop"},
	{"smooth", "smooth"},
}

// ExtractInshore pulls the intracoastal or nearshore water condition out of
// period text and maps it to the fixed vocabulary: "INTRACOASTAL WATERS
// ROUGH IN EXPOSED AREAS" -> "rough". Descriptions outside the vocabulary
// pass through lower-cased and trimmed. Empty when no condition sentence
// is present.
func ExtractInshore(text string) string {
	m := inshoreRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	desc := strings.ToLower(strings.TrimSpace(m[1]))
	desc = strings.TrimSpace(inshoreCutRe.Split(desc, 2)[0])
	desc = strings.TrimSpace(strings.ReplaceAll(desc, "in exposed areas", ""))

	for _, s := range inshoreSeverity {
		if strings.Contains(desc, s.term) {
			return s.label
		}
	}
	return collapseSpaces(desc)
}
