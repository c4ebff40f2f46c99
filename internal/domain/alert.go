package domain

import (
	"regexp"
	"strings"
)

// advisoryTextRe captures the first "..."-delimited headline in a zone
// block, e.g. "...SMALL CRAFT ADVISORY IN EFFECT THROUGH TONIGHT..." ->
// "SMALL CRAFT ADVISORY IN EFFECT THROUGH TONIGHT". Dot matches newline;
// headlines wrap.
var advisoryTextRe = regexp.MustCompile(`(?s)\.\.\.(.*?)\.\.\.`)

// AlertFlags records which small-craft hazard terms a zone block mentions.
// Caution and Advisory are the stored detection pair; Both and NoAlert are
// derived from them so the four flags cannot disagree.
type AlertFlags struct {
	Caution  bool
	Advisory bool
}

// Both reports whether the block mentioned caution and advisory together.
func (f AlertFlags) Both() bool { return f.Caution && f.Advisory }

// NoAlert reports whether the block mentioned neither term.
func (f AlertFlags) NoAlert() bool { return !f.Caution && !f.Advisory }

// DetectAlerts scans a full zone block for small-craft caution/advisory
// language. The scan covers the whole block, not the period-trimmed text,
// because a hazard headline applies across periods. The returned headline
// keeps the block's original case and is empty when no alert term is
// present or no "..." pair delimits one.
func DetectAlerts(block string) (AlertFlags, string) {
	lower := strings.ToLower(block)
	flags := AlertFlags{
		Caution:  strings.Contains(lower, "caution"),
		Advisory: strings.Contains(lower, "advisory"),
	}
	if flags.NoAlert() {
		return flags, ""
	}

	m := advisoryTextRe.FindStringSubmatch(block)
	if m == nil {
		return flags, ""
	}
	return flags, strings.TrimSpace(m[1])
}
