package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// PeriodWindow tags which forecast day a run extracts.
type PeriodWindow string

const (
	PeriodToday    PeriodWindow = "Today"
	PeriodTomorrow PeriodWindow = "Tomorrow"
)

// ErrPeriodNotFound reports that a zone block has no lines under the
// selected period's headers. Like ErrZoneNotFound this is an expected
// per-zone skip.
var ErrPeriodNotFound = errors.New("no forecast lines for selected period")

// periodCutoffRe finds stray next-period words in joined forecast text.
// Bulletins wrap long headers mid-line, so a following period's label can
// land inside a captured line instead of opening a fresh ".LABEL" line;
// everything from the first such word on is discarded.
var periodCutoffRe = regexp.MustCompile(`(?i)\b(?:TONIGHT|NIGHT|MON|TUE|WED|THU|FRI|SAT|SUN|MONDAY|TUESDAY|WEDNESDAY|THURSDAY|FRIDAY|SATURDAY|SUNDAY)\b`)

// SelectWindow returns the period window and its acceptable header labels
// for the given timestamp. Morning runs read today's forecast; from noon
// on, today's entry is stale for the evening broadcast, so tomorrow's is
// read instead. Labels are uppercase to match bulletin headers.
func SelectWindow(now time.Time) (PeriodWindow, []string) {
	if now.Hour() < 12 {
		return PeriodToday, []string{
			"TODAY",
			strings.ToUpper(now.Format("Mon")),
			strings.ToUpper(now.Format("Monday")),
		}
	}
	tomorrow := now.AddDate(0, 0, 1)
	return PeriodTomorrow, []string{
		strings.ToUpper(tomorrow.Format("Mon")),
		strings.ToUpper(tomorrow.Format("Monday")),
	}
}

// ExtractPeriodText pulls the selected period's forecast out of a zone
// block. A line starting with "." plus one of the labels opens capture and
// contributes its remainder after the label; a later "."-led line with a
// different label closes capture. Captured lines are joined with single
// spaces, internal runs collapsed, and the result truncated at the first
// stray next-period word.
func ExtractPeriodText(block string, labels []string) (string, error) {
	var captured []string
	capture := false

lines:
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, label := range labels {
			if strings.HasPrefix(line, "."+label) {
				capture = true
				if rest := stripPeriodLabel(line, labels); rest != "" {
					captured = append(captured, collapseSpaces(rest))
				}
				continue lines
			}
		}

		if capture && strings.HasPrefix(line, ".") {
			break
		}
		if capture {
			captured = append(captured, collapseSpaces(line))
		}
	}

	if len(captured) == 0 {
		return "", fmt.Errorf("headers %v: %w", labels, ErrPeriodNotFound)
	}

	text := strings.Join(captured, " ")
	if loc := periodCutoffRe.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}
	return strings.TrimSpace(text), nil
}

// stripPeriodLabel removes the dot-led label and its trailing periods from
// a header line, leaving any forecast text sharing the line. The longest
// matching label is stripped so ".SATURDAY..." loses "SATURDAY", not the
// "SAT" prefix.
func stripPeriodLabel(line string, labels []string) string {
	ordered := make([]string, len(labels))
	copy(ordered, labels)
	sort.Slice(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	for _, label := range ordered {
		if strings.HasPrefix(line, "."+label) {
			line = strings.TrimLeft(line[len(label)+1:], ".")
			break
		}
	}
	return strings.TrimSpace(line)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
