// Command validate integrity-checks a produced marine forecast CSV before it
// is handed to the downstream graphics system. It verifies the header schema,
// alert-flag domain and consistency, zone and day domains, extracted field
// shapes, and timestamp parseability.
//
// Usage:
//
//	go run ./cmd/validate -csv output/marine_forecast.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/coastalwx/marine-forecast-etl/internal/adapter/csvfile"
	"github.com/coastalwx/marine-forecast-etl/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "", "path to the produced marine forecast CSV")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*csvPath); code != 0 {
		os.Exit(code)
	}
}

func run(path string) int {
	fmt.Println("=== Marine Forecast CSV Validation ===")
	fmt.Println()

	header, rows, err := loadCSV(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load CSV: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateSchema(header),
		validateFlags(rows),
		validateDomains(rows),
		validateFieldShapes(rows),
		validateTimestamps(rows),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Rows: %d\n", len(rows))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Data loading ──

// csvRow is a parsed CSV row with field values keyed by header name.
type csvRow struct {
	lineNum int
	fields  map[string]string
}

// loadCSV reads the file into header and rows. A header-only file is valid:
// a run that found no zones still writes one.
func loadCSV(path string) ([]string, []csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty file: %s", path)
	}

	header := all[0]
	var rows []csvRow
	for i, row := range all[1:] {
		fields := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(row) {
				fields[h] = row[j]
			}
		}
		rows = append(rows, csvRow{lineNum: i + 2, fields: fields})
	}
	return header, rows, nil
}

// ── Phase 1: Schema ──
// The downstream import matches columns by position, so order matters.

func validateSchema(header []string) *phase {
	p := &phase{name: "Phase 1: Schema (header order)"}

	if len(header) != len(csvfile.Columns) {
		p.errorf("header has %d columns, want %d", len(header), len(csvfile.Columns))
	}
	for i, want := range csvfile.Columns {
		if i >= len(header) {
			p.errorf("column %d missing, want %q", i, want)
			continue
		}
		if header[i] != want {
			p.errorf("column %d is %q, want %q", i, header[i], want)
		}
	}
	return p
}

// ── Phase 2: Alert Flags ──
// The four flags are one detection pair plus two derived values and must
// agree on every row.

var flagCols = []string{"SmallCraftCaution", "SmallCraftAdvisory", "BothMentioned", "NoAlert"}

func validateFlags(rows []csvRow) *phase {
	p := &phase{name: "Phase 2: Alert flags (domain + consistency)"}

	for _, row := range rows {
		ok := true
		for _, col := range flagCols {
			if v := row.fields[col]; v != "0" && v != "1" {
				p.errorf("line %d: %s is %q, want 0 or 1", row.lineNum, col, v)
				ok = false
			}
		}
		if !ok {
			continue
		}

		caution := row.fields["SmallCraftCaution"] == "1"
		advisory := row.fields["SmallCraftAdvisory"] == "1"
		both := row.fields["BothMentioned"] == "1"
		noAlert := row.fields["NoAlert"] == "1"

		if both != (caution && advisory) {
			p.errorf("line %d: BothMentioned=%v inconsistent with caution=%v advisory=%v",
				row.lineNum, both, caution, advisory)
		}
		if noAlert != (!caution && !advisory) {
			p.errorf("line %d: NoAlert=%v inconsistent with caution=%v advisory=%v",
				row.lineNum, noAlert, caution, advisory)
		}
		if noAlert && row.fields["AdvisoryText"] != "" {
			p.errorf("line %d: NoAlert row has AdvisoryText %q", row.lineNum, row.fields["AdvisoryText"])
		}
	}
	return p
}

// ── Phase 3: Zone and Day domains ──

func validateDomains(rows []csvRow) *phase {
	p := &phase{name: "Phase 3: Zone and Day domains"}

	cities := map[string]string{}
	for _, z := range domain.DefaultZones() {
		cities[z.ID] = z.City
	}

	for _, row := range rows {
		zone := row.fields["Zone"]
		city, known := cities[zone]
		if !known {
			p.errorf("line %d: unknown zone %q", row.lineNum, zone)
		} else if row.fields["City"] != city {
			p.errorf("line %d: city %q, want %q for zone %s", row.lineNum, row.fields["City"], city, zone)
		}

		if day := row.fields["Day"]; day != string(domain.PeriodToday) && day != string(domain.PeriodTomorrow) {
			p.errorf("line %d: day %q not in {Today, Tomorrow}", row.lineNum, day)
		}
		if row.fields["Forecast"] == "" {
			p.errorf("line %d: empty Forecast", row.lineNum)
		}
	}
	return p
}

// ── Phase 4: Field shapes ──
// Winds and Seas are either empty or in the normalized short forms the
// extractors produce, e.g. "E 15-20 (25) kts" and "4-6 ft".

var (
	windsShapeRe = regexp.MustCompile(`^(?:N|NE|E|SE|S|SW|W|NW)(?:-(?:N|NE|E|SE|S|SW|W|NW))? \d{1,2}(?:-\d{1,2})?(?: \(\d{1,2}\))? kts$`)
	seasShapeRe  = regexp.MustCompile(`^(?:around )?[\d.]+(?:-[\d.]+)?(?: \([\d.]+\))? ft$`)
)

func validateFieldShapes(rows []csvRow) *phase {
	p := &phase{name: "Phase 4: Field shapes (Winds/Seas)"}

	for _, row := range rows {
		if w := row.fields["Winds"]; w != "" && !windsShapeRe.MatchString(w) {
			p.errorf("line %d: Winds %q not in short form", row.lineNum, w)
		}
		if s := row.fields["Seas"]; s != "" && !seasShapeRe.MatchString(s) {
			p.errorf("line %d: Seas %q not in short form", row.lineNum, s)
		}
	}
	return p
}

// ── Phase 5: Timestamps ──

func validateTimestamps(rows []csvRow) *phase {
	p := &phase{name: "Phase 5: Retrieved timestamps"}

	for _, row := range rows {
		v := row.fields["Retrieved"]
		if _, err := time.Parse(domain.RetrievedLayout, v); err != nil {
			p.errorf("line %d: Retrieved %q does not parse as %q", row.lineNum, v, domain.RetrievedLayout)
		}
	}
	return p
}
