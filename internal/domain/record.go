package domain

import "time"

// RetrievedLayout is the timestamp format the downstream graphics system
// expects in tabular output, e.g. "2026-03-05 08:30 AM".
const RetrievedLayout = "2006-01-02 03:04 PM"

// ForecastRecord is one zone's extracted forecast for one run. Created
// fresh per zone per run and never mutated after assembly. The four alert
// flags are materialized from an AlertFlags pair so every serialization
// carries them already consistent.
type ForecastRecord struct {
	Zone               string       `json:"zone"`
	City               string       `json:"city"`
	Day                PeriodWindow `json:"day"`
	Forecast           string       `json:"forecast"`
	SmallCraftCaution  bool         `json:"small_craft_caution"`
	SmallCraftAdvisory bool         `json:"small_craft_advisory"`
	BothMentioned      bool         `json:"both_mentioned"`
	NoAlert            bool         `json:"no_alert"`
	AdvisoryText       string       `json:"advisory_text,omitempty"`
	Winds              string       `json:"winds,omitempty"`
	Seas               string       `json:"seas,omitempty"`
	Intracoastal       string       `json:"intracoastal,omitempty"`
	Retrieved          time.Time    `json:"retrieved"`
}
