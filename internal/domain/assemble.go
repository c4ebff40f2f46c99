package domain

import "fmt"

// BuildZoneRecord runs the full extraction chain for one zone against its
// bulletin: block isolation, alert detection, period selection, field
// extraction. Composition only; each stage keeps its own contract. The
// timestamp comes from the package clock once per call, so the period
// decision and the Retrieved stamp always agree.
func BuildZoneRecord(bulletin string, zone Zone) (ForecastRecord, error) {
	block, err := ExtractZoneBlock(bulletin, zone)
	if err != nil {
		return ForecastRecord{}, fmt.Errorf("zone %s: %w", zone.ID, err)
	}

	flags, advisoryText := DetectAlerts(block)

	now := clock.Now()
	window, labels := SelectWindow(now)
	forecast, err := ExtractPeriodText(block, labels)
	if err != nil {
		return ForecastRecord{}, fmt.Errorf("zone %s: %w", zone.ID, err)
	}

	return ForecastRecord{
		Zone:               zone.ID,
		City:               zone.City,
		Day:                window,
		Forecast:           forecast,
		SmallCraftCaution:  flags.Caution,
		SmallCraftAdvisory: flags.Advisory,
		BothMentioned:      flags.Both(),
		NoAlert:            flags.NoAlert(),
		AdvisoryText:       advisoryText,
		Winds:              ExtractWind(forecast),
		Seas:               ExtractSeas(forecast),
		Intracoastal:       ExtractInshore(forecast),
		Retrieved:          now,
	}, nil
}
