package domain

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleBulletin is a trimmed CWF product in the shape the Miami and Key
// West offices issue: multiple zone sections, each closed by a "$$" line,
// with dot-led period headers. Issued the morning of Thursday 2026-03-05.
const sampleBulletin = `000
FZUS52 KMFL 051000
CWFMFL

Coastal Waters Forecast
National Weather Service Miami FL
500 AM EST Thu Mar 5 2026

AMZ600-052100-
.SYNOPSIS...High pressure over the western Atlantic will build through
the weekend.

$$

AMZ651-052100-
Coastal waters from Deerfield Beach to Ocean Reef FL out 20 NM-
500 AM EST Thu Mar 5 2026

...SMALL CRAFT ADVISORY IN EFFECT THROUGH THIS EVENING...

.TODAY...East winds 15 to 20 knots with gusts up to 25 knots.
Seas 4 to 6 feet. Intracoastal waters rough in exposed areas.
.TONIGHT...East winds 10 to 15 knots. Seas 3 to 5 feet.
.FRIDAY...East winds around 10 knots. Seas 2 to 4 feet.
Intracoastal waters a moderate chop.

$$

GMZ042>044-052100-
Coastal waters of the Florida Keys out 20 NM-
500 AM EST Thu Mar 5 2026

.TODAY...Southeast winds 10 to 15 knots. Seas 2 to 4 feet.
Nearshore waters a light chop.
.TONIGHT...South winds around 10 knots. Seas 2 feet or less.
.FRIDAY...Southwest winds 5 to 10 knots. Seas around 2 feet.

$$
`

func miamiZone() Zone {
	return NewZone("AMZ651", "Miami", "http://example.test/cwf", SoloHeader{ZoneID: "AMZ651"})
}

func keysZone() Zone {
	return NewZone("GMZ044", "Keys", "http://example.test/cwf", CombinedHeader{First: "GMZ042", Last: "GMZ044"})
}

func TestBuildZoneRecord(t *testing.T) {
	t.Run("morning run extracts today", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(thursdayMorning))
		defer SetClock(nil)

		record, err := BuildZoneRecord(sampleBulletin, miamiZone())

		require.NoError(t, err)
		assert.Equal(t, "AMZ651", record.Zone)
		assert.Equal(t, "Miami", record.City)
		assert.Equal(t, PeriodToday, record.Day)
		assert.Equal(t,
			"East winds 15 to 20 knots with gusts up to 25 knots. Seas 4 to 6 feet. Intracoastal waters rough in exposed areas.",
			record.Forecast)
		assert.False(t, record.SmallCraftCaution)
		assert.True(t, record.SmallCraftAdvisory)
		assert.False(t, record.BothMentioned)
		assert.False(t, record.NoAlert)
		assert.Equal(t, "SMALL CRAFT ADVISORY IN EFFECT THROUGH THIS EVENING", record.AdvisoryText)
		assert.Equal(t, "E 15-20 (25) kts", record.Winds)
		assert.Equal(t, "4-6 ft", record.Seas)
		assert.Equal(t, "rough", record.Intracoastal)
		assert.Equal(t, thursdayMorning, record.Retrieved)
	})

	t.Run("afternoon run extracts tomorrow", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(thursdayAfternoon))
		defer SetClock(nil)

		record, err := BuildZoneRecord(sampleBulletin, miamiZone())

		require.NoError(t, err)
		assert.Equal(t, PeriodTomorrow, record.Day)
		assert.Equal(t,
			"East winds around 10 knots. Seas 2 to 4 feet. Intracoastal waters a moderate chop.",
			record.Forecast)
		assert.Equal(t, "E 10 kts", record.Winds)
		assert.Equal(t, "2-4 ft", record.Seas)
		assert.Equal(t, "mod chop", record.Intracoastal)
	})

	t.Run("combined range zone", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(thursdayMorning))
		defer SetClock(nil)

		record, err := BuildZoneRecord(sampleBulletin, keysZone())

		require.NoError(t, err)
		assert.Equal(t, "GMZ044", record.Zone)
		assert.Equal(t, "Keys", record.City)
		assert.Equal(t, "SE 10-15 kts", record.Winds)
		assert.Equal(t, "2-4 ft", record.Seas)
		assert.Equal(t, "light chop", record.Intracoastal)
		assert.True(t, record.NoAlert)
		assert.False(t, record.SmallCraftCaution)
		assert.False(t, record.SmallCraftAdvisory)
		assert.False(t, record.BothMentioned)
		assert.Empty(t, record.AdvisoryText)
	})

	t.Run("identical inputs build identical records", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(thursdayMorning))
		defer SetClock(nil)

		first, err := BuildZoneRecord(sampleBulletin, miamiZone())
		require.NoError(t, err)
		second, err := BuildZoneRecord(sampleBulletin, miamiZone())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("zone missing from bulletin", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(thursdayMorning))
		defer SetClock(nil)

		bulletin := "GMZ042>044-052100-\n.TODAY...Southeast winds.\n$$\n"
		_, err := BuildZoneRecord(bulletin, miamiZone())

		assert.ErrorIs(t, err, ErrZoneNotFound)
		assert.Contains(t, err.Error(), "AMZ651")
	})

	t.Run("period header with no content", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(thursdayMorning))
		defer SetClock(nil)

		bulletin := "AMZ651-052100-\n.TODAY...\n.TONIGHT...East winds 10 knots.\n$$\n"
		_, err := BuildZoneRecord(bulletin, miamiZone())

		assert.ErrorIs(t, err, ErrPeriodNotFound)
	})
}

// TestBuildZoneRecordAdvisoryShortForm covers the canonical advisory
// bulletin shape end to end: headline flags, wind with gusts, seas range,
// and the exposed-areas intracoastal wording.
func TestBuildZoneRecordAdvisoryShortForm(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(thursdayMorning))
	defer SetClock(nil)

	bulletin := "AMZ651-052100-\n" +
		"Coastal waters from Deerfield Beach to Ocean Reef FL-\n\n" +
		".TODAY...SMALL CRAFT ADVISORY...N WIND 15 TO 20 KT WITH GUSTS UP TO 25 KT.\n" +
		"SEAS 4 TO 6 FEET. INTRACOASTAL WATERS ROUGH IN EXPOSED AREAS.\n\n$$\n"

	record, err := BuildZoneRecord(bulletin, miamiZone())

	require.NoError(t, err)
	assert.True(t, record.SmallCraftAdvisory)
	assert.False(t, record.SmallCraftCaution)
	assert.Equal(t, "N 15-20 (25) kts", record.Winds)
	assert.Equal(t, "4-6 ft", record.Seas)
	assert.Equal(t, "rough", record.Intracoastal)
}
