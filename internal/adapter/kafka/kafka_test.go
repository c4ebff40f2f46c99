package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastalwx/marine-forecast-etl/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	retrieved := time.Date(2026, time.March, 5, 8, 30, 0, 0, time.UTC)
	rec := domain.ForecastRecord{
		Zone:               "AMZ651",
		City:               "Miami",
		Day:                domain.PeriodToday,
		Forecast:           "EAST WINDS 15 TO 20 KNOTS.",
		SmallCraftAdvisory: true,
		Winds:              "E 15-20 kts",
		Retrieved:          retrieved,
	}

	msg, err := serializeToMessage(rec)
	require.NoError(t, err)

	assert.Equal(t, []byte("AMZ651"), msg.Key)
	assert.Contains(t, string(msg.Value), `"zone":"AMZ651"`)
	assert.Contains(t, string(msg.Value), `"small_craft_advisory":true`)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "zone", msg.Headers[0].Key)
	assert.Equal(t, []byte("AMZ651"), msg.Headers[0].Value)
	assert.Equal(t, "day", msg.Headers[1].Key)
	assert.Equal(t, []byte("Today"), msg.Headers[1].Value)
	assert.Equal(t, "schema", msg.Headers[2].Key)
	assert.Equal(t, []byte("marine.forecast.v1"), msg.Headers[2].Value)
}

func TestSerializeToMessage_StableKeyPerZone(t *testing.T) {
	recA := domain.ForecastRecord{Zone: "GMZ044", City: "Keys", Day: domain.PeriodToday}
	recB := domain.ForecastRecord{Zone: "GMZ044", City: "Keys", Day: domain.PeriodTomorrow}

	msgA, err := serializeToMessage(recA)
	require.NoError(t, err)
	msgB, err := serializeToMessage(recB)
	require.NoError(t, err)

	assert.Equal(t, msgA.Key, msgB.Key)
}
