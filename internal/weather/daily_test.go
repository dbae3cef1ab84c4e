package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoDayHourly() *HourlyData {
	return &HourlyData{
		Time: []string{
			"2024-05-01T10:00", "2024-05-01T11:00", "2024-05-01T12:00",
			"2024-05-02T10:00", "2024-05-02T11:00",
		},
		Temperature:      []float64{20, 22, 24, 18, 20},
		RelativeHumidity: []float64{85, 92, 95, 60, 70},
		Precipitation:    []float64{0, 1.5, 0.5, 0, 0},
		SoilTemperature:  []float64{15, 16, 17, 14, 15},
		WindSpeed:        []float64{10, 12, 14, 8, 10},
		SunshineDuration: []float64{1800, 3600, 3600, 3600, 1800},
		ET0:              []float64{0.2, 0.3, 0.4, 0.2, 0.2},
	}
}

func TestAggregateDaily_SumsAndMeans(t *testing.T) {
	days, err := AggregateDaily(twoDayHourly())
	require.NoError(t, err)
	require.Len(t, days, 2)

	first := days[0]
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.InDelta(t, 0.9, first.ET0, 1e-9)
	assert.InDelta(t, 2.0, first.Rainfall, 1e-9)
	assert.InDelta(t, 22.0, first.MeanTemperature, 1e-9)
	assert.InDelta(t, (85.0+92+95)/3, first.MeanHumidity, 1e-9)
	assert.InDelta(t, 16.0, first.SoilTemperature, 1e-9)
	assert.InDelta(t, 12.0, first.WindSpeed, 1e-9)
	assert.InDelta(t, 2.5, first.SunshineHours, 1e-9)
	// Two of three hours at or above 90% RH.
	assert.Equal(t, 2.0, first.LeafWetnessHours)
}

func TestAggregateDaily_OrderedByDate(t *testing.T) {
	hourly := twoDayHourly()
	// Shuffle the second day in front of the first.
	for _, i := range []int{3, 4} {
		hourly.Time[i-3], hourly.Time[i] = hourly.Time[i], hourly.Time[i-3]
	}

	days, err := AggregateDaily(hourly)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.True(t, days[0].Date.Before(days[1].Date))
}

func TestAggregateDaily_EmptySeries(t *testing.T) {
	_, err := AggregateDaily(&HourlyData{})
	assert.Error(t, err)
}

func TestAggregateDaily_MismatchedSeries(t *testing.T) {
	hourly := twoDayHourly()
	hourly.ET0 = hourly.ET0[:2]

	_, err := AggregateDaily(hourly)
	assert.Error(t, err)
}

func TestAggregateDaily_MalformedTimestamp(t *testing.T) {
	hourly := twoDayHourly()
	hourly.Time[0] = "garbage"

	_, err := AggregateDaily(hourly)
	assert.Error(t, err)
}

func TestTotalRainfall(t *testing.T) {
	days, err := AggregateDaily(twoDayHourly())
	require.NoError(t, err)

	assert.InDelta(t, 2.0, TotalRainfall(days), 1e-9)
}
