package weather

import (
	"fmt"
	"sort"
	"time"
)

// Daily is one day of aggregated weather: sums for water quantities,
// means for state quantities. LeafWetnessHours counts the hours with
// relative humidity at or above 90%, a standard proxy when no wetness
// sensor series is available.
type Daily struct {
	Date             time.Time
	ET0              float64
	Rainfall         float64
	MeanTemperature  float64
	MeanHumidity     float64
	SoilTemperature  float64
	WindSpeed        float64
	SunshineHours    float64
	LeafWetnessHours float64
}

const leafWetnessHumidity = 90.0

// AggregateDaily folds the hourly series into one Daily per calendar
// date, ordered by date.
func AggregateDaily(hourly *HourlyData) ([]Daily, error) {
	if len(hourly.Time) == 0 {
		return nil, fmt.Errorf("empty hourly series")
	}
	n := len(hourly.Time)
	for name, series := range map[string][]float64{
		"temperature":       hourly.Temperature,
		"relative humidity": hourly.RelativeHumidity,
		"precipitation":     hourly.Precipitation,
		"soil temperature":  hourly.SoilTemperature,
		"wind speed":        hourly.WindSpeed,
		"sunshine duration": hourly.SunshineDuration,
		"ET0":               hourly.ET0,
	} {
		if len(series) != n {
			return nil, fmt.Errorf("%s series has %d samples, time axis has %d", name, len(series), n)
		}
	}

	type accumulator struct {
		et0, rain, tempSum, rhSum, soilSum, windSum, sunshineSeconds float64
		wetHours                                                     float64
		samples                                                      int
	}

	days := make(map[string]*accumulator)
	for i, t := range hourly.Time {
		if len(t) < 10 {
			return nil, fmt.Errorf("malformed timestamp %q", t)
		}
		date := t[:10]
		acc, ok := days[date]
		if !ok {
			acc = &accumulator{}
			days[date] = acc
		}
		acc.et0 += hourly.ET0[i]
		acc.rain += hourly.Precipitation[i]
		acc.tempSum += hourly.Temperature[i]
		acc.rhSum += hourly.RelativeHumidity[i]
		acc.soilSum += hourly.SoilTemperature[i]
		acc.windSum += hourly.WindSpeed[i]
		acc.sunshineSeconds += hourly.SunshineDuration[i]
		if hourly.RelativeHumidity[i] >= leafWetnessHumidity {
			acc.wetHours++
		}
		acc.samples++
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result := make([]Daily, 0, len(dates))
	for _, date := range dates {
		acc := days[date]
		parsedDate, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %v", err)
		}
		samples := float64(acc.samples)
		result = append(result, Daily{
			Date:             parsedDate,
			ET0:              acc.et0,
			Rainfall:         acc.rain,
			MeanTemperature:  acc.tempSum / samples,
			MeanHumidity:     acc.rhSum / samples,
			SoilTemperature:  acc.soilSum / samples,
			WindSpeed:        acc.windSum / samples,
			SunshineHours:    acc.sunshineSeconds / 3600,
			LeafWetnessHours: acc.wetHours,
		})
	}
	return result, nil
}

// TotalRainfall sums rainfall across the aggregated days.
func TotalRainfall(days []Daily) float64 {
	var total float64
	for _, d := range days {
		total += d.Rainfall
	}
	return total
}
