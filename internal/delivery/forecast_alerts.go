package delivery

import (
	"fmt"
	"time"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/forecast"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/sentinel"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/weather"
)

// The forecast model consumes a sliding window of this many days of
// hourly history.
const forecastWindowDays = 30

// ForecastResult is the predicted horizon plus any anomaly alerts.
type ForecastResult struct {
	Predictions []forecast.PredictionRow
	Alerts      []forecast.Alert
}

// ForecastAlerts fetches the recent hourly history of the field centroid,
// asks the forecast service for the next horizon, and scans it for
// weather anomalies.
func ForecastAlerts(field, plot string, endDate time.Time) (*ForecastResult, error) {
	geometry, err := sentinel.GetGeometryFromGeoJSON(field, plot)
	if err != nil {
		return nil, err
	}
	latitude, longitude, err := sentinel.GetCentroidLatitudeLongitudeFromGeometry(geometry)
	if err != nil {
		return nil, err
	}

	startDate := endDate.AddDate(0, 0, -forecastWindowDays)
	hourly, err := weather.FetchHourlyWeather(latitude, longitude, startDate, endDate, 10)
	if err != nil {
		return nil, err
	}

	history := make([]forecast.HistoryRow, 0, len(hourly.Time))
	for i, t := range hourly.Time {
		timestamp, err := time.Parse("2006-01-02T15:04", t)
		if err != nil {
			return nil, fmt.Errorf("failed to parse hourly timestamp %q: %v", t, err)
		}
		history = append(history, forecast.HistoryRow{
			Time:            timestamp,
			Rainfall:        hourly.Precipitation[i],
			AirTemperature:  hourly.Temperature[i],
			SoilTemperature: hourly.SoilTemperature[i],
		})
	}

	client := forecast.NewClient(properties.ForecastServiceURL())
	predictions, err := client.Predict(history)
	if err != nil {
		return nil, err
	}

	return &ForecastResult{
		Predictions: predictions,
		Alerts:      forecast.DetectAnomalies(predictions, forecast.DefaultThresholds()),
	}, nil
}
