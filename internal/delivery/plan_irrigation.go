package delivery

import (
	"fmt"
	"time"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/indices"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/irrigation"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/sentinel"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/weather"
	"golang.org/x/sync/errgroup"
)

// IrrigationResult pairs the water-balance plan with the days it covers.
type IrrigationResult struct {
	Days []time.Time
	Plan *irrigation.Plan
}

// PlanIrrigation runs the irrigation pipeline for a horizon of days
// ending at endDate: the least cloudy scene of the window provides the
// Kc and stress rasters, the weather archive provides the daily ET0 and
// rainfall series. Imagery and weather are fetched concurrently.
func PlanIrrigation(field, plot string, endDate time.Time, daysAfterSowing, horizonDays int, cal properties.Calibration) (*IrrigationResult, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("horizon must be at least one day, got %d", horizonDays)
	}

	geometry, err := sentinel.GetGeometryFromGeoJSON(field, plot)
	if err != nil {
		return nil, err
	}
	latitude, longitude, err := sentinel.GetCentroidLatitudeLongitudeFromGeometry(geometry)
	if err != nil {
		return nil, err
	}

	startDate := endDate.AddDate(0, 0, -(horizonDays - 1))

	var (
		g        errgroup.Group
		selected *indices.SelectedScene
		dailies  []weather.Daily
	)
	g.Go(func() error {
		var err error
		selected, err = bestSceneForWindow(geometry, field, plot, startDate, endDate, cal)
		return err
	})
	g.Go(func() error {
		hourly, err := weather.FetchHourlyWeather(latitude, longitude, startDate, endDate, 10)
		if err != nil {
			return err
		}
		dailies, err = weather.AggregateDaily(hourly)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(dailies) > horizonDays {
		dailies = dailies[len(dailies)-horizonDays:]
	}

	days := make([]time.Time, len(dailies))
	dailyET0 := make([]float64, len(dailies))
	dailyRain := make([]float64, len(dailies))
	for i, d := range dailies {
		days[i] = d.Date
		dailyET0[i] = d.ET0
		dailyRain[i] = d.Rainfall
	}

	plan, err := irrigation.Pipeline(selected.Indexes.NDVI, selected.Indexes.NDWI, daysAfterSowing, dailyET0, dailyRain, cal.PixelSizeMeters)
	if err != nil {
		return nil, err
	}

	return &IrrigationResult{Days: days, Plan: plan}, nil
}
