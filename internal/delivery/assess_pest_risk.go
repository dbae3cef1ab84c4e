package delivery

import (
	"fmt"
	"time"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/indices"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/pest"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/sentinel"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/weather"
	"golang.org/x/sync/errgroup"
)

// Weather window feeding the risk models: rainfall accumulates over the
// whole window, the other inputs come from its most recent day.
const pestWeatherWindowDays = 30

// PestRiskResult is the three-model assessment for one scene date.
type PestRiskResult struct {
	Timestamp  time.Time
	Assessment pest.Assessment
}

// AssessPestRisk runs the pest pipeline: the best scene of the window
// provides the index rasters, the weather archive the scalar inputs, and
// the three risk models score every pixel. cropStage is the BBCH-style
// growth stage code of the field.
func AssessPestRisk(field, plot string, endDate time.Time, cropStage int, cal properties.Calibration) (*PestRiskResult, error) {
	geometry, err := sentinel.GetGeometryFromGeoJSON(field, plot)
	if err != nil {
		return nil, err
	}
	latitude, longitude, err := sentinel.GetCentroidLatitudeLongitudeFromGeometry(geometry)
	if err != nil {
		return nil, err
	}

	startDate := endDate.AddDate(0, 0, -pestWeatherWindowDays)

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

	if len(dailies) == 0 {
		return nil, fmt.Errorf("weather archive returned no days for %s/%s", field, plot)
	}
	latest := dailies[len(dailies)-1]

	pestWeather := pest.Weather{
		Temperature:      latest.MeanTemperature,
		RelativeHumidity: latest.MeanHumidity,
		Rainfall:         weather.TotalRainfall(dailies),
		LeafWetnessHours: latest.LeafWetnessHours,
		SunshineHours:    latest.SunshineHours,
	}

	pestIndices := pest.Indices{
		NDVI:    selected.Indexes.NDVI,
		BSI:     selected.Indexes.BSI,
		NIR:     selected.Scene.NIR,
		RedEdge: selected.Scene.RedEdge,
	}

	assessment := pest.Assess(pestWeather, pestIndices, cropStage, cal)

	return &PestRiskResult{Timestamp: selected.Timestamp, Assessment: assessment}, nil
}
