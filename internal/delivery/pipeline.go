package delivery

import (
	"time"

	"github.com/airbusgeo/godal"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/indices"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/sentinel"
)

// Probe every date in the window; dates without a pass are cheap, the
// missing-scene skip list remembers them across runs.
const satelliteIntervalDays = 1

// bestSceneForWindow fetches the scene time series for the field plot and
// selects the least obstructed acquisition.
func bestSceneForWindow(geometry *godal.Geometry, field, plot string, startDate, endDate time.Time, cal properties.Calibration) (*indices.SelectedScene, error) {
	scenes, err := sentinel.GetScenes(geometry, field, plot, startDate, endDate, satelliteIntervalDays)
	if err != nil {
		return nil, err
	}
	return indices.SelectBestScene(scenes, cal)
}
