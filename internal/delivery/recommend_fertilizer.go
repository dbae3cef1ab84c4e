package delivery

import (
	"time"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/nutrient"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/sentinel"
)

// FertilizerResult is the pixel-wise nitrogen requirement derived from
// the selected scene.
type FertilizerResult struct {
	Timestamp time.Time
	DoseKgHa  [][]float64
}

// RecommendFertilizer runs the nutrient pipeline: select the best scene
// of the window and compute the stage-capped, stress-scaled nitrogen
// dose. Surfaces nutrient.ErrDegenerateNormalization when the field is
// too uniform (or too small) for the percentile normalization to hold.
func RecommendFertilizer(field, plot string, startDate, endDate time.Time, daysAfterSowing int, cal properties.Calibration) (*FertilizerResult, error) {
	geometry, err := sentinel.GetGeometryFromGeoJSON(field, plot)
	if err != nil {
		return nil, err
	}

	selected, err := bestSceneForWindow(geometry, field, plot, startDate, endDate, cal)
	if err != nil {
		return nil, err
	}

	idx := selected.Indexes
	dose, err := nutrient.FertilizerRequirement(idx.NDVI, idx.NDRE, idx.SoilMoisture, daysAfterSowing, cal)
	if err != nil {
		return nil, err
	}

	return &FertilizerResult{Timestamp: selected.Timestamp, DoseKgHa: dose}, nil
}
