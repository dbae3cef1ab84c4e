package delivery

import (
	"time"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/sentinel"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
)

// IndexSummary is the spatial mean of each derived index for the selected
// scene. Undefined pixels are excluded from every mean, so a mean can be
// NaN when an index is undefined everywhere (e.g. SOC on a fully covered
// field).
type IndexSummary struct {
	Timestamp        time.Time
	NDVIMean         float64
	EVIMean          float64
	SAVIMean         float64
	NDREMean         float64
	MSIMean          float64
	NDWIMean         float64
	BSIMean          float64
	SOCMean          float64
	OMMean           float64
	SoilMoistureMean float64
}

// AnalyzeIndices runs the index pipeline: fetch the scene time series for
// the window, select the least cloudy date, and summarize its index
// raster. Returns indices.ErrNoImagery when the provider has nothing for
// the window.
func AnalyzeIndices(field, plot string, startDate, endDate time.Time, cal properties.Calibration) (*IndexSummary, error) {
	geometry, err := sentinel.GetGeometryFromGeoJSON(field, plot)
	if err != nil {
		return nil, err
	}

	selected, err := bestSceneForWindow(geometry, field, plot, startDate, endDate, cal)
	if err != nil {
		return nil, err
	}

	idx := selected.Indexes
	return &IndexSummary{
		Timestamp:        selected.Timestamp,
		NDVIMean:         utils.NaNMean(idx.NDVI),
		EVIMean:          utils.NaNMean(idx.EVI),
		SAVIMean:         utils.NaNMean(idx.SAVI),
		NDREMean:         utils.NaNMean(idx.NDRE),
		MSIMean:          utils.NaNMean(idx.MSI),
		NDWIMean:         utils.NaNMean(idx.NDWI),
		BSIMean:          utils.NaNMean(idx.BSI),
		SOCMean:          utils.NaNMean(idx.SOC),
		OMMean:           utils.NaNMean(idx.OM),
		SoilMoistureMean: utils.NaNMean(idx.SoilMoisture),
	}, nil
}
