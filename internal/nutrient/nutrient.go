package nutrient

import (
	"errors"
	"fmt"
	"math"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
)

// ErrDegenerateNormalization reports that the percentile range of an index
// raster collapsed to (near) zero, or that too few pixels were defined for
// the percentiles to mean anything. Scaling by such a range would turn
// noise into extreme stress values.
var ErrDegenerateNormalization = errors.New("index normalization range is degenerate")

// normalizeIndex rescales an index raster to [0, 1] between its low and
// high percentiles, clipping outliers at both ends.
func normalizeIndex(index [][]float64, cal properties.Calibration) ([][]float64, error) {
	minVal, validCount := utils.NaNPercentile(index, cal.PercentileLow)
	maxVal, _ := utils.NaNPercentile(index, cal.PercentileHigh)

	if validCount < cal.MinValidPixels {
		return nil, fmt.Errorf("%w: only %d valid pixels", ErrDegenerateNormalization, validCount)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return nil, fmt.Errorf("%w: percentile range %.9f", ErrDegenerateNormalization, maxVal-minVal)
	}

	height, width := utils.GridShape(index)
	normalized := utils.NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			normalized[y][x] = utils.Clip((index[y][x]-minVal)/(maxVal-minVal), 0, 1)
		}
	}
	return normalized, nil
}

// NutrientStress computes the pixel-wise nutrient stress factor (0 = no
// stress, 1 = high stress) from NDVI, NDRE and soil moisture.
func NutrientStress(ndvi, ndre, soilMoisture [][]float64, cal properties.Calibration) ([][]float64, error) {
	ndviNorm, err := normalizeIndex(ndvi, cal)
	if err != nil {
		return nil, fmt.Errorf("NDVI: %w", err)
	}
	ndreNorm, err := normalizeIndex(ndre, cal)
	if err != nil {
		return nil, fmt.Errorf("NDRE: %w", err)
	}

	height, width := utils.GridShape(ndvi)
	stressAdjusted := utils.NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			stress := utils.Clip(1-(0.5*ndviNorm[y][x]+0.5*ndreNorm[y][x]), 0, 1)
			stressAdjusted[y][x] = utils.Clip(stress*(1-0.5*soilMoisture[y][x]), 0, 1)
		}
	}
	return stressAdjusted, nil
}

// MaxNitrogenWheat returns the maximum nitrogen dose (kg/ha) for wheat at
// the given days after sowing: basal, top-dress, stem elongation/booting,
// heading/grain filling, then zero at maturity.
func MaxNitrogenWheat(das int) float64 {
	switch {
	case das <= 20:
		return 30
	case das <= 45:
		return 40
	case das <= 80:
		return 35
	case das <= 110:
		return 20
	default:
		return 0
	}
}

// FertilizerRequirement computes the pixel-wise nitrogen requirement in
// kg/ha: the stage cap scaled by the moisture-adjusted stress factor.
func FertilizerRequirement(ndvi, ndre, soilMoisture [][]float64, das int, cal properties.Calibration) ([][]float64, error) {
	stressAdjusted, err := NutrientStress(ndvi, ndre, soilMoisture, cal)
	if err != nil {
		return nil, err
	}

	maxNitrogen := MaxNitrogenWheat(das)
	height, width := utils.GridShape(stressAdjusted)
	dose := utils.NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dose[y][x] = maxNitrogen * stressAdjusted[y][x]
		}
	}
	return dose, nil
}
