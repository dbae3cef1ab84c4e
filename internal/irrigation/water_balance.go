package irrigation

import (
	"fmt"
	"math"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
)

// Plan is the output of one water-balance run over a horizon of days:
// per-day per-pixel irrigation depth and volume, plus per-day totals.
type Plan struct {
	DepthMM      [][][]float64
	VolumeLiters [][][]float64
	TotalLiters  []float64
}

// Pipeline runs the day-stepped water balance. The Kc and stress rasters
// are constant across the horizon; each day's demand depends only on that
// day's ET0 and rainfall (no carry-over of rainfall surplus):
//
//	ETc   = ET0[i] * Kc * stress
//	depth = max(ETc - rain[i], 0)
//
// with stress = clip(NDWI, 0, 1). Volume converts depth to liters per
// pixel (1 mm over 1 m2 is 1 liter).
func Pipeline(ndvi, ndwi [][]float64, daysAfterSowing int, dailyET0, dailyRain []float64, pixelSizeMeters float64) (*Plan, error) {
	if len(dailyET0) != len(dailyRain) {
		return nil, fmt.Errorf("ET0 series has %d days, rainfall has %d", len(dailyET0), len(dailyRain))
	}
	height, width := utils.GridShape(ndvi)
	if h, w := utils.GridShape(ndwi); h != height || w != width {
		return nil, fmt.Errorf("NDWI shape %dx%d does not match NDVI %dx%d", h, w, height, width)
	}

	kcMap := WheatKc(daysAfterSowing, ndvi)

	stressFactor := utils.NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			stressFactor[y][x] = utils.Clip(ndwi[y][x], 0, 1)
		}
	}

	pixelArea := pixelSizeMeters * pixelSizeMeters

	plan := &Plan{
		DepthMM:      make([][][]float64, len(dailyET0)),
		VolumeLiters: make([][][]float64, len(dailyET0)),
		TotalLiters:  make([]float64, len(dailyET0)),
	}

	for i, et0 := range dailyET0 {
		depth := utils.NewGrid(height, width)
		volume := utils.NewGrid(height, width)
		var total float64
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				etc := et0 * kcMap[y][x] * stressFactor[y][x]
				d := math.Max(etc-dailyRain[i], 0)
				depth[y][x] = d
				volume[y][x] = d * pixelArea
				if !math.IsNaN(d) {
					total += d * pixelArea
				}
			}
		}
		plan.DepthMM[i] = depth
		plan.VolumeLiters[i] = volume
		plan.TotalLiters[i] = total
	}

	return plan, nil
}
