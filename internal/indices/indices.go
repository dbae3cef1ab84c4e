package indices

import (
	"fmt"
	"math"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/sentinel"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
)

// IndexRaster holds the per-pixel quantities derived from one scene.
// Pixels where a quantity is undefined (zero denominator, or SOC outside
// the bare-soil mask) carry NaN; aggregations must skip them.
type IndexRaster struct {
	NDVI         [][]float64
	EVI          [][]float64
	SAVI         [][]float64
	NDRE         [][]float64
	MSI          [][]float64
	NDWI         [][]float64
	BSI          [][]float64
	SOC          [][]float64
	OM           [][]float64
	SoilMoisture [][]float64
}

func safeDivide(a, b float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	return a / b
}

func normalizedDifference(a, b float64) float64 {
	return safeDivide(a-b, a+b)
}

// Calculate derives the index raster from the scene's reflectance bands.
// All bands must share the scene's grid shape.
func Calculate(scene sentinel.Scene, cal properties.Calibration) (IndexRaster, error) {
	height, width := scene.Shape()
	if height == 0 || width == 0 {
		return IndexRaster{}, fmt.Errorf("scene has empty grid")
	}
	for name, band := range map[string][][]float64{
		"blue": scene.Blue, "green": scene.Green, "red": scene.Red,
		"red-edge": scene.RedEdge, "nir": scene.NIR,
		"swir1": scene.SWIR1, "swir2": scene.SWIR2,
	} {
		if len(band) != height || len(band[0]) != width {
			return IndexRaster{}, fmt.Errorf("band %s shape mismatch: expected %dx%d", name, height, width)
		}
	}

	result := IndexRaster{
		NDVI:         utils.NewGrid(height, width),
		EVI:          utils.NewGrid(height, width),
		SAVI:         utils.NewGrid(height, width),
		NDRE:         utils.NewGrid(height, width),
		MSI:          utils.NewGrid(height, width),
		NDWI:         utils.NewGrid(height, width),
		BSI:          utils.NewGrid(height, width),
		SOC:          utils.NewGrid(height, width),
		OM:           utils.NewGrid(height, width),
		SoilMoisture: utils.NewGrid(height, width),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			blue := scene.Blue[y][x]
			red := scene.Red[y][x]
			redEdge := scene.RedEdge[y][x]
			nir := scene.NIR[y][x]
			swir1 := scene.SWIR1[y][x]

			ndvi := normalizedDifference(nir, red)
			result.NDVI[y][x] = ndvi
			result.EVI[y][x] = 2.5 * safeDivide(nir-red, nir+6*red-7.5*blue+1)
			result.SAVI[y][x] = safeDivide(nir-red, nir+red+0.5) * 1.5
			result.NDRE[y][x] = normalizedDifference(nir, redEdge)
			result.MSI[y][x] = safeDivide(swir1, nir)

			ndwi := normalizedDifference(nir, swir1)
			result.NDWI[y][x] = ndwi

			bsi := safeDivide((swir1+red)-(nir+blue), (swir1+red)+(nir+blue))
			result.BSI[y][x] = bsi

			// SOC only makes sense over bare soil; crop-covered pixels
			// stay undefined so they drop out of the spatial mean.
			if !math.IsNaN(ndvi) && ndvi < cal.BareSoilNDVI {
				soc := utils.Clip(2.25-1.75*bsi, 0, 10)
				result.SOC[y][x] = soc
				result.OM[y][x] = soc * 1.724
			} else {
				result.SOC[y][x] = math.NaN()
				result.OM[y][x] = math.NaN()
			}

			sm := utils.Clip((ndwi-cal.NDWIMin)/(cal.NDWIMax-cal.NDWIMin), 0, 1)
			result.SoilMoisture[y][x] = sm*(cal.SoilMoistureMax-cal.SoilMoistureMin) + cal.SoilMoistureMin
		}
	}

	return result, nil
}
