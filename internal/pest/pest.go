package pest

import (
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
)

// Weather carries the scalar weather inputs of the risk models: the
// current daily means plus the season rainfall total. Scalars broadcast
// against the raster indices pixel by pixel.
type Weather struct {
	Temperature      float64
	RelativeHumidity float64
	Rainfall         float64
	LeafWetnessHours float64
	SunshineHours    float64
}

// Indices carries the raster inputs of the generic pest model.
type Indices struct {
	NDVI    [][]float64
	BSI     [][]float64
	NIR     [][]float64
	RedEdge [][]float64
}

// AphidWeights weight the eight factors of the generic pest model. The
// defaults sum to 1.0.
type AphidWeights struct {
	Temp       float64
	Humidity   float64
	Rain       float64
	NDVI       float64
	Soil       float64
	NIRRedEdge float64
	Sunshine   float64
	CropStage  float64
}

func DefaultAphidWeights() AphidWeights {
	return AphidWeights{
		Temp:       0.15,
		Humidity:   0.15,
		Rain:       0.10,
		NDVI:       0.15,
		Soil:       0.15,
		NIRRedEdge: 0.10,
		Sunshine:   0.05,
		CropStage:  0.15,
	}
}

type BlastWeights struct {
	Temp        float64
	Humidity    float64
	LeafWetness float64
	Rain        float64
	CropStage   float64
}

func DefaultBlastWeights() BlastWeights {
	return BlastWeights{
		Temp:        0.30,
		Humidity:    0.30,
		LeafWetness: 0.15,
		Rain:        0.10,
		CropStage:   0.15,
	}
}

type SunnWeights struct {
	Temp      float64
	Rain      float64
	Humidity  float64
	CropStage float64
}

func DefaultSunnWeights() SunnWeights {
	return SunnWeights{
		Temp:      0.30,
		Rain:      0.20,
		Humidity:  0.25,
		CropStage: 0.25,
	}
}

// AphidRisk scores the generic pest risk per pixel: scalar weather factors
// broadcast across the grid, raster factors vary pixel by pixel.
func AphidRisk(w Weather, idx Indices, cropStage int, weights AphidWeights, cal properties.Calibration) [][]float64 {
	scalarPart := weights.Temp*aphidTempFactor(w.Temperature) +
		weights.Humidity*aphidHumidityFactor(w.RelativeHumidity) +
		weights.Rain*aphidRainFactor(w.Rainfall) +
		weights.Sunshine*aphidSunshineFactor(w.SunshineHours) +
		weights.CropStage*aphidCropStageFactor(cropStage)

	height, width := utils.GridShape(idx.NDVI)
	risk := utils.NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			risk[y][x] = scalarPart +
				weights.NDVI*aphidNDVIFactor(idx.NDVI[y][x], cal.NDVIReferenceMean) +
				weights.Soil*aphidSoilFactor(idx.BSI[y][x], cal.SoilIndexThreshold) +
				weights.NIRRedEdge*aphidNIRRedEdgeFactor(idx.NIR[y][x], idx.RedEdge[y][x])
		}
	}
	return risk
}

// BlastRisk scores wheat blast risk from weather and crop stage alone.
func BlastRisk(w Weather, cropStage int, weights BlastWeights) float64 {
	return weights.Temp*blastTempFactor(w.Temperature) +
		weights.Humidity*blastHumidityFactor(w.RelativeHumidity) +
		weights.LeafWetness*blastLeafWetnessFactor(w.LeafWetnessHours) +
		weights.Rain*blastRainFactor(w.Rainfall) +
		weights.CropStage*blastCropStageFactor(cropStage)
}

// SunnPestRisk scores sunn pest risk from weather and crop stage alone.
func SunnPestRisk(w Weather, cropStage int, weights SunnWeights) float64 {
	return weights.Temp*sunnPestTempFactor(w.Temperature) +
		weights.Rain*sunnPestRainFactor(w.Rainfall) +
		weights.Humidity*sunnPestHumidityFactor(w.RelativeHumidity) +
		weights.CropStage*sunnPestCropStageFactor(cropStage)
}

// Assessment is the combined output of the three risk models over one
// field raster: a risk grid and an alert pixel count per pest. The blast
// and sunn pest scores are weather-driven scalars broadcast across the
// grid so all three maps share the field's shape.
type Assessment struct {
	AphidRisk [][]float64
	BlastRisk [][]float64
	SunnRisk  [][]float64

	AphidAlertArea int
	BlastAlertArea int
	SunnAlertArea  int
}

func countAlerts(risk [][]float64, threshold float64) int {
	count := 0
	for _, row := range risk {
		for _, v := range row {
			if v >= threshold {
				count++
			}
		}
	}
	return count
}

// Assess runs all three risk models with their default weights and
// thresholds alerts at cal.AlertThreshold (boundary inclusive).
func Assess(w Weather, idx Indices, cropStage int, cal properties.Calibration) Assessment {
	height, width := utils.GridShape(idx.NDVI)

	aphidRisk := AphidRisk(w, idx, cropStage, DefaultAphidWeights(), cal)
	blastRisk := utils.FullGrid(height, width, BlastRisk(w, cropStage, DefaultBlastWeights()))
	sunnRisk := utils.FullGrid(height, width, SunnPestRisk(w, cropStage, DefaultSunnWeights()))

	return Assessment{
		AphidRisk:      aphidRisk,
		BlastRisk:      blastRisk,
		SunnRisk:       sunnRisk,
		AphidAlertArea: countAlerts(aphidRisk, cal.AlertThreshold),
		BlastAlertArea: countAlerts(blastRisk, cal.AlertThreshold),
		SunnAlertArea:  countAlerts(sunnRisk, cal.AlertThreshold),
	}
}
