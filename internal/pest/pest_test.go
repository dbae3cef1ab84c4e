package pest

import (
	"math"
	"testing"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
	"github.com/stretchr/testify/assert"
)

func quietIndices() Indices {
	cal := properties.DefaultCalibration()
	return Indices{
		NDVI:    utils.FullGrid(2, 2, cal.NDVIReferenceMean),
		BSI:     utils.FullGrid(2, 2, 0.1),
		NIR:     utils.FullGrid(2, 2, 0.7),
		RedEdge: utils.FullGrid(2, 2, 0.5),
	}
}

func TestBlastRisk_AllFactorsActive(t *testing.T) {
	// Heading stage during a warm, saturated, wet spell: every factor
	// fires and the weights sum to 1.
	w := Weather{
		Temperature:      27,
		RelativeHumidity: 92,
		Rainfall:         6,
		LeafWetnessHours: 8,
	}

	score := BlastRisk(w, 55, DefaultBlastWeights())
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestBlastRisk_ColdDrySpell(t *testing.T) {
	w := Weather{
		Temperature:      10,
		RelativeHumidity: 50,
		Rainfall:         0,
		LeafWetnessHours: 1,
	}

	// Only the residual crop stage factor contributes: 0.15 * 0.2.
	score := BlastRisk(w, 10, DefaultBlastWeights())
	assert.InDelta(t, 0.03, score, 1e-9)
}

func TestSunnPestRisk_DryWarmRipening(t *testing.T) {
	w := Weather{
		Temperature:      22,
		RelativeHumidity: 55,
		Rainfall:         20,
	}

	score := SunnPestRisk(w, 60, DefaultSunnWeights())
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestSunnPestRisk_WetSeasonSuppresses(t *testing.T) {
	w := Weather{
		Temperature:      22,
		RelativeHumidity: 55,
		Rainfall:         120,
	}

	score := SunnPestRisk(w, 60, DefaultSunnWeights())
	assert.InDelta(t, 0.8, score, 1e-9)
}

func TestAphidRisk_WithinUnitInterval(t *testing.T) {
	w := Weather{
		Temperature:      19,
		RelativeHumidity: 90,
		Rainfall:         100,
		SunshineHours:    12,
	}
	idx := Indices{
		NDVI:    utils.FullGrid(2, 2, 0.3),
		BSI:     utils.FullGrid(2, 2, 0.4),
		NIR:     utils.FullGrid(2, 2, 0.5),
		RedEdge: utils.FullGrid(2, 2, 0.4),
	}

	risk := AphidRisk(w, idx, 40, DefaultAphidWeights(), properties.DefaultCalibration())
	for _, row := range risk {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
	// All eight factors fire here.
	assert.InDelta(t, 1.0, risk[0][0], 1e-9)
}

func TestAphidRisk_CanopyDeclineRaisesPixelRisk(t *testing.T) {
	w := Weather{Temperature: 10, RelativeHumidity: 50, Rainfall: 400}
	idx := quietIndices()
	idx.NDVI[1][1] = 0.3 // well below the reference mean

	risk := AphidRisk(w, idx, 10, DefaultAphidWeights(), properties.DefaultCalibration())
	assert.Greater(t, risk[1][1], risk[0][0])
	assert.InDelta(t, DefaultAphidWeights().NDVI, risk[1][1]-risk[0][0], 1e-9)
}

func TestAphidRisk_UndefinedPixelScoresScalarPartOnly(t *testing.T) {
	w := Weather{Temperature: 19, RelativeHumidity: 50, Rainfall: 400}
	idx := quietIndices()
	idx.NDVI[0][0] = math.NaN()
	idx.BSI[0][0] = math.NaN()

	risk := AphidRisk(w, idx, 10, DefaultAphidWeights(), properties.DefaultCalibration())

	// NaN comparisons are false, so the raster factors contribute zero.
	assert.InDelta(t, DefaultAphidWeights().Temp, risk[0][0], 1e-9)
}

func TestAssess_AlertThresholdIsInclusive(t *testing.T) {
	// Scalar aphid factors alone sum to exactly the 0.6 alert threshold:
	// temp 0.15 + humidity 0.15 + rain 0.10 + sunshine 0.05 + stage 0.15.
	w := Weather{
		Temperature:      19,
		RelativeHumidity: 90,
		Rainfall:         100,
		SunshineHours:    10,
	}

	assessment := Assess(w, quietIndices(), 30, properties.DefaultCalibration())

	assert.InDelta(t, 0.6, assessment.AphidRisk[0][0], 1e-9)
	assert.Equal(t, 4, assessment.AphidAlertArea)
}

func TestAssess_BroadcastsScalarRisksAcrossGrid(t *testing.T) {
	w := Weather{
		Temperature:      27,
		RelativeHumidity: 92,
		Rainfall:         6,
		LeafWetnessHours: 8,
	}

	assessment := Assess(w, quietIndices(), 55, properties.DefaultCalibration())

	assert.Equal(t, 4, assessment.BlastAlertArea)
	for _, row := range assessment.BlastRisk {
		for _, v := range row {
			assert.InDelta(t, 1.0, v, 1e-9)
		}
	}
}

func TestAssess_QuietConditionsRaiseNoAlerts(t *testing.T) {
	w := Weather{
		Temperature:      10,
		RelativeHumidity: 50,
		Rainfall:         400,
		LeafWetnessHours: 1,
	}

	assessment := Assess(w, quietIndices(), 10, properties.DefaultCalibration())

	assert.Equal(t, 0, assessment.AphidAlertArea)
	assert.Equal(t, 0, assessment.BlastAlertArea)
	assert.Equal(t, 0, assessment.SunnAlertArea)
}
