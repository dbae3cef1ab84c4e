package indices

import (
	"math"
	"testing"
	"time"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/sentinel"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformScene builds a 2x2 scene with every band constant.
func uniformScene(timestamp time.Time, blue, green, red, redEdge, nir, swir1, swir2, scl float64) sentinel.Scene {
	return sentinel.Scene{
		Timestamp: timestamp,
		Blue:      utils.FullGrid(2, 2, blue),
		Green:     utils.FullGrid(2, 2, green),
		Red:       utils.FullGrid(2, 2, red),
		RedEdge:   utils.FullGrid(2, 2, redEdge),
		NIR:       utils.FullGrid(2, 2, nir),
		SWIR1:     utils.FullGrid(2, 2, swir1),
		SWIR2:     utils.FullGrid(2, 2, swir2),
		SCL:       utils.FullGrid(2, 2, scl),
	}
}

func TestCalculate_HealthyCanopyPixel(t *testing.T) {
	scene := uniformScene(time.Now(), 0.05, 0.08, 0.1, 0.2, 0.4, 0.15, 0.1, 4)

	raster, err := Calculate(scene, properties.DefaultCalibration())
	require.NoError(t, err)

	assert.InDelta(t, 0.6, raster.NDVI[0][0], 1e-9)
	assert.InDelta(t, 0.75/1.625, raster.EVI[0][0], 1e-9)
	assert.InDelta(t, 0.45, raster.SAVI[0][0], 1e-9)
	assert.InDelta(t, 0.2/0.6, raster.NDRE[0][0], 1e-9)
	assert.InDelta(t, 0.375, raster.MSI[0][0], 1e-9)
	assert.InDelta(t, 0.25/0.55, raster.NDWI[0][0], 1e-9)
	assert.InDelta(t, -0.2/0.7, raster.BSI[0][0], 1e-9)
}

func TestCalculate_SOCOnlyOverBareSoil(t *testing.T) {
	cal := properties.DefaultCalibration()

	// NDVI 0.6, crop covered: SOC and OM stay undefined.
	covered := uniformScene(time.Now(), 0.05, 0.08, 0.1, 0.2, 0.4, 0.15, 0.1, 4)
	raster, err := Calculate(covered, cal)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(raster.SOC[0][0]))
	assert.True(t, math.IsNaN(raster.OM[0][0]))

	// NDVI ~0.09, bare: SOC defined and OM = SOC * 1.724.
	bare := uniformScene(time.Now(), 0.1, 0.12, 0.1, 0.11, 0.12, 0.3, 0.25, 5)
	raster, err = Calculate(bare, cal)
	require.NoError(t, err)
	require.False(t, math.IsNaN(raster.SOC[0][0]))
	assert.GreaterOrEqual(t, raster.SOC[0][0], 0.0)
	assert.LessOrEqual(t, raster.SOC[0][0], 10.0)
	assert.InDelta(t, raster.SOC[0][0]*1.724, raster.OM[0][0], 1e-9)
}

func TestCalculate_ZeroDenominatorIsUndefined(t *testing.T) {
	// All-zero reflectances, e.g. a nodata border strip.
	scene := uniformScene(time.Now(), 0, 0, 0, 0, 0, 0, 0, 0)

	raster, err := Calculate(scene, properties.DefaultCalibration())
	require.NoError(t, err)

	assert.True(t, math.IsNaN(raster.NDVI[0][0]))
	assert.True(t, math.IsNaN(raster.MSI[0][0]))
	assert.True(t, math.IsNaN(raster.BSI[0][0]))
	assert.True(t, math.IsNaN(utils.NaNMean(raster.NDVI)))
}

func TestCalculate_UndefinedPixelsExcludedFromMean(t *testing.T) {
	scene := uniformScene(time.Now(), 0.05, 0.08, 0.1, 0.2, 0.4, 0.15, 0.1, 4)
	// One nodata pixel in an otherwise healthy scene.
	scene.NIR[1][1] = 0
	scene.Red[1][1] = 0

	raster, err := Calculate(scene, properties.DefaultCalibration())
	require.NoError(t, err)

	assert.True(t, math.IsNaN(raster.NDVI[1][1]))
	assert.InDelta(t, 0.6, utils.NaNMean(raster.NDVI), 1e-9)
}

func TestCalculate_SoilMoistureWithinCalibratedRange(t *testing.T) {
	cal := properties.DefaultCalibration()
	scene := uniformScene(time.Now(), 0.05, 0.08, 0.1, 0.2, 0.4, 0.15, 0.1, 4)

	raster, err := Calculate(scene, cal)
	require.NoError(t, err)

	sm := raster.SoilMoisture[0][0]
	assert.GreaterOrEqual(t, sm, cal.SoilMoistureMin)
	assert.LessOrEqual(t, sm, cal.SoilMoistureMax)

	// NDWI above the rescaling window saturates at the maximum.
	wet := uniformScene(time.Now(), 0.05, 0.08, 0.1, 0.2, 0.8, 0.05, 0.05, 4)
	raster, err = Calculate(wet, cal)
	require.NoError(t, err)
	assert.InDelta(t, cal.SoilMoistureMax, raster.SoilMoisture[0][0], 1e-9)
}

func TestCalculate_BandShapeMismatch(t *testing.T) {
	scene := uniformScene(time.Now(), 0.05, 0.08, 0.1, 0.2, 0.4, 0.15, 0.1, 4)
	scene.SWIR1 = utils.FullGrid(3, 3, 0.15)

	_, err := Calculate(scene, properties.DefaultCalibration())
	assert.Error(t, err)
}
