package nutrient

import (
	"math"
	"testing"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientGrid() [][]float64 {
	return [][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
		{0.7, 0.8, 0.9},
	}
}

func TestMaxNitrogenWheat_StageBoundaries(t *testing.T) {
	assert.Equal(t, 30.0, MaxNitrogenWheat(1))
	assert.Equal(t, 30.0, MaxNitrogenWheat(20))
	assert.Equal(t, 40.0, MaxNitrogenWheat(21))
	assert.Equal(t, 40.0, MaxNitrogenWheat(45))
	assert.Equal(t, 35.0, MaxNitrogenWheat(80))
	assert.Equal(t, 20.0, MaxNitrogenWheat(110))
	assert.Equal(t, 0.0, MaxNitrogenWheat(111))
}

func TestNutrientStress_WithinUnitInterval(t *testing.T) {
	stress, err := NutrientStress(gradientGrid(), gradientGrid(), utils.FullGrid(3, 3, 0.2), properties.DefaultCalibration())
	require.NoError(t, err)

	for _, row := range stress {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestNutrientStress_HealthiestPixelHasLowestStress(t *testing.T) {
	stress, err := NutrientStress(gradientGrid(), gradientGrid(), utils.FullGrid(3, 3, 0.2), properties.DefaultCalibration())
	require.NoError(t, err)

	assert.Greater(t, stress[0][0], stress[2][2])
}

func TestNutrientStress_MoistureDampensStress(t *testing.T) {
	cal := properties.DefaultCalibration()

	dry, err := NutrientStress(gradientGrid(), gradientGrid(), utils.FullGrid(3, 3, 0.0), cal)
	require.NoError(t, err)
	wet, err := NutrientStress(gradientGrid(), gradientGrid(), utils.FullGrid(3, 3, 1.0), cal)
	require.NoError(t, err)

	assert.Greater(t, dry[0][0], wet[0][0])
}

func TestFertilizerRequirement_DoseWithinStageCap(t *testing.T) {
	dose, err := FertilizerRequirement(gradientGrid(), gradientGrid(), utils.FullGrid(3, 3, 0.2), 30, properties.DefaultCalibration())
	require.NoError(t, err)

	maxDose := MaxNitrogenWheat(30)
	for _, row := range dose {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, maxDose)
		}
	}
}

func TestFertilizerRequirement_ZeroAtMaturity(t *testing.T) {
	dose, err := FertilizerRequirement(gradientGrid(), gradientGrid(), utils.FullGrid(3, 3, 0.2), 120, properties.DefaultCalibration())
	require.NoError(t, err)

	for _, row := range dose {
		for _, v := range row {
			assert.Equal(t, 0.0, v)
		}
	}
}

func TestFertilizerRequirement_UniformIndexIsDegenerate(t *testing.T) {
	uniform := utils.FullGrid(3, 3, 0.5)

	_, err := FertilizerRequirement(uniform, uniform, utils.FullGrid(3, 3, 0.2), 30, properties.DefaultCalibration())
	assert.ErrorIs(t, err, ErrDegenerateNormalization)
}

func TestFertilizerRequirement_TooFewValidPixels(t *testing.T) {
	mostlyUndefined := utils.FullGrid(3, 3, math.NaN())
	mostlyUndefined[0][0] = 0.2
	mostlyUndefined[0][1] = 0.4
	mostlyUndefined[0][2] = 0.6

	_, err := FertilizerRequirement(mostlyUndefined, mostlyUndefined, utils.FullGrid(3, 3, 0.2), 30, properties.DefaultCalibration())
	assert.ErrorIs(t, err, ErrDegenerateNormalization)
}
