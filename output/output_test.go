package output

import (
	"encoding/json"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/delivery"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/irrigation"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGridImage(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	grid := [][]float64{
		{0, 0.5},
		{1, math.NaN()},
	}

	path, err := CreateGridImage(grid, "field-a", "plot-1", "risk", 0, 1)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "risk.png"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCreateGridImage_EmptyGrid(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	_, err := CreateGridImage(nil, "field-a", "plot-1", "risk", 0, 1)
	assert.Error(t, err)
}

func TestCreateIndexSummaryGeoJson_UndefinedMeansEncodeAsNull(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	// A fully covered field has no bare-soil pixels, so SOC and OM
	// means come back undefined.
	summary := &delivery.IndexSummary{
		Timestamp:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		NDVIMean:         0.6,
		EVIMean:          0.46,
		SAVIMean:         0.45,
		NDREMean:         0.33,
		MSIMean:          0.375,
		NDWIMean:         0.45,
		BSIMean:          -0.28,
		SOCMean:          math.NaN(),
		OMMean:           math.NaN(),
		SoilMoistureMean: 0.3,
	}

	path := CreateIndexSummaryGeoJson(summary, -15.5, -47.8, "field-a_plot-1_2024-05-01_indices")
	require.NotEmpty(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var geoJSON struct {
		Features []struct {
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &geoJSON))
	require.Len(t, geoJSON.Features, 1)

	props := geoJSON.Features[0].Properties
	assert.Equal(t, 0.6, props["ndvi_mean"])
	assert.Nil(t, props["soc_mean"])
	assert.Nil(t, props["om_mean"])
}

func TestCreateIrrigationCSV(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	days := []time.Time{
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}
	plan := &irrigation.Plan{
		DepthMM:      [][][]float64{utils.FullGrid(1, 1, 1.875), utils.FullGrid(1, 1, 0)},
		VolumeLiters: [][][]float64{utils.FullGrid(1, 1, 187.5), utils.FullGrid(1, 1, 0)},
		TotalLiters:  []float64{187.5, 0},
	}

	path, err := CreateIrrigationCSV(days, plan, "field-a", "plot-1")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "date,mean_depth_mm,total_liters")
	assert.Contains(t, content, "2024-05-01,1.875,187.5")
}
