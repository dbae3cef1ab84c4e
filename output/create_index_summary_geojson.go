package output

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/delivery"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
)

// meanOrNull maps an undefined spatial mean to JSON null. A fully
// covered field has no bare-soil pixels, so SOC/OM means are NaN and
// json.Encode would reject them.
func meanOrNull(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func CreateIndexSummaryGeoJson(summary *delivery.IndexSummary, latitude, longitude float64, outputGeojsonPath string) string {
	resultPath := fmt.Sprintf("%s/data/result", properties.RootPath())
	if err := os.MkdirAll(resultPath, os.ModePerm); err != nil {
		fmt.Printf("Error creating result folder: %v\n", err)
		return ""
	}
	outputPath := fmt.Sprintf("%s/%s.geojson", resultPath, outputGeojsonPath)

	feature := map[string]interface{}{
		"type": "Feature",
		"geometry": map[string]interface{}{
			"type":        "Point",
			"coordinates": []float64{longitude, latitude},
		},
		"properties": map[string]interface{}{
			"timestamp":          summary.Timestamp,
			"ndvi_mean":          meanOrNull(summary.NDVIMean),
			"evi_mean":           meanOrNull(summary.EVIMean),
			"savi_mean":          meanOrNull(summary.SAVIMean),
			"ndre_mean":          meanOrNull(summary.NDREMean),
			"msi_mean":           meanOrNull(summary.MSIMean),
			"ndwi_mean":          meanOrNull(summary.NDWIMean),
			"bsi_mean":           meanOrNull(summary.BSIMean),
			"soc_mean":           meanOrNull(summary.SOCMean),
			"om_mean":            meanOrNull(summary.OMMean),
			"soil_moisture_mean": meanOrNull(summary.SoilMoistureMean),
		},
	}

	geoJSON := map[string]interface{}{
		"type":     "FeatureCollection",
		"features": []map[string]interface{}{feature},
	}

	file, err := os.Create(outputPath)
	if err != nil {
		fmt.Printf("Error creating GeoJSON file: %v\n", err)
		return ""
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(geoJSON); err != nil {
		fmt.Printf("Error encoding GeoJSON: %v\n", err)
		return ""
	}

	fmt.Println("GeoJSON file created successfully at", outputPath)
	return outputPath
}
