package ui

import (
	"errors"
	"fmt"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/delivery"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/indices"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/sentinel"
	"github.com/crop-guardian/crop-guardian-api-poc/output"
)

// AnalyzeIndices handles the UI for summarizing vegetation, soil and
// moisture indices of a field plot
func AnalyzeIndices() {
	PrintWarning("- A '.geojson' file with the field name should be present in data/geojsons folder.\n- The '.geojson' file should contain the desired plot in its features identified by plot_id.")

	field, plot, err := ReadFieldAndPlot()
	if err != nil {
		PrintError(err.Error())
		return
	}

	startDate, endDate, err := ReadDateRange()
	if err != nil {
		PrintError(err.Error())
		return
	}

	cal := properties.DefaultCalibration()
	summary, err := delivery.AnalyzeIndices(field, plot, startDate, endDate, cal)
	if err != nil {
		if errors.Is(err, indices.ErrNoImagery) {
			PrintError("No satellite images found for the given plot and time range.")
			return
		}
		PrintError(fmt.Sprintf("Error analyzing indices: %s", err.Error()))
		return
	}

	fmt.Printf("\n%sIndex means for scene at %s:%s\n", ColorGreen, summary.Timestamp.Format("2006-01-02"), ColorReset)
	fmt.Printf("%sNDVI: %.3f | EVI: %.3f | SAVI: %.3f | NDRE: %.3f%s\n", ColorGreen, summary.NDVIMean, summary.EVIMean, summary.SAVIMean, summary.NDREMean, ColorReset)
	fmt.Printf("%sMSI: %.3f | NDWI: %.3f | BSI: %.3f%s\n", ColorGreen, summary.MSIMean, summary.NDWIMean, summary.BSIMean, ColorReset)
	fmt.Printf("%sSOC: %.3f %% | OM: %.3f %% | Soil moisture: %.3f m3/m3%s\n", ColorGreen, summary.SOCMean, summary.OMMean, summary.SoilMoistureMean, ColorReset)

	geometry, err := sentinel.GetGeometryFromGeoJSON(field, plot)
	if err != nil {
		PrintError(fmt.Sprintf("Error retrieving geometry from GeoJSON: %s", err.Error()))
		return
	}
	latitude, longitude, err := sentinel.GetCentroidLatitudeLongitudeFromGeometry(geometry)
	if err != nil {
		PrintError(fmt.Sprintf("Error calculating plot centroid: %s", err.Error()))
		return
	}

	outputFileName := fmt.Sprintf("%s_%s_%s_indices", field, plot, summary.Timestamp.Format("2006-01-02"))
	outputPath := output.CreateIndexSummaryGeoJson(summary, latitude, longitude, outputFileName)
	if outputPath == "" {
		return
	}

	PrintSuccess(fmt.Sprintf("Successful analysis!\nResultant geojson located at: %s", outputPath))
}
