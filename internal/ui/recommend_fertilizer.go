package ui

import (
	"errors"
	"fmt"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/delivery"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/indices"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/nutrient"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
	"github.com/crop-guardian/crop-guardian-api-poc/output"
)

// RecommendFertilizer handles the UI for computing a nitrogen dose map
// for a field plot
func RecommendFertilizer() {
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

	daysAfterSowing, err := ReadPositiveInt("Enter days after sowing: ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	cal := properties.DefaultCalibration()
	result, err := delivery.RecommendFertilizer(field, plot, startDate, endDate, daysAfterSowing, cal)
	if err != nil {
		if errors.Is(err, indices.ErrNoImagery) {
			PrintError("No satellite images found for the given plot and time range.")
			return
		}
		if errors.Is(err, nutrient.ErrDegenerateNormalization) {
			PrintError("Not enough valid pixels to normalize the vegetation indices. Try a less cloudy period.")
			return
		}
		PrintError(fmt.Sprintf("Error recommending fertilizer: %s", err.Error()))
		return
	}

	maxDose := nutrient.MaxNitrogenWheat(daysAfterSowing)
	fmt.Printf("\n%sNitrogen dose for scene at %s:%s\n", ColorGreen, result.Timestamp.Format("2006-01-02"), ColorReset)
	fmt.Printf("%sMean dose: %.1f kg/ha | Stage cap: %.0f kg/ha%s\n", ColorGreen, utils.NaNMean(result.DoseKgHa), maxDose, ColorReset)

	outputFileName := fmt.Sprintf("%s_nitrogen", result.Timestamp.Format("2006-01-02"))
	outputPath, err := output.CreateGridImage(result.DoseKgHa, field, plot, outputFileName, 0, maxDose)
	if err != nil {
		PrintError(fmt.Sprintf("Error creating dose map image: %s", err.Error()))
		return
	}

	PrintSuccess(fmt.Sprintf("Successful recommendation!\nResultant image located at: %s", outputPath))
}
