package ui

import (
	"errors"
	"fmt"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/delivery"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/indices"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/output"
)

// PlanIrrigation handles the UI for building an irrigation plan for a
// field plot
func PlanIrrigation() {
	PrintWarning("- A '.geojson' file with the field name should be present in data/geojsons folder.\n- The '.geojson' file should contain the desired plot in its features identified by plot_id.")

	field, plot, err := ReadFieldAndPlot()
	if err != nil {
		PrintError(err.Error())
		return
	}

	endDate, err := ReadDate("Enter the planning date (YYYY-MM-DD | today): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	daysAfterSowing, err := ReadPositiveInt("Enter days after sowing: ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	horizonDays, err := ReadPositiveInt("Enter planning horizon in days: ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	cal := properties.DefaultCalibration()
	result, err := delivery.PlanIrrigation(field, plot, endDate, daysAfterSowing, horizonDays, cal)
	if err != nil {
		if errors.Is(err, indices.ErrNoImagery) {
			PrintError("No satellite images found for the given plot and time range.")
			return
		}
		PrintError(fmt.Sprintf("Error planning irrigation: %s", err.Error()))
		return
	}

	fmt.Printf("\n%sIrrigation plan:%s\n", ColorGreen, ColorReset)
	for i, day := range result.Days {
		fmt.Printf("%s%s: %.1f liters%s\n", ColorGreen, day.Format("2006-01-02"), result.Plan.TotalLiters[i], ColorReset)
	}

	outputPath, err := output.CreateIrrigationCSV(result.Days, result.Plan, field, plot)
	if err != nil {
		PrintError(fmt.Sprintf("Error creating irrigation csv: %s", err.Error()))
		return
	}

	PrintSuccess(fmt.Sprintf("Successful planning!\nResultant csv located at: %s", outputPath))
}
