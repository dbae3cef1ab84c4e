package ui

import (
	"errors"
	"fmt"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/delivery"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/indices"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/notification"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/output"
)

// AssessPestRisk handles the UI for scoring aphid, blast and sunn pest
// risk in a field plot for a specific date
func AssessPestRisk() {
	PrintWarning("- A '.geojson' file with the field name should be present in data/geojsons folder.\n- The '.geojson' file should contain the desired plot in its features identified by plot_id.")

	field, plot, err := ReadFieldAndPlot()
	if err != nil {
		PrintError(err.Error())
		return
	}

	endDate, err := ReadDate("Enter the date to be analyzed (YYYY-MM-DD | today): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	cropStage, err := ReadInt("Enter the crop growth stage code (0-99): ", 0, 99)
	if err != nil {
		PrintError(err.Error())
		return
	}

	cal := properties.DefaultCalibration()
	result, err := delivery.AssessPestRisk(field, plot, endDate, cropStage, cal)
	if err != nil {
		if errors.Is(err, indices.ErrNoImagery) {
			PrintError("No satellite images found for the given plot and time range.")
			return
		}
		PrintError(fmt.Sprintf("Error assessing pest risk: %s", err.Error()))
		return
	}

	assessment := result.Assessment
	fmt.Printf("\n%sPest risk for scene at %s:%s\n", ColorGreen, result.Timestamp.Format("2006-01-02"), ColorReset)
	fmt.Printf("%sAphid alert pixels: %d | Blast alert pixels: %d | Sunn pest alert pixels: %d%s\n", ColorGreen, assessment.AphidAlertArea, assessment.BlastAlertArea, assessment.SunnAlertArea, ColorReset)

	datePrefix := result.Timestamp.Format("2006-01-02")
	grids := map[string][][]float64{
		datePrefix + "_aphid_risk": assessment.AphidRisk,
		datePrefix + "_blast_risk": assessment.BlastRisk,
		datePrefix + "_sunn_risk":  assessment.SunnRisk,
	}
	for name, grid := range grids {
		if _, err := output.CreateGridImage(grid, field, plot, name, 0, 1); err != nil {
			PrintError(fmt.Sprintf("Error creating risk map image: %s", err.Error()))
			return
		}
	}

	if assessment.AphidAlertArea > 0 || assessment.BlastAlertArea > 0 || assessment.SunnAlertArea > 0 {
		message := fmt.Sprintf("Crop Guardian CLI\n\nPest risk alert for plot %s at field %s on %s\nAphid alert pixels: %d\nBlast alert pixels: %d\nSunn pest alert pixels: %d",
			plot, field, datePrefix, assessment.AphidAlertArea, assessment.BlastAlertArea, assessment.SunnAlertArea)
		if err := notification.SendDiscordAlertNotification(message); err != nil {
			PrintError(fmt.Sprintf("Error sending alert notification: %s", err.Error()))
		}
	}

	PrintSuccess(fmt.Sprintf("Successful assessment!\nRisk maps located at: %s/data/result/%s/%s", properties.RootPath(), field, plot))
}
