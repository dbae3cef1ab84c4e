package ui

import (
	"fmt"
	"strings"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/delivery"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/notification"
)

// ForecastAlerts handles the UI for predicting weather and raising
// anomaly alerts for a field plot
func ForecastAlerts() {
	PrintWarning("- A '.geojson' file with the field name should be present in data/geojsons folder.\n- The '.geojson' file should contain the desired plot in its features identified by plot_id.\n- The forecast service must be running and reachable at FORECAST_SERVICE_URL.")

	field, plot, err := ReadFieldAndPlot()
	if err != nil {
		PrintError(err.Error())
		return
	}

	endDate, err := ReadDate("Enter the forecast start date (YYYY-MM-DD | today): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	result, err := delivery.ForecastAlerts(field, plot, endDate)
	if err != nil {
		PrintError(fmt.Sprintf("Error forecasting weather: %s", err.Error()))
		return
	}

	fmt.Printf("\n%sPredicted %d hourly rows%s\n", ColorGreen, len(result.Predictions), ColorReset)

	if len(result.Alerts) == 0 {
		PrintSuccess("No weather anomalies detected in the forecast window.")
		return
	}

	fmt.Printf("\n%sAnomalies detected:%s\n", ColorYellow, ColorReset)
	messages := make([]string, 0, len(result.Alerts))
	for _, alert := range result.Alerts {
		fmt.Printf("%s- %s: %s%s\n", ColorYellow, alert.Time.Format("2006-01-02 15:04"), alert.Message, ColorReset)
		messages = append(messages, fmt.Sprintf("%s: %s", alert.Time.Format("2006-01-02 15:04"), alert.Message))
	}

	message := fmt.Sprintf("Crop Guardian CLI\n\nWeather anomaly forecast for plot %s at field %s\n%s", plot, field, strings.Join(messages, "\n"))
	if err := notification.SendDiscordAlertNotification(message); err != nil {
		PrintError(fmt.Sprintf("Error sending alert notification: %s", err.Error()))
		return
	}

	PrintSuccess("Anomaly alerts sent to Discord.")
}
