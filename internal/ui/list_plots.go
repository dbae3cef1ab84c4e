package ui

import (
	"fmt"
)

// ListPlots handles the UI for viewing the list of available field plots
func ListPlots(field string) {
	PrintWarning("To add a plot to a field add the 'plot_id' property at the '.geojson' file from the field of your choice.\nThe 'plot_id' property should be located at 'features[N]properties.plot_id'.")

	if field == "" {
		field = ReadString("Enter the field name: ")
	}

	plotIDs, err := GetPlotIDsFromGeoJSON(field)
	if err != nil {
		PrintError(err.Error())
		return
	}

	fmt.Printf("\n%sAvailable plots:%s\n", ColorGreen, ColorReset)
	for _, plotID := range plotIDs {
		fmt.Printf("%s- %s%s\n", ColorGreen, plotID, ColorReset)
	}
}
