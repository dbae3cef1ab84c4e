package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/irrigation"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
	"github.com/gocarina/gocsv"
)

type irrigationRow struct {
	Date        string  `csv:"date"`
	MeanDepthMM float64 `csv:"mean_depth_mm"`
	TotalLiters float64 `csv:"total_liters"`
}

// CreateIrrigationCSV writes the per-day irrigation plan totals to
// data/result/<field>/<plot>/irrigation_plan.csv.
func CreateIrrigationCSV(days []time.Time, plan *irrigation.Plan, field, plot string) (string, error) {
	resultPath := fmt.Sprintf("%s/data/result/%s/%s", properties.RootPath(), field, plot)
	if err := os.MkdirAll(resultPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result folder: %v", err)
	}

	rows := make([]irrigationRow, 0, len(days))
	for i, day := range days {
		rows = append(rows, irrigationRow{
			Date:        day.Format("2006-01-02"),
			MeanDepthMM: utils.NaNMean(plan.DepthMM[i]),
			TotalLiters: plan.TotalLiters[i],
		})
	}

	outputPath := filepath.Join(resultPath, "irrigation_plan.csv")
	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create csv file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("failed to write csv file: %v", err)
	}

	return outputPath, nil
}
