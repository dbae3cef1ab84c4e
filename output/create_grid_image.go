package output

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
	"github.com/fogleman/gg"
)

func normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	norm := (value - min) / (max - min)
	if norm < 0 {
		return 0
	}
	if norm > 1 {
		return 1
	}
	return norm
}

// valueToRGB ramps blue through green to red.
func valueToRGB(norm float64) (float64, float64, float64) {
	if norm <= 0.5 {
		ratio := norm / 0.5
		return 0, ratio, 1 - ratio
	}
	ratio := (norm - 0.5) / 0.5
	return ratio, 1 - ratio, 0
}

// CreateGridImage renders a value grid as a heat map PNG under
// data/result/<field>/<plot>/. Undefined pixels are drawn black.
func CreateGridImage(grid [][]float64, field, plot, name string, min, max float64) (string, error) {
	resultPath := fmt.Sprintf("%s/data/result/%s/%s", properties.RootPath(), field, plot)
	if err := os.MkdirAll(resultPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result folder: %v", err)
	}

	height, width := utils.GridShape(grid)
	if height == 0 || width == 0 {
		return "", fmt.Errorf("empty grid for %s", name)
	}

	dc := gg.NewContext(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := grid[y][x]
			if math.IsNaN(v) {
				dc.SetRGB(0, 0, 0)
			} else {
				dc.SetRGB(valueToRGB(normalize(v, min, max)))
			}
			dc.SetPixel(x, y)
		}
	}

	outputPath := filepath.Join(resultPath, name+".png")
	if err := dc.SavePNG(outputPath); err != nil {
		return "", fmt.Errorf("failed to save image: %v", err)
	}

	return outputPath, nil
}
