package sentinel

import (
	"fmt"
	"time"

	"github.com/airbusgeo/godal"
)

// Scene is one Sentinel-2 acquisition over the requested field: the seven
// reflectance bands plus the SCL classification band, all sharing one grid
// shape. Values are FLOAT32 reflectances as delivered by the process API.
type Scene struct {
	Timestamp time.Time
	Blue      [][]float64
	Green     [][]float64
	Red       [][]float64
	RedEdge   [][]float64
	NIR       [][]float64
	SWIR1     [][]float64
	SWIR2     [][]float64
	SCL       [][]float64
}

// Band order of the evalscript in request_image.go.
var bandNames = []string{"B02", "B03", "B04", "B05", "B08", "B11", "B12", "SCL"}

func readBand(band godal.Band) ([][]float64, error) {
	xSize := band.Structure().SizeX
	ySize := band.Structure().SizeY
	data := make([]float64, xSize*ySize)
	err := band.Read(0, 0, data, xSize, ySize)
	if err != nil {
		return nil, err
	}
	result := make([][]float64, ySize)
	for i := range result {
		result[i] = data[i*xSize : (i+1)*xSize]
	}
	return result, nil
}

// SceneFromDataset reads the eight bands of a downloaded GeoTIFF into a
// Scene. The dataset must carry the bands in evalscript order.
func SceneFromDataset(ds *godal.Dataset, timestamp time.Time) (Scene, error) {
	bands := ds.Bands()
	if len(bands) < len(bandNames) {
		return Scene{}, fmt.Errorf("dataset has %d bands, expected %d", len(bands), len(bandNames))
	}

	bandData := make(map[string][][]float64, len(bandNames))
	for i, name := range bandNames {
		data, err := readBand(bands[i])
		if err != nil {
			return Scene{}, fmt.Errorf("failed to read band %s: %w", name, err)
		}
		bandData[name] = data
	}

	return Scene{
		Timestamp: timestamp,
		Blue:      bandData["B02"],
		Green:     bandData["B03"],
		Red:       bandData["B04"],
		RedEdge:   bandData["B05"],
		NIR:       bandData["B08"],
		SWIR1:     bandData["B11"],
		SWIR2:     bandData["B12"],
		SCL:       bandData["SCL"],
	}, nil
}

// Shape returns (height, width) of the scene grids.
func (s Scene) Shape() (int, int) {
	if len(s.NIR) == 0 {
		return 0, 0
	}
	return len(s.NIR), len(s.NIR[0])
}
