package indices

import (
	"errors"
	"time"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/sentinel"
)

// ErrNoImagery reports that the imagery provider returned zero scenes for
// the requested bounding box and time window.
var ErrNoImagery = errors.New("no satellite images found for given bbox and time range")

// SelectedScene is the least obstructed acquisition of a time series
// together with its derived index raster.
type SelectedScene struct {
	Timestamp           time.Time
	Scene               sentinel.Scene
	Indexes             IndexRaster
	ObstructionFraction float64
}

// SelectBestScene picks the scene with the lowest obstruction fraction,
// breaking ties on the earlier timestamp, and derives its index raster.
func SelectBestScene(scenes []sentinel.Scene, cal properties.Calibration) (*SelectedScene, error) {
	if len(scenes) == 0 {
		return nil, ErrNoImagery
	}

	best := -1
	bestFraction := 0.0
	for i, scene := range scenes {
		fraction := ObstructionFraction(ObstructionMask(scene.SCL, cal.CloudClasses))
		if best == -1 || fraction < bestFraction ||
			(fraction == bestFraction && scene.Timestamp.Before(scenes[best].Timestamp)) {
			best = i
			bestFraction = fraction
		}
	}

	indexes, err := Calculate(scenes[best], cal)
	if err != nil {
		return nil, err
	}

	return &SelectedScene{
		Timestamp:           scenes[best].Timestamp,
		Scene:               scenes[best],
		Indexes:             indexes,
		ObstructionFraction: bestFraction,
	}, nil
}
