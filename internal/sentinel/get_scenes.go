package sentinel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/properties"
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
	"github.com/gammazero/workerpool"
	"github.com/schollz/progressbar/v3"
)

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func loadScenesNotFound(filePath string) []string {
	var notFound []string
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, &notFound); err != nil {
		return nil
	}
	return notFound
}

func saveScenesNotFound(filePath string, notFound []string) {
	data, err := json.Marshal(notFound)
	if err != nil {
		return
	}
	os.WriteFile(filePath, data, 0644)
}

func openDataset(fileName string) (*godal.Dataset, error) {
	return godal.Open(fileName, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("%s", msg)
	}))
}

// isEmptyScene reports whether the acquisition contains no data at all,
// which is what the process API returns for dates without a pass.
func isEmptyScene(scene Scene) bool {
	for _, row := range scene.NIR {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}
	for _, row := range scene.SCL {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// GetScenes downloads one scene per interval of days between startDate and
// endDate inclusive, reusing GeoTIFFs already on disk. Dates the provider
// has no imagery for are remembered in missing_scenes.json and skipped on
// later runs. An empty result is a valid response and is left for the
// caller to classify.
func GetScenes(geometry *godal.Geometry, field, plot string, startDate, endDate time.Time, intervalDays int) ([]Scene, error) {
	imagePath := filepath.Join(properties.RootPath(), "data", "images", fmt.Sprintf("%s_%s", field, plot))
	if err := os.MkdirAll(imagePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %v", err)
	}

	scenesNotFoundFile := filepath.Join(imagePath, "missing_scenes.json")
	scenesNotFound := loadScenesNotFound(scenesNotFoundFile)

	var dates []time.Time
	for currentDate := startDate; !currentDate.After(endDate); currentDate = currentDate.AddDate(0, 0, intervalDays) {
		dates = append(dates, currentDate)
	}

	var (
		mu        sync.Mutex
		scenes    = make(map[time.Time]Scene)
		errGlobal error
	)
	progressBar := progressbar.Default(int64(len(dates)), "Fetching scenes")

	wp := workerpool.New(4)
	for _, date := range dates {
		d := date
		wp.Submit(func() {
			defer progressBar.Add(1)

			imageName := fmt.Sprintf("%s_%s_%s.tif", field, plot, d.Format("2006-01-02"))
			fileName := filepath.Join(imagePath, imageName)

			mu.Lock()
			skip := contains(scenesNotFound, imageName)
			mu.Unlock()
			if skip {
				return
			}

			if _, err := os.Stat(fileName); os.IsNotExist(err) {
				imageBytes, err := requestImage(d, d.Add(time.Hour*23+time.Minute*59+time.Second*59), geometry, 10)
				if err != nil {
					mu.Lock()
					errGlobal = fmt.Errorf("error requesting scene for %s: %w", d.Format("2006-01-02"), err)
					mu.Unlock()
					return
				}
				if err := os.WriteFile(fileName, imageBytes, 0644); err != nil {
					mu.Lock()
					errGlobal = fmt.Errorf("failed to write scene file: %v", err)
					mu.Unlock()
					return
				}
			}

			ds, err := openDataset(fileName)
			if err != nil {
				mu.Lock()
				errGlobal = fmt.Errorf("failed to open %s: %v", fileName, err)
				mu.Unlock()
				return
			}
			defer ds.Close()

			scene, err := SceneFromDataset(ds, d)
			if err != nil {
				mu.Lock()
				errGlobal = err
				mu.Unlock()
				return
			}

			mu.Lock()
			defer mu.Unlock()
			if isEmptyScene(scene) {
				scenesNotFound = append(scenesNotFound, imageName)
				saveScenesNotFound(scenesNotFoundFile, scenesNotFound)
				os.Remove(fileName)
				return
			}
			scenes[d] = scene
		})
	}
	wp.StopWait()

	if errGlobal != nil {
		return nil, errGlobal
	}

	sortedDates := utils.GetSortedKeys(scenes)
	result := make([]Scene, 0, len(scenes))
	for _, date := range sortedDates {
		result = append(result, scenes[date])
	}
	return result, nil
}
