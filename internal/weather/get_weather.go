package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/crop-guardian/crop-guardian-api-poc/internal/cache"
)

// HourlyData mirrors the open-meteo archive hourly block; the parallel
// slices share one timestamp axis.
type HourlyData struct {
	Time             []string  `json:"time"`
	Temperature      []float64 `json:"temperature_2m"`
	RelativeHumidity []float64 `json:"relative_humidity_2m"`
	Precipitation    []float64 `json:"precipitation"`
	SoilTemperature  []float64 `json:"soil_temperature_7_to_28cm"`
	WindSpeed        []float64 `json:"wind_speed_10m"`
	SunshineDuration []float64 `json:"sunshine_duration"`
	ET0              []float64 `json:"et0_fao_evapotranspiration"`
}

type WeatherResponse struct {
	Hourly HourlyData `json:"hourly"`
}

// FetchHourlyWeather retrieves the hourly archive series for a point and
// date range, retrying a bounded number of times and caching successful
// responses on disk.
func FetchHourlyWeather(latitude, longitude float64, startDate, endDate time.Time, retries int) (*HourlyData, error) {
	fileCache := cache.NewFileCache[HourlyData]("weather", 0)
	cacheKey := fileCache.GenerateKey(latitude, longitude, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if cached, ok := fileCache.Get(cacheKey); ok {
		return &cached, nil
	}

	url := "https://archive-api.open-meteo.com/v1/archive"
	params := fmt.Sprintf("?latitude=%f&longitude=%f&start_date=%s&end_date=%s&hourly=temperature_2m,relative_humidity_2m,precipitation,soil_temperature_7_to_28cm,wind_speed_10m,sunshine_duration,et0_fao_evapotranspiration",
		latitude, longitude, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))

	var attempt int
	for attempt < retries {
		resp, err := http.Get(url + params)
		if err != nil {
			fmt.Printf("Failed to retrieve weather data: %v. Retrying... (%d/%d)\n", err, attempt+1, retries)
			time.Sleep(10 * time.Second)
			attempt++
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			fmt.Printf("Failed to retrieve weather data: %d. Retrying... (%d/%d)\n", resp.StatusCode, attempt+1, retries)
			time.Sleep(10 * time.Second)
			attempt++
			continue
		}

		var weatherData WeatherResponse
		err = json.NewDecoder(resp.Body).Decode(&weatherData)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse weather response: %v", err)
		}

		if err := fileCache.Set(cacheKey, weatherData.Hourly); err != nil {
			fmt.Printf("Failed to cache weather data: %v\n", err)
		}

		return &weatherData.Hourly, nil
	}

	return nil, fmt.Errorf("failed to retrieve weather data after %d attempts", retries)
}
