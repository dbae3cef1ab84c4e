package forecast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HistoryRow is one hour of observed weather fed to the forecast model.
type HistoryRow struct {
	Time            time.Time `json:"time"`
	Rainfall        float64   `json:"rainfall_mm"`
	AirTemperature  float64   `json:"air_temperature_c"`
	SoilTemperature float64   `json:"soil_temperature_c"`
}

// PredictionRow is one hour of predicted weather returned by the model.
type PredictionRow struct {
	Time            time.Time `json:"time"`
	Rainfall        float64   `json:"rainfall_mm"`
	AirTemperature  float64   `json:"air_temperature_c"`
	SoilTemperature float64   `json:"soil_temperature_c"`
}

// Client talks to the weather forecast service over HTTP. The model and
// its feature scaler live behind the service; this side only moves rows.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// Predict sends the windowed history and returns the predicted horizon.
func (c *Client) Predict(history []HistoryRow) ([]PredictionRow, error) {
	reqBody := map[string]interface{}{
		"history": history,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshaling forecast request: %v", err)
	}

	resp, err := c.client.Post(
		fmt.Sprintf("%s/predict", c.baseURL),
		"application/json",
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("error calling forecast service: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast service returned status %d", resp.StatusCode)
	}

	var result struct {
		Predictions []PredictionRow `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error decoding forecast response: %v", err)
	}

	return result.Predictions, nil
}
