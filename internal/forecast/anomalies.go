package forecast

import "time"

// Thresholds holds the anomaly limits applied to the predicted horizon.
type Thresholds struct {
	DroughtRainfallMM      float64
	DroughtSoilTempHigh    float64
	ThunderstormRainfallMM float64
	HeatwaveAirTempHigh    float64
	FrostAirTempLow        float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		DroughtRainfallMM:      1.0,
		DroughtSoilTempHigh:    35,
		ThunderstormRainfallMM: 30,
		HeatwaveAirTempHigh:    40,
		FrostAirTempLow:        2,
	}
}

type Alert struct {
	Time    time.Time
	Message string
}

// DetectAnomalies scans the predicted rows for drought, thunderstorm,
// heatwave and frost conditions.
func DetectAnomalies(predictions []PredictionRow, thresholds Thresholds) []Alert {
	var alerts []Alert
	for _, row := range predictions {
		if row.Rainfall < thresholds.DroughtRainfallMM && row.SoilTemperature > thresholds.DroughtSoilTempHigh {
			alerts = append(alerts, Alert{Time: row.Time, Message: "Drought risk"})
		}
		if row.Rainfall > thresholds.ThunderstormRainfallMM {
			alerts = append(alerts, Alert{Time: row.Time, Message: "Thunderstorm risk"})
		}
		if row.AirTemperature > thresholds.HeatwaveAirTempHigh {
			alerts = append(alerts, Alert{Time: row.Time, Message: "Heatwave alert"})
		}
		if row.AirTemperature < thresholds.FrostAirTempLow {
			alerts = append(alerts, Alert{Time: row.Time, Message: "Frost risk"})
		}
	}
	return alerts
}
