package properties

// Calibration holds the agronomic constants used by the numeric pipeline.
// The defaults come from the wheat calibration the models were tuned
// against; callers pass a Calibration value explicitly so alternate
// calibrations can be tested without touching the core functions.
type Calibration struct {
	// SCL classes treated as obstruction: cloud shadow, cloud medium and
	// high probability, cirrus, snow.
	CloudClasses []int

	// Pixels with NDVI below this threshold are considered bare soil.
	// TODO(agronomy): 0.25 has no documented derivation, pending review.
	BareSoilNDVI float64

	// NDWI to soil moisture rescaling.
	NDWIMin         float64
	NDWIMax         float64
	SoilMoistureMin float64
	SoilMoistureMax float64

	// Outlier-robust normalization percentiles for the nutrient model.
	PercentileLow  float64
	PercentileHigh float64

	// Minimum valid (non-NaN) pixels required before percentile
	// normalization is considered well conditioned.
	MinValidPixels int

	// Risk score at or above which a pest alert fires.
	AlertThreshold float64

	// BSI above which the generic pest model counts soil exposure
	// against the pixel.
	SoilIndexThreshold float64

	// Field-mean NDVI the generic pest model compares against when
	// scoring canopy decline.
	NDVIReferenceMean float64

	// Sentinel-2 ground resolution in meters.
	PixelSizeMeters float64
}

func DefaultCalibration() Calibration {
	return Calibration{
		CloudClasses:       []int{3, 8, 9, 10, 11},
		BareSoilNDVI:       0.25,
		NDWIMin:            0.1,
		NDWIMax:            0.6,
		SoilMoistureMin:    0.05,
		SoilMoistureMax:    0.4,
		PercentileLow:      2,
		PercentileHigh:     98,
		MinValidPixels:     5,
		AlertThreshold:     0.6,
		SoilIndexThreshold: 0.25,
		NDVIReferenceMean:  0.55,
		PixelSizeMeters:    10,
	}
}
