package pest

import "math"

// Risk factor functions. Each maps one input to [0, 1] as a step or ramp;
// comparisons against NaN inputs are false, so undefined pixels score 0.

func aphidTempFactor(temp float64) float64 {
	if temp >= 18 && temp <= 20 {
		return 1
	}
	return 0
}

func aphidHumidityFactor(rh float64) float64 {
	if rh > 85 {
		return 1
	}
	return 0
}

func aphidRainFactor(rain float64) float64 {
	if rain < 350 {
		return 1
	}
	return 0
}

// aphidNDVIFactor flags canopy decline: a pixel scores when its NDVI has
// dropped more than 10% below the reference field mean.
func aphidNDVIFactor(ndvi, referenceMean float64) float64 {
	drop := (referenceMean - ndvi) / referenceMean
	if drop > 0.1 {
		return 1
	}
	return 0
}

func aphidSoilFactor(bsi, threshold float64) float64 {
	if bsi > threshold {
		return 1
	}
	return 0
}

func aphidNIRRedEdgeFactor(nir, redEdge float64) float64 {
	if nir < 0.6 && redEdge < 0.45 {
		return 1
	}
	return 0
}

func aphidSunshineFactor(sunshineHours float64) float64 {
	return math.Min(sunshineHours/10, 1)
}

func aphidCropStageFactor(stage int) float64 {
	switch {
	case stage >= 20 && stage <= 59:
		return 1
	case stage >= 70 && stage <= 79:
		return 0.5
	default:
		return 0
	}
}

func blastTempFactor(temp float64) float64 {
	if temp >= 25 && temp <= 30 {
		return 1
	}
	return 0
}

func blastHumidityFactor(rh float64) float64 {
	if rh >= 90 {
		return 1
	}
	return 0
}

func blastLeafWetnessFactor(leafWetnessHours float64) float64 {
	if leafWetnessHours > 6 {
		return 1
	}
	return 0
}

func blastRainFactor(rain float64) float64 {
	if rain > 5 {
		return 1
	}
	return 0
}

func blastCropStageFactor(stage int) float64 {
	switch {
	case stage >= 50 && stage <= 59:
		return 1
	case stage >= 60 && stage <= 69:
		return 0.8
	case stage >= 40 && stage < 50:
		return 0.6
	default:
		return 0.2
	}
}

func sunnPestTempFactor(temp float64) float64 {
	if temp >= 12 {
		return 1
	}
	return 0
}

func sunnPestRainFactor(rain float64) float64 {
	if rain < 50 {
		return 1
	}
	return 0
}

func sunnPestHumidityFactor(rh float64) float64 {
	if rh >= 40 && rh <= 70 {
		return 1
	}
	return 0
}

func sunnPestCropStageFactor(stage int) float64 {
	if stage >= 50 && stage <= 69 {
		return 1
	}
	return 0
}
