package irrigation

import (
	"github.com/crop-guardian/crop-guardian-api-poc/internal/utils"
)

type kcBracket struct {
	maxDAS  int
	kcMin   float64
	kcMax   float64
	ndviMin float64
	ndviMax float64
}

// Wheat crop coefficient brackets by days after sowing. Upper bounds are
// inclusive; the last bracket covers everything past 80 DAS.
var wheatKcBrackets = []kcBracket{
	{maxDAS: 20, kcMin: 0.3, kcMax: 0.4, ndviMin: 0.1, ndviMax: 0.3},
	{maxDAS: 45, kcMin: 0.4, kcMax: 1.15, ndviMin: 0.2, ndviMax: 0.6},
	{maxDAS: 80, kcMin: 1.15, kcMax: 1.2, ndviMin: 0.5, ndviMax: 0.8},
}

// 81+ DAS
var wheatKcLateBracket = kcBracket{kcMin: 0.7, kcMax: 1.0, ndviMin: 0.3, ndviMax: 0.6}

func bracketForDAS(das int) kcBracket {
	for _, b := range wheatKcBrackets {
		if das <= b.maxDAS {
			return b
		}
	}
	return wheatKcLateBracket
}

// WheatKc computes the pixel-wise crop coefficient for wheat from days
// after sowing and NDVI: a linear ramp between the bracket's Kc bounds,
// clipped so Kc never leaves the bracket.
func WheatKc(das int, ndvi [][]float64) [][]float64 {
	b := bracketForDAS(das)

	height, width := utils.GridShape(ndvi)
	kc := utils.NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ramp := utils.Clip((ndvi[y][x]-b.ndviMin)/(b.ndviMax-b.ndviMin), 0, 1)
			kc[y][x] = b.kcMin + (b.kcMax-b.kcMin)*ramp
		}
	}
	return kc
}
