package indices

// ObstructionMask flags every pixel whose SCL class is one of the
// configured obstruction classes (cloud shadow, clouds, cirrus, snow).
func ObstructionMask(scl [][]float64, cloudClasses []int) [][]bool {
	classes := make(map[int]bool, len(cloudClasses))
	for _, c := range cloudClasses {
		classes[c] = true
	}

	mask := make([][]bool, len(scl))
	for y, row := range scl {
		mask[y] = make([]bool, len(row))
		for x, v := range row {
			mask[y][x] = classes[int(v)]
		}
	}
	return mask
}

// ObstructionFraction is the share of obstructed pixels, the scene's
// quality score (lower is better). Returns 0 for an empty mask.
func ObstructionFraction(mask [][]bool) float64 {
	var obstructed, total int
	for _, row := range mask {
		for _, v := range row {
			total++
			if v {
				obstructed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(obstructed) / float64(total)
}
