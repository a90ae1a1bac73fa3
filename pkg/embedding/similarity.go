package embedding

import "math"

// CosineSimilarity returns dot(a,b)/(|a|*|b|), in [-1, 1].
// It is 0 when either vector is empty or has zero magnitude, and when the lengths differ.
func CosineSimilarity(a, b Vector) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, aMag, bMag float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		aMag += x * x
		bMag += y * y
	}

	if aMag == 0 || bMag == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(aMag) * math.Sqrt(bMag))
	// Rounding can push identical vectors a hair past 1.
	return math.Max(-1, math.Min(1, sim))
}

// Nearest returns the index of the corpus vector most similar to query and its similarity.
// Ties resolve to the lowest index. An empty corpus returns -1.
func Nearest(query Vector, corpus []Vector) (int, float64) {
	best, bestSim := -1, math.Inf(-1)
	for i, v := range corpus {
		if sim := CosineSimilarity(query, v); sim > bestSim {
			best, bestSim = i, sim
		}
	}
	if best < 0 {
		return -1, 0
	}
	return best, bestSim
}
