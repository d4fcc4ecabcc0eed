package kernel

// LinearSample folds a one-sided discrete kernel into bilinear taps.
//
// The center tap w[0] stays at offset 0. Every following pair (a, b) =
// (2k-1, 2k) is replaced by a single fetch placed between the two texels
// so that hardware filtering reproduces both weights:
//
//	weight = w[a] + w[b]
//	offset = (a*w[a] + b*w[b]) / weight
//
// An unpaired last tap is kept at its own offset. The total weight of the
// kernel is preserved. Both results have length 1 + ceil((len(w)-1)/2).
func LinearSample(w []float64) (offsets, weights []float64) {
	if len(w) == 0 {
		return nil, nil
	}

	size := 1 + len(w)/2
	offsets = make([]float64, 0, size)
	weights = make([]float64, 0, size)

	offsets = append(offsets, 0)
	weights = append(weights, w[0])

	for a := 1; a < len(w); a += 2 {
		b := a + 1
		if b >= len(w) {
			offsets = append(offsets, float64(a))
			weights = append(weights, w[a])
			break
		}

		weight := w[a] + w[b]
		if weight == 0 {
			// Both taps underflowed; place the fetch between them.
			offsets = append(offsets, float64(a)+0.5)
			weights = append(weights, 0)
			continue
		}
		offsets = append(offsets, (float64(a)*w[a]+float64(b)*w[b])/weight)
		weights = append(weights, weight)
	}

	return offsets, weights
}
