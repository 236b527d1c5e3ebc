package fht

// Radix2 transforms x in place, one pass over the data per stage.
// len(x) must be a power of two.
func Radix2(x []float64) {
	n := len(x)

	for h := 1; h < n; h <<= 1 {
		radix2Stage(x, h)
	}
}

// radix2Stage runs the single stage with half-block size h.
func radix2Stage(x []float64, h int) {
	n := len(x)
	bs := h << 1

	for i := 0; i < n; i += bs {
		lo := x[i : i+h : i+h]
		hi := x[i+h : i+bs : i+bs]

		for j := range lo {
			a, b := lo[j], hi[j]
			lo[j], hi[j] = a+b, a-b
		}
	}
}

// Radix2Strided transforms the n elements x[0], x[inc], ..., x[(n-1)*inc]
// in place. Elements between the addressed positions are not touched.
func Radix2Strided(x []float64, n, inc int) {
	if inc == 1 {
		Radix2(x[:n])
		return
	}

	for h := 1; h < n; h <<= 1 {
		step := h * inc
		bs := h << 1

		for i := 0; i < n; i += bs {
			p := i * inc
			end := p + step

			for ; p < end; p += inc {
				a, b := x[p], x[p+step]
				x[p], x[p+step] = a+b, a-b
			}
		}
	}
}
