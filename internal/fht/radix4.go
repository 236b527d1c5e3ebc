package fht

import m "github.com/cwbudde/algo-fht/internal/math"

// Radix4 transforms x in place, fusing the stages h and 2h into one pass
// over groups of four elements. When log2(len(x)) is odd the h=1 stage runs
// on its own first, so stage order matches Radix2 exactly.
func Radix4(x []float64) {
	n := len(x)
	h := 1

	if m.Log2(n)&1 == 1 {
		radix2Stage(x, 1)
		h = 2
	}

	for ; h < n; h <<= 2 {
		radix4Pass(x, h)
	}
}

// radix4Pass applies stages h and 2h on blocks of 4h elements.
func radix4Pass(x []float64, h int) {
	n := len(x)
	bs := h << 2

	for i := 0; i < n; i += bs {
		q0 := x[i : i+h : i+h]
		q1 := x[i+h : i+2*h : i+2*h]
		q2 := x[i+2*h : i+3*h : i+3*h]
		q3 := x[i+3*h : i+bs : i+bs]

		for j := range q0 {
			a, b, c, d := q0[j], q1[j], q2[j], q3[j]

			s0, d0 := a+b, a-b
			s1, d1 := c+d, c-d

			q0[j], q2[j] = s0+s1, s0-s1
			q1[j], q3[j] = d0+d1, d0-d1
		}
	}
}
