package fht

// Fully unrolled kernels for the smallest sizes. Each one keeps the radix-2
// stage order (pairs at distance 1, then 2, 4, 8), so results match Radix2
// bit for bit.

func size1(x []float64) {}

// Size2 transforms a 2-element slice in place.
func Size2(x []float64) {
	x = x[:2:2]
	x[0], x[1] = x[0]+x[1], x[0]-x[1]
}

// Size4 transforms a 4-element slice in place.
func Size4(x []float64) {
	x = x[:4:4]

	a0, a1 := x[0]+x[1], x[0]-x[1]
	a2, a3 := x[2]+x[3], x[2]-x[3]

	x[0], x[2] = a0+a2, a0-a2
	x[1], x[3] = a1+a3, a1-a3
}

// Size8 transforms an 8-element slice in place.
func Size8(x []float64) {
	x = x[:8:8]

	a0, a1 := x[0]+x[1], x[0]-x[1]
	a2, a3 := x[2]+x[3], x[2]-x[3]
	a4, a5 := x[4]+x[5], x[4]-x[5]
	a6, a7 := x[6]+x[7], x[6]-x[7]

	b0, b2 := a0+a2, a0-a2
	b1, b3 := a1+a3, a1-a3
	b4, b6 := a4+a6, a4-a6
	b5, b7 := a5+a7, a5-a7

	x[0], x[4] = b0+b4, b0-b4
	x[1], x[5] = b1+b5, b1-b5
	x[2], x[6] = b2+b6, b2-b6
	x[3], x[7] = b3+b7, b3-b7
}

// Size16 transforms a 16-element slice in place.
func Size16(x []float64) {
	x = x[:16:16]

	a0, a1 := x[0]+x[1], x[0]-x[1]
	a2, a3 := x[2]+x[3], x[2]-x[3]
	a4, a5 := x[4]+x[5], x[4]-x[5]
	a6, a7 := x[6]+x[7], x[6]-x[7]
	a8, a9 := x[8]+x[9], x[8]-x[9]
	a10, a11 := x[10]+x[11], x[10]-x[11]
	a12, a13 := x[12]+x[13], x[12]-x[13]
	a14, a15 := x[14]+x[15], x[14]-x[15]

	b0, b2 := a0+a2, a0-a2
	b1, b3 := a1+a3, a1-a3
	b4, b6 := a4+a6, a4-a6
	b5, b7 := a5+a7, a5-a7
	b8, b10 := a8+a10, a8-a10
	b9, b11 := a9+a11, a9-a11
	b12, b14 := a12+a14, a12-a14
	b13, b15 := a13+a15, a13-a15

	c0, c4 := b0+b4, b0-b4
	c1, c5 := b1+b5, b1-b5
	c2, c6 := b2+b6, b2-b6
	c3, c7 := b3+b7, b3-b7
	c8, c12 := b8+b12, b8-b12
	c9, c13 := b9+b13, b9-b13
	c10, c14 := b10+b14, b10-b14
	c11, c15 := b11+b15, b11-b15

	x[0], x[8] = c0+c8, c0-c8
	x[1], x[9] = c1+c9, c1-c9
	x[2], x[10] = c2+c10, c2-c10
	x[3], x[11] = c3+c11, c3-c11
	x[4], x[12] = c4+c12, c4-c12
	x[5], x[13] = c5+c13, c5-c13
	x[6], x[14] = c6+c14, c6-c14
	x[7], x[15] = c7+c15, c7-c15
}

// MaxCodeletSize is the largest size with an unrolled kernel.
const MaxCodeletSize = 16

// codeletFor returns the unrolled kernel for n, or nil.
func codeletFor(n int) func([]float64) {
	switch n {
	case 1:
		return size1
	case 2:
		return Size2
	case 4:
		return Size4
	case 8:
		return Size8
	case 16:
		return Size16
	default:
		return nil
	}
}
