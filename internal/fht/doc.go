// Package fht implements the in-place, unnormalized Walsh-Hadamard butterfly
// kernels.
//
// A transform of size n = 2^k runs k stages. At the stage with half-block
// size h every block of 2h elements is combined pairwise:
//
//	x[j], x[j+h] = x[j]+x[j+h], x[j]-x[j+h]
//
// No kernel here validates its input. Callers check that the size is a power
// of two before any element is written.
//
// All kernels perform the same additions on the same operands, so their
// results are bit-identical; they differ only in memory traffic.
package fht
