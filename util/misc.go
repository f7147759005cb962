package util

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ArgMax returns the index of the largest value, the lowest index on ties.
func ArgMax(values []float64) int {
	return floats.MaxIdx(values)
}

// Diagonal copies the main diagonal of a square matrix.
func Diagonal(m mat.Matrix) []float64 {
	r, c := m.Dims()
	n := r
	if c < n {
		n = c
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = m.At(i, i)
	}
	return out
}

// DiagonalArgMax restricts the argmax to cells where row == column.
func DiagonalArgMax(m mat.Matrix) int {
	return ArgMax(Diagonal(m))
}

func CopyFloatSlice(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
