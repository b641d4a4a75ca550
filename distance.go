package kdtools

import "gonum.org/v1/gonum/floats"

// SumOfSquares returns the squared Euclidean distance between two points,
// avoiding the sqrt in L2Dist for callers that only need to compare
// distances against each other (e.g. nearest-neighbor pruning).
func SumOfSquares[T Number](a, b Point[T]) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

// L2Dist returns the Euclidean distance between two points.
func L2Dist[T Number](a, b Point[T]) float64 {
	return floats.Distance(toFloat64s(a), toFloat64s(b), 2)
}

func toFloat64s[T Number](p Point[T]) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = float64(v)
	}
	return out
}
