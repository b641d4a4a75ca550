package kdtools

import "math"

// NearestNeighbor returns the position in [first, last) closest to v under
// L2Dist. axis is the discriminator axis in effect at first; the range must
// already be k-d sorted starting at that axis. Ties are broken toward the
// pivot at each level: a candidate from either subrange replaces the
// current best only when it is strictly closer.
func NearestNeighbor[T Number](s Sequence[T], axis, first, last int, v Point[T]) int {
	return NearestNeighborEps(s, axis, first, last, v, 0)
}

// NearestNeighborEps is NearestNeighbor with an additive tolerance: once a
// candidate within eps of v is found, the descent returns immediately
// without exploring further. eps = 0 recovers exact nearest-neighbor
// semantics.
func NearestNeighborEps[T Number](s Sequence[T], axis, first, last int, v Point[T], eps float64) int {
	if last-first <= 1 {
		return first
	}
	p := FindPivot(s, axis, first, last)
	next := nextAxis(axis, s.Dims)

	minDist := L2Dist(s.At(p), v)
	if minDist < eps {
		return p
	}

	searchLeft := v[axis] < s.Axis(p, axis)
	var search int
	if searchLeft {
		search = NearestNeighborEps(s, next, first, p, v, eps)
	} else {
		search = NearestNeighborEps(s, next, p+1, last, v, eps)
	}

	if search == last {
		search = p
	} else {
		sdist := L2Dist(s.At(search), v)
		if sdist < eps {
			return search
		}
		if sdist < minDist {
			minDist = sdist
		} else {
			search = p
		}
	}

	if absDiff(v[axis], s.Axis(p, axis)) < minDist-eps {
		var s2 int
		if searchLeft {
			s2 = NearestNeighborEps(s, next, p+1, last, v, eps)
		} else {
			s2 = NearestNeighborEps(s, next, first, p, v, eps)
		}
		if s2 != last && L2Dist(s.At(s2), v) < minDist {
			search = s2
		}
	}
	return search
}

func absDiff[T Number](a, b T) float64 {
	return math.Abs(float64(a) - float64(b))
}
