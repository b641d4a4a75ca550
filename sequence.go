package kdtools

// Point is a single K-ary tuple's component values, used both as a query
// value passed to a descent operation and as the return type of
// Sequence.At.
type Point[T Number] []T

// Sequence is a contiguous, random-access, in-place mutable collection of
// K-ary tuples of a shared component type T, stored flat and row-major:
// tuple i occupies Data[i*Dims : (i+1)*Dims]. It borrows Data rather than
// copying it, matching the caller-owned semantics of the operations that
// consume it.
type Sequence[T Number] struct {
	Data []T
	Dims int
}

// NewSequence wraps flat row-major data as a Sequence of the given arity.
// len(data) must be a multiple of dims.
func NewSequence[T Number](data []T, dims int) Sequence[T] {
	return Sequence[T]{Data: data, Dims: dims}
}

// Len returns the number of tuples in the sequence.
func (s Sequence[T]) Len() int {
	if s.Dims == 0 {
		return 0
	}
	return len(s.Data) / s.Dims
}

// At returns the tuple at position i as a view into the underlying data;
// mutating the returned slice mutates the sequence.
func (s Sequence[T]) At(i int) Point[T] {
	return Point[T](s.Data[i*s.Dims : (i+1)*s.Dims])
}

// Axis returns the value of tuple i on the given axis.
func (s Sequence[T]) Axis(i, axis int) T {
	return s.Data[i*s.Dims+axis]
}

// Swap exchanges the tuples at positions i and j in place.
func (s Sequence[T]) Swap(i, j int) {
	if i == j {
		return
	}
	a := s.Data[i*s.Dims : (i+1)*s.Dims]
	b := s.Data[j*s.Dims : (j+1)*s.Dims]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// nextAxis cycles the discriminator axis as recursion depth increases.
func nextAxis(axis, dims int) int {
	return (axis + 1) % dims
}
