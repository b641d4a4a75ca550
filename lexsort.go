package kdtools

import "sort"

// LexSort sorts s under plain lexicographic order (cyclic lex from axis 0).
func LexSort[T Number](s Sequence[T]) {
	sort.Sort(lexSortable[T]{s: s})
}

// LexSortFunc is LexSort generalized to a user-supplied per-axis comparator.
func LexSortFunc[T Number](s Sequence[T], cmp Comparator[T]) {
	sort.Sort(lexSortableFunc[T]{s: s, cmp: cmp})
}

type lexSortable[T Number] struct {
	s Sequence[T]
}

func (l lexSortable[T]) Len() int { return l.s.Len() }
func (l lexSortable[T]) Less(i, j int) bool {
	return KdLessFrom(0, l.s.At(i), l.s.At(j))
}
func (l lexSortable[T]) Swap(i, j int) { l.s.Swap(i, j) }

type lexSortableFunc[T Number] struct {
	s   Sequence[T]
	cmp Comparator[T]
}

func (l lexSortableFunc[T]) Len() int { return l.s.Len() }
func (l lexSortableFunc[T]) Less(i, j int) bool {
	return KdLessFromFunc(0, l.cmp, l.s.At(i), l.s.At(j))
}
func (l lexSortableFunc[T]) Swap(i, j int) { l.s.Swap(i, j) }
