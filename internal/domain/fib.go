package domain

import "math"

// Term is one element of the Fibonacci sequence: an index paired with its
// value. Terms are immutable once produced.
type Term struct {
	Index int
	Value uint64
}

// Sequence lazily produces the first limit Fibonacci terms in index
// order. A Sequence is single-use; restart by constructing a fresh one,
// which reproduces identical terms.
type Sequence struct {
	limit int
	index int
	a, b  uint64
}

func NewSequence(limit int) *Sequence {
	return &Sequence{limit: limit, b: 1}
}

// Next returns the next term in index order. The second return is false
// once the sequence is exhausted.
func (s *Sequence) Next() (Term, bool) {
	if s.index >= s.limit {
		return Term{}, false
	}

	term := Term{Index: s.index, Value: s.a}
	s.a, s.b = s.b, s.a+s.b
	s.index++
	return term, true
}

// Terms collects the first n Fibonacci terms eagerly.
func Terms(n int) []Term {
	if n <= 0 {
		return nil
	}

	terms := make([]Term, 0, n)
	seq := NewSequence(n)
	for {
		term, ok := seq.Next()
		if !ok {
			return terms
		}
		terms = append(terms, term)
	}
}

// GoldenRatio is the closed-form value (1+√5)/2 that the ratio of
// consecutive Fibonacci terms converges to.
func GoldenRatio() float64 {
	return (1 + math.Sqrt(5)) / 2
}
