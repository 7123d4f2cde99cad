package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceSatisfiesRecurrence(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 15, 40} {
		terms := Terms(n)
		require.Len(t, terms, n)

		for i, term := range terms {
			assert.Equal(t, i, term.Index)

			switch i {
			case 0:
				assert.Equal(t, uint64(0), term.Value)
			case 1:
				assert.Equal(t, uint64(1), term.Value)
			default:
				assert.Equal(t, terms[i-1].Value+terms[i-2].Value, term.Value)
			}
		}
	}
}

func TestSequenceIsRestartable(t *testing.T) {
	first := Terms(15)
	second := Terms(15)
	assert.Equal(t, first, second)
}

func TestSequenceExhausts(t *testing.T) {
	seq := NewSequence(2)

	term, ok := seq.Next()
	require.True(t, ok)
	assert.Equal(t, Term{Index: 0, Value: 0}, term)

	term, ok = seq.Next()
	require.True(t, ok)
	assert.Equal(t, Term{Index: 1, Value: 1}, term)

	_, ok = seq.Next()
	assert.False(t, ok)

	// Exhaustion is stable.
	_, ok = seq.Next()
	assert.False(t, ok)
}

func TestTermsOfNonPositiveCount(t *testing.T) {
	assert.Empty(t, Terms(0))
	assert.Empty(t, Terms(-3))
}

func TestGoldenRatioClosedForm(t *testing.T) {
	assert.InDelta(t, 1.618034, GoldenRatio(), 1e-6)
	assert.InDelta(t, (1+math.Sqrt(5))/2, GoldenRatio(), 0)
}
