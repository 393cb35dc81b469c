package stream

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func counted(n int, pulls *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= n; i++ {
			*pulls++
			if !yield(i) {
				return
			}
		}
	}
}

func TestLimitZeroMeansUnlimited(t *testing.T) {
	var pulls int
	src := counted(5, &pulls)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, Collect(Limit(src, 0)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Collect(Limit(src, -1)))
}

func TestLimitTruncates(t *testing.T) {
	var pulls int
	got := Collect(Limit(counted(5, &pulls), 3))

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 3, pulls, "the remainder of the source must stay unconsumed")
}

func TestLimitLargerThanSource(t *testing.T) {
	var pulls int
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Collect(Limit(counted(5, &pulls), 10)))
}

func TestLimitPropagatesEarlyBreak(t *testing.T) {
	var pulls int
	seq := Limit(counted(5, &pulls), 4)

	var got []int
	for v := range seq {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, pulls)
}

func TestCollectEmpty(t *testing.T) {
	var pulls int
	assert.Nil(t, Collect(Limit(counted(0, &pulls), 3)))
}
