package supply

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHello(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Hello", Hello()())
}

func TestRandomInt_ConsecutiveCallsDiffer(t *testing.T) {
	t.Parallel()

	next := RandomInt()
	first, second := next(), next()

	assert.NotEqual(t, first, second)
	assert.GreaterOrEqual(t, first, 0)
}

func TestBoundedRandomInt(t *testing.T) {
	t.Parallel()

	bounded := BoundedRandomInt()
	for _, bound := range []int{1, 10, 100, 1000, 10000} {
		for range 100 {
			v := bounded(bound)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, bound)
		}
	}
}

func TestBoundedRandomInt_NonPositiveBoundPanics(t *testing.T) {
	t.Parallel()

	bounded := BoundedRandomInt()
	assert.Panics(t, func() { bounded(0) })
	assert.Panics(t, func() { bounded(-3) })
}

func TestNMultiply(t *testing.T) {
	t.Parallel()

	multiplyByFive := NMultiply(5)()
	assert.Equal(t, 55, multiplyByFive(11))
	assert.Equal(t, 0, NMultiply(0)()(11))
}

func TestWellDone(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "WELL DONE!", WellDone()()()())
}
