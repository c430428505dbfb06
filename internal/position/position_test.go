package position_test

import (
	"testing"

	"kanban/internal/position"

	"github.com/stretchr/testify/assert"
)

func TestAppend_EmptySetStartsAtGap(t *testing.T) {
	assert.Equal(t, 1000, position.Append(nil))
	assert.Equal(t, 1000, position.After(0))
}

func TestAppend_SequenceIsStrictlyIncreasingByGap(t *testing.T) {
	var keys []int
	for i := 0; i < 10; i++ {
		next := position.Append(keys)
		if len(keys) > 0 {
			assert.Equal(t, keys[len(keys)-1]+position.Gap, next)
		}
		keys = append(keys, next)
	}
	assert.Equal(t, 1000, keys[0])
	assert.Equal(t, 10000, keys[9])
}

func TestAppend_UsesMaximumNotLast(t *testing.T) {
	assert.Equal(t, 4000, position.Append([]int{3000, 1000, 2000}))
}

func TestDense(t *testing.T) {
	assert.Equal(t, []int{1000, 2000, 3000}, []int{position.Dense(0), position.Dense(1), position.Dense(2)})
}

func TestSort_TiesKeepOriginalOrder(t *testing.T) {
	type item struct {
		id  string
		pos int
	}
	items := []item{{"c", 2000}, {"a", 1000}, {"b", 2000}, {"d", 1000}}

	position.Sort(items, func(i item) int { return i.pos })

	var ids []string
	for _, i := range items {
		ids = append(ids, i.id)
	}
	assert.Equal(t, []string{"a", "d", "c", "b"}, ids)
}
