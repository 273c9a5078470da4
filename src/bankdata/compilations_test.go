package bankdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestOrderItems(t *testing.T) {
	t.Run("implied order follows array index", func(t *testing.T) {
		ordered := orderItems([]ItemRef{
			{ItemID: 10},
			{ItemID: 20},
			{ItemID: 30},
		})
		assert.Equal(t, []int{10, 20, 30}, itemIDs(ordered))
		assert.Equal(t, []int{1, 2, 3}, positions(ordered))
	})

	t.Run("explicit order wins and gets densified", func(t *testing.T) {
		ordered := orderItems([]ItemRef{
			{ItemID: 10, Order: 7},
			{ItemID: 20, Order: 3},
			{ItemID: 30, Order: 5},
		})
		assert.Equal(t, []int{20, 30, 10}, itemIDs(ordered))
		assert.Equal(t, []int{1, 2, 3}, positions(ordered))
	})

	t.Run("ties keep array order", func(t *testing.T) {
		ordered := orderItems([]ItemRef{
			{ItemID: 10, Order: 2},
			{ItemID: 20, Order: 2},
			{ItemID: 30, Order: 1},
		})
		assert.Equal(t, []int{30, 10, 20}, itemIDs(ordered))
		assert.Equal(t, []int{1, 2, 3}, positions(ordered))
	})

	t.Run("include flags survive reordering", func(t *testing.T) {
		ordered := orderItems([]ItemRef{
			{ItemID: 10, Order: 2, IncludeSolution: boolPtr(false)},
			{ItemID: 20, Order: 1},
		})
		assert.Equal(t, []int{20, 10}, itemIDs(ordered))
		assert.Nil(t, ordered[0].IncludeSolution)
		assert.False(t, *ordered[1].IncludeSolution)
	})
}

func itemIDs(ordered []orderedItemRef) []int {
	ids := make([]int, len(ordered))
	for i, entry := range ordered {
		ids[i] = entry.ItemID
	}
	return ids
}

func positions(ordered []orderedItemRef) []int {
	ps := make([]int, len(ordered))
	for i, entry := range ordered {
		ps[i] = entry.position
	}
	return ps
}
