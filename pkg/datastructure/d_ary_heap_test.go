package datastructure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMinHeapExtractOrder(t *testing.T) {
	testCases := []struct {
		name string
		d    int
	}{
		{name: "binary heap", d: 2},
		{name: "four-ary heap", d: 4},
		{name: "eight-ary heap", d: 8},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rd := rand.New(rand.NewSource(42))
			h := NewdAryHeap[Index](tt.d)

			n := 500
			for i := 0; i < n; i++ {
				h.Insert(NewPriorityQueueNode(rd.Float64()*100, Index(i%50)))
			}
			assert.Equal(t, n, h.Size())

			prev := math.Inf(-1)
			for !h.IsEmpty() {
				minNode, err := h.ExtractMin()
				require.NoError(t, err)
				assert.GreaterOrEqual(t, minNode.GetRank(), prev)
				prev = minNode.GetRank()
			}
			assert.Equal(t, 0, h.Size())
		})
	}
}

func TestMinHeapStaleDuplicates(t *testing.T) {
	h := NewBinaryHeap[Index]()

	h.Insert(NewPriorityQueueNode(5.0, Index(1)))
	h.Insert(NewPriorityQueueNode(3.0, Index(2)))
	// node 1 improved, old entry with rank 5 stays in the heap
	h.Insert(NewPriorityQueueNode(1.0, Index(1)))
	h.Insert(NewPriorityQueueNode(4.0, Index(3)))

	want := []struct {
		item Index
		rank float64
	}{
		{1, 1.0},
		{2, 3.0},
		{3, 4.0},
		{1, 5.0},
	}

	for _, w := range want {
		got, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, w.item, got.GetItem())
		assert.Equal(t, w.rank, got.GetRank())
	}
	assert.True(t, h.IsEmpty())
}

func TestMinHeapEmpty(t *testing.T) {
	h := NewFourAryHeap[Index]()

	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)

	_, err = h.GetMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)

	assert.True(t, math.IsInf(h.GetMinrank(), 1))
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewBinaryHeap[Index]()
	nodes := []*PriorityQueueNode[Index]{
		NewPriorityQueueNode(10.0, Index(0)),
		NewPriorityQueueNode(20.0, Index(1)),
		NewPriorityQueueNode(30.0, Index(2)),
	}
	for _, n := range nodes {
		h.Insert(n)
	}

	require.NoError(t, h.DecreaseKey(nodes[2], 1.0))
	minNode, err := h.GetMin()
	require.NoError(t, err)
	assert.Equal(t, Index(2), minNode.GetItem())
	assert.Equal(t, 1.0, h.GetMinrank())

	// increasing a key is rejected
	assert.Error(t, h.DecreaseKey(nodes[0], 50.0))

	extracted, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, -1, extracted.GetPos())
	assert.Error(t, h.DecreaseKey(extracted, 0.5))
}

func TestMinHeapClear(t *testing.T) {
	h := NewBinaryHeap[Index]()
	h.Preallocate(16)
	for i := 0; i < 10; i++ {
		h.Insert(NewPriorityQueueNode(float64(i), Index(i)))
	}
	h.Clear()
	assert.True(t, h.IsEmpty())

	h.Insert(NewPriorityQueueNode(2.0, Index(7)))
	got, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, Index(7), got.GetItem())
}
