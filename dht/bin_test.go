package dht

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinOverlayEmpty(t *testing.T) {
	b := NewBinOverlay()
	assert.Empty(t, b.Find(0, 3))
	assert.Empty(t, b.Find(0xDEAD, 0))
}

func TestBinOverlaySingleNode(t *testing.T) {
	b := NewBinOverlay()
	id := NodeID(0x0123_4567_89AB_CDEF)
	b.InsertNode(id)

	assert.Equal(t, []NodeID{id}, b.Find(id, 1))
	assert.Equal(t, []NodeID{id}, b.Find(0, 5))
}

func TestBinOverlayBucketOverflowSortsByDistance(t *testing.T) {
	b := NewBinOverlay()
	ids := []NodeID{
		0xFFE0_0000_0000_0000,
		0xFFE0_0000_0000_0001,
		0xFFE0_0000_0000_0002,
		0xFFE0_0000_0000_0003,
	}
	for _, id := range ids {
		b.InsertNode(id)
	}

	got := b.Find(0xFFE0_0000_0000_0000, 2)
	require.Len(t, got, 2)
	assert.Equal(t, ids[0], got[0])
	assert.Equal(t, ids[1], got[1])
}

func TestBinOverlayMatchesNaiveOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBinOverlay()
	var ids []NodeID
	for i := 0; i < 2000; i++ {
		id := rng.Uint64()
		ids = append(ids, id)
		b.InsertNode(id)
	}

	for i := 0; i < 20; i++ {
		target := rng.Uint64()
		k := 1 + rng.Intn(32)

		got := b.Find(target, k)
		want := NaiveFind(ids, target, k)

		assert.Len(t, got, len(want))
		gotMax := maxDistance(got, target)
		wantMax := maxDistance(want, target)
		assert.Equal(t, wantMax, gotMax)
	}
}

func TestBinOverlayFindMoreThanStoredReturnsAll(t *testing.T) {
	b := NewBinOverlay()
	ids := []NodeID{1, 2, 3}
	for _, id := range ids {
		b.InsertNode(id)
	}

	got := b.Find(0, 100)
	assert.ElementsMatch(t, ids, got)
}

func TestBinOverlayClassifiedToleranceAtHighClass(t *testing.T) {
	b := NewBinOverlay()
	const class = Class(60)
	ids := []NodeID{0x1, 0x2, 0xF, 0x0}
	for _, id := range ids {
		b.InsertClassifiedNode(id, class)
	}

	got := b.FindClassified(0x0, 1, class)
	require.Len(t, got, 1)
	assert.Equal(t, NodeID(0x0), got[0])
}

func maxDistance(ids []NodeID, target NodeID) Distance {
	var max Distance
	for _, id := range ids {
		if d := NodeDistance(id, target); d > max {
			max = d
		}
	}
	return max
}
