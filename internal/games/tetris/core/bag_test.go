package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	for range 50 {
		Shuffle(rng, items)
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, items)
	}
}

func TestShuffleEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.NotPanics(t, func() { Shuffle(rng, []Shape{}) })
}

func TestPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 20 {
		assert.ElementsMatch(t, AllShapes[:], Permutation(rng))
	}
}

func TestBagStartsWithTwoSets(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(3)))
	assert.Equal(t, 2*ShapeCount, b.Len())
}

func TestBagGroupsAreFair(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(42)))

	for group := range 100 {
		var drawn []Shape
		for range ShapeCount {
			require.Greater(t, b.Len(), ShapeCount)
			drawn = append(drawn, b.Next())
		}
		assert.ElementsMatch(t, AllShapes[:], drawn, "group %d", group)
	}
}

func TestBagPeekMatchesNext(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(5)))
	for range 30 {
		head := b.Peek()
		assert.Equal(t, head, b.Next())
	}
}

func TestBagUpcoming(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(9)))
	upcoming := b.Upcoming(6)
	require.Len(t, upcoming, 6)

	upcoming[0] = ShapeCount
	assert.True(t, b.Peek().Valid(), "Upcoming returns a copy")

	want := b.Upcoming(6)
	for i := range want {
		assert.Equal(t, want[i], b.Next())
	}

	assert.Len(t, b.Upcoming(100), b.Len())
	assert.Empty(t, b.Upcoming(-1))
}

func TestBagDeterministic(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(1234)))
	b := NewBag(rand.New(rand.NewSource(1234)))
	for range 50 {
		assert.Equal(t, a.Next(), b.Next())
	}
}
