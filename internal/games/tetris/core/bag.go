package core

import "math/rand"

// Shuffle permutes items in place using Fisher-Yates: each index i, from the
// front, is swapped with a uniformly chosen index in [i, n-1].
func Shuffle[T any](rng *rand.Rand, items []T) {
	n := len(items)
	for i := 0; i < n; i++ {
		r := i + rng.Intn(n-i)
		items[i], items[r] = items[r], items[i]
	}
}

// Permutation returns the seven shapes in a uniformly shuffled order.
func Permutation(rng *rand.Rand) []Shape {
	set := AllShapes
	shapes := set[:]
	Shuffle(rng, shapes)
	return shapes
}

// Bag is the 7-bag piece generator. Every aligned group of seven draws is a
// permutation of all shapes, and the queue always holds more than seven
// upcoming shapes so a full preview is available.
type Bag struct {
	rng   *rand.Rand
	queue []Shape
}

// NewBag creates a bag pre-filled with two shuffled sets (14 shapes).
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{
		rng:   rng,
		queue: make([]Shape, 0, 2*ShapeCount),
	}
	b.refill()
	b.refill()
	return b
}

// refill appends a fresh shuffled set of seven shapes.
func (b *Bag) refill() {
	b.queue = append(b.queue, Permutation(b.rng)...)
}

// Peek returns the head of the queue without removing it.
func (b *Bag) Peek() Shape {
	return b.queue[0]
}

// Next dequeues the head of the queue, topping the queue up with another
// shuffled set once seven or fewer shapes remain.
func (b *Bag) Next() Shape {
	s := b.queue[0]
	b.queue = b.queue[1:]
	if len(b.queue) <= ShapeCount {
		b.refill()
	}
	return s
}

// Upcoming returns a copy of the first n queued shapes.
func (b *Bag) Upcoming(n int) []Shape {
	if n > len(b.queue) {
		n = len(b.queue)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Shape, n)
	copy(out, b.queue[:n])
	return out
}

// Len returns the number of queued shapes.
func (b *Bag) Len() int {
	return len(b.queue)
}
