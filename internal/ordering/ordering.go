package ordering

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/hilbert"
)

// Kind names an ordering generator.
type Kind string

const (
	KindIdentity Kind = "identity"
	KindReverse  Kind = "reverse"
	KindShuffle  Kind = "shuffle"
	KindHilbert  Kind = "hilbert"
)

// Kinds lists every generator accepted by Generate.
var Kinds = []Kind{KindIdentity, KindReverse, KindShuffle, KindHilbert}

// Generate builds an ordering of the given kind for a grid of columns x rows
// tiles. seed is only used by KindShuffle.
func Generate(kind Kind, columns, rows int, seed uint32) ([]int, error) {
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("grid %dx%d must have at least one column and one row", columns, rows)
	}
	n := columns * rows
	switch kind {
	case KindIdentity:
		return Identity(n), nil
	case KindReverse:
		return Reverse(n), nil
	case KindShuffle:
		return Shuffle(seed, n), nil
	case KindHilbert:
		return Hilbert(columns, rows)
	default:
		return nil, fmt.Errorf("unknown ordering kind: %s", kind)
	}
}

// Identity returns [0, 1, ..., n-1].
func Identity(n int) []int {
	ordering := make([]int, n)
	for i := range ordering {
		ordering[i] = i
	}
	return ordering
}

// Reverse returns [n-1, ..., 1, 0], which rotates the image by 180 degrees at
// tile granularity.
func Reverse(n int) []int {
	ordering := make([]int, n)
	for i := range ordering {
		ordering[i] = n - 1 - i
	}
	return ordering
}

type shuffledItem struct {
	randomValue uint32
	index       int
}

// Shuffle returns a pseudo-random permutation of 0..n-1. The same seed always
// yields the same permutation.
func Shuffle(seed uint32, n int) []int {
	prng := newXorShift32(seed)
	items := make([]shuffledItem, n)
	for idx := range items {
		items[idx] = shuffledItem{randomValue: prng.next(), index: idx}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].randomValue < items[j].randomValue
	})

	ordering := make([]int, n)
	for idx, item := range items {
		ordering[idx] = item.index
	}
	return ordering
}

// Hilbert returns the ordering that lays the tiles met along a Hilbert curve
// over the grid out in row-major order. The grid must be square with a
// power-of-two side.
func Hilbert(columns, rows int) ([]int, error) {
	if columns != rows {
		return nil, fmt.Errorf("hilbert ordering needs a square grid, got %dx%d", columns, rows)
	}
	h, err := hilbert.NewHilbert(columns)
	if err != nil {
		return nil, fmt.Errorf("hilbert ordering for %dx%d grid: %w", columns, rows, err)
	}

	ordering := make([]int, columns*rows)
	for newIndex := range ordering {
		x, y, err := h.Map(newIndex)
		if err != nil {
			return nil, err
		}
		ordering[newIndex] = y*columns + x
	}
	return ordering, nil
}

// ErrNotPermutation is returned by Inverse for input that is not a
// permutation of 0..len-1.
var ErrNotPermutation = errors.New("ordering is not a permutation")

// Inverse returns the ordering that undoes p: rearranging with p and then
// with Inverse(p) restores the original image.
func Inverse(p []int) ([]int, error) {
	inv := make([]int, len(p))
	seen := make([]bool, len(p))
	for newIndex, sourceIndex := range p {
		if sourceIndex < 0 || sourceIndex >= len(p) || seen[sourceIndex] {
			return nil, fmt.Errorf("%w: bad value %d at index %d", ErrNotPermutation, sourceIndex, newIndex)
		}
		seen[sourceIndex] = true
		inv[sourceIndex] = newIndex
	}
	return inv, nil
}
