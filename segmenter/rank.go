package segmenter

import (
	"container/heap"
	"encoding/binary"
	"math"
	"math/bits"
	"slices"
)

// combination picks one alternative per span, by 0-based rank.
type combination struct {
	ranks []int
	score uint64
}

// combinationHeap orders combinations by the product of their 1-based
// ranks, then lexicographically by rank vector.
type combinationHeap []combination

func (h combinationHeap) Len() int { return len(h) }

func (h combinationHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return slices.Compare(h[i].ranks, h[j].ranks) < 0
}

func (h combinationHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *combinationHeap) Push(x any) { *h = append(*h, x.(combination)) }

func (h *combinationHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// bestCombinations returns at most limit rank vectors over spans with the
// given alternative counts, best first. Every successor of a vector scores
// no better than it, so popping in heap order is exact.
func bestCombinations(sizes []int, limit int) [][]int {
	if limit <= 0 {
		return nil
	}
	for _, n := range sizes {
		if n == 0 {
			return nil
		}
	}

	start := combination{ranks: make([]int, len(sizes)), score: 1}
	h := &combinationHeap{start}
	seen := map[string]struct{}{rankKey(start.ranks): {}}

	var out [][]int
	for h.Len() > 0 && len(out) < limit {
		c := heap.Pop(h).(combination)
		out = append(out, c.ranks)

		for i := range c.ranks {
			if c.ranks[i]+1 >= sizes[i] {
				continue
			}
			next := slices.Clone(c.ranks)
			next[i]++
			key := rankKey(next)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			heap.Push(h, combination{ranks: next, score: score(next)})
		}
	}
	return out
}

// score multiplies 1-based ranks, saturating at math.MaxUint64.
func score(ranks []int) uint64 {
	s := uint64(1)
	for _, r := range ranks {
		hi, lo := bits.Mul64(s, uint64(r+1))
		if hi != 0 {
			return math.MaxUint64
		}
		s = lo
	}
	return s
}

func rankKey(ranks []int) string {
	buf := make([]byte, 0, len(ranks))
	for _, r := range ranks {
		buf = binary.AppendUvarint(buf, uint64(r))
	}
	return string(buf)
}
