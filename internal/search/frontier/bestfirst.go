package frontier

import (
	"container/heap"
	"fmt"

	"github.com/hospital-search/searchclient/internal/search/heuristic"
	"github.com/hospital-search/searchclient/internal/state"
)

// item pairs a state with the f-value it had at insertion time, plus
// the index container/heap needs to keep the heap invariant after a
// swap.
type item struct {
	state    *state.State
	priority int
	index    int
}

// itemHeap implements heap.Interface as a min-heap on priority.
type itemHeap []*item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap) Push(x interface{}) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// BestFirst is a min-priority-heap frontier ordered by an
// heuristic.Evaluator's f(s). The same Evaluator drives A*,
// Weighted-A*, and Greedy — only the f formula changes.
type BestFirst struct {
	eval heuristic.Evaluator
	heap itemHeap
	set  map[uint64]struct{}
}

// NewBestFirst returns an empty frontier ordered by eval.
func NewBestFirst(eval heuristic.Evaluator) *BestFirst {
	return &BestFirst{
		eval: eval,
		heap: make(itemHeap, 0, 1024),
		set:  make(map[uint64]struct{}, 1024),
	}
}

func (f *BestFirst) Add(s *state.State) {
	heap.Push(&f.heap, &item{state: s, priority: f.eval.F(s)})
	f.set[s.Hash()] = struct{}{}
}

func (f *BestFirst) Pop() *state.State {
	if f.heap.Len() == 0 {
		return nil
	}
	it := heap.Pop(&f.heap).(*item)
	delete(f.set, it.state.Hash())
	return it.state
}

func (f *BestFirst) IsEmpty() bool { return f.heap.Len() == 0 }

func (f *BestFirst) Size() int { return f.heap.Len() }

func (f *BestFirst) Contains(s *state.State) bool {
	_, ok := f.set[s.Hash()]
	return ok
}

func (f *BestFirst) Name() string {
	return fmt.Sprintf("best-first search using %s", f.eval)
}
