package frontier

import "github.com/hospital-search/searchclient/internal/state"

// BFS is a FIFO frontier: states are expanded in the order they were
// generated, guaranteeing shortest-plan-length optimality when every
// action has unit cost.
type BFS struct {
	queue []*state.State
	set   map[uint64]struct{}
}

// NewBFS returns an empty breadth-first frontier.
func NewBFS() *BFS {
	return &BFS{
		queue: make([]*state.State, 0, 1024),
		set:   make(map[uint64]struct{}, 1024),
	}
}

func (f *BFS) Add(s *state.State) {
	f.queue = append(f.queue, s)
	f.set[s.Hash()] = struct{}{}
}

func (f *BFS) Pop() *state.State {
	if len(f.queue) == 0 {
		return nil
	}
	s := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.set, s.Hash())
	return s
}

func (f *BFS) IsEmpty() bool { return len(f.queue) == 0 }

func (f *BFS) Size() int { return len(f.queue) }

func (f *BFS) Contains(s *state.State) bool {
	_, ok := f.set[s.Hash()]
	return ok
}

func (f *BFS) Name() string { return "breadth-first search" }
