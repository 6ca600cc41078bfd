package frontier

import "github.com/hospital-search/searchclient/internal/state"

// DFS is a LIFO frontier: the most recently generated state is
// expanded next. Cheap on memory for deep solutions, but gives up the
// shortest-plan guarantee BFS has.
type DFS struct {
	stack []*state.State
	set   map[uint64]struct{}
}

// NewDFS returns an empty depth-first frontier.
func NewDFS() *DFS {
	return &DFS{
		stack: make([]*state.State, 0, 1024),
		set:   make(map[uint64]struct{}, 1024),
	}
}

func (f *DFS) Add(s *state.State) {
	f.stack = append(f.stack, s)
	f.set[s.Hash()] = struct{}{}
}

func (f *DFS) Pop() *state.State {
	n := len(f.stack)
	if n == 0 {
		return nil
	}
	s := f.stack[n-1]
	f.stack = f.stack[:n-1]
	delete(f.set, s.Hash())
	return s
}

func (f *DFS) IsEmpty() bool { return len(f.stack) == 0 }

func (f *DFS) Size() int { return len(f.stack) }

func (f *DFS) Contains(s *state.State) bool {
	_, ok := f.set[s.Hash()]
	return ok
}

func (f *DFS) Name() string { return "depth-first search" }
