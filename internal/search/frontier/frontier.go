// Package frontier implements the open list a graph-search driver
// pops nodes from: FIFO for breadth-first, LIFO for depth-first, and a
// min-priority heap for best-first variants (A*, Weighted-A*, Greedy).
package frontier

import "github.com/hospital-search/searchclient/internal/state"

// Frontier is the open list of a graph search. Add and Pop are the
// only ways states enter or leave it; Contains lets the driver skip
// re-adding a state already waiting for expansion.
type Frontier interface {
	Add(s *state.State)
	Pop() *state.State
	IsEmpty() bool
	Size() int
	Contains(s *state.State) bool
	Name() string
}
