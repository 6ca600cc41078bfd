package heuristic

import (
	"fmt"

	"github.com/hospital-search/searchclient/internal/state"
)

// Evaluator is the f(s) a frontier orders states by. It wraps a
// CustomH without needing to know which search strategy is using it.
type Evaluator interface {
	F(s *state.State) int
	String() string
}

// AStar orders states by g(s) + h(s): optimal when h is admissible.
type AStar struct {
	H CustomH
}

func NewAStar(h CustomH) *AStar { return &AStar{H: h} }

func (a *AStar) F(s *state.State) int { return s.G + a.H.H(s) }

func (a *AStar) String() string {
	return fmt.Sprintf("A* evaluation (h = %s)", a.H)
}

// WeightedAStar orders states by g(s) + w*h(s). Larger w trades
// optimality for speed by weighting the heuristic estimate more
// heavily than the accumulated cost.
type WeightedAStar struct {
	H CustomH
	W int
}

func NewWeightedAStar(h CustomH, w int) *WeightedAStar {
	return &WeightedAStar{H: h, W: w}
}

func (w *WeightedAStar) F(s *state.State) int { return s.G + w.W*w.H.H(s) }

func (w *WeightedAStar) String() string {
	return fmt.Sprintf("WA*(%d) evaluation (h = %s)", w.W, w.H)
}

// Greedy orders states by h(s) alone, ignoring path cost so far.
type Greedy struct {
	H CustomH
}

func NewGreedy(h CustomH) *Greedy { return &Greedy{H: h} }

func (g *Greedy) F(s *state.State) int { return g.H.H(s) }

func (g *Greedy) String() string {
	return fmt.Sprintf("greedy evaluation (h = %s)", g.H)
}
