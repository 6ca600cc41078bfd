// Package heuristic implements the pluggable h(s) functions the
// graph-search driver composes into an f(s) evaluation order, plus the
// thin A*/Weighted-A*/Greedy wrappers that decide how h feeds f.
package heuristic

import "github.com/hospital-search/searchclient/internal/state"

// CustomH is a heuristic estimate of the distance from a state to a
// goal. Init runs once against the root state before search begins;
// H is called each time a best-first frontier adds a state.
type CustomH interface {
	Init(initial *state.State)
	H(s *state.State) int
	String() string
}

// Zero is the admissible-but-useless heuristic: every state looks
// equally close to the goal, so search degrades to uniform-cost order.
type Zero struct{}

func (Zero) Init(*state.State) {}
func (Zero) H(*state.State) int { return 0 }
func (Zero) String() string     { return "Zero" }

// GoalCount counts goal cells not yet satisfied, agent goals and box
// goals alike.
type GoalCount struct{}

func (GoalCount) Init(*state.State) {}

func (GoalCount) H(s *state.State) int {
	count := 0
	goals := s.Level.Goals
	for row := range goals {
		for col, goal := range goals[row] {
			switch {
			case goal >= 'A' && goal <= 'Z':
				if s.Boxes[row][col] != goal {
					count++
				}
			case goal >= '0' && goal <= '9':
				idx := int(goal - '0')
				if idx >= len(s.AgentRows) || s.AgentRows[idx] != row || s.AgentCols[idx] != col {
					count++
				}
			}
		}
	}
	return count
}

func (GoalCount) String() string { return "GoalCount" }

// BoxGoalCount counts unsatisfied box goals only, ignoring agent
// goals. Useful when agents have no individual destination.
type BoxGoalCount struct{}

func (BoxGoalCount) Init(*state.State) {}

func (BoxGoalCount) H(s *state.State) int {
	count := 0
	goals := s.Level.Goals
	for row := range goals {
		for col, goal := range goals[row] {
			if goal >= 'A' && goal <= 'Z' && s.Boxes[row][col] != goal {
				count++
			}
		}
	}
	return count
}

func (BoxGoalCount) String() string { return "BoxGoalCount" }

// SumDistances sums the Manhattan distance from each agent to its own
// numbered goal cell, ignoring box goals entirely.
type SumDistances struct{}

func (SumDistances) Init(*state.State) {}

func (SumDistances) H(s *state.State) int {
	sum := 0
	goals := s.Level.Goals
	for agentIdx := range s.AgentRows {
		agentChar := rune('0' + agentIdx)
		found := false
		for row := 0; row < len(goals) && !found; row++ {
			for col := 0; col < len(goals[row]); col++ {
				if goals[row][col] == agentChar {
					sum += abs(s.AgentRows[agentIdx]-row) + abs(s.AgentCols[agentIdx]-col)
					found = true
					break
				}
			}
		}
	}
	return sum
}

func (SumDistances) String() string { return "SumDistances" }

// SumDistancesBox sums the Manhattan distance from each box to the
// first goal cell found (in scan order) that names its letter. A
// letter with several goal cells is matched to whichever one the scan
// reaches first, not the nearest — the same choice the reference
// solver makes, kept deliberately rather than "fixed" to nearest.
type SumDistancesBox struct{}

func (SumDistancesBox) Init(*state.State) {}

func (SumDistancesBox) H(s *state.State) int {
	return sumBoxDistances(s)
}

func (SumDistancesBox) String() string { return "SumDistancesBox" }

func sumBoxDistances(s *state.State) int {
	sum := 0
	goals := s.Level.Goals
	for row := range s.Boxes {
		for col, boxChar := range s.Boxes[row] {
			if boxChar < 'A' || boxChar > 'Z' {
				continue
			}
			found := false
			for gr := 0; gr < len(goals) && !found; gr++ {
				for gc := 0; gc < len(goals[gr]); gc++ {
					if goals[gr][gc] == boxChar {
						sum += abs(row-gr) + abs(col-gc)
						found = true
						break
					}
				}
			}
		}
	}
	return sum
}

// SumDistancesBox2 extends SumDistancesBox with the distance from each
// agent to its nearest same-colored box, so an agent not yet adjacent
// to any box it can push still sees a gradient toward one.
type SumDistancesBox2 struct{}

func (SumDistancesBox2) Init(*state.State) {}

func (SumDistancesBox2) H(s *state.State) int {
	sum := sumBoxDistances(s)

	for agentIdx := range s.AgentRows {
		agentColor := s.Level.AgentColor(rune('0' + agentIdx))
		minDist := -1
		for row := range s.Boxes {
			for col, boxChar := range s.Boxes[row] {
				if boxChar < 'A' || boxChar > 'Z' {
					continue
				}
				if s.Level.BoxColor(boxChar) != agentColor {
					continue
				}
				d := abs(s.AgentRows[agentIdx]-row) + abs(s.AgentCols[agentIdx]-col)
				if minDist == -1 || d < minDist {
					minDist = d
				}
			}
		}
		if minDist != -1 {
			sum += minDist
		}
	}
	return sum
}

func (SumDistancesBox2) String() string { return "SumDistancesBox2" }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
