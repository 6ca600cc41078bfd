// Package search implements the graph-search engine: applicability and
// conflict checks, successor generation, the pluggable frontier/
// heuristic abstractions, and the driver loop that ties them together.
package search

import (
	"math/rand"

	"github.com/hospital-search/searchclient/internal/action"
	"github.com/hospital-search/searchclient/internal/state"
)

// successorSeed fixes the shuffle order of generated children so two
// runs over the same level produce the same plan. It is not a
// tie-breaking policy in its own right — frontiers and heuristics
// still decide expansion order — only a guarantee that "first
// generated" means the same thing on every run.
const successorSeed = 1

// Expand returns every state reachable from s in one time step: every
// conflict-free combination of one applicable action per agent,
// deterministically shuffled.
func Expand(s *state.State) []*state.State {
	perAgent := make([][]action.Action, s.NumAgents())
	for agent := range perAgent {
		perAgent[agent] = applicableActions(s, agent)
	}

	var children []*state.State
	joint := make([]action.Action, len(perAgent))
	var recurse func(idx int)
	recurse = func(idx int) {
		if idx == len(perAgent) {
			if !isConflicting(s, joint) {
				jointCopy := append([]action.Action(nil), joint...)
				children = append(children, s.ChildState(jointCopy))
			}
			return
		}
		for _, act := range perAgent[idx] {
			joint[idx] = act
			recurse(idx + 1)
		}
	}
	recurse(0)

	shuffle(children)
	return children
}

// shuffle reorders children in place using a fixed seed, so expansion
// order is reproducible across runs regardless of the host's default
// random source.
func shuffle(children []*state.State) {
	r := rand.New(rand.NewSource(successorSeed))
	r.Shuffle(len(children), func(i, j int) {
		children[i], children[j] = children[j], children[i]
	})
}

// applicableActions returns every action agent can legally perform in
// s, always including NoOp.
func applicableActions(s *state.State, agent int) []action.Action {
	actions := make([]action.Action, 0, 33)
	for _, act := range action.All() {
		if isApplicable(s, agent, act) {
			actions = append(actions, act)
		}
	}
	return actions
}

// isApplicable reports whether agent can perform act in s: NoOp always
// can; Move requires the destination cell be free; Push and Pull
// additionally require a same-colored box at the relevant cell and a
// free cell for whichever of agent/box ends up moving into new
// territory.
func isApplicable(s *state.State, agent int, act action.Action) bool {
	agentRow, agentCol := s.AgentRows[agent], s.AgentCols[agent]
	lvl := s.Level

	switch act.Kind {
	case action.NoOp:
		return true

	case action.Move:
		adr, adc := act.AgentDelta()
		return s.CellIsFree(agentRow+adr, agentCol+adc)

	case action.Push:
		adr, adc := act.AgentDelta()
		boxRow, boxCol := agentRow+adr, agentCol+adc
		boxChar := boxAt(s, boxRow, boxCol)
		if boxChar == 0 {
			return false
		}
		if lvl.BoxColor(boxChar) != lvl.AgentColor(rune('0'+agent)) {
			return false
		}
		bdr, bdc := act.BoxDelta()
		return s.CellIsFree(boxRow+bdr, boxCol+bdc)

	case action.Pull:
		adr, adc := act.AgentDelta()
		newAgentRow, newAgentCol := agentRow+adr, agentCol+adc
		if !s.CellIsFree(newAgentRow, newAgentCol) {
			return false
		}
		bdr, bdc := act.BoxDelta()
		boxRow := agentRow - bdr
		boxCol := agentCol - bdc
		boxChar := boxAt(s, boxRow, boxCol)
		if boxChar == 0 {
			return false
		}
		return lvl.BoxColor(boxChar) == lvl.AgentColor(rune('0'+agent))

	default:
		return false
	}
}

func boxAt(s *state.State, row, col int) rune {
	if row < 0 || row >= len(s.Boxes) || col < 0 || col >= len(s.Boxes[row]) {
		return 0
	}
	return s.Boxes[row][col]
}
