// Package state defines the mutable search node: where each agent and
// box is right now, how this node was reached, and the cached
// structural hash the frontier and the driver use for duplicate
// detection.
package state

import (
	"hash/fnv"

	"github.com/hospital-search/searchclient/internal/action"
	"github.com/hospital-search/searchclient/internal/level"
)

// State is one node of the search tree. Everything about the board
// that never changes lives in the Level it points to; State only
// carries what differs from node to node.
type State struct {
	Level *level.Level

	AgentRows []int
	AgentCols []int
	Boxes     [][]rune

	Parent      *State
	JointAction []action.Action
	G           int

	hash    uint64
	hashSet bool
}

// NewInitial builds the root search node from a parsed level.
func NewInitial(lvl *level.Level, init *level.Initial) *State {
	s := &State{
		Level:     lvl,
		AgentRows: append([]int(nil), init.AgentRows...),
		AgentCols: append([]int(nil), init.AgentCols...),
		Boxes:     copyBoxes(init.Boxes),
		G:         0,
	}
	return s
}

func copyBoxes(src [][]rune) [][]rune {
	dst := make([][]rune, len(src))
	for i, row := range src {
		dst[i] = append([]rune(nil), row...)
	}
	return dst
}

// NumAgents reports how many agents this state tracks.
func (s *State) NumAgents() int { return len(s.AgentRows) }

// ChildState materializes the state resulting from applying jointAction
// in s, one action per agent, in agent index order. The caller is
// responsible for having already confirmed jointAction is applicable
// and conflict-free; ChildState does not re-check either.
func (s *State) ChildState(jointAction []action.Action) *State {
	child := &State{
		Level:       s.Level,
		AgentRows:   append([]int(nil), s.AgentRows...),
		AgentCols:   append([]int(nil), s.AgentCols...),
		Boxes:       copyBoxes(s.Boxes),
		Parent:      s,
		JointAction: jointAction,
		G:           s.G + 1,
	}

	for agent, act := range jointAction {
		adr, adc := act.AgentDelta()
		switch act.Kind {
		case action.NoOp:
			// nothing moves
		case action.Move:
			child.AgentRows[agent] += adr
			child.AgentCols[agent] += adc
		case action.Push:
			boxRow := s.AgentRows[agent] + adr
			boxCol := s.AgentCols[agent] + adc
			boxChar := child.Boxes[boxRow][boxCol]

			bdr, bdc := act.BoxDelta()
			newBoxRow := boxRow + bdr
			newBoxCol := boxCol + bdc

			child.Boxes[boxRow][boxCol] = 0
			child.Boxes[newBoxRow][newBoxCol] = boxChar

			child.AgentRows[agent] = boxRow
			child.AgentCols[agent] = boxCol
		case action.Pull:
			newAgentRow := s.AgentRows[agent] + adr
			newAgentCol := s.AgentCols[agent] + adc

			bdr, bdc := act.BoxDelta()
			boxRow := s.AgentRows[agent] - bdr
			boxCol := s.AgentCols[agent] - bdc
			boxChar := child.Boxes[boxRow][boxCol]

			child.Boxes[boxRow][boxCol] = 0
			child.Boxes[s.AgentRows[agent]][s.AgentCols[agent]] = boxChar

			child.AgentRows[agent] = newAgentRow
			child.AgentCols[agent] = newAgentCol
		}
	}

	return child
}

// IsGoalState reports whether every goal cell on the board is
// currently satisfied: box goals by a matching box letter, agent
// goals by that agent standing on the cell.
func (s *State) IsGoalState() bool {
	goals := s.Level.Goals
	for row := range goals {
		for col, goal := range goals[row] {
			switch {
			case goal >= 'A' && goal <= 'Z':
				if s.Boxes[row][col] != goal {
					return false
				}
			case goal >= '0' && goal <= '9':
				idx := int(goal - '0')
				if idx >= len(s.AgentRows) || s.AgentRows[idx] != row || s.AgentCols[idx] != col {
					return false
				}
			}
		}
	}
	return true
}

// CellIsFree reports whether (row, col) is free of walls, boxes, and
// agents — the precondition every Move/Push/Pull destination must
// satisfy.
func (s *State) CellIsFree(row, col int) bool {
	if s.Level.IsWall(row, col) {
		return false
	}
	if row < 0 || row >= len(s.Boxes) || col < 0 || col >= len(s.Boxes[row]) {
		return false
	}
	if s.Boxes[row][col] != 0 {
		return false
	}
	return s.AgentAt(row, col) == -1
}

// AgentAt returns the index of the agent standing at (row, col), or -1
// if no agent is there.
func (s *State) AgentAt(row, col int) int {
	for i := range s.AgentRows {
		if s.AgentRows[i] == row && s.AgentCols[i] == col {
			return i
		}
	}
	return -1
}

// Hash returns a structural hash of the agent positions and box
// layout, computed once and cached — every subsequent call is free.
// Parent, G, and JointAction do not participate: two nodes that reach
// the same board are the same node for search purposes regardless of
// how they got there.
func (s *State) Hash() uint64 {
	if s.hashSet {
		return s.hash
	}
	h := fnv.New64a()
	buf := make([]byte, 8)
	for i := range s.AgentRows {
		putInt(buf, s.AgentRows[i])
		h.Write(buf)
		putInt(buf, s.AgentCols[i])
		h.Write(buf)
	}
	for _, row := range s.Boxes {
		for _, cell := range row {
			buf[0] = byte(cell)
			buf[1] = byte(cell >> 8)
			h.Write(buf[:2])
		}
	}
	s.hash = h.Sum64()
	s.hashSet = true
	return s.hash
}

func putInt(buf []byte, v int) {
	u := uint64(int64(v))
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
}

// Equal reports whether s and other have identical agent positions and
// box layouts. Two equal states may still differ in Parent, G, or
// JointAction — equality is about the board, not the path to it.
func (s *State) Equal(other *State) bool {
	if other == nil {
		return false
	}
	if s.Hash() != other.Hash() {
		return false
	}
	if len(s.AgentRows) != len(other.AgentRows) {
		return false
	}
	for i := range s.AgentRows {
		if s.AgentRows[i] != other.AgentRows[i] || s.AgentCols[i] != other.AgentCols[i] {
			return false
		}
	}
	for r := range s.Boxes {
		for c := range s.Boxes[r] {
			if s.Boxes[r][c] != other.Boxes[r][c] {
				return false
			}
		}
	}
	return true
}

// ExtractPlan walks the parent chain from s back to the root and
// returns the joint actions in forward order, one entry per time step.
// For the root itself the plan is empty but not nil.
func (s *State) ExtractPlan() [][]action.Action {
	plan := [][]action.Action{}
	for n := s; n.Parent != nil; n = n.Parent {
		plan = append(plan, n.JointAction)
	}
	for i, j := 0, len(plan)-1; i < j; i, j = i+1, j-1 {
		plan[i], plan[j] = plan[j], plan[i]
	}
	return plan
}
