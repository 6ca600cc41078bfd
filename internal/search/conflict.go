package search

import (
	"github.com/hospital-search/searchclient/internal/action"
	"github.com/hospital-search/searchclient/internal/state"
)

// boxMove describes where a Push or Pull action's box starts and ends
// up; zero values for actions that don't touch a box.
type boxMove struct {
	fromRow, fromCol int
	toRow, toCol     int
	moves            bool
}

// isConflicting reports whether any two agents' actions in joint
// interfere with each other: moving to the same cell, swapping places,
// stepping on a stationary agent, or colliding over a box one of them
// is pushing or pulling. The full rule set is required once two or
// more agents can cooperate on the same boxes — the destination-only
// check misses box-on-box and box-on-agent collisions.
func isConflicting(s *state.State, joint []action.Action) bool {
	n := len(joint)
	agentDest := make([][2]int, n)
	boxMoves := make([]boxMove, n)

	for i, act := range joint {
		ar, ac := s.AgentRows[i], s.AgentCols[i]
		adr, adc := act.AgentDelta()
		agentDest[i] = [2]int{ar + adr, ac + adc}
		boxMoves[i] = boxMoveFor(s, i, act)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if conflictsPair(joint[i], joint[j], s.AgentRows[i], s.AgentCols[i], s.AgentRows[j], s.AgentCols[j], agentDest[i], agentDest[j], boxMoves[i], boxMoves[j]) {
				return true
			}
		}
	}
	return false
}

func boxMoveFor(s *state.State, agent int, act action.Action) boxMove {
	ar, ac := s.AgentRows[agent], s.AgentCols[agent]
	adr, adc := act.AgentDelta()
	bdr, bdc := act.BoxDelta()

	switch act.Kind {
	case action.Push:
		boxRow, boxCol := ar+adr, ac+adc
		return boxMove{
			fromRow: boxRow, fromCol: boxCol,
			toRow: boxRow + bdr, toCol: boxCol + bdc,
			moves: true,
		}
	case action.Pull:
		boxRow := ar - bdr
		boxCol := ac - bdc
		return boxMove{
			fromRow: boxRow, fromCol: boxCol,
			toRow: ar, toCol: ac,
			moves: true,
		}
	default:
		return boxMove{}
	}
}

func conflictsPair(actI, actJ action.Action, iRow, iCol, jRow, jCol int, destI, destJ [2]int, boxI, boxJ boxMove) bool {
	// Agent i and agent j move to the same cell.
	if destI == destJ {
		return true
	}
	// Agent i moves to agent j's current cell while j stays (NoOp).
	if destI[0] == jRow && destI[1] == jCol && actJ.Kind == action.NoOp {
		return true
	}
	// Agent j moves to agent i's current cell while i stays (NoOp).
	if destJ[0] == iRow && destJ[1] == iCol && actI.Kind == action.NoOp {
		return true
	}
	// Agents i and j swap places.
	if destI[0] == jRow && destI[1] == jCol && destJ[0] == iRow && destJ[1] == iCol {
		return true
	}
	// Agent i walks into the cell agent j is pushing a box to.
	if actJ.Kind == action.Push && destI == [2]int{boxJ.toRow, boxJ.toCol} {
		return true
	}
	// Agent j walks into the cell agent i is pushing a box to.
	if actI.Kind == action.Push && destJ == [2]int{boxI.toRow, boxI.toCol} {
		return true
	}
	// Agent i pushes its box into agent j's destination cell.
	if actI.Kind == action.Push && [2]int{boxI.toRow, boxI.toCol} == destJ {
		return true
	}
	// Agent j pushes its box into agent i's destination cell.
	if actJ.Kind == action.Push && [2]int{boxJ.toRow, boxJ.toCol} == destI {
		return true
	}
	// Both agents move a box (push or pull) to the same cell.
	if boxI.moves && boxJ.moves && boxI.toRow == boxJ.toRow && boxI.toCol == boxJ.toCol {
		return true
	}
	// Agent i pulls a box out of the cell agent j is moving into.
	if actI.Kind == action.Pull && boxI.fromRow == destJ[0] && boxI.fromCol == destJ[1] {
		return true
	}
	// Agent j pulls a box out of the cell agent i is moving into.
	if actJ.Kind == action.Pull && boxJ.fromRow == destI[0] && boxJ.fromCol == destI[1] {
		return true
	}
	return false
}
