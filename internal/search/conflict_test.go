package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hospital-search/searchclient/internal/level"
	"github.com/hospital-search/searchclient/internal/search"
	"github.com/hospital-search/searchclient/internal/state"
)

const sharedBoxDestLevel = `#domain
hospital
#levelname
conflict
#colors
red: 0, A
blue: 1, B
#initial
+++++++
+0A B1+
+++++++
#goal
+++++++
+      +
+++++++
#end
`

func TestConflictSharedBoxDestination(t *testing.T) {
	lvl, init, err := level.Parse(strings.NewReader(sharedBoxDestLevel))
	require.NoError(t, err)
	s0 := state.NewInitial(lvl, init)

	children := search.Expand(s0)

	foundIndividualPush := false
	for _, c := range children {
		if c.JointAction[0].String() == "Push(E,E)" {
			foundIndividualPush = true
		}
		// Agent 0 pushing box A to (1,3) at the same time agent 1 pushes
		// box B to (1,3) must never appear: both boxes would land on the
		// same cell.
		require.False(t,
			c.JointAction[0].String() == "Push(E,E)" && c.JointAction[1].String() == "Push(W,W)",
			"two boxes must not be pushed to the same destination cell")
	}
	require.True(t, foundIndividualPush, "pushing box A alone must still be a reachable successor")
}

const cornerEntryLevel = `#domain
hospital
#levelname
corner
#colors
blue: 0, 1
#initial
++++
+01+
++++
#goal
++++
+  +
++++
#end
`

func TestConflictRejectsSwap(t *testing.T) {
	lvl, init, err := level.Parse(strings.NewReader(cornerEntryLevel))
	require.NoError(t, err)
	s0 := state.NewInitial(lvl, init)

	for _, c := range search.Expand(s0) {
		swapped := c.JointAction[0].String() == "Move(E)" && c.JointAction[1].String() == "Move(W)"
		require.False(t, swapped)
	}
}

const stationaryStepLevel = `#domain
hospital
#levelname
stationary
#colors
blue: 0, 1
#initial
+++++
+01 +
+++++
#goal
+++++
+   +
+++++
#end
`

func TestConflictRejectsSteppingOntoStationaryAgent(t *testing.T) {
	lvl, init, err := level.Parse(strings.NewReader(stationaryStepLevel))
	require.NoError(t, err)
	s0 := state.NewInitial(lvl, init)

	for _, c := range search.Expand(s0) {
		// Agent 0 at (1,1), agent 1 at (1,2): agent 0 moving east onto
		// agent 1's cell while agent 1 stays put (NoOp) must never appear
		// as a joint action, and no two agents may ever end up sharing a
		// cell regardless of which rule caught it.
		for i := range c.AgentRows {
			for j := range c.AgentRows {
				if i == j {
					continue
				}
				require.False(t, c.AgentRows[i] == c.AgentRows[j] && c.AgentCols[i] == c.AgentCols[j])
			}
		}
	}
}
