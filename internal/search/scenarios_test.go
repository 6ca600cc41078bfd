package search_test

// End-to-end scenarios exercising parse -> search -> plan together,
// one per documented case: single-agent movement, push, pull-already-
// solved, unsolvable, two independent agents, and BFS/A* agreement.

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hospital-search/searchclient/internal/action"
	"github.com/hospital-search/searchclient/internal/level"
	"github.com/hospital-search/searchclient/internal/search/frontier"
	"github.com/hospital-search/searchclient/internal/search/heuristic"
	"github.com/hospital-search/searchclient/internal/state"
)

func solve(t *testing.T, src string, f frontier.Frontier) [][]action.Action {
	t.Helper()
	lvl, init, err := level.Parse(strings.NewReader(src))
	require.NoError(t, err)
	s0 := state.NewInitial(lvl, init)
	return newDriver().Search(s0, f)
}

func TestScenarioSingleAgentMovesSouthTwice(t *testing.T) {
	const src = `#domain
hospital
#levelname
s1
#colors
red: 0, A
#initial
+++++
+0  +
+   +
+ A +
+++++
#goal
+++++
+   +
+   +
+0  +
+++++
#end
`
	plan := solve(t, src, frontier.NewBFS())
	require.Len(t, plan, 2)
	for _, joint := range plan {
		require.Equal(t, "Move(S)", joint[0].String())
	}
}

func TestScenarioPushBoxEastOneCell(t *testing.T) {
	const src = `#domain
hospital
#levelname
s2
#colors
red: 0, A
#initial
+++++
+0A +
+++++
#goal
+++++
+  A+
+++++
#end
`
	plan := solve(t, src, frontier.NewBFS())
	require.Len(t, plan, 1)
	require.Equal(t, "Push(E,E)", plan[0][0].String())
}

func TestScenarioAlreadySolvedHasEmptyPlan(t *testing.T) {
	const src = `#domain
hospital
#levelname
s3
#colors
red: 0, A
#initial
++++++
+ 0A +
++++++
#goal
++++++
+ 0A +
++++++
#end
`
	plan := solve(t, src, frontier.NewBFS())
	require.Empty(t, plan)
}

func TestScenarioUnsolvableWalledOff(t *testing.T) {
	const src = `#domain
hospital
#levelname
s4
#colors
blue: 0
#initial
+++++
+0+ +
+++++
#goal
+++++
+ +0+
+++++
#end
`
	plan := solve(t, src, frontier.NewBFS())
	require.Nil(t, plan)
}

func TestScenarioTwoAgentsNoConflictAlreadySatisfied(t *testing.T) {
	const src = `#domain
hospital
#levelname
s5
#colors
red: 0, A
blue: 1
#initial
+++++++
+0  1 +
+     +
+  A  +
+++++++
#goal
+++++++
+   1 +
+     +
+  A  +
+++++++
#end
`
	plan := solve(t, src, frontier.NewBFS())
	require.Empty(t, plan)
}

func TestScenarioAStarAgreesWithBFSOnPlanLength(t *testing.T) {
	const src = `#domain
hospital
#levelname
s6
#colors
red: 0, A
#initial
+++++
+0A +
+++++
#goal
+++++
+  A+
+++++
#end
`
	bfsPlan := solve(t, src, frontier.NewBFS())

	lvl, init, err := level.Parse(strings.NewReader(src))
	require.NoError(t, err)
	s0 := state.NewInitial(lvl, init)
	eval := heuristic.NewAStar(heuristic.BoxGoalCount{})
	aStarPlan := newDriver().Search(s0, frontier.NewBestFirst(eval))

	require.Len(t, aStarPlan, len(bfsPlan))
}
