package search_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hospital-search/searchclient/internal/level"
	"github.com/hospital-search/searchclient/internal/search"
	"github.com/hospital-search/searchclient/internal/search/frontier"
	"github.com/hospital-search/searchclient/internal/state"
)

func newDriver() *search.Driver {
	return &search.Driver{Log: zerolog.Nop(), Benchmark: true}
}

const solvableLevel = `#domain
hospital
#levelname
t
#colors
blue: 0
#initial
+++++
+0  +
+++++
#goal
+++++
+  0+
+++++
#end
`

func TestSearchFindsPlanWithBFS(t *testing.T) {
	lvl, init, err := level.Parse(strings.NewReader(solvableLevel))
	require.NoError(t, err)
	s0 := state.NewInitial(lvl, init)

	plan := newDriver().Search(s0, frontier.NewBFS())
	require.NotNil(t, plan)
	require.Len(t, plan, 2)
	require.Equal(t, "Move(E)", plan[0][0].String())
	require.Equal(t, "Move(E)", plan[1][0].String())
}

const unsolvableLevel = `#domain
hospital
#levelname
t
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

func TestSearchReturnsNilWhenNoSolutionExists(t *testing.T) {
	lvl, init, err := level.Parse(strings.NewReader(unsolvableLevel))
	require.NoError(t, err)
	s0 := state.NewInitial(lvl, init)

	plan := newDriver().Search(s0, frontier.NewBFS())
	require.Nil(t, plan)
}

func TestSearchAlreadyAtGoalReturnsEmptyPlan(t *testing.T) {
	const src = `#domain
hospital
#levelname
t
#colors
blue: 0
#initial
+++
+0+
+++
#goal
+++
+0+
+++
#end
`
	lvl, init, err := level.Parse(strings.NewReader(src))
	require.NoError(t, err)
	s0 := state.NewInitial(lvl, init)

	plan := newDriver().Search(s0, frontier.NewBFS())
	require.Empty(t, plan)
}
