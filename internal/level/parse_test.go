package level_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hospital-search/searchclient/internal/color"
	"github.com/hospital-search/searchclient/internal/level"
)

const sampleLevel = `#domain
hospital
#levelname
SAD1
#colors
blue: 0, A
#initial
+++++
+0A +
+++++
#goal
+++++
+  a+
+++++
#end
`

func TestParseBuildsLevelAndInitial(t *testing.T) {
	lvl, init, err := level.Parse(strings.NewReader(sampleLevel))
	require.NoError(t, err)

	require.Equal(t, "SAD1", lvl.Name)
	require.Equal(t, 3, lvl.NumRows)
	require.Equal(t, 5, lvl.NumCols)

	require.True(t, lvl.IsWall(0, 0))
	require.False(t, lvl.IsWall(1, 1))
	require.True(t, lvl.IsWall(5, 5), "out of bounds is wall")

	require.Equal(t, color.Blue, lvl.AgentColor('0'))
	require.Equal(t, color.Blue, lvl.BoxColor('A'))

	require.Equal(t, []int{1}, init.AgentRows)
	require.Equal(t, []int{1}, init.AgentCols)
	require.Equal(t, 'A', init.Boxes[1][2])

	require.Equal(t, rune(0), lvl.Goals[1][1])
}

func TestParseColorLineAssignsMultipleEntities(t *testing.T) {
	src := `#domain
hospital
#levelname
multi
#colors
red: 0, 1, A, B
#initial
++
01
++
#goal
++
++
++
#end
`
	lvl, init, err := level.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, color.Red, lvl.AgentColor('0'))
	require.Equal(t, color.Red, lvl.AgentColor('1'))
	require.Equal(t, color.Red, lvl.BoxColor('A'))
	require.Equal(t, color.Red, lvl.BoxColor('B'))
	require.Len(t, init.AgentRows, 2)
}

func TestParseMissingDomainErrors(t *testing.T) {
	_, _, err := level.Parse(strings.NewReader(""))
	require.Error(t, err)
}
