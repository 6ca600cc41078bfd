package planout_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hospital-search/searchclient/internal/action"
	"github.com/hospital-search/searchclient/internal/planout"
)

func TestWritePlanFormatsJointActionsPipeSeparated(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	plan := [][]action.Action{
		{action.MakeMove(action.N)},
		{action.MakeMove(action.N), action.MakePush(action.E, action.E)},
	}
	require.NoError(t, planout.WritePlan(w, plan))

	require.Equal(t, "Move(N)\nMove(N)|Push(E,E)\n", buf.String())
}

func TestWriteHeaderIncludesComment(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	require.NoError(t, planout.WriteHeader(w, "hello"))
	require.Equal(t, "SearchClient\n#hello\n", buf.String())
}

func TestWriteHeaderSkipsEmptyComment(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	require.NoError(t, planout.WriteHeader(w, ""))
	require.Equal(t, "SearchClient\n", buf.String())
}
