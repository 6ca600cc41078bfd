package search

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hospital-search/searchclient/internal/action"
	"github.com/hospital-search/searchclient/internal/memory"
	"github.com/hospital-search/searchclient/internal/search/frontier"
	"github.com/hospital-search/searchclient/internal/state"
)

// StatusInterval is how many iterations pass between progress lines,
// matching the reference solver's "every 10,000th generated node"
// cadence.
const StatusInterval = 10000

// Driver runs the Graph-Search algorithm (Russell & Norvig figure 3.7)
// over a Level's state space. It holds no channels, mutexes, or
// goroutines: one call to Search runs to completion on the calling
// goroutine, because nothing else ever touches its frontier or
// expanded set concurrently.
type Driver struct {
	Log       zerolog.Logger
	Benchmark bool
}

// Search expands states from initial via f until a goal state is
// found or the frontier is exhausted. A nil plan means the level has no
// solution; an initial state that is already a goal yields an empty,
// non-nil plan.
func (d *Driver) Search(initial *state.State, f frontier.Frontier) [][]action.Action {
	d.Log.Info().Str("strategy", f.Name()).Msg("starting search")

	start := time.Now()
	f.Add(initial)
	expanded := make(map[uint64]struct{}, 65536)

	iterations := 0
	for {
		if f.IsEmpty() {
			d.printStatus(expanded, f, start)
			return nil
		}

		s := f.Pop()

		if s.IsGoalState() {
			d.printStatus(expanded, f, start)
			return s.ExtractPlan()
		}

		expanded[s.Hash()] = struct{}{}

		for _, child := range Expand(s) {
			if !f.Contains(child) {
				if _, seen := expanded[child.Hash()]; !seen {
					f.Add(child)
				}
			}
		}

		iterations++
		if !d.Benchmark && iterations%StatusInterval == 0 {
			d.printStatus(expanded, f, start)
		}
	}
}

func (d *Driver) printStatus(expanded map[uint64]struct{}, f frontier.Frontier, start time.Time) {
	elapsed := time.Since(start).Seconds()
	d.Log.Info().
		Int("expanded", len(expanded)).
		Int("frontier", f.Size()).
		Int("generated", len(expanded)+f.Size()).
		Float64("elapsed_s", elapsed).
		Str("memory", memory.Snapshot().String()).
		Msg("search status")
}
