// Command searchclient is a batch planner invoked by the judge server:
// it reads one level on stdin, searches for a joint-action plan, and
// writes that plan to stdout, one time step per line.
package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/hospital-search/searchclient/internal/config"
	"github.com/hospital-search/searchclient/internal/level"
	"github.com/hospital-search/searchclient/internal/obslog"
	"github.com/hospital-search/searchclient/internal/planout"
	"github.com/hospital-search/searchclient/internal/search"
	"github.com/hospital-search/searchclient/internal/search/frontier"
	"github.com/hospital-search/searchclient/internal/search/heuristic"
	"github.com/hospital-search/searchclient/internal/state"
)

var (
	flagBFS       bool
	flagDFS       bool
	flagAStar     bool
	flagWAStar    bool
	flagWeight    int
	flagGreedy    bool
	flagHeuristic string
	flagBenchmark bool
)

var rootCmd = &cobra.Command{
	Use:   "searchclient",
	Short: "A state-space search client for the hospital box-pushing domain",
	Long: `searchclient reads a level from stdin in the judge server's wire
format, searches for a plan that satisfies every goal cell, and writes
that plan to stdout as pipe-separated joint actions, one line per time
step.`,
	RunE: runSearch,
}

func init() {
	rootCmd.Flags().BoolVar(&flagBFS, "bfs", false, "search with breadth-first search")
	rootCmd.Flags().BoolVar(&flagDFS, "dfs", false, "search with depth-first search")
	rootCmd.Flags().BoolVar(&flagAStar, "astar", false, "search with A*")
	rootCmd.Flags().BoolVar(&flagWAStar, "wastar", false, "search with Weighted-A*")
	rootCmd.Flags().IntVar(&flagWeight, "weight", config.DefaultWeight, "weight for --wastar")
	rootCmd.Flags().BoolVar(&flagGreedy, "greedy", false, "search with greedy best-first search")
	rootCmd.Flags().StringVar(&flagHeuristic, "heur", config.HeurZero,
		"heuristic for --astar/--wastar/--greedy: zero, goalcount, boxgoalcount, custom, boxcustom, boxcustom2")
	rootCmd.Flags().BoolVar(&flagBenchmark, "benchmark", false, "suppress periodic status logging")

	if err := config.BindFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	log := obslog.Logger()
	log.Info().Msg("SearchClient initializing")

	stdout := bufio.NewWriter(os.Stdout)
	if err := planout.WriteHeader(stdout, ""); err != nil {
		return err
	}

	lvl, init, err := level.Parse(bufio.NewReader(os.Stdin))
	if err != nil {
		log.Error().Err(err).Msg("failed to parse level")
		return err
	}
	initial := state.NewInitial(lvl, init)

	cfg := config.Load()
	fr, name := selectFrontier(cfg, initial)
	log.Info().Str("strategy", name).Msg("strategy selected")

	driver := &search.Driver{Log: log, Benchmark: cfg.Benchmark}
	plan := driver.Search(initial, fr)

	if plan == nil {
		log.Warn().Msg("unable to solve level")
		return nil
	}

	log.Info().Int("plan_length", len(plan)).Msg("found solution")
	return planout.WritePlan(stdout, plan)
}

// selectFrontier builds the frontier named by cfg.Frontier, falling
// back to breadth-first search (with a warning) for anything
// unrecognized — the client should never simply refuse to run because
// of an unfamiliar flag value.
func selectFrontier(cfg config.Config, initial *state.State) (frontier.Frontier, string) {
	switch cfg.Frontier {
	case config.FrontierDFS:
		return frontier.NewDFS(), "depth-first search"
	case config.FrontierAStar:
		h := selectHeuristic(cfg.Heuristic)
		h.Init(initial)
		eval := heuristic.NewAStar(h)
		return frontier.NewBestFirst(eval), eval.String()
	case config.FrontierWAStar:
		h := selectHeuristic(cfg.Heuristic)
		h.Init(initial)
		eval := heuristic.NewWeightedAStar(h, cfg.Weight)
		return frontier.NewBestFirst(eval), eval.String()
	case config.FrontierGreedy:
		h := selectHeuristic(cfg.Heuristic)
		h.Init(initial)
		eval := heuristic.NewGreedy(h)
		return frontier.NewBestFirst(eval), eval.String()
	case config.FrontierBFS:
		return frontier.NewBFS(), "breadth-first search"
	default:
		obslog.Logger().Warn().Str("frontier", cfg.Frontier).Msg("unrecognized strategy, falling back to breadth-first search")
		return frontier.NewBFS(), "breadth-first search"
	}
}

func selectHeuristic(name string) heuristic.CustomH {
	switch name {
	case config.HeurGoalCount:
		return heuristic.GoalCount{}
	case config.HeurBoxGoalCount:
		return heuristic.BoxGoalCount{}
	case config.HeurCustom:
		return heuristic.SumDistances{}
	case config.HeurBoxCustom:
		return heuristic.SumDistancesBox{}
	case config.HeurBoxCustom2:
		return heuristic.SumDistancesBox2{}
	default:
		return heuristic.Zero{}
	}
}
