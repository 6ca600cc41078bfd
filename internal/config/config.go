// Package config centralizes the runtime knobs the CLI exposes: which
// frontier strategy to run, which heuristic to feed it, the
// Weighted-A* weight, and the benchmark (quiet) logging toggle. Flags
// bind through viper so every value can also be set via a
// SEARCHCLIENT_* environment variable, the way a level in a container
// without CLI access would configure the client.
package config

import (
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "SEARCHCLIENT"

	FrontierBFS    = "bfs"
	FrontierDFS    = "dfs"
	FrontierAStar  = "astar"
	FrontierWAStar = "wastar"
	FrontierGreedy = "greedy"

	HeurZero         = "zero"
	HeurGoalCount    = "goalcount"
	HeurBoxGoalCount = "boxgoalcount"
	HeurCustom       = "custom"
	HeurBoxCustom    = "boxcustom"
	HeurBoxCustom2   = "boxcustom2"

	DefaultWeight = 5
)

// Config is the fully resolved set of run-time options for one
// invocation of the search client. Frontier is derived from whichever
// strategy flag was set, in the same priority order the reference CLI
// applies when more than one is given: astar, wastar, greedy, dfs,
// then bfs as the default.
type Config struct {
	Frontier  string
	Heuristic string
	Weight    int
	Benchmark bool
}

var (
	once sync.Once
	v    *viper.Viper
)

// viperInstance returns the process-wide viper instance, binding
// environment variables under the SEARCHCLIENT_ prefix on first use.
func viperInstance() *viper.Viper {
	once.Do(func() {
		v = viper.New()
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()
		v.SetDefault("bfs", false)
		v.SetDefault("dfs", false)
		v.SetDefault("astar", false)
		v.SetDefault("wastar", false)
		v.SetDefault("greedy", false)
		v.SetDefault("heur", HeurZero)
		v.SetDefault("weight", DefaultWeight)
		v.SetDefault("benchmark", false)
	})
	return v
}

// BindFlags binds the cobra root command's flags into the shared
// viper instance, so flags, env vars, and defaults resolve through one
// precedence chain: flag > env > default.
func BindFlags(flags *pflag.FlagSet) error {
	return viperInstance().BindPFlags(flags)
}

// Load resolves the final Config after flags have been registered and
// parsed.
func Load() Config {
	vi := viperInstance()

	frontier := FrontierBFS
	switch {
	case vi.GetBool("astar"):
		frontier = FrontierAStar
	case vi.GetBool("wastar"):
		frontier = FrontierWAStar
	case vi.GetBool("greedy"):
		frontier = FrontierGreedy
	case vi.GetBool("dfs"):
		frontier = FrontierDFS
	case vi.GetBool("bfs"):
		frontier = FrontierBFS
	}

	return Config{
		Frontier:  frontier,
		Heuristic: strings.ToLower(vi.GetString("heur")),
		Weight:    vi.GetInt("weight"),
		Benchmark: vi.GetBool("benchmark"),
	}
}
