// Command graphwalk steps BFS, priority BFS, DFS and greedy best-first
// searches over a scene file or a generated shape, one visit at a time.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/graphwalk/config"
)

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "ENV_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "graphwalk: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd(&cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
